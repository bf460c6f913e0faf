package backend

import (
	"context"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type encoderPins struct {
	a, b, btn *gpiotest.Pin
}

func newEncoderPins() encoderPins {
	return encoderPins{
		a:   &gpiotest.Pin{N: "GPIO17", Num: 17, L: gpio.High},
		b:   &gpiotest.Pin{N: "GPIO27", Num: 27, L: gpio.High},
		btn: &gpiotest.Pin{N: "GPIO22", Num: 22, L: gpio.High},
	}
}

func (p encoderPins) set(e *GPIOEncoder, a, b gpio.Level) {
	p.a.L = a
	p.b.L = b
	e.Sample()
}

func newTestEncoder(t *testing.T, p encoderPins) *GPIOEncoder {
	t.Helper()
	e, err := NewGPIOEncoder(p.a, p.b, p.btn, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

func TestGPIOEncoderConfiguresPullUps(t *testing.T) {
	p := newEncoderPins()
	newTestEncoder(t, p)
	for _, pin := range []*gpiotest.Pin{p.a, p.b, p.btn} {
		if pin.P != gpio.PullUp {
			t.Fatalf("expected %s pulled up, got %s", pin.N, pin.P)
		}
	}
}

func TestGPIOEncoderRejectsMissingPins(t *testing.T) {
	p := newEncoderPins()
	if _, err := NewGPIOEncoder(p.a, nil, p.btn, 0); err == nil {
		t.Fatalf("expected error for missing pin")
	}
}

func TestGPIOEncoderCountsQuadrature(t *testing.T) {
	p := newEncoderPins()
	e := newTestEncoder(t, p)
	clockwise := [][2]gpio.Level{
		{gpio.Low, gpio.High},
		{gpio.Low, gpio.Low},
		{gpio.High, gpio.Low},
		{gpio.High, gpio.High},
	}
	for _, step := range clockwise {
		p.set(e, step[0], step[1])
	}
	if got := e.Counter(); got != 4 {
		t.Fatalf("expected 4 ticks for one detent, got %d", got)
	}
	for i := len(clockwise) - 2; i >= 0; i-- {
		p.set(e, clockwise[i][0], clockwise[i][1])
	}
	p.set(e, gpio.High, gpio.High)
	if got := e.Counter(); got != 0 {
		t.Fatalf("expected counter back at 0, got %d", got)
	}
	p.set(e, gpio.High, gpio.Low)
	if got := e.Counter(); got != 0xFFFF {
		t.Fatalf("expected counter to wrap below zero, got %d", got)
	}
}

func TestGPIOEncoderIgnoresInvalidTransition(t *testing.T) {
	p := newEncoderPins()
	e := newTestEncoder(t, p)
	p.set(e, gpio.Low, gpio.Low)
	p.set(e, gpio.High, gpio.High)
	if got := e.Counter(); got != 0 {
		t.Fatalf("expected double transitions to be ignored, got %d", got)
	}
}

func TestGPIOEncoderButtonActiveLow(t *testing.T) {
	p := newEncoderPins()
	e := newTestEncoder(t, p)
	if e.Pressed() {
		t.Fatalf("expected released with the pin high")
	}
	p.btn.L = gpio.Low
	e.Sample()
	if !e.Pressed() {
		t.Fatalf("expected pressed with the pin low")
	}
}

func TestGPIOEncoderStartStop(t *testing.T) {
	p := newEncoderPins()
	e := newTestEncoder(t, p)
	e.Start(context.Background())
	e.Stop()
	done := make(chan struct{})
	go func() {
		e.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for poller to stop")
	}
}
