package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/atomicstack/knobmenu/internal/logging/events"
)

// DefaultPollInterval samples the encoder pins at 1 kHz.
const DefaultPollInterval = time.Millisecond

// quadrature maps (previous AB << 2 | current AB) to a signed tick. Invalid
// double transitions count as zero.
var quadrature = [16]int8{
	0, -1, 1, 0,
	1, 0, 0, -1,
	-1, 0, 0, 1,
	0, 1, -1, 0,
}

// GPIOEncoder decodes a quadrature encoder and its push button from GPIO
// pins. The pins are sampled by a polling goroutine; Counter and Pressed are
// safe to call from the frame loop.
type GPIOEncoder struct {
	a, b, btn gpio.PinIn
	interval  time.Duration

	count   atomic.Uint32
	pressed atomic.Bool
	prev    uint8

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewGPIOEncoder configures a, b and btn as pulled-up inputs. The button is
// active low.
func NewGPIOEncoder(a, b, btn gpio.PinIn, interval time.Duration) (*GPIOEncoder, error) {
	if a == nil || b == nil || btn == nil {
		return nil, errors.New("backend: encoder requires pins a, b and button")
	}
	for _, p := range []gpio.PinIn{a, b, btn} {
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("backend: configure %s: %w", p.Name(), err)
		}
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	e := &GPIOEncoder{a: a, b: b, btn: btn, interval: interval}
	e.prev = e.phase()
	e.pressed.Store(btn.Read() == gpio.Low)
	return e, nil
}

// Counter implements input.Source.
func (e *GPIOEncoder) Counter() uint16 {
	return uint16(e.count.Load())
}

// Pressed implements input.Source.
func (e *GPIOEncoder) Pressed() bool {
	return e.pressed.Load()
}

// Sample reads the pins once. The polling goroutine calls it every interval.
func (e *GPIOEncoder) Sample() {
	cur := e.phase()
	if delta := quadrature[e.prev<<2|cur]; delta != 0 {
		e.count.Add(uint32(int32(delta)))
	}
	e.prev = cur
	e.pressed.Store(e.btn.Read() == gpio.Low)
}

func (e *GPIOEncoder) phase() uint8 {
	var ab uint8
	if e.a.Read() == gpio.High {
		ab |= 2
	}
	if e.b.Read() == gpio.High {
		ab |= 1
	}
	return ab
}

// Start launches the polling goroutine. It stops when ctx is cancelled or
// Stop is called.
func (e *GPIOEncoder) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	e.wg.Add(1)
	go e.poll(ctx)
}

// Stop cancels polling.
func (e *GPIOEncoder) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
}

// Wait blocks until the polling goroutine has exited.
func (e *GPIOEncoder) Wait() {
	e.wg.Wait()
}

func (e *GPIOEncoder) poll(ctx context.Context) {
	defer e.wg.Done()
	pins := e.a.Name() + "," + e.b.Name() + "," + e.btn.Name()
	events.Input.Poller(pins, true, nil)
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			events.Input.Poller(pins, false, ctx.Err())
			return
		case <-ticker.C:
			e.Sample()
		}
	}
}
