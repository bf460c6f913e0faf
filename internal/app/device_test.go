package app

import (
	"context"
	"strings"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

type fakePort struct {
	writes int
}

func (p *fakePort) String() string                    { return "fake-spi" }
func (p *fakePort) Duplex() conn.Duplex               { return conn.Half }
func (p *fakePort) TxPackets([]spi.Packet) error      { return nil }
func (p *fakePort) LimitSpeed(physic.Frequency) error { return nil }

func (p *fakePort) Connect(physic.Frequency, spi.Mode, int) (spi.Conn, error) {
	return p, nil
}

func (p *fakePort) Tx(w, _ []byte) error {
	p.writes++
	return nil
}

func fakePins() map[string]*gpiotest.Pin {
	pins := map[string]*gpiotest.Pin{}
	for _, name := range []string{"GPIO8", "GPIO24", "GPIO17", "GPIO27", "GPIO22"} {
		pins[name] = &gpiotest.Pin{N: name, L: gpio.High}
	}
	return pins
}

func lookup(pins map[string]*gpiotest.Pin) func(string) gpio.PinIO {
	return func(name string) gpio.PinIO {
		if p, ok := pins[name]; ok {
			return p
		}
		return nil
	}
}

func deviceConfig() Config {
	return Config{
		Mode:      ModeDevice,
		FPS:       60,
		Stiffness: 100,
		Damping:   12,
		Quantum:   4,
		Device: DeviceConfig{
			CS:     "GPIO8",
			DISP:   "GPIO24",
			EncA:   "GPIO17",
			EncB:   "GPIO27",
			EncBtn: "GPIO22",
		},
	}
}

func TestRunHardwareStopsOnCancel(t *testing.T) {
	pins := fakePins()
	port := &fakePort{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runHardware(ctx, deviceConfig(), port, lookup(pins)); err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
	if port.writes < 2 {
		t.Fatalf("expected clear on open and on halt, got %d writes", port.writes)
	}
	if pins["GPIO24"].L != gpio.Low {
		t.Fatalf("expected display disabled after stop")
	}
	if pins["GPIO22"].P != gpio.PullUp {
		t.Fatalf("expected encoder button pulled up")
	}
}

func TestRunHardwareUnknownRoot(t *testing.T) {
	pins := fakePins()
	cfg := deviceConfig()
	cfg.RootMenu = "qqqq"
	err := runHardware(context.Background(), cfg, &fakePort{}, lookup(pins))
	if err == nil || !strings.Contains(err.Error(), "qqqq") {
		t.Fatalf("expected unknown root error, got %v", err)
	}
	if pins["GPIO24"].L != gpio.Low {
		t.Fatalf("expected display disabled after failure")
	}
}

func TestLookupPins(t *testing.T) {
	pins := fakePins()
	d := deviceConfig().Device
	d.DISP = ""
	got, err := lookupPins(d, lookup(pins))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.disp != nil {
		t.Fatalf("expected no DISP pin")
	}
	if got.btn.Name() != "GPIO22" {
		t.Fatalf("expected button GPIO22, got %s", got.btn.Name())
	}

	d.EncA = "GPIO99"
	d.CS = ""
	_, err = lookupPins(d, lookup(pins))
	if err == nil {
		t.Fatalf("expected lookup errors")
	}
	for _, want := range []string{"--cs is required", "GPIO99"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := deviceConfig()
	cfg.TransitionMs = 250
	cfg.FixedStep = true
	opts := cfg.engineOptions()
	if opts.Transition.Milliseconds() != 250 || !opts.FixedStep || opts.CursorStiffness != 100 {
		t.Fatalf("unexpected options %+v", opts)
	}
	cfg.TransitionMs = 0
	if opts := cfg.engineOptions(); opts.Transition >= 0 {
		t.Fatalf("expected zero transition to disable, got %v", opts.Transition)
	}
}
