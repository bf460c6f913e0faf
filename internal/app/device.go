package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/atomicstack/knobmenu/internal/backend"
	"github.com/atomicstack/knobmenu/internal/logging"
	"github.com/atomicstack/knobmenu/internal/logging/events"
	"github.com/atomicstack/knobmenu/internal/mlcd"
)

// runDevice drives a Sharp memory LCD and a GPIO encoder until SIGINT or
// SIGTERM.
func runDevice(cfg Config) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("host init: %w", err)
	}
	port, err := spireg.Open(cfg.Device.SPIPort)
	if err != nil {
		return fmt.Errorf("open spi port %q: %w", cfg.Device.SPIPort, err)
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runHardware(ctx, cfg, port, gpioreg.ByName)
}

// runHardware owns the display and encoder for the duration of ctx. Pins are
// looked up through byName so tests can supply fakes.
func runHardware(ctx context.Context, cfg Config, port spi.Port, byName func(string) gpio.PinIO) (err error) {
	pins, err := lookupPins(cfg.Device, byName)
	if err != nil {
		return err
	}
	opts := &mlcd.Opts{W: ScreenWidth, H: ScreenHeight, CS: pins.cs}
	if pins.disp != nil {
		opts.DISP = pins.disp
	}
	lcd, err := mlcd.NewSPI(port, opts)
	if err != nil {
		return err
	}
	defer func() {
		if herr := lcd.Halt(); herr != nil {
			logging.Error(herr)
			if err == nil {
				err = herr
			}
		}
	}()

	enc, err := backend.NewGPIOEncoder(pins.a, pins.b, pins.btn, backend.DefaultPollInterval)
	if err != nil {
		return err
	}
	enc.Start(ctx)
	defer func() {
		enc.Stop()
		enc.Wait()
	}()

	s, err := newSession(cfg, enc, backend.NewSystemClock(), lcd)
	if err != nil {
		return err
	}
	runner := backend.NewRunner(s.engine, cfg.FPS)
	err = runner.Run(ctx)
	events.App.Stop(runner.Frames(), err)
	return err
}

type devicePins struct {
	cs, disp  gpio.PinIO
	a, b, btn gpio.PinIO
}

func lookupPins(d DeviceConfig, byName func(string) gpio.PinIO) (devicePins, error) {
	var (
		pins devicePins
		errs []error
	)
	find := func(flag, name string, required bool) gpio.PinIO {
		if name == "" {
			if required {
				errs = append(errs, fmt.Errorf("--%s is required", flag))
			}
			return nil
		}
		p := byName(name)
		if p == nil {
			errs = append(errs, fmt.Errorf("--%s: no gpio pin named %q", flag, name))
		}
		return p
	}
	pins.cs = find("cs", d.CS, true)
	pins.disp = find("disp", d.DISP, false)
	pins.a = find("enc-a", d.EncA, true)
	pins.b = find("enc-b", d.EncB, true)
	pins.btn = find("enc-btn", d.EncBtn, true)
	if err := errors.Join(errs...); err != nil {
		return devicePins{}, err
	}
	return pins, nil
}
