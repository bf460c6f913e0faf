package app

import (
	"fmt"
	"time"

	"github.com/atomicstack/knobmenu/internal/backend"
	"github.com/atomicstack/knobmenu/internal/canvas"
	"github.com/atomicstack/knobmenu/internal/input"
	"github.com/atomicstack/knobmenu/internal/state"
	"github.com/atomicstack/knobmenu/internal/ui"
)

const (
	ModeSim    = "sim"
	ModeDevice = "device"

	DefaultFPS          = backend.DefaultFPS
	DefaultTransitionMs = 500

	ScreenWidth  = 128
	ScreenHeight = 128
)

// Config describes user-provided application options.
type Config struct {
	Mode         string
	FPS          int
	TransitionMs int
	Stiffness    int32
	Damping      int32
	Quantum      int
	FixedStep    bool
	DarkMode     bool
	ShowFPS      bool
	RootMenu     string
	Device       DeviceConfig
}

// DeviceConfig names the SPI port and GPIO pins used in device mode.
type DeviceConfig struct {
	SPIPort string
	CS      string
	DISP    string
	EncA    string
	EncB    string
	EncBtn  string
}

// Run builds the demo menu and executes the selected front end.
func Run(cfg Config) error {
	switch cfg.Mode {
	case ModeSim, "":
		return runSim(cfg)
	case ModeDevice:
		return runDevice(cfg)
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

// engineOptions maps configuration onto engine tuning.
func (c Config) engineOptions() ui.Options {
	opts := ui.Options{
		FixedStep:       c.FixedStep,
		CursorStiffness: float64(c.Stiffness),
		CursorDamping:   float64(c.Damping),
	}
	if c.TransitionMs > 0 {
		opts.Transition = time.Duration(c.TransitionMs) * time.Millisecond
	} else {
		opts.Transition = -1
	}
	return opts
}

func (c Config) settings() state.SettingsStore {
	s := state.DefaultSettings()
	if c.Stiffness > 0 {
		s.Stiffness = c.Stiffness
	}
	if c.Damping > 0 {
		s.Damping = c.Damping
	}
	return state.NewSettingsStore(s)
}

// session is the engine wired to a menu tree, a surface and an encoder
// source. Both front ends build one.
type session struct {
	demo   *Demo
	canvas *canvas.Canvas
	engine *ui.Engine
}

func newSession(cfg Config, src input.Source, clock input.Clock, sink canvas.Sink) (*session, error) {
	d, err := NewDemo(&ui.Appearance{DarkMode: cfg.DarkMode, ShowFPS: cfg.ShowFPS}, cfg.settings())
	if err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}
	root, err := d.Root(cfg.RootMenu)
	if err != nil {
		return nil, err
	}
	c := canvas.New(ScreenWidth, ScreenHeight, sink)
	dec := input.NewDecoder(src, clock, input.Options{Quantum: cfg.Quantum})
	e, err := ui.NewEngine(d.Registry, root, c, dec, clock, d.Appearance, cfg.engineOptions())
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	d.Attach(e)
	return &session{demo: d, canvas: c, engine: e}, nil
}
