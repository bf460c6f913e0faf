package ui

import (
	"github.com/atomicstack/knobmenu/internal/canvas"
	"github.com/atomicstack/knobmenu/internal/input"
	"github.com/atomicstack/knobmenu/internal/menu"
)

// harnessTick is the simulated time between engine ticks in milliseconds.
const harnessTick = 4

// Harness drives an engine with simulated encoder input for integration tests.
type Harness struct {
	engine *Engine
	canvas *canvas.Canvas
	src    *scriptedEncoder
	clock  *manualClock
}

type scriptedEncoder struct {
	count uint16
	down  bool
}

func (s *scriptedEncoder) Counter() uint16 { return s.count }
func (s *scriptedEncoder) Pressed() bool   { return s.down }

type manualClock struct {
	now uint32
}

func (c *manualClock) Millis() uint32 { return c.now }

// NewHarness builds an engine on a 128x128 canvas starting at root (or the
// registry root when root is nil).
func NewHarness(reg *menu.Registry, root *menu.Page, appearance *Appearance, opts Options) (*Harness, error) {
	src := &scriptedEncoder{}
	clock := &manualClock{now: 1}
	c := canvas.New(128, 128, nil)
	dec := input.NewDecoder(src, clock, input.Options{})
	e, err := NewEngine(reg, root, c, dec, clock, appearance, opts)
	if err != nil {
		return nil, err
	}
	return &Harness{engine: e, canvas: c, src: src, clock: clock}, nil
}

// Run ticks the engine for ms milliseconds of simulated time.
func (h *Harness) Run(ms int) error {
	for elapsed := 0; elapsed < ms; elapsed += harnessTick {
		h.clock.now += harnessTick
		if err := h.engine.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Turn rotates the encoder by detents, one detent at a time.
func (h *Harness) Turn(detents int) error {
	step := input.DefaultQuantum
	if detents < 0 {
		step = -step
		detents = -detents
	}
	for i := 0; i < detents; i++ {
		h.src.count = uint16(int(h.src.count) + step)
		if err := h.Run(24); err != nil {
			return err
		}
	}
	return nil
}

func (h *Harness) press(ms int) error {
	h.src.down = true
	if err := h.Run(ms); err != nil {
		return err
	}
	h.src.down = false
	return nil
}

// Click presses briefly and waits out the double-click gap.
func (h *Harness) Click() error {
	if err := h.press(60); err != nil {
		return err
	}
	return h.Run(input.DefaultDoubleClickGap + 40)
}

// DoubleClick presses twice inside the double-click gap.
func (h *Harness) DoubleClick() error {
	if err := h.press(60); err != nil {
		return err
	}
	if err := h.Run(100); err != nil {
		return err
	}
	if err := h.press(60); err != nil {
		return err
	}
	return h.Run(40)
}

// LongPress holds past the long-press threshold.
func (h *Harness) LongPress() error {
	if err := h.press(input.DefaultLongPress + 60); err != nil {
		return err
	}
	return h.Run(40)
}

// Settle runs long enough for springs and transitions to come to rest.
func (h *Harness) Settle() error {
	return h.Run(2000)
}

// Engine exposes the driven engine.
func (h *Harness) Engine() *Engine {
	return h.engine
}

// Frame returns the last presented frame.
func (h *Harness) Frame() *canvas.Bitmap {
	return h.canvas.Frame()
}

// Now returns the simulated clock.
func (h *Harness) Now() uint32 {
	return h.clock.now
}
