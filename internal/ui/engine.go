package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/knobmenu/internal/anim"
	"github.com/atomicstack/knobmenu/internal/input"
	"github.com/atomicstack/knobmenu/internal/logging/events"
	"github.com/atomicstack/knobmenu/internal/menu"
	"github.com/atomicstack/knobmenu/internal/ui/command"
)

const (
	// FixedStep is the nominal frame time in seconds.
	FixedStep = 0.016
	maxStep   = 0.05

	DefaultCursorStiffness = 100
	DefaultCursorDamping   = 12
	DefaultScrollStiffness = 60
	DefaultScrollDamping   = 10
	labelStiffness         = 180
	labelDamping           = 22
)

// Options tunes an Engine. Zero values take the defaults.
type Options struct {
	// Transition is the crossfade duration. Negative disables transitions.
	Transition time.Duration
	// FixedStep integrates animations with the nominal FixedStep instead of
	// the measured time between ticks.
	FixedStep       bool
	CursorStiffness float64
	CursorDamping   float64
	ScrollStiffness float64
	ScrollDamping   float64
	Geometry        Geometry
}

func (o Options) withDefaults(s Surface) Options {
	if o.Transition == 0 {
		o.Transition = DefaultTransition
	}
	if o.CursorStiffness <= 0 {
		o.CursorStiffness = DefaultCursorStiffness
	}
	if o.CursorDamping <= 0 {
		o.CursorDamping = DefaultCursorDamping
	}
	if o.ScrollStiffness <= 0 {
		o.ScrollStiffness = DefaultScrollStiffness
	}
	if o.ScrollDamping <= 0 {
		o.ScrollDamping = DefaultScrollDamping
	}
	if o.Geometry == (Geometry{}) {
		o.Geometry = DefaultGeometry(s.Bounds())
	}
	return o
}

// Engine runs one cooperative tick of the menu: scan input, navigate,
// animate, render, blend and present.
type Engine struct {
	surface    Surface
	decoder    *input.Decoder
	clock      input.Clock
	nav        *Navigator
	appearance *Appearance
	geometry   Geometry

	list     listLayout
	carousel carouselLayout

	cursor *anim.Spring
	scroll *anim.Spring
	label  *anim.Spring

	transition *Transition
	fps        FPSMeter
	takeover   Takeover

	fixed  bool
	now    uint32
	last   uint32
	ticked bool
	frames uint64
}

// NewEngine wires an engine. A nil root starts at the registry root. A nil
// appearance uses defaults.
func NewEngine(reg *menu.Registry, root *menu.Page, s Surface, dec *input.Decoder, clock input.Clock, appearance *Appearance, opts Options) (*Engine, error) {
	if s == nil || dec == nil || clock == nil {
		return nil, fmt.Errorf("engine requires a surface, decoder and clock")
	}
	if root == nil && reg != nil {
		root = reg.Root()
	}
	if root == nil {
		return nil, menu.ErrNilPage
	}
	if appearance == nil {
		appearance = &Appearance{}
	}
	opts = opts.withDefaults(s)
	e := &Engine{
		surface:    s,
		decoder:    dec,
		clock:      clock,
		nav:        NewNavigator(root, command.New()),
		appearance: appearance,
		geometry:   opts.Geometry,
		list:       listLayout{g: opts.Geometry},
		carousel:   carouselLayout{g: opts.Geometry},
		cursor:     anim.NewSpring(0, opts.CursorStiffness, opts.CursorDamping),
		scroll:     anim.NewSpring(0, opts.ScrollStiffness, opts.ScrollDamping),
		label:      anim.NewSpring(1, labelStiffness, labelDamping),
		transition: NewTransition(opts.Transition),
		fixed:      opts.FixedStep,
	}
	l := e.layoutFor(root)
	e.scroll.Snap(l.scrollTarget(root, root.Scroll))
	e.cursor.Snap(l.cursorTarget(root))
	if reg != nil {
		reg.Watch(e.layoutChanged)
	}
	return e, nil
}

// Navigator exposes the page stack.
func (e *Engine) Navigator() *Navigator {
	return e.nav
}

// Current returns the live page.
func (e *Engine) Current() *menu.Page {
	return e.nav.Current()
}

// Appearance returns the shared display preferences.
func (e *Engine) Appearance() *Appearance {
	return e.appearance
}

// Frames returns the number of frames presented.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// FPS returns the measured frame rate.
func (e *Engine) FPS() int {
	return e.fps.FPS()
}

// Transition exposes the page transition state.
func (e *Engine) Transition() *Transition {
	return e.transition
}

// Takeover returns the active takeover, or nil.
func (e *Engine) Takeover() Takeover {
	return e.takeover
}

// Tune changes the cursor spring. Motion in flight continues smoothly.
func (e *Engine) Tune(stiffness, damping float64) {
	if stiffness <= 0 || damping <= 0 {
		return
	}
	e.cursor.SetTuning(stiffness, damping)
}

// StartTakeover hands the screen to t until the next button event.
func (e *Engine) StartTakeover(t Takeover) {
	if t == nil {
		return
	}
	e.transition.Begin(e.surface, "takeover")
	e.takeover = t
	events.UI.Takeover(true)
}

// EndTakeover returns the screen to the menu.
func (e *Engine) EndTakeover() {
	if e.takeover == nil {
		return
	}
	e.transition.Begin(e.surface, "menu")
	e.takeover = nil
	events.UI.Takeover(false)
}

// Tick runs one frame.
func (e *Engine) Tick() error {
	dt := e.step()
	e.decoder.Scan()
	delta := e.decoder.RotationDelta()
	ev := e.decoder.Event()
	if delta != 0 {
		events.Input.Rotate(delta)
	}
	if ev != input.EventNone {
		events.Input.Button(ev.String())
	}
	if e.takeover != nil && ev != input.EventNone {
		e.EndTakeover()
		delta, ev = 0, input.EventNone
	}
	if e.takeover == nil {
		e.navigate(delta, ev)
	}
	e.animate(dt)
	if e.takeover != nil {
		e.surface.Clear()
		e.takeover.RunFrame(e.surface, dt)
		e.decorate()
	} else {
		e.render()
	}
	return e.finish(dt)
}

func (e *Engine) step() float64 {
	now := e.clock.Millis()
	e.now = now
	if e.fixed || !e.ticked {
		e.ticked = true
		e.last = now
		return FixedStep
	}
	dt := float64(now-e.last) / 1000
	e.last = now
	if dt > maxStep {
		dt = maxStep
	}
	return dt
}

func (e *Engine) navigate(delta int, ev input.Event) {
	if delta != 0 {
		prev := e.nav.Current()
		e.apply(prev, e.nav.Rotate(delta))
	}
	if ev != input.EventNone {
		prev := e.nav.Current()
		e.apply(prev, e.nav.Press(ev))
	}
}

func (e *Engine) apply(prev *menu.Page, out Outcome) {
	page := e.nav.Current()
	switch {
	case out.Entered():
		reason := "push"
		if out.Popped {
			reason = "pop"
		}
		e.transition.Begin(e.surface, reason)
		e.enter(prev, page)
	default:
		// Callbacks may add or remove items on the live page.
		l := e.layoutFor(page)
		e.cursor.SetTarget(l.cursorTarget(page))
		e.scroll.SetTarget(l.scrollTarget(page, e.scroll.Target))
		if out.Moved || ((out.Edited || out.Changed) && page.Layout == menu.LayoutCarousel) {
			e.popLabel()
		}
	}
}

// enter saves the scroll target of the page being left and restores the
// saved window of the page being entered.
func (e *Engine) enter(prev, next *menu.Page) {
	if prev != nil {
		prev.Scroll = e.scroll.Target
	}
	l := e.layoutFor(next)
	e.scroll.Snap(l.scrollTarget(next, next.Scroll))
	e.cursor.SetTarget(l.cursorTarget(next))
	e.popLabel()
}

func (e *Engine) popLabel() {
	e.label.Snap(0)
	e.label.SetTarget(1)
}

func (e *Engine) layoutChanged(change menu.LayoutChange) {
	page := change.Page
	if page != e.nav.Current() {
		return
	}
	events.UI.Layout(page.Title, change.From.String(), change.To.String())
	e.transition.Begin(e.surface, "layout")
	l := e.layoutFor(page)
	e.scroll.Snap(l.scrollTarget(page, 0))
	e.cursor.Snap(l.cursorTarget(page))
	e.popLabel()
}

func (e *Engine) layoutFor(p *menu.Page) layout {
	if p != nil && p.Layout == menu.LayoutCarousel {
		return e.carousel
	}
	return e.list
}

func (e *Engine) animate(dt float64) {
	e.cursor.Update(dt)
	e.scroll.Update(dt)
	e.label.Update(dt)
}

func (e *Engine) render() {
	e.surface.Clear()
	page := e.nav.Current()
	if page != nil {
		e.layoutFor(page).draw(e.surface, frame{
			page:           page,
			editing:        e.nav.Editing(),
			cursor:         e.cursor.Position,
			scroll:         e.scroll.Position,
			scrollVelocity: e.scroll.Velocity,
			label:          e.label.Position,
		})
		drawTitle(e.surface, e.geometry, page.Title)
	}
	e.decorate()
}

// decorate applies the appearance overlays shared by menu and takeover frames.
func (e *Engine) decorate() {
	if e.appearance.ShowFPS {
		drawFPS(e.surface, e.geometry, e.fps.FPS())
	}
	if e.appearance.DarkMode {
		e.surface.InvertRect(e.surface.Bounds())
	}
}

func (e *Engine) finish(dt float64) error {
	e.transition.Apply(e.surface, dt)
	e.fps.Frame(e.now)
	if err := e.surface.Present(); err != nil {
		events.Display.Error(err)
		return fmt.Errorf("present frame: %w", err)
	}
	e.frames++
	return nil
}
