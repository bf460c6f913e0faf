package app

import (
	"testing"

	"github.com/atomicstack/knobmenu/internal/menu"
	"github.com/atomicstack/knobmenu/internal/state"
	"github.com/atomicstack/knobmenu/internal/ui"
)

type demoRig struct {
	demo *Demo
	h    *ui.Harness
}

func newDemoRig(t *testing.T) *demoRig {
	t.Helper()
	d, err := NewDemo(nil, nil)
	if err != nil {
		t.Fatalf("failed to build demo: %v", err)
	}
	h, err := ui.NewHarness(d.Registry, nil, d.Appearance, ui.Options{Transition: -1})
	if err != nil {
		t.Fatalf("failed to build harness: %v", err)
	}
	d.Attach(h.Engine())
	return &demoRig{demo: d, h: h}
}

func (r *demoRig) do(t *testing.T, steps ...func() error) {
	t.Helper()
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func (r *demoRig) turn(n int) func() error {
	return func() error { return r.h.Turn(n) }
}

func findItem(t *testing.T, p *menu.Page, label string) *menu.Item {
	t.Helper()
	for _, it := range p.Items() {
		if it.Label == label {
			return it
		}
	}
	t.Fatalf("no item %q on page %q", label, p.Title)
	return nil
}

func TestDemoTree(t *testing.T) {
	d, err := NewDemo(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Display", "Damping", "Theme", "Sound", "Vibrate", "Layout", "Demos", "Info", "Save Cfg", "Reboot"}
	items := d.Main.Items()
	if len(items) != len(want) {
		t.Fatalf("expected %d main items, got %d", len(want), len(items))
	}
	for i, label := range want {
		if items[i].Label != label {
			t.Fatalf("item %d: expected %q, got %q", i, label, items[i].Label)
		}
		if items[i].Icon == nil {
			t.Fatalf("expected icon for %q", label)
		}
	}
	if d.Registry.Root() != d.Main || d.Main.Title != "Main Menu" {
		t.Fatalf("expected Main Menu as registry root")
	}
	info, ok := d.Registry.Find("System Info")
	if !ok {
		t.Fatalf("expected System Info page")
	}
	if got := info.Item(0).Label; got != "Ver: 1.0.0" {
		t.Fatalf("expected version item, got %q", got)
	}
	if got := info.Item(1).Label; got != "Build: Dec28" {
		t.Fatalf("expected build item, got %q", got)
	}
	damping, _ := d.Registry.Find("Anim Damping")
	v, ok := findItem(t, damping, "Stiffness").Payload.(menu.Value)
	if !ok || v.Min != 50 || v.Max != 200 || v.Step != 10 {
		t.Fatalf("unexpected stiffness range %+v", v)
	}
}

func TestDemoRoot(t *testing.T) {
	d, err := NewDemo(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name  string
		title string
	}{
		{"", "Main Menu"},
		{"display", "Display"},
		{"info", "System Info"},
		{"damp", "Anim Damping"},
	}
	for _, tt := range tests {
		p, err := d.Root(tt.name)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.name, err)
		}
		if p.Title != tt.title {
			t.Fatalf("%q: expected %q, got %q", tt.name, tt.title, p.Title)
		}
	}
	if _, err := d.Root("zzzz"); err == nil {
		t.Fatalf("expected error for unknown root")
	}
}

func TestDemoThemeToggleDrivesDarkMode(t *testing.T) {
	r := newDemoRig(t)
	r.do(t, r.turn(2), r.h.Click)
	if !r.demo.Appearance.DarkMode {
		t.Fatalf("expected Theme to enable dark mode")
	}
	r.do(t, r.h.Settle)
	frame := r.h.Frame()
	if ink := frame.Count(frame.Bounds()); ink < 128*128/2 {
		t.Fatalf("expected mostly inked frame in dark mode, got %d pixels", ink)
	}
	r.do(t, r.h.Click)
	if r.demo.Appearance.DarkMode {
		t.Fatalf("expected second click to disable dark mode")
	}
}

func TestDemoLayoutRadio(t *testing.T) {
	r := newDemoRig(t)
	r.do(t, r.turn(5), r.h.Click)
	if got := r.h.Engine().Current().Title; got != "Layout" {
		t.Fatalf("expected Layout page, got %q", got)
	}
	r.do(t, r.turn(1), r.h.Click)
	if r.demo.Main.Layout != menu.LayoutCarousel {
		t.Fatalf("expected main page switched to carousel")
	}
	if !r.demo.carousel || r.demo.list {
		t.Fatalf("expected exclusive radio selection, got list=%v carousel=%v", r.demo.list, r.demo.carousel)
	}
	r.do(t, r.turn(-1), r.h.Click, r.h.LongPress)
	if r.demo.Main.Layout != menu.LayoutList {
		t.Fatalf("expected main page back on list")
	}
	if got := r.h.Engine().Current(); got != r.demo.Main {
		t.Fatalf("expected long press to return to main, got %q", got.Title)
	}
}

func TestDemoDampingEditAndSave(t *testing.T) {
	r := newDemoRig(t)
	live := r.demo.Settings.Live()
	r.do(t, r.turn(1), r.h.Click)
	if got := r.h.Engine().Current().Title; got != "Anim Damping" {
		t.Fatalf("expected Anim Damping page, got %q", got)
	}
	r.do(t, r.h.Click, r.turn(2), r.h.Click)
	if live.Stiffness != 120 {
		t.Fatalf("expected stiffness 120, got %d", live.Stiffness)
	}
	if !r.demo.Settings.Dirty() {
		t.Fatalf("expected unsaved edit")
	}
	r.do(t, r.h.DoubleClick)
	if got := r.h.Engine().Current(); got != r.demo.Main {
		t.Fatalf("expected double click back to main, got %q", got.Title)
	}
	r.do(t, r.turn(7), r.h.Click)
	if r.demo.Settings.Saves() != 1 || r.demo.Settings.Dirty() {
		t.Fatalf("expected Save Cfg to persist, saves=%d dirty=%v", r.demo.Settings.Saves(), r.demo.Settings.Dirty())
	}
	if got := r.demo.Settings.Saved().Stiffness; got != 120 {
		t.Fatalf("expected saved stiffness 120, got %d", got)
	}
}

func TestDemoRebootRevertsUnsaved(t *testing.T) {
	store := state.NewSettingsStore(state.DefaultSettings())
	d, err := NewDemo(nil, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Live().Brightness = 10
	store.Live().Vibrate = true
	findItem(t, d.Main, "Reboot").Fire()
	if store.Dirty() {
		t.Fatalf("expected reboot to drop unsaved edits")
	}
	if store.Live().Brightness != 50 {
		t.Fatalf("expected brightness 50, got %d", store.Live().Brightness)
	}
}

func TestDemoBounceTakeover(t *testing.T) {
	r := newDemoRig(t)
	r.do(t, r.turn(6), r.h.Click, r.h.Click)
	if r.h.Engine().Takeover() == nil {
		t.Fatalf("expected Bounce takeover")
	}
	r.do(t, r.turn(3))
	if r.h.Engine().Takeover() == nil {
		t.Fatalf("expected rotation to leave the takeover running")
	}
	r.do(t, r.h.Click)
	if r.h.Engine().Takeover() != nil {
		t.Fatalf("expected click to end the takeover")
	}
	if got := r.h.Engine().Current().Title; got != "Demos" {
		t.Fatalf("expected to resume on Demos, got %q", got)
	}
}

func TestDemoDetachedItemsAreSafe(t *testing.T) {
	d, err := NewDemo(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	demos, _ := d.Registry.Find("Demos")
	findItem(t, demos, "Bounce").Fire()
	damping, _ := d.Registry.Find("Anim Damping")
	findItem(t, damping, "Damping").Fire()
}
