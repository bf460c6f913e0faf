package app

import (
	"fmt"

	"github.com/atomicstack/knobmenu/internal/demo"
	"github.com/atomicstack/knobmenu/internal/logging/events"
	"github.com/atomicstack/knobmenu/internal/menu"
	"github.com/atomicstack/knobmenu/internal/state"
	"github.com/atomicstack/knobmenu/internal/ui"
)

const (
	Version = "1.0.0"
	Build   = "Dec28"
)

// Demo is the stock menu tree together with the values its items bind to.
// Items that act on the engine do nothing until Attach is called.
type Demo struct {
	Registry   *menu.Registry
	Main       *menu.Page
	Appearance *ui.Appearance
	Settings   state.SettingsStore

	engine   *ui.Engine
	list     bool
	carousel bool
}

// pageBuilder adds items to a page and keeps the first failure.
type pageBuilder struct {
	page *menu.Page
	err  error
}

func (b *pageBuilder) add(item *menu.Item, err error) *menu.Item {
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("page %q: %w", b.page.Title, err)
	}
	return item
}

// NewDemo builds the menu tree. A nil appearance or settings store gets
// defaults.
func NewDemo(appearance *ui.Appearance, settings state.SettingsStore) (*Demo, error) {
	if appearance == nil {
		appearance = &ui.Appearance{}
	}
	if settings == nil {
		settings = state.NewSettingsStore(state.DefaultSettings())
	}
	d := &Demo{
		Registry:   menu.NewRegistry(),
		Appearance: appearance,
		Settings:   settings,
		list:       true,
	}
	if err := d.build(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Demo) build() error {
	live := d.Settings.Live()
	reg := d.Registry

	d.Main = reg.CreatePage("Main Menu")
	display := reg.CreatePage("Display")
	damping := reg.CreatePage("Anim Damping")
	layout := reg.CreatePage("Layout")
	demos := reg.CreatePage("Demos")
	info := reg.CreatePage("System Info")

	b := &pageBuilder{page: display}
	b.add(display.AddValue("Brightness", &live.Brightness, 0, 100, 5, nil))
	b.add(display.AddValue("Contrast", &live.Contrast, 0, 100, 1, nil))
	b.add(display.AddBack("Back"))
	if b.err != nil {
		return b.err
	}

	b = &pageBuilder{page: damping}
	b.add(damping.AddValue("Stiffness", &live.Stiffness, 50, 200, 10, d.tune))
	b.add(damping.AddValue("Damping", &live.Damping, 1, 30, 1, d.tune))
	b.add(damping.AddBack("Back"))
	if b.err != nil {
		return b.err
	}

	b = &pageBuilder{page: layout}
	b.add(layout.AddRadio("List", &d.list, func(*menu.Item) { d.Main.SetLayout(menu.LayoutList) }))
	b.add(layout.AddRadio("Carousel", &d.carousel, func(*menu.Item) { d.Main.SetLayout(menu.LayoutCarousel) }))
	b.add(layout.AddBack("Back"))
	if b.err != nil {
		return b.err
	}

	b = &pageBuilder{page: demos}
	b.add(demos.AddAction("Bounce", func(*menu.Item) { d.startTakeover(demo.NewBounce()) }))
	b.add(demos.AddBack("Back"))
	if b.err != nil {
		return b.err
	}

	b = &pageBuilder{page: info}
	b.add(info.AddAction("Ver: "+Version, nil))
	b.add(info.AddAction("Build: "+Build, nil))
	b.add(info.AddBack("Back"))
	if b.err != nil {
		return b.err
	}

	b = &pageBuilder{page: d.Main}
	b.add(d.Main.AddSubmenu("Display", display))
	b.add(d.Main.AddSubmenu("Damping", damping))
	b.add(d.Main.AddToggle("Theme", &d.Appearance.DarkMode, nil))
	b.add(d.Main.AddToggle("Sound", &live.Sound, nil))
	b.add(d.Main.AddToggle("Vibrate", &live.Vibrate, nil))
	b.add(d.Main.AddSubmenu("Layout", layout))
	b.add(d.Main.AddSubmenu("Demos", demos))
	b.add(d.Main.AddSubmenu("Info", info))
	b.add(d.Main.AddAction("Save Cfg", d.save))
	b.add(d.Main.AddAction("Reboot", d.reboot))
	if b.err != nil {
		return b.err
	}
	for _, item := range d.Main.Items() {
		item.SetIcon(icons[item.Label])
	}
	return nil
}

// Attach connects the tree to the engine that renders it and applies the
// stored spring tuning.
func (d *Demo) Attach(e *ui.Engine) {
	d.engine = e
	d.tune(nil)
}

// Root resolves the start page. An empty name is the main page.
func (d *Demo) Root(name string) (*menu.Page, error) {
	if name == "" {
		return d.Main, nil
	}
	p, ok := d.Registry.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("unknown root menu %q", name)
	}
	return p, nil
}

func (d *Demo) tune(*menu.Item) {
	if d.engine == nil {
		return
	}
	live := d.Settings.Live()
	d.engine.Tune(float64(live.Stiffness), float64(live.Damping))
}

func (d *Demo) startTakeover(t ui.Takeover) {
	if d.engine == nil {
		return
	}
	d.engine.StartTakeover(t)
}

func (d *Demo) save(*menu.Item) {
	d.Settings.Save()
	events.App.Settings("save", d.Settings.Saves())
}

// reboot drops unsaved edits, as a power cycle would.
func (d *Demo) reboot(*menu.Item) {
	d.Settings.Revert()
	d.tune(nil)
	events.App.Settings("revert", d.Settings.Saves())
}
