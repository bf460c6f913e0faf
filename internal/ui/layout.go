package ui

import (
	"fmt"
	"image"

	"github.com/atomicstack/knobmenu/internal/menu"
)

// Geometry describes the screen regions shared by both layouts.
type Geometry struct {
	Width          int
	Height         int
	TitleHeight    int
	RowHeight      int
	Pitch          int
	IconSize       int
	ScrollbarWidth int
}

const (
	defaultTitleHeight    = 20
	defaultRowHeight      = 16
	defaultPitch          = 48
	defaultIconSize       = 32
	defaultScrollbarWidth = 3

	// textInset is the top padding of a 13px glyph cell inside a 16px row.
	textInset = 2
)

// DefaultGeometry sizes the layout regions for the given screen.
func DefaultGeometry(bounds image.Rectangle) Geometry {
	return Geometry{
		Width:          bounds.Dx(),
		Height:         bounds.Dy(),
		TitleHeight:    defaultTitleHeight,
		RowHeight:      defaultRowHeight,
		Pitch:          defaultPitch,
		IconSize:       defaultIconSize,
		ScrollbarWidth: defaultScrollbarWidth,
	}
}

// ViewHeight is the height of the content area below the title bar.
func (g Geometry) ViewHeight() int {
	if v := g.Height - g.TitleHeight; v > 0 {
		return v
	}
	return 0
}

// frame carries the animated state a layout draws from.
type frame struct {
	page           *menu.Page
	editing        bool
	cursor         float64
	scroll         float64
	scrollVelocity float64
	label          float64
}

// layout is a render strategy for a page.
type layout interface {
	// cursorTarget is where the selection highlight should come to rest.
	cursorTarget(p *menu.Page) float64
	// scrollTarget is where the scroll offset should come to rest given the
	// current target.
	scrollTarget(p *menu.Page, current float64) float64
	draw(s Surface, f frame)
}

// fitText trims text from the right until it fits width pixels.
func fitText(s Surface, text string, width int) string {
	if width <= 0 {
		return ""
	}
	if s.TextWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if candidate := string(runes) + "."; s.TextWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}

// valueText formats a Value item, bracketed while being edited.
func valueText(v menu.Value, editing bool) string {
	if v.Value == nil {
		return ""
	}
	if editing {
		return fmt.Sprintf("< %d >", *v.Value)
	}
	return fmt.Sprintf("%d", *v.Value)
}

// captionFor is the single-line description used where there is no room for
// a separate indicator.
func captionFor(item *menu.Item, editing bool) string {
	switch p := item.Payload.(type) {
	case menu.Toggle:
		if *p.Value {
			return item.Label + ": on"
		}
		return item.Label + ": off"
	case menu.Radio:
		if *p.Selected {
			return "(*) " + item.Label
		}
		return "( ) " + item.Label
	case menu.Value:
		return item.Label + " " + valueText(p, editing)
	}
	return item.Label
}
