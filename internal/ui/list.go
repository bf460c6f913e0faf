package ui

import (
	"image"
	"math"

	"github.com/atomicstack/knobmenu/internal/canvas"
	"github.com/atomicstack/knobmenu/internal/menu"
	"github.com/atomicstack/knobmenu/internal/ui/state"
)

const (
	indicatorSize  = 8
	minThumbLength = 6
	cursorRadius   = 3
)

// listLayout draws one item per row with an edge-following window.
type listLayout struct {
	g Geometry
}

func (l listLayout) cursorTarget(p *menu.Page) float64 {
	return float64(p.Selected * l.g.RowHeight)
}

func (l listLayout) scrollTarget(p *menu.Page, current float64) float64 {
	row := float64(l.g.RowHeight)
	return state.Follow(current, float64(p.Selected)*row, row, float64(l.g.ViewHeight()), float64(p.Len())*row)
}

// contentRight is the x just left of the scrollbar gutter.
func (l listLayout) contentRight() int {
	return l.g.Width - l.g.ScrollbarWidth - 2
}

func (l listLayout) draw(s Surface, f frame) {
	g := l.g
	page := f.page
	if page.Len() == 0 {
		drawEmpty(s, g)
		return
	}
	scroll := int(math.Round(f.scroll))
	right := l.contentRight()
	for i, item := range page.Items() {
		y := g.TitleHeight + i*g.RowHeight - scroll
		if y+g.RowHeight <= g.TitleHeight || y >= g.Height {
			continue
		}
		editing := f.editing && i == page.Selected
		used := l.drawIndicator(s, item, right-2, y, editing)
		s.DrawText(4, y+textInset, fitText(s, item.Label, right-2-used-4-4))
	}
	cy := g.TitleHeight + int(math.Round(f.cursor)) - scroll
	s.DrawRoundedRect(image.Rect(1, cy, right, cy+g.RowHeight), cursorRadius, canvas.Inverted)
	l.drawScrollbar(s, page)
}

// drawIndicator draws the kind marker right-aligned at x and returns the width
// it used.
func (l listLayout) drawIndicator(s Surface, item *menu.Item, x, y int, editing bool) int {
	box := image.Rect(x-indicatorSize, y+4, x, y+4+indicatorSize)
	switch p := item.Payload.(type) {
	case menu.Submenu:
		w := s.TextWidth(">")
		s.DrawText(x-w, y+textInset, ">")
		return w
	case menu.Toggle:
		s.DrawRoundedRect(box, 0, canvas.Outline)
		if *p.Value {
			s.FillRect(box.Inset(2), true)
		}
		return indicatorSize
	case menu.Radio:
		s.DrawRoundedRect(box, indicatorSize/2, canvas.Outline)
		if *p.Selected {
			s.DrawRoundedRect(box.Inset(2), 2, canvas.Filled)
		}
		return indicatorSize
	case menu.Value:
		text := valueText(p, editing)
		w := s.TextWidth(text)
		s.DrawText(x-w, y+textInset, text)
		return w
	}
	return 0
}

func (l listLayout) drawScrollbar(s Surface, page *menu.Page) {
	g := l.g
	x0 := g.Width - g.ScrollbarWidth
	top := g.TitleHeight + 1
	track := g.Height - top - 1
	for y := top; y < top+track; y += 2 {
		s.SetPixel(x0+g.ScrollbarWidth/2, y, true)
	}
	off, length := state.Thumb(page.Selected, page.Len(), track, minThumbLength)
	s.FillRect(image.Rect(x0, top+off, g.Width, top+off+length), true)
}

func drawEmpty(s Surface, g Geometry) {
	const text = "(empty)"
	w := s.TextWidth(text)
	s.DrawText((g.Width-w)/2, g.TitleHeight+(g.ViewHeight()-13)/2, text)
}
