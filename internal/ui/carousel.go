package ui

import (
	"image"
	"math"
	"strings"
	"unicode"

	"github.com/atomicstack/knobmenu/internal/canvas"
	"github.com/atomicstack/knobmenu/internal/menu"
	"github.com/atomicstack/knobmenu/internal/ui/state"
)

const (
	minIconScale   = 0.8
	maxIconScale   = 1.2
	falloffPitches = 1.5
	reticleArm     = 5
	maxReticleGrow = 6
	labelRise      = 10
)

// carouselLayout places items along X at a fixed pitch with the selection
// centred and magnified.
type carouselLayout struct {
	g Geometry
}

func (c carouselLayout) cursorTarget(p *menu.Page) float64 {
	return float64(p.Selected * c.g.Pitch)
}

func (c carouselLayout) scrollTarget(p *menu.Page, _ float64) float64 {
	return float64(p.Selected * c.g.Pitch)
}

// fisheye maps a distance from screen centre to an icon scale. It follows a
// raised cosine from maxIconScale at the centre to minIconScale at the
// falloff distance.
func fisheye(distance, pitch float64) float64 {
	falloff := falloffPitches * pitch
	if falloff <= 0 || distance >= falloff {
		return minIconScale
	}
	t := distance / falloff
	return minIconScale + (maxIconScale-minIconScale)*(0.5+0.5*math.Cos(math.Pi*t))
}

func (c carouselLayout) centre() (x, y float64) {
	g := c.g
	return float64(g.Width) / 2, float64(g.TitleHeight + g.ViewHeight()/2 - 8)
}

func (c carouselLayout) draw(s Surface, f frame) {
	g := c.g
	page := f.page
	if page.Len() == 0 {
		drawEmpty(s, g)
		return
	}
	cx, cy := c.centre()
	for i, item := range page.Items() {
		x := cx + float64(i*g.Pitch) - f.scroll
		size := float64(g.IconSize) * fisheye(math.Abs(x-cx), float64(g.Pitch))
		if x+size/2 < 0 || x-size/2 >= float64(g.Width) {
			continue
		}
		left := int(math.Round(x - size/2))
		top := int(math.Round(cy - size/2))
		if item.Icon != nil && item.Icon.Bounds().Dx() > 0 {
			s.DrawBitmap(left, top, item.Icon, size/float64(item.Icon.Bounds().Dx()))
		} else {
			drawTile(s, item, image.Rect(left, top, left+int(math.Round(size)), top+int(math.Round(size))))
		}
	}
	c.drawReticle(s, f.scrollVelocity)
	c.drawLabel(s, f)
	c.drawProgress(s, page)
}

// drawTile stands in for items without an icon.
func drawTile(s Surface, item *menu.Item, r image.Rectangle) {
	s.DrawRoundedRect(r, 4, canvas.Outline)
	initial := "?"
	if label := strings.TrimSpace(item.Label); label != "" {
		initial = string(unicode.ToUpper([]rune(label)[0]))
	}
	w := s.TextWidth(initial)
	s.DrawText(r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-13)/2, initial)
}

// drawReticle draws corner brackets around the centre slot. They spread
// apart with scroll speed.
func (c carouselLayout) drawReticle(s Surface, velocity float64) {
	cx, cy := c.centre()
	grow := int(math.Min(math.Abs(velocity)/40, maxReticleGrow))
	half := int(float64(c.g.IconSize)*maxIconScale/2) + 3 + grow
	x0, y0 := int(cx)-half, int(cy)-half
	x1, y1 := int(cx)+half, int(cy)+half
	for _, corner := range []struct{ x, y, dx, dy int }{
		{x0, y0, 1, 1},
		{x1, y0, -1, 1},
		{x0, y1, 1, -1},
		{x1, y1, -1, -1},
	} {
		s.DrawLine(corner.x, corner.y, corner.x+corner.dx*reticleArm, corner.y, true)
		s.DrawLine(corner.x, corner.y, corner.x, corner.y+corner.dy*reticleArm, true)
	}
}

// drawLabel renders the selected item's caption rising into place as the
// label spring approaches 1.
func (c carouselLayout) drawLabel(s Surface, f frame) {
	p := math.Max(0, math.Min(1, f.label))
	if p < 0.05 {
		return
	}
	item := f.page.Current()
	if item == nil {
		return
	}
	_, cy := c.centre()
	base := int(cy) + int(float64(c.g.IconSize)*maxIconScale/2) + 4
	y := base + int(math.Round((1-p)*labelRise))
	text := fitText(s, captionFor(item, f.editing), c.g.Width-4)
	s.DrawText((c.g.Width-s.TextWidth(text))/2, y, text)
}

func (c carouselLayout) drawProgress(s Surface, page *menu.Page) {
	g := c.g
	bar := image.Rect(8, g.Height-7, g.Width-8, g.Height-3)
	s.DrawRoundedRect(bar, 0, canvas.Outline)
	inner := bar.Inset(1)
	fill := int(math.Round(float64(inner.Dx()) * state.Progress(page.Selected, page.Len())))
	s.FillRect(image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+fill, inner.Max.Y), true)
}
