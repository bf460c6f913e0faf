// Package demo holds full-screen takeovers launched from the menu.
package demo

import (
	"image"
	"math"

	"github.com/atomicstack/knobmenu/internal/canvas"
	"github.com/atomicstack/knobmenu/internal/ui"
)

const (
	boxSize    = 14
	boxSpeed   = 70 // px/s along each axis
	boxRadius  = 3
	captionTop = 2
)

// Bounce moves a box around the screen, reflecting off the edges. Any button
// event returns to the menu.
type Bounce struct {
	x, y   float64
	vx, vy float64
	frames int
}

// NewBounce starts the box near the top-left corner moving down and right.
func NewBounce() *Bounce {
	return &Bounce{x: 10, y: 24, vx: boxSpeed, vy: boxSpeed * 0.7}
}

// RunFrame implements ui.Takeover.
func (b *Bounce) RunFrame(s ui.Surface, dt float64) {
	bounds := s.Bounds()
	b.step(bounds, dt)
	b.frames++

	const caption = "Bounce"
	s.DrawText((bounds.Dx()-s.TextWidth(caption))/2, captionTop, caption)
	s.DrawLine(0, 17, bounds.Dx()-1, 17, true)

	x, y := int(math.Round(b.x)), int(math.Round(b.y))
	s.DrawRoundedRect(image.Rect(x, y, x+boxSize, y+boxSize), boxRadius, canvas.Filled)
}

// Position returns the top-left corner of the box.
func (b *Bounce) Position() (x, y float64) {
	return b.x, b.y
}

// Frames returns the number of frames drawn.
func (b *Bounce) Frames() int {
	return b.frames
}

func (b *Bounce) step(bounds image.Rectangle, dt float64) {
	minX, minY := float64(bounds.Min.X), float64(bounds.Min.Y+18)
	maxX, maxY := float64(bounds.Max.X-boxSize), float64(bounds.Max.Y-boxSize)
	b.x += b.vx * dt
	b.y += b.vy * dt
	b.x, b.vx = reflect(b.x, b.vx, minX, maxX)
	b.y, b.vy = reflect(b.y, b.vy, minY, maxY)
}

// reflect folds p back inside [lo, hi] and flips v when it crossed an edge.
func reflect(p, v, lo, hi float64) (float64, float64) {
	if hi <= lo {
		return lo, 0
	}
	if p < lo {
		return lo + (lo - p), math.Abs(v)
	}
	if p > hi {
		return hi - (p - hi), -math.Abs(v)
	}
	return p, v
}
