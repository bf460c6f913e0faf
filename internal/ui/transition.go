package ui

import (
	"time"

	"github.com/atomicstack/knobmenu/internal/canvas"
	"github.com/atomicstack/knobmenu/internal/logging/events"
)

// DefaultTransition is the crossfade duration used when none is configured.
const DefaultTransition = 500 * time.Millisecond

// bayer4 is the 4x4 ordered dither matrix.
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Transition crossfades from a captured frame to freshly rendered ones with a
// 4x4 ordered dither.
type Transition struct {
	duration float64
	elapsed  float64
	from     *canvas.Bitmap
}

// NewTransition returns a transition of duration d. A non-positive duration
// disables transitions.
func NewTransition(d time.Duration) *Transition {
	return &Transition{duration: d.Seconds()}
}

// Begin captures what the surface currently shows. Called mid-flight it
// captures the blended frame, so the new fade starts where the old one was.
func (t *Transition) Begin(s Surface, reason string) {
	if t.duration <= 0 {
		return
	}
	retrigger := t.from != nil
	t.from = s.Snapshot()
	t.elapsed = 0
	events.Transition.Begin(reason, retrigger)
}

// Active reports whether a capture is being blended.
func (t *Transition) Active() bool {
	return t.from != nil
}

// Progress returns elapsed/duration in [0, 1].
func (t *Transition) Progress() float64 {
	if t.from == nil || t.duration <= 0 {
		return 1
	}
	p := t.elapsed / t.duration
	if p > 1 {
		return 1
	}
	return p
}

// Apply advances by dt seconds and overwrites the pixels of the rendered
// frame that have not yet faded in with the captured ones.
func (t *Transition) Apply(s Surface, dt float64) {
	if t.from == nil {
		return
	}
	t.elapsed += dt
	p := t.Progress()
	if p >= 1 {
		t.from = nil
		events.Transition.End()
		return
	}
	level := p * 16
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := bayer4[y&3]
		for x := b.Min.X; x < b.Max.X; x++ {
			if float64(row[x&3])+0.5 >= level {
				s.SetPixel(x, y, bool(t.from.BitAt(x, y)))
			}
		}
	}
}
