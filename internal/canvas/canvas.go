package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Sink receives finished frames.
type Sink interface {
	Present(frame *Bitmap) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(frame *Bitmap) error

func (f SinkFunc) Present(frame *Bitmap) error {
	return f(frame)
}

// RectStyle selects how DrawRoundedRect paints.
type RectStyle int

const (
	Outline RectStyle = iota
	Filled
	Inverted
)

// Canvas is a clipped drawing surface over a Bitmap.
type Canvas struct {
	frame   *Bitmap
	face    font.Face
	sink    Sink
	scratch *image.Alpha
	ink     *image.Uniform
}

// New returns a cleared w×h canvas that presents to sink. A nil sink makes
// Present a no-op.
func New(w, h int, sink Sink) *Canvas {
	return &Canvas{
		frame: NewBitmap(image.Rect(0, 0, w, h)),
		face:  basicfont.Face7x13,
		sink:  sink,
		ink:   image.NewUniform(On),
	}
}

// Frame exposes the backing bitmap.
func (c *Canvas) Frame() *Bitmap {
	return c.frame
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.frame.Rect
}

// Clear blanks the frame.
func (c *Canvas) Clear() {
	c.frame.Fill(Off)
}

func (c *Canvas) SetPixel(x, y int, on bool) {
	c.frame.SetBit(x, y, Bit(on))
}

func (c *Canvas) Pixel(x, y int) bool {
	return bool(c.frame.BitAt(x, y))
}

// DrawLine draws a Bresenham line between both end points inclusive.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, on bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.frame.SetBit(x0, y0, Bit(on))
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) FillRect(r image.Rectangle, on bool) {
	r = r.Intersect(c.frame.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.frame.SetBit(x, y, Bit(on))
		}
	}
}

func (c *Canvas) InvertRect(r image.Rectangle) {
	r = r.Intersect(c.frame.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.frame.FlipBit(x, y)
		}
	}
}

// DrawRoundedRect paints r with corners of the given radius.
func (c *Canvas) DrawRoundedRect(r image.Rectangle, radius int, style RectStyle) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	if limit := min(r.Dx(), r.Dy()) / 2; radius > limit {
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}
	inner := image.Rect(r.Min.X+1, r.Min.Y+1, r.Max.X-1, r.Max.Y-1)
	clip := r.Intersect(c.frame.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if !insideRounded(r, radius, x, y) {
				continue
			}
			switch style {
			case Filled:
				c.frame.SetBit(x, y, On)
			case Inverted:
				c.frame.FlipBit(x, y)
			default:
				if inner.Empty() || !insideRounded(inner, max(radius-1, 0), x, y) {
					c.frame.SetBit(x, y, On)
				}
			}
		}
	}
}

func insideRounded(r image.Rectangle, radius, x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(r)) {
		return false
	}
	if radius == 0 {
		return true
	}
	cx := clamp(x, r.Min.X+radius, r.Max.X-1-radius)
	cy := clamp(y, r.Min.Y+radius, r.Max.Y-1-radius)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// DrawBitmap stamps the ink of src with its top-left corner at (x, y), scaled
// by scale using nearest-neighbour sampling. Blank source pixels leave the
// frame untouched.
func (c *Canvas) DrawBitmap(x, y int, src *Bitmap, scale float64) {
	if src == nil || scale <= 0 {
		return
	}
	sb := src.Bounds()
	w := int(math.Round(float64(sb.Dx()) * scale))
	h := int(math.Round(float64(sb.Dy()) * scale))
	if w <= 0 || h <= 0 {
		return
	}
	mask := c.scratchMask(w, h)
	xdraw.NearestNeighbor.Scale(mask, mask.Rect, inkMask{src}, sb, draw.Src, nil)
	dr := image.Rect(x, y, x+w, y+h)
	draw.DrawMask(c.frame, dr, c.ink, image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *Canvas) scratchMask(w, h int) *image.Alpha {
	if c.scratch == nil || c.scratch.Rect.Dx() < w || c.scratch.Rect.Dy() < h {
		c.scratch = image.NewAlpha(image.Rect(0, 0, max(w, 32), max(h, 32)))
	}
	m := c.scratch.SubImage(image.Rect(0, 0, w, h)).(*image.Alpha)
	for i := range c.scratch.Pix {
		c.scratch.Pix[i] = 0
	}
	return m
}

// DrawText draws s with the top of the glyph cell at y.
func (c *Canvas) DrawText(x, y int, s string) {
	d := font.Drawer{
		Dst:  c.frame,
		Src:  c.ink,
		Face: c.face,
		Dot:  fixed.P(x, y+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// TextWidth returns the advance of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

// LineHeight returns the glyph cell height.
func (c *Canvas) LineHeight() int {
	return c.face.Metrics().Height.Ceil()
}

// Snapshot returns a copy of the current frame.
func (c *Canvas) Snapshot() *Bitmap {
	return c.frame.Clone()
}

// Restore replaces the frame with a previous snapshot. A snapshot of another
// size leaves the frame untouched and returns an error.
func (c *Canvas) Restore(b *Bitmap) error {
	return c.frame.CopyFrom(b)
}

// Present hands the frame to the sink.
func (c *Canvas) Present() error {
	if c.sink == nil {
		return nil
	}
	return c.sink.Present(c.frame)
}

// inkMask views a bitmap as an alpha mask so scaling keeps blank pixels
// transparent.
type inkMask struct {
	b *Bitmap
}

func (m inkMask) ColorModel() color.Model { return color.AlphaModel }

func (m inkMask) Bounds() image.Rectangle { return m.b.Rect }

func (m inkMask) At(x, y int) color.Color {
	if m.b.BitAt(x, y) {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
