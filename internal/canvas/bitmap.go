// Package canvas provides the 1-bit frame buffer and drawing surface used by
// the menu renderer.
//
// Bitmap stores pixels packed eight to a byte, least significant bit first,
// which is the line format the Sharp memory LCD expects. A set bit is ink.
package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Bit is a 1-bit colour. On is ink (dark on a reflective panel).
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA implements color.Color.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0, 0, 0, 0xFFFF
	}
	return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
}

func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return Off
	}
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y < 0x8000)
}

// BitModel converts colours to Bit by luminance threshold. Mostly transparent
// colours map to Off.
var BitModel = color.ModelFunc(toBit)

// Bitmap is a packed 1-bit image.
type Bitmap struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewBitmap allocates a cleared bitmap.
func NewBitmap(r image.Rectangle) *Bitmap {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Bitmap{Rect: r}
	}
	stride := (w + 7) / 8
	return &Bitmap{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ParseBitmap builds a bitmap from rows of text where '#' or 'X' marks ink.
// Rows shorter than the widest row are padded with blank pixels.
func ParseBitmap(rows ...string) *Bitmap {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	b := NewBitmap(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		for x, ch := range []byte(row) {
			if ch == '#' || ch == 'X' {
				b.SetBit(x, y, On)
			}
		}
	}
	return b
}

func (b *Bitmap) ColorModel() color.Model {
	return BitModel
}

func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

func (b *Bitmap) At(x, y int) color.Color {
	return b.BitAt(x, y)
}

// BitAt returns the pixel at (x, y). Pixels outside the bounds are Off.
func (b *Bitmap) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return Off
	}
	offset, mask := b.pixOffset(x, y)
	return b.Pix[offset]&mask != 0
}

func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit writes one pixel. Out of range coordinates are ignored.
func (b *Bitmap) SetBit(x, y int, c Bit) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	offset, mask := b.pixOffset(x, y)
	if c {
		b.Pix[offset] |= mask
	} else {
		b.Pix[offset] &^= mask
	}
}

// FlipBit inverts one pixel.
func (b *Bitmap) FlipBit(x, y int) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	offset, mask := b.pixOffset(x, y)
	b.Pix[offset] ^= mask
}

// Row returns the packed bytes of line y relative to the top of the bitmap.
func (b *Bitmap) Row(y int) []byte {
	start := y * b.Stride
	return b.Pix[start : start+b.Stride]
}

// Fill sets every pixel to c.
func (b *Bitmap) Fill(c Bit) {
	v := byte(0)
	if c {
		v = 0xFF
	}
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Invert flips every pixel.
func (b *Bitmap) Invert() {
	for i := range b.Pix {
		b.Pix[i] = ^b.Pix[i]
	}
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{Stride: b.Stride, Rect: b.Rect, Pix: make([]byte, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// CopyFrom overwrites b with src. Both must share the same geometry.
func (b *Bitmap) CopyFrom(src *Bitmap) error {
	if src == nil || src.Rect != b.Rect || len(src.Pix) != len(b.Pix) {
		return fmt.Errorf("canvas: bitmap geometry mismatch")
	}
	copy(b.Pix, src.Pix)
	return nil
}

// Equal reports whether both bitmaps hold the same pixels. Padding bits in the
// final byte of each row are ignored.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if o == nil || b.Rect != o.Rect {
		return false
	}
	if b.Rect.Dx()%8 == 0 {
		return bytes.Equal(b.Pix, o.Pix)
	}
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			if b.BitAt(x, y) != o.BitAt(x, y) {
				return false
			}
		}
	}
	return true
}

// Count returns the number of ink pixels inside r.
func (b *Bitmap) Count(r image.Rectangle) int {
	r = r.Intersect(b.Rect)
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if b.BitAt(x, y) {
				n++
			}
		}
	}
	return n
}

// String renders the bitmap as rows of '#' and '.'.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			if b.BitAt(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// pixOffset returns the byte offset and bit mask for (x, y). Bit 0 of each
// byte holds the leftmost pixel.
func (b *Bitmap) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - b.Rect.Min.X
	offset = (y-b.Rect.Min.Y)*b.Stride + dx/8
	mask = 1 << uint(dx&7)
	return
}
