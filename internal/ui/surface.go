package ui

import (
	"image"

	"github.com/atomicstack/knobmenu/internal/canvas"
)

// Surface is the 1-bit drawing target the engine renders into. Coordinates
// have their origin at the top left and out of range writes are clipped.
// canvas.Canvas is the standard implementation.
type Surface interface {
	Bounds() image.Rectangle
	Clear()
	SetPixel(x, y int, on bool)
	Pixel(x, y int) bool
	DrawLine(x0, y0, x1, y1 int, on bool)
	FillRect(r image.Rectangle, on bool)
	InvertRect(r image.Rectangle)
	DrawRoundedRect(r image.Rectangle, radius int, style canvas.RectStyle)
	DrawBitmap(x, y int, bmp *canvas.Bitmap, scale float64)
	DrawText(x, y int, s string)
	TextWidth(s string) int
	Snapshot() *canvas.Bitmap
	Restore(b *canvas.Bitmap) error
	Present() error
}

// Takeover replaces menu rendering while active. Any classified button event
// hands control back to the menu.
type Takeover interface {
	RunFrame(s Surface, dt float64)
}

// Appearance holds display preferences. The engine reads it every frame, so
// menu items may bind directly to its fields.
type Appearance struct {
	DarkMode bool
	ShowFPS  bool
}
