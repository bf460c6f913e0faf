package ui

import (
	"image"
	"strconv"

	"github.com/atomicstack/knobmenu/internal/canvas"
)

const titleDecoration = 4

// drawTitle paints the title bar as an opaque band over the content.
func drawTitle(s Surface, g Geometry, title string) {
	s.FillRect(image.Rect(0, 0, g.Width, g.TitleHeight), false)
	text := fitText(s, title, g.Width-4*titleDecoration-8)
	w := s.TextWidth(text)
	x := (g.Width - w) / 2
	s.DrawText(x, 3, text)
	mid := (g.TitleHeight-3)/2 + 1
	left := image.Rect(x-titleDecoration-4, mid-titleDecoration/2, x-4, mid+titleDecoration/2)
	right := image.Rect(x+w+4, mid-titleDecoration/2, x+w+4+titleDecoration, mid+titleDecoration/2)
	s.DrawRoundedRect(left, 0, canvas.Outline)
	s.DrawRoundedRect(right, 0, canvas.Outline)
	s.DrawLine(0, g.TitleHeight-3, g.Width-1, g.TitleHeight-3, true)
	for x := 0; x < g.Width; x += 2 {
		s.SetPixel(x, g.TitleHeight-1, true)
	}
}

// drawFPS prints the frame rate in the top-right corner of the title bar.
func drawFPS(s Surface, g Geometry, fps int) {
	text := strconv.Itoa(fps)
	w := s.TextWidth(text)
	box := image.Rect(g.Width-w-2, 0, g.Width, 16)
	s.FillRect(box, false)
	s.DrawText(g.Width-w-1, 2, text)
}
