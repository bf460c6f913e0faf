package app

import "github.com/atomicstack/knobmenu/internal/canvas"

// Carousel icons, drawn on an 8x8 grid and scaled up by the layout.
var icons = map[string]*canvas.Bitmap{
	"Display": canvas.ParseBitmap(
		"########",
		"#......#",
		"#.####.#",
		"#.####.#",
		"#......#",
		"########",
		"...##...",
		"..####..",
	),
	"Damping": canvas.ParseBitmap(
		"...##...",
		"...##...",
		"########",
		"#......#",
		".#....#.",
		"..#..#..",
		"..#..#..",
		"..####..",
	),
	"Theme": canvas.ParseBitmap(
		"..####..",
		".#..###.",
		"#...####",
		"#...####",
		"#...####",
		"#...####",
		".#..###.",
		"..####..",
	),
	"Sound": canvas.ParseBitmap(
		"....#...",
		"...##.#.",
		"####...#",
		"####.#.#",
		"####.#.#",
		"####...#",
		"...##.#.",
		"....#...",
	),
	"Vibrate": canvas.ParseBitmap(
		"..####..",
		"..#..#..",
		"#.#..#.#",
		"#.#..#.#",
		"#.#..#.#",
		"#.#..#.#",
		"..#..#..",
		"..####..",
	),
	"Layout": canvas.ParseBitmap(
		"########",
		"#..#...#",
		"#..#...#",
		"####...#",
		"#..#...#",
		"#..#####",
		"#..#...#",
		"########",
	),
	"Demos": canvas.ParseBitmap(
		"........",
		".##.....",
		".####...",
		".######.",
		".######.",
		".####...",
		".##.....",
		"........",
	),
	"Info": canvas.ParseBitmap(
		"..####..",
		".#.##.#.",
		"#......#",
		"#..##..#",
		"#..##..#",
		"#..##..#",
		".#.##.#.",
		"..####..",
	),
	"Save Cfg": canvas.ParseBitmap(
		"#######.",
		"#.###.##",
		"#.###..#",
		"#......#",
		"#.####.#",
		"#.#..#.#",
		"#.####.#",
		"########",
	),
	"Reboot": canvas.ParseBitmap(
		"...#....",
		".#.#.#..",
		"#..#..#.",
		"#..#..#.",
		"#.....#.",
		"#.....#.",
		".#...#..",
		"..###...",
	),
}
