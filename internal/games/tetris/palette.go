package tetris

import (
	"image/color"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

var termColors = [NumColors + 1]core.Color{
	core.ColorCyan,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorGreen,
	core.ColorRed,
	core.ColorBlue,
	core.ColorOrange,
	core.ColorBrightWhite, // Marker
}

var rgbaColors = [NumColors + 1]color.RGBA{
	{0x30, 0xc7, 0xef, 0xff},
	{0xf7, 0xd3, 0x08, 0xff},
	{0xad, 0x4d, 0x9c, 0xff},
	{0x42, 0xb6, 0x42, 0xff},
	{0xef, 0x20, 0x29, 0xff},
	{0x5a, 0x65, 0xad, 0xff},
	{0xef, 0x79, 0x21, 0xff},
	{0xff, 0xff, 0xff, 0xff}, // Marker
}

// Background is the RGBA color of an empty cell.
var Background = color.RGBA{0x14, 0x14, 0x1c, 0xff}

// TermColor returns the terminal color of a cell.
func TermColor(c Cell) core.Color {
	if c < 0 || int(c) >= len(termColors) {
		return core.ColorDefault
	}
	return termColors[c]
}

// RGBA returns the display color of a cell.
func RGBA(c Cell) color.RGBA {
	if c < 0 || int(c) >= len(rgbaColors) {
		return Background
	}
	return rgbaColors[c]
}
