package canvas

import (
	"image/color"

	"pathviz/core"
)

// Palette colors shared by every frontend.
var (
	White     = color.RGBA{255, 255, 255, 255}
	Green     = color.RGBA{0, 255, 0, 255}
	Red       = color.RGBA{255, 0, 0, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	Orange    = color.RGBA{255, 165, 0, 255}
	Turquoise = color.RGBA{64, 224, 208, 255}
	Purple    = color.RGBA{128, 0, 128, 255}
	Grey      = color.RGBA{128, 128, 128, 255}
)

// GridLine is the color of the lines separating cells.
var GridLine = Grey

// StateColor returns the fill color of a cell state. Unknown states are
// drawn like empty cells.
func StateColor(s core.State) color.RGBA {
	switch s {
	case core.Open:
		return Green
	case core.Closed:
		return Red
	case core.Barrier:
		return Black
	case core.Start:
		return Orange
	case core.End:
		return Turquoise
	case core.Path:
		return Purple
	default:
		return White
	}
}
