package canvas

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"pathviz/core"
)

// ErrInvalidSize is returned when the image is too small for the grid.
var ErrInvalidSize = errors.New("invalid canvas size")

// Render draws g onto a width×width image. Cell (row, col) covers the square
// starting at (row*gap, col*gap), so rows run along the horizontal axis.
func Render(g *core.Grid, width int) (image.Image, error) {
	dc, err := draw(g, width)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders g and writes it to w as PNG.
func EncodePNG(w io.Writer, g *core.Grid, width int) error {
	dc, err := draw(g, width)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG renders g into the PNG file at path.
func SavePNG(path string, g *core.Grid, width int) error {
	dc, err := draw(g, width)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func draw(g *core.Grid, width int) (*gg.Context, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidSize)
	}
	rows := g.Rows()
	if width < rows {
		return nil, fmt.Errorf("%w: width %d for %d rows", ErrInvalidSize, width, rows)
	}
	gap := float64(width / rows)

	dc := gg.NewContext(width, width)
	dc.SetColor(White)
	dc.Clear()

	g.Each(func(c *core.Cell) {
		if c.State() == core.Empty {
			return
		}
		dc.SetColor(StateColor(c.State()))
		dc.DrawRectangle(float64(c.Row())*gap, float64(c.Col())*gap, gap, gap)
		dc.Fill()
	})

	dc.SetColor(GridLine)
	dc.SetLineWidth(1)
	for i := 0; i < rows; i++ {
		p := float64(i) * gap
		dc.DrawLine(0, p, float64(width), p)
		dc.DrawLine(p, 0, p, float64(width))
	}
	dc.Stroke()

	return dc, nil
}
