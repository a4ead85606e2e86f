package editor

import (
	"errors"
	"fmt"
	"time"

	"pathviz/core"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the startup constants of the controller.
type Config struct {
	Rows          int           // Grid dimension
	Width         int           // Pixel width (and height) of the drawing surface
	StepDelay     time.Duration // Pause after each search frame
	FrameInterval time.Duration // Editing loop tick
	MazeBraiding  float64       // 0 = perfect maze, 1 = no dead ends
	MazeSeed      int64         // 0 = random per generation
}

// DefaultConfig returns the reference 50×50 grid on a 600 pixel surface.
func DefaultConfig() Config {
	return Config{
		Rows:          50,
		Width:         600,
		StepDelay:     2 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		MazeBraiding:  0.1,
	}
}

// Validate checks that the configuration can drive a controller.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	case c.Width < c.Rows:
		return fmt.Errorf("%w: width %d is smaller than %d rows", ErrInvalidConfig, c.Width, c.Rows)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: negative step delay", ErrInvalidConfig)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalidConfig)
	case c.MazeBraiding < 0 || c.MazeBraiding > 1:
		return fmt.Errorf("%w: maze braiding %.2f outside [0,1]", ErrInvalidConfig, c.MazeBraiding)
	}
	return nil
}

// Geometry returns the pixel mapping for this configuration.
func (c Config) Geometry() Geometry {
	return Geometry{Rows: c.Rows, Width: c.Width}
}

// Geometry maps pointer positions onto grid coordinates.
type Geometry struct {
	Rows  int
	Width int
}

// Gap is the pixel size of one cell.
func (g Geometry) Gap() int {
	return g.Width / g.Rows
}

// CoordAt converts a pointer position to a cell coordinate. The horizontal
// axis selects the row and the vertical axis the column, matching how cells
// are drawn at (row*gap, col*gap).
func (g Geometry) CoordAt(x, y int) (core.Coord, bool) {
	gap := g.Gap()
	if gap <= 0 || x < 0 || y < 0 {
		return core.Coord{}, false
	}
	c := core.Coord{Row: x / gap, Col: y / gap}
	if c.Row >= g.Rows || c.Col >= g.Rows {
		return core.Coord{}, false
	}
	return c, true
}

// Origin returns the top-left pixel of the cell at c.
func (g Geometry) Origin(c core.Coord) (x, y int) {
	gap := g.Gap()
	return c.Row * gap, c.Col * gap
}
