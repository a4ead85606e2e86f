package editor

import (
	"context"
	"errors"

	"pathviz/maze"
)

// handlePointer paints or erases the cell under the pointer
func (c *Controller) handlePointer(ev Event) {
	coord, ok := c.geo.CoordAt(ev.X, ev.Y)
	if !ok {
		return
	}
	cell := c.grid.At(coord)

	switch ev.Button {
	case ButtonLeft:
		switch {
		case c.start == nil && cell != c.end:
			c.start = cell
			cell.MarkStart()
		case c.end == nil && cell != c.start:
			c.end = cell
			cell.MarkEnd()
		case cell != c.start && cell != c.end:
			cell.MarkBarrier()
		default:
			return
		}

	case ButtonRight:
		cell.Reset()
		if cell == c.start {
			c.start = nil
		} else if cell == c.end {
			c.end = nil
		}

	default:
		return
	}

	// any edit after a search puts the controller back into editing
	if c.mode == ModeFinished {
		c.mode = ModeEditing
		c.status = Status{}
	}
}

// handleKey processes keys in editing and finished modes
func (c *Controller) handleKey(ctx context.Context, key Key) (bool, error) {
	switch key {
	case KeySpace: // Search
		if c.start == nil || c.end == nil {
			return false, nil
		}
		return c.runSearch(ctx)

	case KeyClear: // Fresh grid
		c.log.Info("grid cleared")
		return false, c.reset()

	case KeyMaze: // Fresh grid filled with a maze
		err := c.generateMaze()
		if errors.Is(err, maze.ErrTooSmall) {
			// grid is left as it was
			c.log.Warn("maze skipped", "rows", c.cfg.Rows, "err", err)
			return false, nil
		}
		return false, err
	}

	return false, nil
}
