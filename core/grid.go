package core

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size square of cells stored row-major. It owns every cell;
// a grid is never resized, callers build a new one instead.
type Grid struct {
	rows  int
	cells [][]*Cell
}

// New creates a rows×rows grid with every cell Empty.
func New(rows int) (*Grid, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidSize, rows)
	}

	cells := make([][]*Cell, rows)
	for i := range cells {
		cells[i] = make([]*Cell, rows)
		for j := range cells[i] {
			cells[i][j] = newCell(i, j)
		}
	}

	return &Grid{rows: rows, cells: cells}, nil
}

// Rows returns the grid dimension.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.rows
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// At returns the cell at c, or nil when out of bounds.
func (g *Grid) At(c Coord) *Cell {
	return g.Cell(c.Row, c.Col)
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for _, row := range g.cells {
		for _, cell := range row {
			fn(cell)
		}
	}
}

// Relink recomputes every cell's neighbors. Painting barriers leaves
// adjacency stale, so this must run before each search.
func (g *Grid) Relink() {
	g.Each(func(c *Cell) {
		c.RecomputeNeighbors(g)
	})
}

// Find returns the cells currently in state s, row-major.
func (g *Grid) Find(s State) []*Cell {
	var found []*Cell
	g.Each(func(c *Cell) {
		if c.state == s {
			found = append(found, c)
		}
	})
	return found
}

// Clear resets the cells selected by match to Empty. A nil match selects
// the search marks (Open, Closed and Path) and leaves the painted layout alone.
func (g *Grid) Clear(match func(*Cell) bool) {
	if match == nil {
		match = IsSearchMark
	}
	g.Each(func(c *Cell) {
		if match(c) {
			c.Reset()
		}
	})
}

// IsSearchMark reports whether c carries a state written by a search.
func IsSearchMark(c *Cell) bool {
	switch c.state {
	case Open, Closed, Path:
		return true
	}
	return false
}

// String renders the grid one row per line using State.Symbol.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.rows + 1))
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.state.Symbol())
		}
	}
	return sb.String()
}

// Parse builds a grid from the ASCII form produced by String. Leading and
// trailing blank lines and surrounding spaces are ignored.
func Parse(layout string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}

	rows := len(lines)
	if rows == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: empty layout", ErrParse)
	}

	g, err := New(rows)
	if err != nil {
		return nil, err
	}

	for i, line := range lines {
		symbols := []rune(line)
		if len(symbols) != rows {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrParse, i+1, len(symbols), rows)
		}
		for j, r := range symbols {
			s, ok := stateForSymbol(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at line %d", ErrParse, r, i+1)
			}
			g.cells[i][j].state = s
		}
	}

	return g, nil
}
