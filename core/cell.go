package core

// Orthogonal offsets in the order neighbors are discovered: down, up, right, left.
var offsets = [4]Coord{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Cell is a single square of the grid.
type Cell struct {
	row, col  int
	state     State
	neighbors []*Cell
}

func newCell(row, col int) *Cell {
	return &Cell{row: row, col: col}
}

// Coord returns the cell's position. A cell never moves after creation.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.row, Col: c.col}
}

func (c *Cell) Row() int { return c.row }
func (c *Cell) Col() int { return c.col }

// State returns the current traversal tag.
func (c *Cell) State() State {
	return c.state
}

func (c *Cell) IsBarrier() bool { return c.state == Barrier }
func (c *Cell) IsStart() bool   { return c.state == Start }
func (c *Cell) IsEnd() bool     { return c.state == End }
func (c *Cell) IsOpen() bool    { return c.state == Open }
func (c *Cell) IsClosed() bool  { return c.state == Closed }

func (c *Cell) MarkStart()   { c.state = Start }
func (c *Cell) MarkEnd()     { c.state = End }
func (c *Cell) MarkBarrier() { c.state = Barrier }
func (c *Cell) MarkOpen()    { c.state = Open }
func (c *Cell) MarkClosed()  { c.state = Closed }
func (c *Cell) MarkPath()    { c.state = Path }

// Reset returns the cell to Empty.
func (c *Cell) Reset() { c.state = Empty }

// Neighbors returns the adjacency computed by the last RecomputeNeighbors call.
func (c *Cell) Neighbors() []*Cell {
	return c.neighbors
}

// RecomputeNeighbors rebuilds the adjacency list against the current barrier
// layout of g. Only in-bounds, non-barrier orthogonal cells are kept.
func (c *Cell) RecomputeNeighbors(g *Grid) {
	c.neighbors = make([]*Cell, 0, len(offsets))
	for _, d := range offsets {
		n := g.Cell(c.row+d.Row, c.col+d.Col)
		if n == nil || n.IsBarrier() {
			continue
		}
		c.neighbors = append(c.neighbors, n)
	}
}
