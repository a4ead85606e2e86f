package maze

import "pathviz/core"

// Paint marks every wall of the layout as a barrier on g and returns how many
// cells it marked. Cells beyond the layout are left untouched.
func (l Layout) Paint(g *core.Grid) int {
	n := 0
	g.Each(func(c *core.Cell) {
		if c.Row() < l.Size && c.Col() < l.Size && l.IsWall(c.Row(), c.Col()) {
			c.MarkBarrier()
			n++
		}
	})
	return n
}
