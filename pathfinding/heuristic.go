// Package pathfinding provides the A* search used to find shortest routes between grid cells.
package pathfinding

import "pathviz/core"

// Manhattan is the admissible and consistent estimate for unit-cost,
// four-way movement.
func Manhattan(a, b core.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
