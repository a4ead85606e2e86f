package pathfinding

import (
	"context"
	"errors"
	"fmt"
	"math"

	"pathviz/core"
)

// ErrInvalidEndpoints is returned when start or end is missing, identical,
// or not owned by the grid being searched.
var ErrInvalidEndpoints = errors.New("invalid search endpoints")

// StepFunc observes search progress. It is called once per expanded cell and
// once per cell marked during path reconstruction.
type StepFunc func()

// Result describes a finished search.
type Result struct {
	Found    bool
	Path     []core.Coord              // start..end inclusive, nil when not found
	Origin   map[core.Coord]core.Coord // predecessor of every reached cell
	Expanded int                       // cells popped from the frontier
}

// Length returns the number of edges on the path.
func (r Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// FindPath runs Search and reports only whether end was reached.
func FindPath(ctx context.Context, g *core.Grid, start, end *core.Cell, onStep StepFunc) (bool, error) {
	res, err := Search(ctx, g, start, end, onStep)
	return res.Found, err
}

// Search runs A* from start to end over the adjacency last computed by
// g.Relink, marking cells Open, Closed and Path as it goes. Every edge costs
// one. Exhausting the frontier is a normal outcome reported as Found=false.
// The only error besides bad endpoints is ctx being done, checked before
// each expansion.
func Search(ctx context.Context, g *core.Grid, start, end *core.Cell, onStep StepFunc) (Result, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return Result{}, err
	}
	if onStep == nil {
		onStep = func() {}
	}

	goal := end.Coord()
	origin := make(map[core.Coord]core.Coord)
	bestCost := map[core.Coord]int{start.Coord(): 0}
	estimatedTotal := map[core.Coord]int{start.Coord(): Manhattan(start.Coord(), goal)}

	open := newFrontier()
	open.push(start, estimatedTotal[start.Coord()])

	res := Result{Origin: origin}
	for open.len() > 0 {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("search interrupted: %w", err)
		}

		current, _ := open.pop()
		res.Expanded++

		if current == end {
			res.Found = true
			res.Path = reconstructPath(g, origin, start, end, onStep)
			end.MarkEnd()
			return res, nil
		}

		tentative := bestCost[current.Coord()] + 1
		for _, neighbor := range current.Neighbors() {
			key := neighbor.Coord()
			if tentative >= costOf(bestCost, key) {
				continue
			}

			origin[key] = current.Coord()
			bestCost[key] = tentative
			estimatedTotal[key] = tentative + Manhattan(key, goal)

			// An enqueued cell keeps its first priority even when its
			// cost improves; origin and bestCost still follow the cheaper route.
			if !open.contains(neighbor) {
				open.push(neighbor, estimatedTotal[key])
				neighbor.MarkOpen()
			}
		}

		onStep()

		if current != start {
			current.MarkClosed()
		}
	}

	return res, nil
}

// reconstructPath walks origin back from end, marking every cell strictly
// between end and start as Path and notifying after each mark.
func reconstructPath(g *core.Grid, origin map[core.Coord]core.Coord, start, end *core.Cell, onStep StepFunc) []core.Coord {
	path := []core.Coord{end.Coord()}
	current := end.Coord()
	for {
		prev, ok := origin[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
		if current == start.Coord() {
			break
		}
		g.At(current).MarkPath()
		onStep()
	}

	// reverse to start..end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func checkEndpoints(g *core.Grid, start, end *core.Cell) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: nil grid", ErrInvalidEndpoints)
	case start == nil || end == nil:
		return fmt.Errorf("%w: start and end are required", ErrInvalidEndpoints)
	case start == end:
		return fmt.Errorf("%w: start equals end at %+v", ErrInvalidEndpoints, start.Coord())
	case g.At(start.Coord()) != start || g.At(end.Coord()) != end:
		return fmt.Errorf("%w: endpoints do not belong to the grid", ErrInvalidEndpoints)
	}
	return nil
}

// costOf treats unknown cells as unreachable.
func costOf(m map[core.Coord]int, c core.Coord) int {
	if v, ok := m[c]; ok {
		return v
	}
	return math.MaxInt
}
