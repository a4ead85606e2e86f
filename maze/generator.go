// Package maze generates barrier layouts for the grid editor.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Cell types
const (
	Wall    = true
	Passage = false
)

// ErrTooSmall is returned for layouts that cannot hold a single corridor.
var ErrTooSmall = errors.New("maze too small")

// Point addresses a layout cell by row and column.
type Point struct {
	Row, Col int
}

type Config struct {
	Size int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends).
	// Higher values open loops between corridors.
	Braiding float64

	Seed int64 // Optional (0 = Random)
}

// Layout is a Size×Size wall map, row-major.
type Layout struct {
	Size       int
	Walls      [][]bool
	Start, End Point // Suggested endpoints, both on passages
}

// IsWall reports whether (row, col) is a wall. Out-of-range cells are walls.
func (l Layout) IsWall(row, col int) bool {
	if row < 0 || row >= l.Size || col < 0 || col >= l.Size {
		return true
	}
	return l.Walls[row][col]
}

// Generate carves a maze with a recursive backtracker, then optionally
// braids dead ends into loops. Even sizes carve the largest odd square and
// leave the last row and column as wall.
func Generate(cfg Config) (Layout, error) {
	if cfg.Size < 3 {
		return Layout{}, fmt.Errorf("%w: size %d", ErrTooSmall, cfg.Size)
	}

	walls := make([][]bool, cfg.Size)
	for i := range walls {
		walls[i] = make([]bool, cfg.Size)
		for j := range walls[i] {
			walls[i][j] = Wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	carved := ensureOdd(cfg.Size)
	start := Point{1, 1}
	end := Point{carved - 2, carved - 2}

	recursiveBacktracker(walls, carved, start, rng)
	if cfg.Braiding > 0 {
		braid(walls, carved, cfg.Braiding, rng)
	}

	return Layout{Size: cfg.Size, Walls: walls, Start: start, End: end}, nil
}

// --- Core Algorithms ---

var (
	jumps = []Point{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	steps = []Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// recursiveBacktracker carves a uniform spanning tree over the odd cells of
// the top-left carved×carved square.
func recursiveBacktracker(walls [][]bool, carved int, start Point, rng *rand.Rand) {
	stack := []Point{start}
	walls[start.Row][start.Col] = Passage

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range jumps {
			r, c := curr.Row+d.Row, curr.Col+d.Col
			// leave a one cell border of wall
			if r > 0 && r < carved-1 && c > 0 && c < carved-1 && walls[r][c] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		walls[curr.Row+d.Row/2][curr.Col+d.Col/2] = Passage
		next := Point{curr.Row + d.Row, curr.Col + d.Col}
		walls[next.Row][next.Col] = Passage
		stack = append(stack, next)
	}
}

// braid knocks through one wall of each dead end with the given probability.
func braid(walls [][]bool, carved int, probability float64, rng *rand.Rand) {
	for r := 1; r < carved-1; r += 2 {
		for c := 1; c < carved-1; c += 2 {
			exits := 0
			for _, d := range steps {
				if walls[r+d.Row][c+d.Col] == Passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 3)
			for _, d := range jumps {
				nr, nc := r+d.Row, c+d.Col
				wr, wc := r+d.Row/2, c+d.Col/2
				if nr > 0 && nr < carved-1 && nc > 0 && nc < carved-1 && walls[wr][wc] == Wall {
					candidates = append(candidates, Point{wr, wc})
				}
			}
			if len(candidates) > 0 {
				p := candidates[rng.Intn(len(candidates))]
				walls[p.Row][p.Col] = Passage
			}
		}
	}
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n%2 == 0 {
		return n - 1 // Round down to stay within bounds
	}
	return n
}
