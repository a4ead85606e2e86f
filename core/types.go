// Package core contains the fundamental types used throughout the pathviz grid demonstrator.
package core

import "errors"

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid grid size")

	// ErrParse is returned when an ASCII layout cannot be turned into a grid.
	ErrParse = errors.New("invalid grid layout")
)

// Coord is the stable identity of a cell inside a grid.
type Coord struct {
	Row, Col int
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// State is the traversal tag carried by a cell.
type State int

const (
	Empty   State = iota // Untouched, traversable
	Open                 // Discovered, waiting in the frontier
	Closed               // Expanded by the search
	Barrier              // Excluded from the traversable graph
	Start
	End
	Path // On the reconstructed shortest path
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Barrier:
		return "barrier"
	case Start:
		return "start"
	case End:
		return "end"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Symbol returns the single character used by the ASCII rendering.
func (s State) Symbol() rune {
	switch s {
	case Open:
		return 'o'
	case Closed:
		return 'x'
	case Barrier:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Path:
		return '*'
	default:
		return '.'
	}
}

// stateForSymbol is the inverse of Symbol.
func stateForSymbol(r rune) (State, bool) {
	switch r {
	case '.':
		return Empty, true
	case 'o':
		return Open, true
	case 'x':
		return Closed, true
	case '#':
		return Barrier, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	case '*':
		return Path, true
	}
	return Empty, false
}
