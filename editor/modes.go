package editor

import "fmt"

// Mode represents the current controller mode
type Mode int

const (
	ModeEditing   Mode = iota // Painting start, end and barriers
	ModeSearching             // A search is running
	ModeFinished              // Last search done; edits are accepted as in ModeEditing
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "EDITING"
	case ModeSearching:
		return "SEARCHING"
	case ModeFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// Outcome records how the last search ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeFound
	OutcomeNoPath
)

// Status is the controller state shown next to the grid.
type Status struct {
	Mode       Mode
	HasStart   bool
	HasEnd     bool
	Outcome    Outcome
	Expanded   int
	PathLength int
}

// String formats the status line.
func (s Status) String() string {
	line := s.Mode.String()
	switch {
	case s.Mode == ModeSearching:
		line += " | searching..."
	case s.Outcome == OutcomeFound:
		line += fmt.Sprintf(" | path %d steps, %d expanded", s.PathLength, s.Expanded)
	case s.Outcome == OutcomeNoPath:
		line += fmt.Sprintf(" | no path, %d expanded", s.Expanded)
	case !s.HasStart:
		line += " | left-click: place start"
	case !s.HasEnd:
		line += " | left-click: place end"
	default:
		line += " | space: search"
	}
	return line + " | " + CompactHelp()
}
