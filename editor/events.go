package editor

import "pathviz/core"

// EventKind classifies input delivered by a Source.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPointerDown
	EventKeyDown
)

// Button identifies the pointer button of an EventPointerDown.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Key is the logical key of an EventKeyDown. Printable keys use their rune.
type Key rune

const (
	KeySpace  Key = ' '
	KeyClear  Key = 'c'
	KeyMaze   Key = 'g'
	KeyQuit   Key = 'q'
	KeyEscape Key = 0x1b
)

// Event is a single input signal. X and Y are pointer positions in the
// frontend's pixel space; they are only meaningful for EventPointerDown.
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   int
	Key    Key
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// PointerDown returns a pointer event at (x, y).
func PointerDown(b Button, x, y int) Event {
	return Event{Kind: EventPointerDown, Button: b, X: x, Y: y}
}

// KeyDown returns a key event.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// IsQuit reports whether ev asks the program to stop.
func (ev Event) IsQuit() bool {
	if ev.Kind == EventQuit {
		return true
	}
	return ev.Kind == EventKeyDown && (ev.Key == KeyQuit || ev.Key == KeyEscape)
}

// Sink presents frames. It is called once per loop tick and once per
// search step, so it must return promptly.
type Sink interface {
	Present(g *core.Grid, st Status) error
}

// Source yields the input gathered since the previous call. It never blocks.
type Source interface {
	Poll() []Event
}

// Cue is notified when a search finishes.
type Cue interface {
	SearchFinished(found bool)
}
