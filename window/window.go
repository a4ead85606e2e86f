// Package window runs the grid editor in a desktop window using Ebiten.
//
// Ebiten owns the main goroutine. The controller runs on its own goroutine
// and talks to the window through Present and Poll: Present stores the
// latest frame for Draw, and Update queues input for Poll.
package window

import (
	"context"
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pathviz/canvas"
	"pathviz/core"
	"pathviz/editor"
)

const (
	title        = "A* Path Finding Algorithm"
	statusHeight = 20
	queueSize    = 256
)

// keys lists the keys the editor understands, in the order they are
// reported when pressed in the same frame.
var keys = []struct {
	key ebiten.Key
	to  editor.Key
}{
	{ebiten.KeySpace, editor.KeySpace},
	{ebiten.KeyC, editor.KeyClear},
	{ebiten.KeyG, editor.KeyMaze},
	{ebiten.KeyQ, editor.KeyQuit},
	{ebiten.KeyEscape, editor.KeyEscape},
}

// Window is an ebiten.Game that also serves as the controller's sink and
// source.
type Window struct {
	geo editor.Geometry

	mu     sync.Mutex
	rows   int
	states []core.State // row-major, replaced on every Present
	status string

	events chan editor.Event
	done   chan struct{}
}

// New creates a window for the given geometry.
func New(geo editor.Geometry) *Window {
	return &Window{
		geo:    geo,
		events: make(chan editor.Event, queueSize),
		done:   make(chan struct{}),
	}
}

// Run opens the window and runs fn on a separate goroutine. The window
// closes when fn returns; fn sees a quit event when the user closes the
// window. The error is the one returned by fn.
func (w *Window) Run(ctx context.Context, fn func(context.Context) error) error {
	ebiten.SetWindowSize(w.geo.Width, w.geo.Width+statusHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)

	var runErr error
	go func() {
		defer close(w.done)
		runErr = fn(ctx)
	}()

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	<-w.done
	return runErr
}

// Present stores a copy of the grid for the next Draw.
func (w *Window) Present(g *core.Grid, st editor.Status) error {
	rows := g.Rows()
	states := make([]core.State, rows*rows)
	g.Each(func(c *core.Cell) {
		states[c.Row()*rows+c.Col()] = c.State()
	})

	w.mu.Lock()
	w.rows, w.states, w.status = rows, states, st.String()
	w.mu.Unlock()
	return nil
}

// Poll returns the input queued since the last call.
func (w *Window) Poll() []editor.Event {
	var out []editor.Event
	for {
		select {
		case ev := <-w.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// send queues an event, dropping it when the controller falls behind.
func (w *Window) send(ev editor.Event) {
	select {
	case w.events <- ev:
	default:
	}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() {
		w.send(editor.Quit())
	}

	x, y := ebiten.CursorPosition()
	if ev, ok := pointerEvent(
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		x, y,
	); ok {
		w.send(ev)
	}

	for _, ev := range keyEvents(inpututil.IsKeyJustPressed) {
		w.send(ev)
	}
	return nil
}

// keyEvents returns a key event for every mapped key that pressed reports,
// in the order of keys.
func keyEvents(pressed func(ebiten.Key) bool) []editor.Event {
	var out []editor.Event
	for _, k := range keys {
		if pressed(k.key) {
			out = append(out, editor.KeyDown(k.to))
		}
	}
	return out
}

// pointerEvent reports the held button under the cursor. Left wins when both
// are held.
func pointerEvent(left, right bool, x, y int) (editor.Event, bool) {
	switch {
	case left:
		return editor.PointerDown(editor.ButtonLeft, x, y), true
	case right:
		return editor.PointerDown(editor.ButtonRight, x, y), true
	}
	return editor.Event{}, false
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(canvas.White)

	w.mu.Lock()
	rows, states, status := w.rows, w.states, w.status
	w.mu.Unlock()
	if rows == 0 {
		return
	}

	gap := float32(w.geo.Gap())
	width := float32(w.geo.Width)
	for i, s := range states {
		if s == core.Empty {
			continue
		}
		row, col := i/rows, i%rows
		vector.DrawFilledRect(screen, float32(row)*gap, float32(col)*gap, gap, gap, canvas.StateColor(s), false)
	}
	for i := 0; i < rows; i++ {
		p := float32(i) * gap
		vector.StrokeLine(screen, 0, p, width, p, 1, canvas.GridLine, false)
		vector.StrokeLine(screen, p, 0, p, width, 1, canvas.GridLine, false)
	}

	ebitenutil.DebugPrintAt(screen, status, 4, w.geo.Width+2)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.geo.Width, w.geo.Width + statusHeight
}
