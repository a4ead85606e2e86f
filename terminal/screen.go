// Package terminal runs the grid editor inside a terminal using tcell.
//
// Each cell takes two columns and one line. Cell (row, col) is drawn at
// column row*2 and line col, so the horizontal axis walks rows like the
// pointer mapping does. The status line sits under the grid.
package terminal

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"

	"pathviz/canvas"
	"pathviz/core"
	"pathviz/editor"
)

const (
	cellWidth = 2
	gridRune  = '▕'
	queueSize = 100
)

// Screen is an editor.Sink and editor.Source backed by a tcell screen.
type Screen struct {
	screen tcell.Screen
	geo    editor.Geometry
	events chan tcell.Event
	done   chan struct{}
	pumped chan struct{} // closed when pump returns
	once   sync.Once
}

// New opens the terminal, enables the mouse and starts reading events.
func New(geo editor.Geometry) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(s, geo)
}

// NewWithScreen wraps an existing tcell screen, such as a simulation screen
// in tests. The screen is initialised here.
func NewWithScreen(s tcell.Screen, geo editor.Geometry) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s.EnableMouse()
	s.HideCursor()
	s.Clear()

	t := &Screen{
		screen: s,
		geo:    geo,
		events: make(chan tcell.Event, queueSize),
		done:   make(chan struct{}),
		pumped: make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards tcell events until the screen is closed.
func (t *Screen) pump() {
	defer close(t.pumped)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal and stops the event pump. It is safe to call
// more than once.
func (t *Screen) Close() {
	t.once.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Present draws every cell and the status line.
func (t *Screen) Present(g *core.Grid, st editor.Status) error {
	lineStyle := tcell.StyleDefault.Foreground(rgb(canvas.GridLine))

	g.Each(func(c *core.Cell) {
		bg := rgb(canvas.StateColor(c.State()))
		x, y := c.Row()*cellWidth, c.Col()
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
		t.screen.SetContent(x+1, y, gridRune, nil, lineStyle.Background(bg))
	})

	t.drawStatus(g.Rows(), st.String())
	t.screen.Show()
	return nil
}

func (t *Screen) drawStatus(y int, line string) {
	w, _ := t.screen.Size()
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// Poll returns the events received since the last call without blocking.
func (t *Screen) Poll() []editor.Event {
	var out []editor.Event
	for {
		select {
		case ev := <-t.events:
			if e, ok := t.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (t *Screen) translate(ev tcell.Event) (editor.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return editor.Quit(), true
		case tcell.KeyRune:
			return editor.KeyDown(editor.Key(ev.Rune())), true
		}

	case *tcell.EventMouse:
		var b editor.Button
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			b = editor.ButtonLeft
		case ev.Buttons()&tcell.Button2 != 0:
			b = editor.ButtonRight
		default:
			return editor.Event{}, false
		}
		x, y := t.pointer(ev.Position())
		return editor.PointerDown(b, x, y), true

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return editor.Event{}, false
}

// pointer converts a terminal position to the pixel position of the cell
// drawn there.
func (t *Screen) pointer(tx, ty int) (x, y int) {
	gap := t.geo.Gap()
	if tx < 0 || ty < 0 {
		return -1, -1
	}
	return (tx / cellWidth) * gap, ty * gap
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
