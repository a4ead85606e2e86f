package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"pathviz/core"
	"pathviz/editor"
)

func TestPresentSnapshotsGrid(t *testing.T) {
	w := New(editor.Geometry{Rows: 3, Width: 60})
	g, err := core.Parse(`
S.#
.o.
x.E`)
	if err != nil {
		t.Fatal(err)
	}

	st := editor.Status{Mode: editor.ModeEditing, HasStart: true, HasEnd: true}
	if err := w.Present(g, st); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	// later edits must not leak into the stored frame
	g.Cell(1, 1).MarkClosed()

	if w.rows != 3 {
		t.Fatalf("rows = %d, want 3", w.rows)
	}
	want := []core.State{
		core.Start, core.Empty, core.Barrier,
		core.Empty, core.Open, core.Empty,
		core.Closed, core.Empty, core.End,
	}
	for i, s := range want {
		if w.states[i] != s {
			t.Errorf("states[%d] = %v, want %v", i, w.states[i], s)
		}
	}
	if w.status != st.String() {
		t.Errorf("status = %q", w.status)
	}
}

func TestPollDrainsQueue(t *testing.T) {
	w := New(editor.Geometry{Rows: 3, Width: 60})
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("fresh window has %d events", len(got))
	}

	w.send(editor.KeyDown(editor.KeySpace))
	w.send(editor.Quit())
	got := w.Poll()
	if len(got) != 2 || got[0] != editor.KeyDown(editor.KeySpace) || !got[1].IsQuit() {
		t.Errorf("Poll = %+v", got)
	}
	if len(w.Poll()) != 0 {
		t.Error("queue should be empty after Poll")
	}
}

func TestSendDropsWhenFull(t *testing.T) {
	w := New(editor.Geometry{Rows: 3, Width: 60})
	for i := 0; i < queueSize+10; i++ {
		w.send(editor.KeyDown(editor.KeyClear))
	}
	if got := len(w.Poll()); got != queueSize {
		t.Errorf("queued %d events, want %d", got, queueSize)
	}
}

func TestPointerEvent(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        editor.Button
		ok          bool
	}{
		{"none", false, false, editor.ButtonNone, false},
		{"left", true, false, editor.ButtonLeft, true},
		{"right", false, true, editor.ButtonRight, true},
		{"both", true, true, editor.ButtonLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := pointerEvent(tt.left, tt.right, 13, 27)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (ev.Button != tt.want || ev.X != 13 || ev.Y != 27) {
				t.Errorf("event = %+v", ev)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	w := New(editor.Geometry{Rows: 50, Width: 600})
	if lw, lh := w.Layout(0, 0); lw != 600 || lh != 600+statusHeight {
		t.Errorf("Layout = %dx%d", lw, lh)
	}
}

func TestKeyEventsOrder(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyQ: true, ebiten.KeyG: true, ebiten.KeySpace: true, ebiten.KeyA: true}
	pressed := func(k ebiten.Key) bool { return held[k] }

	want := []editor.Event{
		editor.KeyDown(editor.KeySpace),
		editor.KeyDown(editor.KeyMaze),
		editor.KeyDown(editor.KeyQuit),
	}
	for i := 0; i < 20; i++ {
		got := keyEvents(pressed)
		if len(got) != len(want) {
			t.Fatalf("keyEvents = %+v, want %+v", got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("keyEvents[%d] = %+v, want %+v", j, got[j], want[j])
			}
		}
	}
}
