package core

import "testing"

func TestCellResetIsIdempotent(t *testing.T) {
	marks := map[string]func(*Cell){
		"start":   (*Cell).MarkStart,
		"end":     (*Cell).MarkEnd,
		"barrier": (*Cell).MarkBarrier,
		"open":    (*Cell).MarkOpen,
		"closed":  (*Cell).MarkClosed,
		"path":    (*Cell).MarkPath,
		"none":    func(*Cell) {},
	}

	for name, mark := range marks {
		t.Run(name, func(t *testing.T) {
			c := newCell(1, 1)
			mark(c)
			c.Reset()
			c.Reset()

			if c.State() != Empty {
				t.Errorf("state after reset = %v, want empty", c.State())
			}
			if c.IsBarrier() || c.IsStart() || c.IsEnd() || c.IsOpen() || c.IsClosed() {
				t.Errorf("predicates should all be false after reset, state %v", c.State())
			}
		})
	}
}

func TestCellPredicatesFollowMarks(t *testing.T) {
	c := newCell(0, 0)

	c.MarkStart()
	if !c.IsStart() || c.IsEnd() {
		t.Errorf("MarkStart: got state %v", c.State())
	}
	c.MarkEnd()
	if !c.IsEnd() || c.IsStart() {
		t.Errorf("MarkEnd: got state %v", c.State())
	}
	c.MarkBarrier()
	if !c.IsBarrier() {
		t.Errorf("MarkBarrier: got state %v", c.State())
	}
	c.MarkOpen()
	if !c.IsOpen() || c.IsBarrier() {
		t.Errorf("MarkOpen: got state %v", c.State())
	}
	c.MarkClosed()
	if !c.IsClosed() || c.IsOpen() {
		t.Errorf("MarkClosed: got state %v", c.State())
	}
	c.MarkPath()
	if c.State() != Path || c.IsClosed() {
		t.Errorf("MarkPath: got state %v", c.State())
	}
}

func TestRecomputeNeighborsBounds(t *testing.T) {
	g, err := New(5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Relink()

	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{"top-left corner", 0, 0, 2},
		{"top-right corner", 0, 4, 2},
		{"bottom-left corner", 4, 0, 2},
		{"bottom-right corner", 4, 4, 2},
		{"top edge", 0, 2, 3},
		{"left edge", 2, 0, 3},
		{"right edge", 3, 4, 3},
		{"bottom edge", 4, 1, 3},
		{"interior", 2, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := g.Cell(tt.row, tt.col)
			if got := len(c.Neighbors()); got != tt.want {
				t.Errorf("neighbors of (%d,%d) = %d, want %d", tt.row, tt.col, got, tt.want)
			}
			for _, n := range c.Neighbors() {
				d := Coord{Row: n.Row() - c.Row(), Col: n.Col() - c.Col()}
				if abs(d.Row)+abs(d.Col) != 1 {
					t.Errorf("neighbor %+v is not orthogonally adjacent to %+v", n.Coord(), c.Coord())
				}
			}
		})
	}
}

func TestRecomputeNeighborsOrder(t *testing.T) {
	g, _ := New(3)
	c := g.Cell(1, 1)
	c.RecomputeNeighbors(g)

	want := []Coord{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	got := c.Neighbors()
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Coord() != want[i] {
			t.Errorf("neighbor %d = %+v, want %+v", i, got[i].Coord(), want[i])
		}
	}
}

func TestRecomputeNeighborsExcludesBarriers(t *testing.T) {
	g, err := Parse(`
.#.
#..
...`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	g.Relink()

	if n := g.Cell(0, 0).Neighbors(); len(n) != 0 {
		t.Errorf("corner boxed in by barriers has %d neighbors, want 0", len(n))
	}
	for _, n := range g.Cell(1, 1).Neighbors() {
		if n.IsBarrier() {
			t.Errorf("barrier %+v listed as neighbor", n.Coord())
		}
	}
	if got := len(g.Cell(1, 1).Neighbors()); got != 2 {
		t.Errorf("center has %d neighbors, want 2", got)
	}
}

func TestNeighborsStaleUntilRelink(t *testing.T) {
	g, _ := New(3)
	g.Relink()

	g.Cell(0, 1).MarkBarrier()
	if got := len(g.Cell(0, 0).Neighbors()); got != 2 {
		t.Errorf("before relink: %d neighbors, want stale 2", got)
	}

	g.Relink()
	if got := len(g.Cell(0, 0).Neighbors()); got != 1 {
		t.Errorf("after relink: %d neighbors, want 1", got)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
