package canvas

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"pathviz/core"
)

func mustParse(t *testing.T, layout string) *core.Grid {
	t.Helper()
	g, err := core.Parse(layout)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

// centre returns the pixel color in the middle of cell (row, col).
func centre(t *testing.T, img interface {
	At(x, y int) color.Color
}, row, col, gap int) color.RGBA {
	t.Helper()
	r, g, b, a := img.At(row*gap+gap/2, col*gap+gap/2).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestStateColor(t *testing.T) {
	tests := []struct {
		state core.State
		want  color.RGBA
	}{
		{core.Empty, White},
		{core.Open, Green},
		{core.Closed, Red},
		{core.Barrier, Black},
		{core.Start, Orange},
		{core.End, Turquoise},
		{core.Path, Purple},
		{core.State(99), White},
	}

	for _, tt := range tests {
		if got := StateColor(tt.state); got != tt.want {
			t.Errorf("StateColor(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestRenderCellColors(t *testing.T) {
	// rows are drawn along x, so S at (0,1) sits at x=0, y=gap
	g := mustParse(t, `
.S.
#ox
*.E`)

	img, err := Render(g, 60)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 60 {
		t.Fatalf("image is %dx%d, want 60x60", b.Dx(), b.Dy())
	}

	g.Each(func(c *core.Cell) {
		got := centre(t, img, c.Row(), c.Col(), 20)
		if want := StateColor(c.State()); got != want {
			t.Errorf("cell %v (%v): pixel %v, want %v", c.Coord(), c.State(), got, want)
		}
	})
}

func TestRenderInvalidSize(t *testing.T) {
	g, err := core.New(10)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Render(g, 5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("got %v, want ErrInvalidSize", err)
	}
	if _, err := Render(nil, 50); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("nil grid: got %v, want ErrInvalidSize", err)
	}
}

func TestEncodeAndSavePNG(t *testing.T) {
	g := mustParse(t, "S.\n.E")

	var buf bytes.Buffer
	if err := EncodePNG(&buf, g, 40); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := centre(t, img, 0, 0, 20); got != Orange {
		t.Errorf("start pixel %v, want %v", got, Orange)
	}

	path := filepath.Join(t.TempDir(), "grid.png")
	if err := SavePNG(path, g, 40); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "grid.png"), g, 40); err == nil {
		t.Error("saving into a missing directory should fail")
	}
}
