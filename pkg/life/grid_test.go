package life

import (
	"errors"
	"strings"
	"testing"

	"lifegrid/pkg/core"
)

// gridFrom builds a grid from rows of 'O' (live) and '.' (dead).
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for r, line := range rows {
		if len(line) != g.Cols() {
			t.Fatalf("row %d has %d columns, want %d", r, len(line), g.Cols())
		}
		for c, ch := range line {
			g.Set(r, c, ch == 'O')
		}
	}
	return g
}

func randomGrid(t *testing.T, rows, cols int, seed int64) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	core.NewRNG(seed).FillDensity(g.Cells(), 0.4)
	return g
}

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("dimensions %dx%d, want 3x4", g.Rows(), g.Cols())
	}
	if g.Size() != (core.Size{W: 4, H: 3}) {
		t.Fatalf("Size() = %+v", g.Size())
	}
	if g.Population() != 0 {
		t.Fatalf("population %d, want 0", g.Population())
	}
}

func TestToroidalWrap(t *testing.T) {
	g := randomGrid(t, 5, 7, 3)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			want := g.Alive(r, c)
			for k := -3; k <= 3; k++ {
				if got := g.Alive(r+k*g.Rows(), c+k*g.Cols()); got != want {
					t.Fatalf("Alive(%d,%d) = %v, want %v as at (%d,%d)", r+k*g.Rows(), c+k*g.Cols(), got, want, r, c)
				}
			}
		}
	}
}

func TestSetWrapsCoordinates(t *testing.T) {
	g, _ := NewGrid(4, 4)
	g.Set(-1, -1, true)
	if !g.Alive(3, 3) {
		t.Fatal("Set(-1,-1) should write the bottom-right cell")
	}
	g.Set(4, 9, true)
	if !g.Alive(0, 1) {
		t.Fatal("Set(4,9) should write cell (0,1)")
	}
	if g.Population() != 2 {
		t.Fatalf("population %d, want 2", g.Population())
	}
}

func TestToggle(t *testing.T) {
	g, _ := NewGrid(2, 2)
	if !g.Toggle(0, 1) {
		t.Fatal("first toggle should make the cell live")
	}
	if g.Toggle(2, 3) {
		t.Fatal("toggling the wrapped coordinate should kill the cell again")
	}
}

func TestCountLiveNeighbors(t *testing.T) {
	g := gridFrom(t,
		"O...O",
		".....",
		".....",
		".....",
		"O...O",
	)
	// All four corners touch each other across the wrap.
	if n := g.CountLiveNeighbors(0, 0); n != 3 {
		t.Fatalf("corner neighbours = %d, want 3", n)
	}
	if n := g.CountLiveNeighbors(2, 2); n != 0 {
		t.Fatalf("centre neighbours = %d, want 0", n)
	}

	full := gridFrom(t, "OOO", "OOO", "OOO")
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if n := full.CountLiveNeighbors(r, c); n != 8 {
				t.Fatalf("full grid neighbours at (%d,%d) = %d, want 8", r, c, n)
			}
		}
	}
}

func TestCountLiveNeighborsOnDegenerateGrid(t *testing.T) {
	g, _ := NewGrid(1, 1)
	if n := g.CountLiveNeighbors(0, 0); n != 0 {
		t.Fatalf("dead 1x1 neighbours = %d, want 0", n)
	}
	g.Set(0, 0, true)
	if n := g.CountLiveNeighbors(0, 0); n != 8 {
		t.Fatalf("live 1x1 neighbours = %d, want 8 (every neighbour wraps to itself)", n)
	}
}

func TestNeighborCountBound(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g := randomGrid(t, 6, 9, seed)
		for r := -2; r < g.Rows()+2; r++ {
			for c := -2; c < g.Cols()+2; c++ {
				if n := g.CountLiveNeighbors(r, c); n < 0 || n > MaxNeighbors {
					t.Fatalf("neighbours at (%d,%d) = %d out of [0,8]", r, c, n)
				}
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := gridFrom(t, "O.", ".O")
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal the original")
	}
	c.Set(0, 1, true)
	if g.Alive(0, 1) {
		t.Fatal("mutating the clone changed the original")
	}
	if c.Equal(g) {
		t.Fatal("grids should differ after mutating the clone")
	}
	if g.Equal(nil) {
		t.Fatal("grid should not equal nil")
	}
}

func TestClearAndString(t *testing.T) {
	g := gridFrom(t, "O.O", ".O.")
	if got := g.String(); got != "O.O\n.O.\n" {
		t.Fatalf("String() = %q", got)
	}
	g.Clear()
	if strings.Contains(g.String(), "O") {
		t.Fatal("Clear left live cells")
	}
}
