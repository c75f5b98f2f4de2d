package life

import (
	"fmt"
	"slices"

	"lifegrid/pkg/core"
)

// Grid is a fixed-size toroidal matrix of binary cells stored in row-major
// order. Every coordinate wraps, so there are no edges and no out-of-range
// accesses.
type Grid struct {
	rows, cols int
	cells      []uint8
}

// NewGrid allocates an all-dead grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions with W as columns and H as rows.
func (g *Grid) Size() core.Size { return core.Size{W: g.cols, H: g.rows} }

// Cells exposes the backing slice, 1 for live and 0 for dead.
func (g *Grid) Cells() []uint8 { return g.cells }

// Wrap maps any coordinate onto the torus.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

func (g *Grid) index(row, col int) int {
	row, col = g.Wrap(row, col)
	return row*g.cols + col
}

// Alive reports the state of the cell at the wrapped coordinate.
func (g *Grid) Alive(row, col int) bool {
	return g.cells[g.index(row, col)] != 0
}

// Set writes the state of the cell at the wrapped coordinate.
func (g *Grid) Set(row, col int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	g.cells[g.index(row, col)] = v
}

// Toggle flips the cell at the wrapped coordinate and returns its new state.
func (g *Grid) Toggle(row, col int) bool {
	i := g.index(row, col)
	g.cells[i] ^= 1
	return g.cells[i] != 0
}

// CountLiveNeighbors sums the eight wrapped Moore neighbours of a cell, not
// counting the cell itself. On grids narrower than three cells a neighbour
// may be visited more than once, or be the cell itself, exactly as the
// wrapping dictates.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	row, col = g.Wrap(row, col)
	up := (row - 1 + g.rows) % g.rows
	down := (row + 1) % g.rows
	left := (col - 1 + g.cols) % g.cols
	right := (col + 1) % g.cols

	c := g.cells
	w := g.cols
	return int(c[up*w+left]) + int(c[up*w+col]) + int(c[up*w+right]) +
		int(c[row*w+left]) + int(c[row*w+right]) +
		int(c[down*w+left]) + int(c[down*w+col]) + int(c[down*w+right])
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: slices.Clone(g.cells)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.rows == other.rows && g.cols == other.cols && slices.Equal(g.cells, other.cells)
}

// String renders the grid with 'O' for live and '.' for dead cells.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for _, c := range g.cells[r*g.cols : (r+1)*g.cols] {
			if c != 0 {
				buf = append(buf, 'O')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
