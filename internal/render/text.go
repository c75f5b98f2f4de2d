package render

import (
	"bufio"
	"io"

	"lifegrid/pkg/core"
)

// TextRenderer writes snapshots as text, one line per row, followed by a
// blank separator line.
type TextRenderer struct {
	w    io.Writer
	Live byte
	Dead byte
}

// NewTextRenderer returns a renderer using 'O' for live and '.' for dead cells.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w, Live: 'O', Dead: '.'}
}

// Render implements core.Renderer.
func (r *TextRenderer) Render(s core.Snapshot) error {
	bw := bufio.NewWriter(r.w)
	cells := s.Cells()
	cols := s.Cols()
	for row := 0; row < s.Rows(); row++ {
		for _, c := range cells[row*cols : (row+1)*cols] {
			ch := r.Dead
			if c != 0 {
				ch = r.Live
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
