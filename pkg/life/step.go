package life

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Step computes the next generation of g under rules into a freshly
// allocated grid. g is not modified.
func Step(g *Grid, rules RuleSet) *Grid {
	next := &Grid{rows: g.rows, cols: g.cols, cells: make([]uint8, len(g.cells))}
	stepRows(next, g, rules, 0, g.rows)
	return next
}

// StepInto writes the next generation of src into dst. The two grids must
// be distinct and share dimensions; dst is overwritten entirely.
func StepInto(dst, src *Grid, rules RuleSet) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	stepRows(dst, src, rules, 0, src.rows)
	return nil
}

// StepParallel is StepInto with the rows split into bands that are computed
// by up to workers goroutines. Every band reads only src and writes only its
// own rows of dst, so the result matches StepInto exactly.
func StepParallel(dst, src *Grid, rules RuleSet, workers int) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	if workers > src.rows {
		workers = src.rows
	}
	if workers <= 1 {
		stepRows(dst, src, rules, 0, src.rows)
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	band := (src.rows + workers - 1) / workers
	for start := 0; start < src.rows; start += band {
		end := min(start+band, src.rows)
		g.Go(func() error {
			stepRows(dst, src, rules, start, end)
			return nil
		})
	}
	return g.Wait()
}

func checkBuffers(dst, src *Grid) error {
	if dst == src {
		return fmt.Errorf("life: step source and destination must differ")
	}
	if dst.rows != src.rows || dst.cols != src.cols {
		return fmt.Errorf("%w: destination %dx%d does not match source %dx%d",
			ErrInvalidDimension, dst.rows, dst.cols, src.rows, src.cols)
	}
	return nil
}

// stepRows fills rows [startY, endY) of dst.
func stepRows(dst, src *Grid, rules RuleSet, startY, endY int) {
	w := src.cols
	for y := startY; y < endY; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			alive := src.cells[idx] != 0
			neighbors := src.CountLiveNeighbors(y, x)
			dst.cells[idx] = 0
			if rules.Next(alive, neighbors) {
				dst.cells[idx] = 1
			}
		}
	}
}
