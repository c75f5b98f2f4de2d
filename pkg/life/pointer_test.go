package life

import "testing"

func TestCellFromPointer(t *testing.T) {
	tests := []struct {
		x, y, size int
		row, col   int
	}{
		{0, 0, 10, 0, 0},
		{9, 9, 10, 0, 0},
		{19, 25, 10, 2, 1},
		{100, 0, 10, 0, 10},
		{-1, -1, 10, -1, -1},
		{-10, -11, 10, -2, -1},
		{7, 3, 1, 3, 7},
	}
	for _, tc := range tests {
		row, col := CellFromPointer(tc.x, tc.y, tc.size)
		if row != tc.row || col != tc.col {
			t.Fatalf("CellFromPointer(%d,%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, tc.size, row, col, tc.row, tc.col)
		}
	}
}
