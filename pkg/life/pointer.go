package life

// CellFromPointer maps pixel coordinates to the grid cell under them:
// row = floor(y / cellSize), col = floor(x / cellSize). Negative pixels
// round towards negative infinity so the result still wraps correctly.
// cellSize must be positive.
func CellFromPointer(x, y, cellSize int) (row, col int) {
	return floorDiv(y, cellSize), floorDiv(x, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
