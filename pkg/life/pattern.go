package life

import (
	"bufio"
	"fmt"
	"strings"
)

// Point is a cell offset relative to a pattern's top-left corner.
type Point struct {
	Row, Col int
}

// Pattern is a named set of live cells.
type Pattern struct {
	Name  string
	Cells []Point
}

// ParsePattern reads the plaintext format: 'O' or '*' marks a live cell,
// '.' a dead one, and lines starting with '!' are comments.
func ParsePattern(name, text string) (Pattern, error) {
	p := Pattern{Name: name}
	sc := bufio.NewScanner(strings.NewReader(text))
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, r := range line {
			switch r {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, Point{Row: row, Col: col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("life: pattern %q line %d: unexpected %q", name, row+1, r)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("life: pattern %q: %w", name, err)
	}
	return p, nil
}

// Bounds returns the number of rows and columns the pattern spans.
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}

func mustPattern(name, text string) Pattern {
	p, err := ParsePattern(name, text)
	if err != nil {
		panic(err)
	}
	return p
}

// Built-in patterns.
var (
	Block      = mustPattern("block", "OO\nOO")
	Blinker    = mustPattern("blinker", "OOO")
	Toad       = mustPattern("toad", ".OOO\nOOO.")
	Beacon     = mustPattern("beacon", "OO..\nOO..\n..OO\n..OO")
	Glider     = mustPattern("glider", ".O.\n..O\nOOO")
	LWSS       = mustPattern("lwss", ".O..O\nO....\nO...O\nOOOO.")
	RPentomino = mustPattern("rpentomino", ".OO\nOO.\n.O.")
)

var patterns = map[string]Pattern{
	Block.Name:      Block,
	Blinker.Name:    Blinker,
	Toad.Name:       Toad,
	Beacon.Name:     Beacon,
	Glider.Name:     Glider,
	LWSS.Name:       LWSS,
	RPentomino.Name: RPentomino,
}

// LookupPattern returns a built-in pattern by name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}
