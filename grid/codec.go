package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Text symbols used by Parse and String.
const (
	SymbolOpen  = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// Parse reads a text grid, one row per line, using the symbols
// '.' (open), '#' (wall), 'S' (start) and 'E' (end). Blank lines and
// trailing whitespace are ignored.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol, ErrDuplicateMarker,
// or the reader's own error.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	rows, cols := len(lines), len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(line), cols)
		}
	}

	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c := 0; c < cols; c++ {
			switch line[c] {
			case SymbolOpen:
			case SymbolWall:
				g.cells[r][c].SetWall(true)
			case SymbolStart:
				if g.start != nil {
					return nil, fmt.Errorf("%w: second 'S' at (%d,%d)", ErrDuplicateMarker, r, c)
				}
				_ = g.PlaceStart(r, c)
			case SymbolEnd:
				if g.end != nil {
					return nil, fmt.Errorf("%w: second 'E' at (%d,%d)", ErrDuplicateMarker, r, c)
				}
				_ = g.PlaceEnd(r, c)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, line[c], r, c)
			}
		}
	}

	return g, nil
}

// Symbol returns the text symbol for a cell.
// A cell that is both start and end prints as 'S'.
func (c *Cell) Symbol() byte {
	switch {
	case c.start:
		return SymbolStart
	case c.end:
		return SymbolEnd
	case c.wall:
		return SymbolWall
	default:
		return SymbolOpen
	}
}

// String renders the grid in the format accepted by Parse.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteByte(g.cells[r][c].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
