// Package grid defines the cell model the search core reads: coordinates,
// wall/start/end flags, and a fixed-size rectangular Grid that owns them.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and editing.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadSymbol indicates an unknown character in a text grid.
	ErrBadSymbol = errors.New("grid: unknown cell symbol")
	// ErrDuplicateMarker indicates a text grid with more than one start or end.
	ErrDuplicateMarker = errors.New("grid: duplicate start or end marker")
)

// Coord identifies a cell by row and column. It is the identity of a graph
// node: two cells with the same Coord are the same node whatever their flags.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a grid position plus its mutable flags.
// A cell is never a wall and a start/end at the same time.
type Cell struct {
	Coord
	wall  bool
	start bool
	end   bool
}

// NewCell returns a plain cell at (row, col).
func NewCell(row, col int) Cell {
	return Cell{Coord: Coord{Row: row, Col: col}}
}

// IsWall reports whether the cell blocks traversal.
func (c *Cell) IsWall() bool { return c.wall }

// IsStart reports whether the cell is the search origin.
func (c *Cell) IsStart() bool { return c.start }

// IsEnd reports whether the cell is the search target.
func (c *Cell) IsEnd() bool { return c.end }

// SetWall sets the wall flag.
func (c *Cell) SetWall(wall bool) { c.wall = wall }

// SetStart sets the start flag. Marking a cell as start clears its wall flag.
func (c *Cell) SetStart(start bool) {
	c.start = start
	if start {
		c.wall = false
	}
}

// SetEnd sets the end flag. Marking a cell as end clears its wall flag.
func (c *Cell) SetEnd(end bool) {
	c.end = end
	if end {
		c.wall = false
	}
}

// Equal compares cells by coordinate only.
func (c Cell) Equal(o Cell) bool {
	return c.Coord == o.Coord
}

// Grid is a fixed rows×cols collection of cells. Dimensions never change
// after NewGrid; only cell flags are mutated, through the editor methods.
type Grid struct {
	rows, cols int
	cells      [][]Cell
	start      *Cell
	end        *Cell
}
