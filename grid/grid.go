package grid

import "fmt"

// NewGrid allocates a rows×cols grid of plain cells.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols}
	g.reset()

	return g, nil
}

// reset reallocates every cell as plain and forgets start/end.
func (g *Grid) reset() {
	g.cells = make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		g.cells[r] = make([]Cell, g.cols)
		for c := 0; c < g.cols; c++ {
			g.cells[r][c] = NewCell(r, c)
		}
	}
	g.start, g.end = nil, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col), or nil when out of bounds.
// The returned pointer stays valid until Clear.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[row][col]
}

// Start returns the start cell, or nil if none is placed.
func (g *Grid) Start() *Cell { return g.start }

// End returns the end cell, or nil if none is placed.
func (g *Grid) End() *Cell { return g.end }

// PlaceStart moves the start marker to (row, col), clearing the previous
// start and the target's wall flag.
func (g *Grid) PlaceStart(row, col int) error {
	cell, err := g.cellAt(row, col)
	if err != nil {
		return err
	}
	if g.start != nil {
		g.start.SetStart(false)
	}
	cell.SetStart(true)
	g.start = cell

	return nil
}

// PlaceEnd moves the end marker to (row, col), clearing the previous end
// and the target's wall flag.
func (g *Grid) PlaceEnd(row, col int) error {
	cell, err := g.cellAt(row, col)
	if err != nil {
		return err
	}
	if g.end != nil {
		g.end.SetEnd(false)
	}
	cell.SetEnd(true)
	g.end = cell

	return nil
}

// ToggleWall flips the wall flag at (row, col). Start and end cells are
// left untouched.
func (g *Grid) ToggleWall(row, col int) error {
	cell, err := g.cellAt(row, col)
	if err != nil {
		return err
	}
	if cell.IsStart() || cell.IsEnd() {
		return nil
	}
	cell.SetWall(!cell.IsWall())

	return nil
}

// Clear resets every cell to plain and removes the start and end markers.
func (g *Grid) Clear() {
	g.reset()
}

func (g *Grid) cellAt(row, col int) (*Cell, error) {
	cell := g.At(row, col)
	if cell == nil {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return cell, nil
}
