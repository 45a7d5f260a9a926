package gridgraph

import "github.com/katalvlaran/mazepath/grid"

// neighborOffsets lists (dRow, dCol) in the order neighbours are reported:
// up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Adjacency maps each non-wall cell to its ordered traversable neighbours.
// It is immutable once returned by Build.
// keys preserves row-major insertion order; cells holds a flag snapshot of
// every key taken at build time.
type Adjacency struct {
	keys      []grid.Coord
	neighbors map[grid.Coord][]grid.Coord
	cells     map[grid.Coord]grid.Cell
}
