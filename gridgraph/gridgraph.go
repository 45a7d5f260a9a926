package gridgraph

import (
	"github.com/katalvlaran/mazepath/grid"
)

// Build constructs the adjacency mapping of g.
// Every non-wall cell becomes a key, visited in row-major order; its
// neighbour list holds the in-bounds, non-wall cells above, below, left and
// right of it, in that order.
// Complexity: O(R×C) time and memory.
func Build(g *grid.Grid) *Adjacency {
	adj := &Adjacency{
		neighbors: make(map[grid.Coord][]grid.Coord),
		cells:     make(map[grid.Coord]grid.Cell),
	}
	if g == nil {
		return adj
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cur := g.At(r, c)
			if cur.IsWall() {
				continue
			}
			nbrs := make([]grid.Coord, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				if g.At(nr, nc).IsWall() {
					continue
				}
				nbrs = append(nbrs, grid.Coord{Row: nr, Col: nc})
			}
			adj.keys = append(adj.keys, cur.Coord)
			adj.neighbors[cur.Coord] = nbrs
			adj.cells[cur.Coord] = *cur
		}
	}

	return adj
}

// Len returns the number of traversable cells.
func (a *Adjacency) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Has reports whether c is a traversable cell of the mapping.
func (a *Adjacency) Has(c grid.Coord) bool {
	if a == nil {
		return false
	}
	_, ok := a.neighbors[c]
	return ok
}

// Keys returns the traversable cells in row-major order.
func (a *Adjacency) Keys() []grid.Coord {
	if a == nil {
		return nil
	}
	out := make([]grid.Coord, len(a.keys))
	copy(out, a.keys)
	return out
}

// Neighbors returns a copy of c's neighbour list in up, down, left, right
// order, or nil if c is not a key.
func (a *Adjacency) Neighbors(c grid.Coord) []grid.Coord {
	if a == nil {
		return nil
	}
	nbrs, ok := a.neighbors[c]
	if !ok {
		return nil
	}
	out := make([]grid.Coord, len(nbrs))
	copy(out, nbrs)
	return out
}

// Cell returns the flag snapshot of c taken at build time.
func (a *Adjacency) Cell(c grid.Coord) (grid.Cell, bool) {
	if a == nil {
		return grid.Cell{}, false
	}
	cell, ok := a.cells[c]
	return cell, ok
}

// Equal reports whether a and o have the same keys in the same order and
// identical neighbour lists.
func (a *Adjacency) Equal(o *Adjacency) bool {
	if a.Len() != o.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	for i, k := range a.keys {
		if o.keys[i] != k {
			return false
		}
		x, y := a.neighbors[k], o.neighbors[k]
		if len(x) != len(y) {
			return false
		}
		for j := range x {
			if x[j] != y[j] {
				return false
			}
		}
	}
	return true
}
