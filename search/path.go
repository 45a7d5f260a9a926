package search

import "github.com/katalvlaran/mazepath/grid"

// Reconstruct walks parent links backward from end until it reaches a cell
// with no parent (the start), then reverses the sequence so it reads
// start → end. Callers only invoke it once end has been discovered.
// Complexity: O(L) for a path of L cells.
func Reconstruct(parent map[grid.Coord]grid.Coord, end grid.Coord) Path {
	path := Path{end}
	for cur := end; ; {
		prev, ok := parent[cur]
		// a well-formed parent map has no chain longer than its size
		if !ok || len(path) > len(parent) {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
