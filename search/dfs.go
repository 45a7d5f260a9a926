package search

import (
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// DFS finds some simple path from start to end with a LIFO frontier.
// The path is not necessarily the shortest.
//
// A cell is marked visited when popped, not when pushed, so the stack may
// hold duplicates; stale entries are skipped. Neighbours are pushed in
// reverse adjacency order, which makes the first listed neighbour (up, then
// down, left, right) the next one explored. That ordering only shapes the
// visit stream; callers should not depend on it.
//
// Errors and results are those of FindPath.
// Complexity: O(V + E) time, O(E) memory for the stack.
func DFS(start, end *grid.Cell, adj *gridgraph.Adjacency, sink VisitSink, opts ...Option) (Path, error) {
	w, err := newWalker(DepthFirst, start, end, adj, sink, opts)
	if err != nil {
		return nil, err
	}
	return w.run(w.dfs), nil
}

// dfs is the depth-first main loop.
func (w *walker) dfs() (Path, error) {
	stack := make([]grid.Coord, 0, w.adj.Len()+1)
	stack = append(stack, w.start)

	for len(stack) > 0 {
		if err := w.interrupted(); err != nil {
			return nil, err
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[cur] {
			continue
		}
		w.visited[cur] = true

		if err := w.settle(cur); err != nil {
			return nil, err
		}
		if cur == w.end {
			return Reconstruct(w.parent, w.end), nil
		}

		nbrs := w.adj.Neighbors(cur)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nbr := nbrs[i]
			if w.visited[nbr] {
				continue
			}
			w.parent[nbr] = cur
			stack = append(stack, nbr)
		}
	}

	return Path{}, nil
}
