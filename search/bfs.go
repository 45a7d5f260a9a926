package search

import (
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// BFS finds a minimum-edge path from start to end with a FIFO frontier.
//
// Steps:
//  1. Seed the queue and the visited set with start.
//  2. Dequeue a cell; report it to sink unless it is start or end.
//  3. Stop and reconstruct once the dequeued cell is end.
//  4. Otherwise mark each unvisited neighbour visited, record its parent and
//     enqueue it, in adjacency order.
//  5. Check the context once per dequeue.
//
// Errors and results are those of FindPath.
// Complexity: O(V + E) time, O(V) memory.
func BFS(start, end *grid.Cell, adj *gridgraph.Adjacency, sink VisitSink, opts ...Option) (Path, error) {
	w, err := newWalker(BreadthFirst, start, end, adj, sink, opts)
	if err != nil {
		return nil, err
	}
	return w.run(w.bfs), nil
}

// bfs is the breadth-first main loop.
func (w *walker) bfs() (Path, error) {
	queue := make([]grid.Coord, 0, w.adj.Len()+1)
	queue = append(queue, w.start)
	w.visited[w.start] = true

	for len(queue) > 0 {
		if err := w.interrupted(); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]
		if err := w.settle(cur); err != nil {
			return nil, err
		}
		if cur == w.end {
			return Reconstruct(w.parent, w.end), nil
		}

		for _, nbr := range w.adj.Neighbors(cur) {
			if w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			w.parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return Path{}, nil
}
