// Package search provides breadth-first and depth-first path search over a
// gridgraph.Adjacency, emitting an ordered stream of visit events and
// returning the start → end path.
//
// What
//
//   - FindPath(strategy, start, end, adj, sink) dispatches to BFS or DFS.
//   - Both strategies report every settled cell except start and end to a
//     VisitSink, in settle order (dequeue for BFS, first pop for DFS).
//   - The path is rebuilt from a coordinate-keyed parent map by Reconstruct.
//
// Why
//
//   - The visit stream lets a consumer animate the search without the
//     search knowing anything about rendering or threads.
//   - BFS yields a path with the minimum number of edges; DFS yields some
//     simple path, usually with a very different exploration shape.
//
// Determinism
//
//	Neighbour lists come from gridgraph in up, down, left, right order and
//	both frontiers honour insertion order, so the visit stream and the path
//	are fully reproducible for a given grid.
//
// Sinks
//
//	A VisitSink is called synchronously: the search makes progress only after
//	the sink returns. Collector gathers events in memory (tests); ChannelSink
//	forwards them over a channel to another goroutine (the solver package).
//
// Results and errors
//
//   - ErrMissingEndpoint   start or end is nil ("nothing was asked").
//   - ErrInvalidEndpoint   start or end is a wall; wraps ErrMissingEndpoint.
//   - ErrUnknownStrategy   strategy value outside {BreadthFirst, DepthFirst}.
//   - empty Path, nil      end unreachable, or the search was interrupted
//     through the context or a sink error. Interruptions never yield a
//     partial path.
//
// Complexity (V = traversable cells, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for BFS, O(E) for DFS (duplicate stack entries)
//
// Usage
//
//	adj := gridgraph.Build(g)
//	var seen search.Collector
//	path, err := search.FindPath(search.BreadthFirst, g.Start(), g.End(), adj, seen.Sink(),
//	    search.WithContext(ctx),
//	    search.WithLogger(logger),
//	)
//	if errors.Is(err, search.ErrMissingEndpoint) {
//	    // ask the user to place start and end
//	}
package search
