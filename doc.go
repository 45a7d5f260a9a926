// Package mazepath is a grid-maze path finder: build an adjacency mapping
// from a rectangular grid of cells and search it breadth-first or
// depth-first, streaming every explored cell as it is settled.
//
// 🚀 What is mazepath?
//
//	A small, deterministic search core with a thin application around it:
//		• Cell model: coordinates + wall/start/end flags, editor operations
//		• Graph builder: up/down/left/right adjacency, walls excluded
//		• Search: BFS (shortest route) and DFS (branch-first), one entry point
//		• Visit stream: synchronous sink callback or back-pressured channel
//		• Solver: background job with cancellation for interactive consumers
//
// ✨ Why mazepath?
//
//   - Reproducible – neighbour order and frontier order are fixed, so the
//     same grid always yields the same events and path
//   - Presentation-free – the core returns plain coordinates; colours and
//     animation belong to the consumer
//   - Clear results – "no start/end" and "no path" are different answers
//
// Packages:
//
//	grid/       — Coord, Cell, Grid, text maze codec
//	gridgraph/  — Build: grid → adjacency mapping
//	search/     — FindPath, BFS, DFS, Reconstruct, sinks
//	solver/     — background Job streaming visits over a channel
//	cmd/mazesolve — CLI: solve and inspect text mazes
//
// Quick ASCII example:
//
//	S . #
//	. . #
//	# . E
//
// BFS explores (1,0) (0,1) (1,1) (2,1) and returns
// (0,0) → (1,0) → (1,1) → (2,1) → (2,2).
package mazepath
