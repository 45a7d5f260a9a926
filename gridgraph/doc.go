// Package gridgraph turns a grid.Grid into the adjacency mapping the search
// strategies consume.
//
// What:
//
//   - Build scans the grid in row-major order and emits one entry per
//     non-wall cell.
//   - Each entry lists the traversable 4-neighbours in the fixed order
//     up, down, left, right. Walls and out-of-bounds positions are skipped.
//   - The mapping is a snapshot: it copies cell flags at build time and is
//     never mutated afterwards, so editing the grid does not affect a search
//     already running on it.
//
// Why:
//
//   - Neighbour order is derived only from grid contents, so two builds of
//     an unchanged grid are identical (see Adjacency.Equal) and every
//     traversal over it is reproducible.
//   - The relation is symmetric: if B is listed under A, A is listed under B.
//
// Complexity:
//
//   - Build: O(R×C) time, O(R×C) memory (at most four neighbours per cell).
//   - Neighbors, Has, Cell: O(1) map lookups; Neighbors copies at most four entries.
//
// Errors:
//
//	Build never fails. A nil grid or an all-wall grid yields an empty mapping.
package gridgraph
