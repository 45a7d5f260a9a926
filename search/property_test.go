package search_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

// randomMaze builds an r×c grid with walls at the given density and random
// start and end cells.
func randomMaze(t testing.TB, rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(rows, cols)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				require.NoError(t, g.ToggleWall(r, c))
			}
		}
	}
	require.NoError(t, g.PlaceStart(rng.Intn(rows), rng.Intn(cols)))
	require.NoError(t, g.PlaceEnd(rng.Intn(rows), rng.Intn(cols)))
	return g
}

// shortestEdges computes the unweighted distance from src to dst by
// Bellman-Ford style relaxation, independent of any queue order.
// Returns -1 if dst is unreachable.
func shortestEdges(adj *gridgraph.Adjacency, src, dst grid.Coord) int {
	dist := map[grid.Coord]int{src: 0}
	for changed := true; changed; {
		changed = false
		for _, k := range adj.Keys() {
			dk, ok := dist[k]
			if !ok {
				continue
			}
			for _, n := range adj.Neighbors(k) {
				if dn, seen := dist[n]; !seen || dk+1 < dn {
					dist[n] = dk + 1
					changed = true
				}
			}
		}
	}
	if d, ok := dist[dst]; ok {
		return d
	}
	return -1
}

// TestProperties checks BFS optimality, wall avoidance and path continuity
// for both strategies on many random mazes.
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 200; i++ {
		g := randomMaze(t, rng, 1+rng.Intn(9), 1+rng.Intn(9), 0.3)
		adj := gridgraph.Build(g)
		start, end := g.Start(), g.End()
		want := shortestEdges(adj, start.Coord, end.Coord)

		for _, st := range strategies {
			var seen search.Collector
			path, err := search.FindPath(st, start, end, adj, seen.Sink())
			require.NoError(t, err)

			// reachability agrees with the independent distance
			require.Equal(t, want < 0, path.Empty(), "maze %d %s:\n%s", i, st, g)

			// no wall is ever visited or on the path
			for _, c := range seen.Coords() {
				require.False(t, g.At(c.Row, c.Col).IsWall(), "%s visited wall %v", st, c)
				require.NotEqual(t, start.Coord, c, "start reported as visited")
				require.NotEqual(t, end.Coord, c, "end reported as visited")
			}
			for _, c := range path {
				require.False(t, g.At(c.Row, c.Col).IsWall(), "%s path through wall %v", st, c)
			}

			// each cell visited at most once
			uniq := make(map[grid.Coord]bool, seen.Len())
			for _, c := range seen.Coords() {
				require.False(t, uniq[c], "%s visited %v twice", st, c)
				uniq[c] = true
			}

			if path.Empty() {
				continue
			}
			require.Equal(t, start.Coord, path[0])
			require.Equal(t, end.Coord, path[len(path)-1])
			onPath := make(map[grid.Coord]bool, len(path))
			for j, c := range path {
				require.False(t, onPath[c], "%s path is not simple at %v", st, c)
				onPath[c] = true
				if j > 0 {
					require.Contains(t, adj.Neighbors(path[j-1]), c, "%s path broken between %v and %v", st, path[j-1], c)
				}
			}

			if st == search.BreadthFirst {
				require.Equal(t, want, path.Len(), "BFS path not minimal on maze %d:\n%s", i, g)
			} else {
				require.GreaterOrEqual(t, path.Len(), want)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// ChannelSink Tests
//----------------------------------------------------------------------------//

// TestChannelSink_Ordered streams visits to another goroutine and checks
// they arrive in the same order a Collector sees.
func TestChannelSink_Ordered(t *testing.T) {
	g := mustParse(t, "S...\n.##.\n...E\n")
	adj := gridgraph.Build(g)

	var want search.Collector
	_, err := search.BFS(g.Start(), g.End(), adj, want.Sink())
	require.NoError(t, err)

	ch := make(chan grid.Coord)
	var got []grid.Coord
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for c := range ch {
			got = append(got, c)
		}
	}()

	path, err := search.BFS(g.Start(), g.End(), adj, search.ChannelSink(context.Background(), ch))
	close(ch)
	wg.Wait()

	require.NoError(t, err)
	assert.False(t, path.Empty())
	assert.Equal(t, want.Coords(), got)
}

// TestChannelSink_ConsumerGone interrupts the search when nobody receives.
func TestChannelSink_ConsumerGone(t *testing.T) {
	g := mustParse(t, "S..\n...\n..E\n")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ch := make(chan grid.Coord) // never read
	path, err := search.DFS(g.Start(), g.End(), gridgraph.Build(g), search.ChannelSink(ctx, ch))
	require.NoError(t, err)
	require.True(t, path.Empty())
}

// TestCollector_Reset clears collected events.
func TestCollector_Reset(t *testing.T) {
	g := mustParse(t, "S..E\n")
	var c search.Collector
	_, err := search.BFS(g.Start(), g.End(), gridgraph.Build(g), c.Sink())
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.Len(t, c.Cells(), 2)
	c.Reset()
	require.Zero(t, c.Len())
}
