package search_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

// ExampleFindPath runs both strategies on the same maze.
// Maze:
//
//	S . #
//	. . #
//	# . E
//
// BFS returns a shortest route; DFS explores "down first" and may wander.
func ExampleFindPath() {
	g, _ := grid.Parse(strings.NewReader("S.#\n..#\n#.E\n"))
	adj := gridgraph.Build(g)

	for _, st := range []search.Strategy{search.BreadthFirst, search.DepthFirst} {
		var seen search.Collector
		path, err := search.FindPath(st, g.Start(), g.End(), adj, seen.Sink())
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%s visited %v\n", st, seen.Coords())
		fmt.Printf("%s path %v (%d steps)\n", st, path, path.Len())
	}

	// Output:
	// bfs visited [(1,0) (0,1) (1,1) (2,1)]
	// bfs path (0,0) -> (1,0) -> (1,1) -> (2,1) -> (2,2) (4 steps)
	// dfs visited [(1,0) (1,1) (0,1) (2,1)]
	// dfs path (0,0) -> (1,0) -> (1,1) -> (2,1) -> (2,2) (4 steps)
}

// ExampleFindPath_missingEndpoint shows the "nothing was asked" result.
func ExampleFindPath_missingEndpoint() {
	g, _ := grid.NewGrid(2, 2)
	_ = g.PlaceStart(0, 0)

	path, err := search.FindPath(search.BreadthFirst, g.Start(), g.End(), gridgraph.Build(g), nil)
	fmt.Println(path == nil, errors.Is(err, search.ErrMissingEndpoint))
	// Output:
	// true true
}
