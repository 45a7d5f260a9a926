package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
)

// ExampleGrid_PlaceStart shows the editor operations: a start placed on a
// wall clears it, and toggling never turns a marker into a wall.
func ExampleGrid_PlaceStart() {
	g, _ := grid.NewGrid(2, 3)
	_ = g.ToggleWall(0, 0)
	_ = g.ToggleWall(0, 1)
	_ = g.PlaceStart(0, 0)
	_ = g.PlaceEnd(1, 2)
	_ = g.ToggleWall(1, 2)

	fmt.Print(g)
	// Output:
	// S#.
	// ..E
}

// ExampleParse reads a maze from text.
func ExampleParse() {
	g, err := grid.Parse(strings.NewReader(`
S.#
..#
#.E
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Rows(), "x", g.Cols(), "start", g.Start().Coord, "end", g.End().Coord)
	// Output:
	// 3 x 3 start (0,0) end (2,2)
}
