package main

import (
	"strings"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

const (
	symbolVisited = 'o'
	symbolPath    = '*'
)

// render draws g with visited cells as 'o' and the route as '*'.
// Start, end and walls keep their own symbols.
func render(g *grid.Grid, visited map[grid.Coord]bool, path search.Path) string {
	onPath := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := g.At(r, c)
			sym := cell.Symbol()
			if sym == grid.SymbolOpen {
				switch {
				case onPath[cell.Coord]:
					sym = symbolPath
				case visited[cell.Coord]:
					sym = symbolVisited
				}
			}
			b.WriteByte(sym)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
