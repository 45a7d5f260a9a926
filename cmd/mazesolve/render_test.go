package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

func TestRender_PathWinsOverVisited(t *testing.T) {
	g, err := grid.NewGrid(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.PlaceStart(0, 0))
	require.NoError(t, g.PlaceEnd(0, 2))
	require.NoError(t, g.ToggleWall(1, 2))

	visited := map[grid.Coord]bool{{Row: 0, Col: 1}: true, {Row: 1, Col: 0}: true}
	path := search.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}

	assert.Equal(t, "S*E\no.#\n", render(g, visited, path))
	assert.Equal(t, "S.E\n..#\n", render(g, nil, nil))
}
