package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/search"
)

func TestSolution_IsIndependentCopy(t *testing.T) {
	cells := grid.Cells{{"3", ""}, {"", "C"}}
	sol := search.NewSolution(cells, 4)

	cells[0][0] = "F"
	out := sol.Cells()
	out[1][1] = ""

	id, ok := sol.TileAt(grid.Point{Row: 0, Col: 0})
	assert.True(t, ok)
	assert.Equal(t, "3", id)
	id, ok = sol.TileAt(grid.Point{Row: 1, Col: 1})
	assert.True(t, ok)
	assert.Equal(t, "C", id)
	_, ok = sol.TileAt(grid.Point{Row: 2, Col: 0})
	assert.False(t, ok)
	assert.Equal(t, 2, sol.Height())
	assert.Equal(t, 2, sol.Width())
	assert.Equal(t, 4.0, sol.Score())
}

func TestSolution_Fingerprint(t *testing.T) {
	a := search.NewSolution(grid.Cells{{"3", ""}, {"", "C"}}, 1)
	b := search.NewSolution(grid.Cells{{"3", ""}, {"", "C"}}, 2)
	c := search.NewSolution(grid.Cells{{"", "3"}, {"", "C"}}, 1)
	d := search.NewSolution(grid.Cells{{"3", "", ""}, {"C"}}, 1)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}
