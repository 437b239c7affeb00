package score_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/pathfind"
	"github.com/katalvlaran/tilegrid/score"
	"github.com/katalvlaran/tilegrid/tiles"
)

func newGrid(t *testing.T, golden []grid.Point, silver map[grid.Point]int) *grid.Grid {
	t.Helper()
	table := map[string][]tiles.Offset{"C": {{DRow: 0, DCol: 1}, {DRow: 0, DCol: -1}}}
	cat, err := tiles.NewCatalog(table, []tiles.Spec{{ID: "C", Cost: 1, Count: 5}})
	require.NoError(t, err)
	g, err := grid.New(1, 3, golden, silver, cat)
	require.NoError(t, err)

	return g
}

func TestEvaluate_DisconnectedGoldenPair(t *testing.T) {
	g := newGrid(t, []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, nil)
	var ev score.Evaluator

	// Empty grid and filled middle cell alike: the golden start cell has no moves.
	assert.True(t, math.IsInf(ev.Evaluate(g), -1))
	require.True(t, g.Place(grid.Point{Row: 0, Col: 1}, "C"))
	assert.True(t, math.IsInf(ev.Evaluate(g), -1))

	res := ev.Breakdown(g)
	assert.False(t, res.Connected)
	require.Len(t, res.Pairs, 1)
	assert.Nil(t, res.Pairs[0].Path)
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, res.Pairs[0].From)
	assert.Equal(t, grid.Point{Row: 0, Col: 2}, res.Pairs[0].To)
	assert.NoError(t, res.Err)
}

func TestEvaluate_PathErrorIsNotRejection(t *testing.T) {
	g := newGrid(t, []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ev := score.Evaluator{PathOptions: []pathfind.Option{pathfind.WithContext(ctx)}}

	res := ev.Breakdown(g)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.False(t, res.Connected)
	assert.True(t, math.IsNaN(res.Score))
	assert.False(t, math.IsInf(ev.Evaluate(g), -1))
}

func TestEvaluate_FewerThanTwoGolden(t *testing.T) {
	cases := []struct {
		name   string
		golden []grid.Point
	}{
		{"None", nil},
		{"One", []grid.Point{{Row: 0, Col: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(t, tc.golden, map[grid.Point]int{{Row: 0, Col: 2}: 10})
			var ev score.Evaluator
			res := ev.Breakdown(g)
			assert.Equal(t, 0.0, res.Score)
			assert.True(t, res.Connected)
			assert.Empty(t, res.Pairs)
			assert.Equal(t, 0, res.TotalCost())
		})
	}
}

func TestEvaluate_ManyGoldenStopsAtFirstFailure(t *testing.T) {
	cat, err := tiles.NewDefaultCatalog(nil)
	require.NoError(t, err)
	g, err := grid.New(2, 2, []grid.Point{{Row: 1, Col: 1}, {Row: 0, Col: 0}, {Row: 0, Col: 1}}, nil, cat)
	require.NoError(t, err)

	var ev score.Evaluator
	res := ev.Breakdown(g)
	assert.Equal(t, score.Rejected, res.Score)
	require.Len(t, res.Pairs, 1)
	assert.Equal(t, grid.Point{Row: 0, Col: 0}, res.Pairs[0].From)
	assert.Equal(t, grid.Point{Row: 0, Col: 1}, res.Pairs[0].To)
}
