package puzzle_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/puzzle"
	"github.com/katalvlaran/tilegrid/search"
	"github.com/katalvlaran/tilegrid/tiles"
)

const sample = `4 3 2 1 2
0 0
2 3

1 1 15
3 2 4
C3 5 1
`

func TestParse(t *testing.T) {
	is := is.New(t)

	in, err := puzzle.Parse(strings.NewReader(sample))
	is.NoErr(err)
	is.Equal(in.Width, 4)
	is.Equal(in.Height, 3)
	is.Equal(in.Golden, []grid.Point{{Row: 0, Col: 0}, {Row: 2, Col: 3}})
	is.Equal(in.Silver, []puzzle.Silver{{Point: grid.Point{Row: 1, Col: 1}, Bonus: 15}})
	is.Equal(in.Tiles, []tiles.Spec{{ID: "3", Cost: 2, Count: 4}, {ID: "C3", Cost: 5, Count: 1}})

	g, err := in.Build()
	is.NoErr(err)
	is.Equal(g.Height, 3)
	is.Equal(g.Width, 4)
	is.Equal(g.Catalog().IDs(), []string{"3", "C3"})
	b, ok := g.Bonus(grid.Point{Row: 1, Col: 1})
	is.True(ok)
	is.Equal(b, 15)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"short header":  "3 1 0 0\n",
		"non-integer":   "3 x 0 0 0\n",
		"negative":      "3 1 -1 0 0\n",
		"missing gold":  "3 1 1 0 0\n",
		"gold fields":   "3 1 1 0 0\n0 0 0\n",
		"silver fields": "3 1 0 1 0\n0 0\n",
		"tile fields":   "3 1 0 0 1\nC 1\n",
		"tile cost":     "3 1 0 0 1\nC one 1\n",
		"huge counts":   "1 1 999999999999999 999999999999999 999999999999999\n0 0\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			_, err := puzzle.Parse(strings.NewReader(text))
			is.True(errors.Is(err, puzzle.ErrMalformed))
		})
	}
}

func TestBuild_Rejections(t *testing.T) {
	cases := map[string]struct {
		text string
		err  error
	}{
		"unknown tile":     {"3 1 0 0 1\nZZ 1 1\n", tiles.ErrUnknownTile},
		"duplicate golden": {"3 1 2 0 1\n0 1\n0 1\nC 1 5\n", grid.ErrDuplicateGolden},
		"golden outside":   {"3 1 1 0 0\n1 0\n", grid.ErrOutOfBounds},
		"empty grid":       {"0 1 0 0 0\n", grid.ErrEmptyGrid},
		"grid overflows":   {"4611686018427387905 4 0 0 1\n3 1 1\n", grid.ErrGridTooLarge},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			in, err := puzzle.Parse(strings.NewReader(tc.text))
			is.NoErr(err)
			_, err = in.Build()
			is.True(errors.Is(err, tc.err))
		})
	}
}

func TestFormatScore(t *testing.T) {
	is := is.New(t)
	is.Equal(puzzle.FormatScore(math.Inf(-1)), "-inf")
	is.Equal(puzzle.FormatScore(0), "0")
	is.Equal(puzzle.FormatScore(-12), "-12")
	is.Equal(puzzle.FormatScore(2.5), "2.5")
}

func TestWriteSolution(t *testing.T) {
	is := is.New(t)

	sol := search.NewSolution(grid.Cells{{"", "3"}, {"C3", ""}}, 7)
	var buf bytes.Buffer
	is.NoErr(puzzle.WriteSolution(&buf, sol, sol.Score()))
	is.Equal(buf.String(), "3 1 0\nC3 0 1\n# Score: 7\n")

	buf.Reset()
	is.NoErr(puzzle.WriteSolution(&buf, nil, math.Inf(-1)))
	is.Equal(buf.String(), "# Score: -inf\n")
}

// The 3×1 row with golden ends scores negative infinity end to end.
func TestEndToEnd_GoldenEnds(t *testing.T) {
	is := is.New(t)

	in, err := puzzle.Parse(strings.NewReader("3 1 2 0 1\n0 0\n0 2\nC 1 5\n"))
	is.NoErr(err)
	table := map[string][]tiles.Offset{"C": {{DRow: 0, DCol: 1}, {DRow: 0, DCol: -1}}}
	g, err := in.BuildWith(table)
	is.NoErr(err)

	res, err := search.Solve(context.Background(), g, search.WithTimeLimit(0))
	is.NoErr(err)
	is.True(math.IsInf(res.Score, -1))

	var buf bytes.Buffer
	is.NoErr(puzzle.WriteSolution(&buf, res.Best, res.Score))
	is.Equal(buf.String(), "# Score: -inf\n")
}
