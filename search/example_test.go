package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/search"
	"github.com/katalvlaran/tilegrid/tiles"
)

// ExampleSolve runs an exhaustive search on a 1×3 row with golden points
// at both ends. Golden cells never hold a tile, so no path leaves them and
// every assignment scores negative infinity.
func ExampleSolve() {
	table := map[string][]tiles.Offset{"C": {{DRow: 0, DCol: 1}, {DRow: 0, DCol: -1}}}
	cat, _ := tiles.NewCatalog(table, []tiles.Spec{{ID: "C", Cost: 1, Count: 5}})
	g, _ := grid.New(1, 3, []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, nil, cat)

	res, err := search.Solve(context.Background(), g, search.WithTimeLimit(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Score, res.Best == nil, res.Stats.Leaves)
	// Output:
	// -Inf true 2
}
