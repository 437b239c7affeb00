package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/pathfind"
	"github.com/katalvlaran/tilegrid/tiles"
)

// ExampleFind walks a diagonal of "5" tiles, each allowing the moves
// (+1,+1) and (-1,-1), from the top-left corner to the bottom-right.
func ExampleFind() {
	cat, _ := tiles.NewDefaultCatalog([]tiles.Spec{{ID: "5", Cost: 1, Count: 3}})
	g, _ := grid.New(3, 3, nil, nil, cat)
	for i := 0; i < 2; i++ {
		g.Place(grid.Point{Row: i, Col: i}, "5")
	}

	path, err := pathfind.Find(g, grid.Point{Row: 0, Col: 0}, grid.Point{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path.Cells, path.Hops())
	// Output:
	// [(0,0) (1,1)] 2
}
