package search_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/search"
	"github.com/katalvlaran/tilegrid/tiles"
)

// BenchmarkSolve_3x3 measures a full exhaustive search over a 3×3 grid with
// two tile types (3^9 leaves before inventory pruning).
func BenchmarkSolve_3x3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		cat, err := tiles.NewDefaultCatalog([]tiles.Spec{
			{ID: "3", Cost: 1, Count: 9},
			{ID: "C3", Cost: 2, Count: 9},
		})
		if err != nil {
			b.Fatalf("catalog: %v", err)
		}
		g, err := grid.New(3, 3, []grid.Point{{Row: 0, Col: 0}, {Row: 2, Col: 2}}, nil, cat)
		if err != nil {
			b.Fatalf("grid: %v", err)
		}
		b.StartTimer()

		if _, err := search.Solve(context.Background(), g, search.WithTimeLimit(0)); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}
