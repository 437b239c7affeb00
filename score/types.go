package score

import (
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/pathfind"
)

// Rejected is the score of a grid with a disconnected golden pair.
var Rejected = math.Inf(-1)

// Pair is a golden pair with the path found between them.
type Pair struct {
	From, To grid.Point
	Path     *pathfind.Path
}

// Result is the detailed outcome of an evaluation.
type Result struct {
	// Score is Bonus minus the sum of Costs, Rejected, or NaN when Err
	// is set.
	Score float64

	// Connected is false when some golden pair has no path.
	Connected bool

	// Bonus is the summed silver bonus over all path cells.
	Bonus int

	// Costs is the per-tile-type cost ledger.
	Costs map[string]int

	// Pairs lists the evaluated pairs in enumeration order. When Connected
	// is false, the last entry is the disconnected pair with a nil Path.
	Pairs []Pair

	// Err is the path search failure that stopped evaluation, such as a
	// cancelled context. Nil when every pair was either connected or
	// proved unreachable.
	Err error
}

// TotalCost sums the ledger.
func (r Result) TotalCost() int {
	return lo.Sum(lo.Values(r.Costs))
}
