package score

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/pathfind"
)

// Evaluator scores complete grids. The zero value is ready to use.
type Evaluator struct {
	// PathOptions are passed to every pathfind.Find call.
	PathOptions []pathfind.Option
}

// Evaluate returns the score of g: total bonus minus total cost, or
// Rejected when any golden pair is disconnected. It returns NaN when path
// search fails for another reason; see Result.Err.
func (ev *Evaluator) Evaluate(g *grid.Grid) float64 {
	return ev.Breakdown(g).Score
}

// Breakdown evaluates g and returns the full accounting.
// Complexity: O(G² · N·d) for G golden points, N cells.
func (ev *Evaluator) Breakdown(g *grid.Grid) Result {
	res := Result{Connected: true, Costs: make(map[string]int)}
	golden := g.Golden()
	if len(golden) < 2 {
		return res
	}

	for _, c := range combin.Combinations(len(golden), 2) {
		from, to := golden[c[0]], golden[c[1]]
		path, err := pathfind.Find(g, from, to, ev.PathOptions...)
		if err != nil {
			res.Pairs = append(res.Pairs, Pair{From: from, To: to})
			res.Connected = false
			res.Score = Rejected
			if !errors.Is(err, pathfind.ErrNoPath) {
				res.Err = err
				res.Score = math.NaN()
			}

			return res
		}
		res.Pairs = append(res.Pairs, Pair{From: from, To: to, Path: path})
		ev.account(g, path, &res)
	}
	res.Score = float64(res.Bonus - res.TotalCost())

	return res
}

// account adds every cell of path to the ledger and bonus total.
// No deduplication: a cell seen twice is charged twice.
func (ev *Evaluator) account(g *grid.Grid, path *pathfind.Path, res *Result) {
	cat := g.Catalog()
	for _, p := range path.Cells {
		if id, ok := g.TileAt(p); ok {
			res.Costs[id] += cat.Cost(id)
		}
		if b, ok := g.Bonus(p); ok {
			res.Bonus += b
		}
	}
}
