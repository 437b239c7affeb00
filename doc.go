// Package tilegrid places typed tiles on a bounded grid so that fixed
// golden anchor points become connected through paths traced over the
// tiles, maximizing collected silver bonuses minus tile costs within a
// wall-clock budget.
//
// Under the hood the work is split across small packages:
//
//	tiles/     predefined direction table, per-run cost and inventory
//	grid/      H×W placement grid with golden and silver points
//	pathfind/  FIFO breadth-first search following tile directions
//	score/     golden-pair connectivity and bonus/cost accounting
//	search/    time-bounded exhaustive backtracking, best snapshot
//	puzzle/    text input parser and solution writer
//
// The tilegrid command in cmd/tilegrid wires them together.
//
// Quick start:
//
//	in, _ := puzzle.Parse(r)
//	g, _ := in.Build()
//	res, _ := search.Solve(ctx, g, search.WithTimeLimit(time.Minute))
//	_ = puzzle.WriteSolution(w, res.Best, res.Score)
//
// The search is exhaustive only when the budget allows it; on anything but
// small grids the result is best-effort.
package tilegrid
