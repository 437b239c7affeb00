package search

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tilegrid/grid"
)

// engine holds all search data for one Solve call.
type engine struct {
	// Collaborators
	g      *grid.Grid
	ids    []string
	scorer Scorer
	log    zerolog.Logger

	// Budget
	ctx      context.Context
	clock    Clock
	start    time.Time
	limit    time.Duration
	maxNodes int64
	stopped  bool

	// Incumbent
	best      *Solution
	bestScore float64

	stats Stats
}

// expired counts the node and reports whether any budget is exhausted.
// Once true it stays true.
func (e *engine) expired() bool {
	if e.stopped {
		return true
	}
	e.stats.Nodes++
	switch {
	case e.maxNodes > 0 && e.stats.Nodes > e.maxNodes:
		e.stopped = true
	case e.limit > 0 && e.clock.Now().Sub(e.start) > e.limit:
		e.stopped = true
	default:
		select {
		case <-e.ctx.Done():
			e.stopped = true
		default:
		}
	}
	if e.stopped {
		e.log.Debug().Int64("nodes", e.stats.Nodes).Msg("search-budget-exhausted")
	}

	return e.stopped
}

// commit records a new incumbent as a deep snapshot of the live grid.
func (e *engine) commit(s float64) {
	e.best = NewSolution(e.g.Snapshot(), s)
	e.bestScore = s
	e.stats.Improvements++
	e.log.Debug().
		Float64("score", s).
		Int64("leaves", e.stats.Leaves).
		Int("occupied", e.g.Occupied()).
		Msg("search-improved")
}

// leaf scores the complete grid.
func (e *engine) leaf() {
	e.stats.Leaves++
	if s := e.scorer.Evaluate(e.g); s > e.bestScore {
		e.commit(s)
	}
}

// dfs decides cell (row, col) and everything after it in row-major order.
// Stepping past the last column wraps to the next row without counting
// a node.
func (e *engine) dfs(row, col int) {
	if col == e.g.Width {
		row, col = row+1, 0
	}
	if e.expired() {
		return
	}
	if row == e.g.Height {
		e.leaf()
		return
	}

	p := grid.Point{Row: row, Col: col}
	e.dfs(row, col+1)
	for _, id := range e.ids {
		if e.stopped {
			return
		}
		if !e.g.Place(p, id) {
			continue
		}
		e.dfs(row, col+1)
		e.g.Remove(p)
	}
}

// Solve searches g for the best-scoring assignment within the budget.
// The grid and its catalog are restored to their initial state on return.
// Errors are only returned for invalid input; an exhausted budget yields
// the best result found so far.
func Solve(ctx context.Context, g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	e := &engine{
		g:         g,
		ids:       g.Catalog().IDs(),
		scorer:    o.Scorer,
		log:       o.Logger,
		ctx:       ctx,
		clock:     o.Clock,
		start:     o.Clock.Now(),
		limit:     o.TimeLimit,
		maxNodes:  o.MaxNodes,
		bestScore: math.Inf(-1),
	}
	e.log.Debug().
		Int("height", g.Height).
		Int("width", g.Width).
		Int("tiles", len(e.ids)).
		Dur("time_limit", e.limit).
		Msg("search-start")

	e.dfs(0, 0)

	e.stats.Truncated = e.stopped
	e.stats.Elapsed = e.clock.Now().Sub(e.start)
	e.log.Info().
		Float64("score", e.bestScore).
		Int64("nodes", e.stats.Nodes).
		Int64("leaves", e.stats.Leaves).
		Bool("truncated", e.stats.Truncated).
		Dur("elapsed", e.stats.Elapsed).
		Msg("search-finished")

	return Result{Best: e.best, Score: e.bestScore, Stats: e.stats}, nil
}
