package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/score"
)

// DefaultTimeLimit is the wall-clock budget used when none is given.
const DefaultTimeLimit = 5 * time.Minute

// Sentinel errors for Solve.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Clock supplies the current time. Tests inject fake clocks to force a
// deterministic cutoff.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Scorer evaluates a fully decided grid. *score.Evaluator implements it.
type Scorer interface {
	Evaluate(g *grid.Grid) float64
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the search budget and collaborators.
type Options struct {
	// TimeLimit is the wall-clock budget; 0 disables it.
	TimeLimit time.Duration

	// MaxNodes caps the number of nodes (cells and leaves) processed;
	// 0 disables it.
	MaxNodes int64

	// Clock measures elapsed time.
	Clock Clock

	// Scorer evaluates complete grids.
	Scorer Scorer

	// Logger receives progress events.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns Options with DefaultTimeLimit, no node cap, the
// system clock, a score.Evaluator and a disabled logger.
func DefaultOptions() Options {
	return Options{
		TimeLimit: DefaultTimeLimit,
		Clock:     SystemClock,
		Scorer:    &score.Evaluator{},
		Logger:    zerolog.Nop(),
	}
}

// WithTimeLimit sets the wall-clock budget.
//
//	d > 0: stop after d
//	d == 0: no time limit
//	d < 0: invalid → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithMaxNodes caps the number of processed nodes (0 = unlimited).
func WithMaxNodes(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithClock replaces the clock used for the time budget.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithScorer replaces the leaf evaluator.
func WithScorer(s Scorer) Option {
	return func(o *Options) {
		if s != nil {
			o.Scorer = s
		}
	}
}

// WithLogger sets the progress logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Stats describes a finished search.
type Stats struct {
	Nodes        int64         // cells and leaves visited; row wraps excluded
	Leaves       int64         // complete grids scored
	Improvements int64         // times the best solution was replaced
	Truncated    bool          // budget ran out before the space was exhausted
	Elapsed      time.Duration // measured on the configured Clock
}

// Result is the outcome of Solve. Best is nil when no complete grid scored
// above negative infinity; Score is then negative infinity.
type Result struct {
	Best  *Solution
	Score float64
	Stats Stats
}
