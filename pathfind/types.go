// Package pathfind provides tunable options and error definitions
// for the tile-grid path search.
package pathfind

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
)

// Sentinel errors for path search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathfind: grid is nil")

	// ErrOutOfBounds is returned when start or target is outside the grid.
	ErrOutOfBounds = errors.New("pathfind: endpoint out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrNoPath is returned when the target cannot be reached.
	ErrNoPath = errors.New("pathfind: no path between endpoints")
)

// Option configures the search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Find.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, stops enqueueing entries beyond this hop count.
	MaxDepth int

	// OnEnqueue is called for every entry appended to the queue,
	// duplicates included.
	OnEnqueue func(p grid.Point, depth int)

	// OnDequeue is called for every entry removed from the queue.
	OnDequeue func(p grid.Point, depth int)

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  0,
		OnEnqueue: func(grid.Point, int) {},
		OnDequeue: func(grid.Point, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the hop count of explored entries.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback run on enqueue.
func WithOnEnqueue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run on dequeue.
func WithOnDequeue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Path is a found route.
type Path struct {
	// Cells are the coordinates departed from, start first, target excluded.
	Cells []grid.Point

	// Enqueued counts queue entries created during the search, duplicates
	// included.
	Enqueued int
}

// Hops returns the number of moves on the path.
func (p *Path) Hops() int { return len(p.Cells) }
