// Package pathfind runs a FIFO breadth-first search over a grid.Grid,
// following the direction set of the tile on the cell being left.
package pathfind

import (
	"github.com/katalvlaran/tilegrid/grid"
)

// entry is one queue element. parent indexes the arena entry this one was
// expanded from; -1 for the root.
type entry struct {
	p      grid.Point
	depth  int
	parent int
}

// walker encapsulates mutable search state.
type walker struct {
	g       *grid.Grid
	opts    Options
	target  grid.Point
	arena   []entry
	head    int
	visited []bool
}

// Find searches for a minimum-hop path from start to target on g.
// Returns ErrGridNil, ErrOutOfBounds or ErrOptionViolation for invalid
// input, ErrNoPath when the target is unreachable, or the context error
// on cancellation.
func Find(g *grid.Grid, start, target grid.Point, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) || !g.InBounds(target) {
		return nil, ErrOutOfBounds
	}

	w := &walker{
		g:       g,
		opts:    o,
		target:  target,
		arena:   make([]entry, 0, g.Size()),
		visited: make([]bool, g.Size()),
	}
	w.enqueue(start, 0, -1)

	return w.loop()
}

func (w *walker) enqueue(p grid.Point, depth, parent int) {
	w.arena = append(w.arena, entry{p: p, depth: depth, parent: parent})
	w.opts.OnEnqueue(p, depth)
}

// loop processes the queue until the target is dequeued, the frontier
// exhausts, or the context is cancelled.
func (w *walker) loop() (*Path, error) {
	for w.head < len(w.arena) {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		cur := w.head
		e := w.arena[cur]
		w.head++
		w.opts.OnDequeue(e.p, e.depth)

		if e.p == w.target {
			return w.reconstruct(cur), nil
		}
		idx := w.g.Index(e.p)
		if w.visited[idx] {
			continue
		}
		w.visited[idx] = true
		w.expand(cur, e)
	}

	return nil, ErrNoPath
}

// expand enqueues every in-bounds, not yet visited neighbour reachable by
// the tile on e's cell. Empty cells have no directions.
func (w *walker) expand(cur int, e entry) {
	next := e.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, d := range w.g.Directions(e.p) {
		n := grid.Point{Row: e.p.Row + d.DRow, Col: e.p.Col + d.DCol}
		if !w.g.InBounds(n) || w.visited[w.g.Index(n)] {
			continue
		}
		w.enqueue(n, next, cur)
	}
}

// reconstruct follows parent links from the target entry's parent back to
// the root and returns them start-first.
func (w *walker) reconstruct(target int) *Path {
	cells := make([]grid.Point, 0, w.arena[target].depth)
	for at := w.arena[target].parent; at >= 0; at = w.arena[at].parent {
		cells = append(cells, w.arena[at].p)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	return &Path{Cells: cells, Enqueued: len(w.arena)}
}
