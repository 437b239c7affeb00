// Package pathfind provides the connectivity search of the tile grid:
// a first-in-first-out breadth-first exploration between two grid
// coordinates that follows tile-defined movement rules.
//
// What
//
//   - Moves are taken from the cell being left: the neighbours of the
//     current coordinate are current+offset for every offset in the
//     direction set of the tile on the current cell.
//   - A cell without a tile yields no moves. Golden and silver points never
//     hold a tile, so a search starting on one of them cannot leave it.
//   - Because exploration is FIFO, a found path has the minimum hop count.
//   - The visited check happens when an entry is dequeued. Several entries
//     for the same coordinate may sit in the queue before its first visit;
//     this changes neither existence nor length of the result.
//
// Path shape
//
//	Path.Cells lists the coordinates departed from, in order: the start,
//	then every intermediate cell, excluding the target. A search whose start
//	equals its target succeeds with an empty Path.
//
// Consequence for golden points
//
//	For two distinct golden points the start cell is always empty, so Find
//	returns ErrNoPath whatever tiles are placed elsewhere. This is the
//	defined behaviour of the movement rule, not an error in the walker.
//
// Implementation
//
//	Queue entries live in an arena slice; each records the arena index of the
//	entry it was expanded from. The path is rebuilt once, by following those
//	back-pointers, when the target is dequeued.
//
// Options
//
//   - DefaultOptions(): background Context, no depth limit, no-op hooks.
//   - WithContext(ctx):     cancellation, checked once per dequeue.
//   - WithMaxDepth(d):      do not enqueue entries deeper than d (>0).
//   - WithOnEnqueue(fn):    hook when an entry is enqueued.
//   - WithOnDequeue(fn):    hook when an entry is dequeued.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOutOfBounds      if start or target lies outside the grid.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxDepth).
//   - ErrNoPath           when the frontier exhausts without the target.
//   - ctx.Err()           on cancellation.
//
// Complexity (N = H×W, d = longest direction set)
//
//   - Time:   O(N·d) dequeues in the worst case.
//   - Memory: O(N·d) arena entries.
package pathfind
