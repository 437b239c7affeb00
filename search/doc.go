// Package search runs the time-bounded exhaustive backtracking that
// assigns every grid cell either nothing or one catalog tile, keeping the
// best-scoring complete assignment seen.
//
// Enumeration:
//
//	Cells are visited row-major. At each cell the engine first recurses with
//	the cell left empty, then tries every catalog tile in catalog order via
//	grid.Place, recursing after each successful placement and calling
//	grid.Remove on return, before the next tile is tried. Once every cell is
//	decided the Scorer runs; a strictly higher score replaces the best
//	Solution with a deep snapshot of the grid.
//
// Budget:
//
//	Before every cell (and before scoring a leaf) the engine compares the
//	elapsed time on its Clock against TimeLimit, the node count against
//	MaxNodes, and polls the context. Once any of them is exhausted every
//	pending branch returns at once; Solve then returns the best Solution
//	recorded so far, which is nil when no leaf beat negative infinity.
//	Running out of budget is not an error. Stats.Truncated records it.
//
// State space:
//
//	(tiles+1)^(H·W) leaves before inventory pruning. Exhaustive runs are only
//	practical on small grids.
//
// Ownership:
//
//	Solve owns the grid and its catalog for the duration of the call and
//	leaves both exactly as it found them. Best-so-far state lives in a
//	per-call engine, never in package or grid fields.
package search
