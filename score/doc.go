// Package score evaluates a fully decided tile grid.
//
// For every unordered pair of distinct golden points the evaluator asks
// pathfind for a path. A single disconnected pair rejects the grid with a
// score of negative infinity. Otherwise every coordinate of every path is
// accounted for, once per occurrence:
//
//   - a cell holding a tile adds that tile's unit cost to a per-type ledger;
//   - a silver point adds its bonus to the bonus total.
//
// Score = bonus total − sum of the ledger. Repeated cells, within a path or
// across paths, are counted each time they occur.
//
// Pairs are enumerated over the golden points in row-major order, so the
// set of paths is deterministic. A grid with fewer than two golden points
// has no pairs and scores 0.
//
// Only pathfind.ErrNoPath counts as disconnected. Any other path search
// error, such as a cancelled context, stops evaluation with Result.Err set
// and a NaN score, which never beats an incumbent.
package score
