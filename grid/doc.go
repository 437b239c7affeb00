// Package grid holds the mutable H×W placement grid of the tile search,
// together with the fixed golden (anchor) and silver (bonus) points.
//
// What:
//
//   - Grid stores at most one tile identifier per cell in row-major order.
//   - Golden and silver points are fixed at construction and never hold a tile.
//   - Place and Remove keep the grid and the tiles.Catalog inventory in step:
//     Place consumes one unit, Remove restores it.
//   - Snapshot returns a deep, independent copy of the cells.
//
// Coordinates:
//
//	Point{Row, Col} with 0 ≤ Row < Height and 0 ≤ Col < Width.
//	Index/Coordinate convert to and from the row-major index Row*Width+Col.
//
// Discipline:
//
//	The search calls Place before recursing and Remove after returning, in
//	strict stack order, so that a cell is exactly restored before a sibling
//	branch runs. Place never mutates anything when it returns false.
//
// Complexity:
//
//   - New: O(H×W + G + S) for G golden and S silver points.
//   - Place, Remove, IsOccupied, InBounds: O(1).
//   - Snapshot: O(H×W).
//
// Errors:
//
//   - ErrEmptyGrid: height or width below one.
//   - ErrGridTooLarge: height×width does not fit in an int.
//   - ErrNilCatalog: no tile catalog supplied.
//   - ErrOutOfBounds: a golden or silver point lies outside the grid.
//   - ErrDuplicateGolden: the same golden coordinate listed twice.
//   - ErrPointConflict: a coordinate is both golden and silver.
package grid
