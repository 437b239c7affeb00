package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a height or width below one.
	ErrEmptyGrid = errors.New("grid: height and width must be at least one")
	// ErrGridTooLarge indicates height×width does not fit in an int.
	ErrGridTooLarge = errors.New("grid: height×width overflows")
	// ErrNilCatalog indicates a missing tile catalog.
	ErrNilCatalog = errors.New("grid: tile catalog is nil")
	// ErrOutOfBounds indicates a golden or silver point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrDuplicateGolden indicates the same golden coordinate was given twice.
	ErrDuplicateGolden = errors.New("grid: duplicate golden point")
	// ErrPointConflict indicates a coordinate that is both golden and silver.
	ErrPointConflict = errors.New("grid: point is both golden and silver")
)
