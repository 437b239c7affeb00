package tiles

import "errors"

// Sentinel errors for catalog construction and inventory operations.
var (
	// ErrUnknownTile indicates a tile identifier missing from the direction table.
	ErrUnknownTile = errors.New("tiles: unknown tile identifier")

	// ErrDuplicateTile indicates the same identifier was specified twice.
	ErrDuplicateTile = errors.New("tiles: duplicate tile identifier")

	// ErrNegativeCost indicates a tile spec with a cost below zero.
	ErrNegativeCost = errors.New("tiles: cost must be non-negative")

	// ErrNegativeCount indicates a tile spec with an inventory count below zero.
	ErrNegativeCount = errors.New("tiles: count must be non-negative")

	// ErrExhausted indicates Consume was called with no units remaining.
	ErrExhausted = errors.New("tiles: no units remaining")
)

// Offset is a relative move (ΔRow, ΔCol) on the grid.
type Offset struct {
	DRow, DCol int
}

// Spec describes one tile type as given by the puzzle input.
type Spec struct {
	ID    string
	Cost  int
	Count int
}

// TileType is a catalog entry: static directions and cost plus the
// mutable remaining count.
type TileType struct {
	ID         string
	Directions []Offset
	Cost       int
	Remaining  int
}

// DefaultDirections is the predefined direction table. Repeated offsets
// are intentional and preserved.
var DefaultDirections = map[string][]Offset{
	"3":  {{0, 1}, {0, -1}},
	"5":  {{1, 1}, {-1, -1}},
	"6":  {{1, -1}, {-1, 1}},
	"7":  {{0, 1}, {0, -1}, {1, -1}, {-1, 1}, {1, 1}, {-1, -1}},
	"9":  {{-1, 1}, {1, -1}},
	"96": {{1, -1}, {-1, 1}, {-1, 1}, {1, -1}},
	"A":  {{-1, -1}, {1, 1}},
	"A5": {{-1, -1}, {1, 1}, {1, 1}, {-1, -1}},
	"B":  {{0, 1}, {0, -1}, {-1, -1}, {1, 1}, {-1, 1}, {1, -1}},
	"C":  {{1, 0}, {-1, 0}},
	"C3": {{0, 1}, {0, -1}, {1, 0}, {-1, 0}},
	"D":  {{1, 0}, {-1, 0}, {-1, 1}, {1, -1}, {1, 1}, {-1, -1}},
	"E":  {{-1, -1}, {1, 1}, {1, -1}, {-1, 1}, {1, 0}, {-1, 0}},
	"F": {
		{0, 1}, {0, -1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 1},
		{1, 0}, {-1, 0}, {-1, 1}, {1, -1}, {1, 1}, {-1, -1},
	},
}
