package search

import (
	"strconv"

	"github.com/cespare/xxhash"

	"github.com/katalvlaran/tilegrid/grid"
)

// Solution is an immutable snapshot of a complete grid and its score.
type Solution struct {
	cells grid.Cells
	score float64
}

// NewSolution snapshots cells. The caller's slice is copied.
func NewSolution(cells grid.Cells, score float64) *Solution {
	return &Solution{cells: cells.Clone(), score: score}
}

// Score returns the evaluated score.
func (s *Solution) Score() float64 { return s.score }

// Height is the number of rows.
func (s *Solution) Height() int { return len(s.cells) }

// Width is the number of columns.
func (s *Solution) Width() int {
	if len(s.cells) == 0 {
		return 0
	}

	return len(s.cells[0])
}

// Cells returns a copy of the snapshot.
func (s *Solution) Cells() grid.Cells { return s.cells.Clone() }

// TileAt returns the tile at p, if any.
func (s *Solution) TileAt(p grid.Point) (string, bool) {
	if p.Row < 0 || p.Row >= s.Height() || p.Col < 0 || p.Col >= s.Width() {
		return "", false
	}
	id := s.cells[p.Row][p.Col]

	return id, id != ""
}

// Placements lists the occupied cells in row-major order.
func (s *Solution) Placements() []grid.Placement { return s.cells.Placements() }

// Fingerprint hashes the dimensions and every cell. Equal grids have
// equal fingerprints.
func (s *Solution) Fingerprint() uint64 {
	h := xxhash.New()
	_, _ = h.Write([]byte(strconv.Itoa(s.Height()) + "x" + strconv.Itoa(s.Width()) + "|"))
	for _, row := range s.cells {
		for _, id := range row {
			_, _ = h.Write([]byte(id))
			_, _ = h.Write([]byte{0})
		}
	}

	return h.Sum64()
}
