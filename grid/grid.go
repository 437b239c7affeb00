package grid

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/tilegrid/tiles"
)

// Grid is the live placement grid. It owns its tile catalog's inventory
// for the duration of a search and is not safe for concurrent use.
type Grid struct {
	Height, Width int

	cells   []string // row-major; "" is empty
	golden  map[Point]struct{}
	order   []Point // golden points, row-major
	silver  map[Point]int
	catalog *tiles.Catalog
}

// New constructs an empty Grid of height×width cells.
// golden lists the anchor points; silver maps bonus points to their value.
// Returns ErrEmptyGrid, ErrGridTooLarge, ErrNilCatalog, ErrOutOfBounds, ErrDuplicateGolden
// or ErrPointConflict for invalid input.
// Complexity: O(H×W + G + S).
func New(height, width int, golden []Point, silver map[Point]int, catalog *tiles.Catalog) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, ErrEmptyGrid
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %d×%d", ErrGridTooLarge, height, width)
	}
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	g := &Grid{
		Height:  height,
		Width:   width,
		cells:   make([]string, height*width),
		golden:  make(map[Point]struct{}, len(golden)),
		silver:  make(map[Point]int, len(silver)),
		catalog: catalog,
	}
	if dups := lo.FindDuplicates(golden); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateGolden, dups[0])
	}
	for _, p := range golden {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: golden %v", ErrOutOfBounds, p)
		}
		g.golden[p] = struct{}{}
	}
	for p, bonus := range silver {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: silver %v", ErrOutOfBounds, p)
		}
		if _, ok := g.golden[p]; ok {
			return nil, fmt.Errorf("%w: %v", ErrPointConflict, p)
		}
		g.silver[p] = bonus
	}
	g.order = lo.Keys(g.golden)
	sort.Slice(g.order, func(i, j int) bool { return g.order[i].Less(g.order[j]) })

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// Index maps p to its row-major index Row*Width+Col.
func (g *Grid) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}

// Size is Height×Width.
func (g *Grid) Size() int { return len(g.cells) }

// Catalog returns the tile catalog whose inventory the grid consumes.
func (g *Grid) Catalog() *tiles.Catalog { return g.catalog }

// IsGolden reports whether p is a golden point.
func (g *Grid) IsGolden(p Point) bool {
	_, ok := g.golden[p]
	return ok
}

// Bonus returns the silver bonus at p, if p is a silver point.
func (g *Grid) Bonus(p Point) (int, bool) {
	b, ok := g.silver[p]
	return b, ok
}

// Golden returns the golden points in row-major order.
func (g *Grid) Golden() []Point {
	out := make([]Point, len(g.order))
	copy(out, g.order)

	return out
}

// Silver returns a copy of the silver point bonuses.
func (g *Grid) Silver() map[Point]int {
	return lo.Assign(g.silver)
}

// IsOccupied reports whether p holds a tile. Out-of-bounds points are
// never occupied.
func (g *Grid) IsOccupied(p Point) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] != ""
}

// TileAt returns the tile identifier at p, if any.
func (g *Grid) TileAt(p Point) (string, bool) {
	if !g.InBounds(p) {
		return "", false
	}
	id := g.cells[g.Index(p)]

	return id, id != ""
}

// Directions returns the movement offsets of the tile at p, or nil when
// p is empty or out of bounds.
func (g *Grid) Directions(p Point) []tiles.Offset {
	id, ok := g.TileAt(p)
	if !ok {
		return nil
	}

	return g.catalog.Directions(id)
}

// Place puts one unit of tile id at p and consumes it from the catalog.
// It returns false, mutating nothing, when p is out of bounds, golden,
// silver, already occupied, or when id has no units left.
// Complexity: O(1).
func (g *Grid) Place(p Point, id string) bool {
	if !g.InBounds(p) || g.IsGolden(p) {
		return false
	}
	if _, ok := g.silver[p]; ok {
		return false
	}
	i := g.Index(p)
	if g.cells[i] != "" || !g.catalog.CanPlace(id) {
		return false
	}
	if err := g.catalog.Consume(id); err != nil {
		return false
	}
	g.cells[i] = id

	return true
}

// Remove empties p and restores one unit of the tile that was there.
// No-op on an empty or out-of-bounds cell.
// Complexity: O(1).
func (g *Grid) Remove(p Point) {
	if !g.InBounds(p) {
		return
	}
	i := g.Index(p)
	id := g.cells[i]
	if id == "" {
		return
	}
	g.cells[i] = ""
	// id came from a successful Place, so it is always in the catalog.
	_ = g.catalog.Restore(id)
}

// Snapshot returns a deep copy of the current cells.
// Complexity: O(H×W).
func (g *Grid) Snapshot() Cells {
	out := make(Cells, g.Height)
	for r := 0; r < g.Height; r++ {
		out[r] = make([]string, g.Width)
		copy(out[r], g.cells[r*g.Width:(r+1)*g.Width])
	}

	return out
}

// Occupied returns the number of cells currently holding a tile.
func (g *Grid) Occupied() int {
	return lo.CountBy(g.cells, func(id string) bool { return id != "" })
}
