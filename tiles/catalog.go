package tiles

import (
	"fmt"

	"github.com/samber/lo"
)

// Catalog maps tile identifiers to their directions, cost and remaining
// inventory. The iteration order of IDs is the order of the input specs.
//
// A Catalog is not safe for concurrent mutation; the search owns it.
type Catalog struct {
	order []string
	types map[string]*TileType
}

// NewDefaultCatalog builds a Catalog over DefaultDirections.
func NewDefaultCatalog(specs []Spec) (*Catalog, error) {
	return NewCatalog(DefaultDirections, specs)
}

// NewCatalog validates specs against table and builds a Catalog.
// Every spec ID must be present in table; IDs must be unique and
// cost and count non-negative.
// Complexity: O(len(specs)).
func NewCatalog(table map[string][]Offset, specs []Spec) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(specs)),
		types: make(map[string]*TileType, len(specs)),
	}
	for _, s := range specs {
		dirs, ok := table[s.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTile, s.ID)
		}
		if _, dup := c.types[s.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTile, s.ID)
		}
		if s.Cost < 0 {
			return nil, fmt.Errorf("%w: %q has cost %d", ErrNegativeCost, s.ID, s.Cost)
		}
		if s.Count < 0 {
			return nil, fmt.Errorf("%w: %q has count %d", ErrNegativeCount, s.ID, s.Count)
		}
		c.order = append(c.order, s.ID)
		c.types[s.ID] = &TileType{
			ID:         s.ID,
			Directions: dirs,
			Cost:       s.Cost,
			Remaining:  s.Count,
		}
	}

	return c, nil
}

// IDs returns the catalog identifiers in input order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Len returns the number of tile types.
func (c *Catalog) Len() int { return len(c.order) }

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.types[id]
	return ok
}

// CanPlace reports whether at least one unit of id remains.
// Unknown identifiers can never be placed.
func (c *Catalog) CanPlace(id string) bool {
	t, ok := c.types[id]
	return ok && t.Remaining > 0
}

// Consume takes one unit of id.
// Returns ErrExhausted when nothing remains, ErrUnknownTile for unknown ids.
func (c *Catalog) Consume(id string) error {
	t, ok := c.types[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTile, id)
	}
	if t.Remaining <= 0 {
		return fmt.Errorf("%w: %q", ErrExhausted, id)
	}
	t.Remaining--

	return nil
}

// Restore gives one unit of id back.
func (c *Catalog) Restore(id string) error {
	t, ok := c.types[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTile, id)
	}
	t.Remaining++

	return nil
}

// Remaining returns the units of id left, or 0 for unknown ids.
func (c *Catalog) Remaining(id string) int {
	if t, ok := c.types[id]; ok {
		return t.Remaining
	}

	return 0
}

// Cost returns the unit cost of id. Panics on an unknown id.
func (c *Catalog) Cost(id string) int {
	return c.mustGet(id).Cost
}

// Directions returns the offsets usable when leaving a cell holding id.
// The returned slice is shared and must not be modified. Panics on an
// unknown id.
func (c *Catalog) Directions(id string) []Offset {
	return c.mustGet(id).Directions
}

// TotalRemaining sums the remaining units over all types.
func (c *Catalog) TotalRemaining() int {
	return lo.SumBy(c.order, func(id string) int { return c.types[id].Remaining })
}

// Types returns value copies of every entry in input order.
func (c *Catalog) Types() []TileType {
	return lo.Map(c.order, func(id string, _ int) TileType { return *c.types[id] })
}

// Clone returns an independent Catalog with the same entries and counts.
// Direction slices are shared; they are never mutated.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		order: c.IDs(),
		types: make(map[string]*TileType, len(c.types)),
	}
	for id, t := range c.types {
		cp := *t
		out.types[id] = &cp
	}

	return out
}

func (c *Catalog) mustGet(id string) *TileType {
	t, ok := c.types[id]
	if !ok {
		panic(fmt.Sprintf("tiles: unknown tile identifier %q", id))
	}

	return t
}
