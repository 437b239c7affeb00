package grid

import "fmt"

// Point is a grid coordinate: Row in [0,Height), Col in [0,Width).
type Point struct {
	Row, Col int
}

// String formats the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders points row-major.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// Placement is one occupied cell.
type Placement struct {
	Point
	ID string
}

// Cells is a deep snapshot of the grid; "" marks an empty cell.
// Cells[row][col] holds the tile identifier.
type Cells [][]string

// Clone returns a deep copy of c.
func (c Cells) Clone() Cells {
	out := make(Cells, len(c))
	for r := range c {
		out[r] = make([]string, len(c[r]))
		copy(out[r], c[r])
	}

	return out
}

// Placements lists the occupied cells of c in row-major order.
func (c Cells) Placements() []Placement {
	var out []Placement
	for r, row := range c {
		for col, id := range row {
			if id != "" {
				out = append(out, Placement{Point: Point{Row: r, Col: col}, ID: id})
			}
		}
	}

	return out
}
