package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/tiles"
)

// maxHint bounds slice preallocation from header counts, which come from
// untrusted input.
const maxHint = 1 << 10

// lineReader yields non-blank lines split into fields, tracking the
// 1-based line number for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next(what string) ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		if fields := strings.Fields(lr.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: unexpected end of input, want %s", ErrMalformed, what)
}

// ints reads one line of exactly n integers.
func (lr *lineReader) ints(n int, what string) ([]int, error) {
	fields, err := lr.next(what)
	if err != nil {
		return nil, err
	}
	if len(fields) != n {
		return nil, fmt.Errorf("%w: line %d: %s wants %d fields, got %d", ErrMalformed, lr.line, what, n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		if out[i], err = strconv.Atoi(f); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s: %q is not an integer", ErrMalformed, lr.line, what, f)
		}
	}

	return out, nil
}

// Parse reads an Instance from r. Syntax and count errors wrap ErrMalformed.
// Tile identifiers are not checked here; see Instance.Build.
func Parse(r io.Reader) (*Instance, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	head, err := lr.ints(5, "header")
	if err != nil {
		return nil, err
	}
	for i, v := range head {
		if v < 0 {
			return nil, fmt.Errorf("%w: line %d: header value %d is negative", ErrMalformed, lr.line, i+1)
		}
	}
	in := &Instance{
		Width:  head[0],
		Height: head[1],
		Golden: make([]grid.Point, 0, min(head[2], maxHint)),
		Silver: make([]Silver, 0, min(head[3], maxHint)),
		Tiles:  make([]tiles.Spec, 0, min(head[4], maxHint)),
	}

	for i := 0; i < head[2]; i++ {
		v, err := lr.ints(2, "golden point")
		if err != nil {
			return nil, err
		}
		in.Golden = append(in.Golden, grid.Point{Row: v[0], Col: v[1]})
	}
	for i := 0; i < head[3]; i++ {
		v, err := lr.ints(3, "silver point")
		if err != nil {
			return nil, err
		}
		in.Silver = append(in.Silver, Silver{Point: grid.Point{Row: v[0], Col: v[1]}, Bonus: v[2]})
	}
	for i := 0; i < head[4]; i++ {
		fields, err := lr.next("tile type")
		if err != nil {
			return nil, err
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: tile type wants 3 fields, got %d", ErrMalformed, lr.line, len(fields))
		}
		cost, cerr := strconv.Atoi(fields[1])
		count, nerr := strconv.Atoi(fields[2])
		if cerr != nil || nerr != nil {
			return nil, fmt.Errorf("%w: line %d: tile %q cost and count must be integers", ErrMalformed, lr.line, fields[0])
		}
		in.Tiles = append(in.Tiles, tiles.Spec{ID: fields[0], Cost: cost, Count: count})
	}

	return in, nil
}

// Build validates the instance against the default direction table and
// returns a ready grid. Unknown tile identifiers, duplicate golden points
// and out-of-bounds points are rejected before any search can start.
func (in *Instance) Build() (*grid.Grid, error) {
	return in.BuildWith(tiles.DefaultDirections)
}

// BuildWith is Build over a custom direction table.
func (in *Instance) BuildWith(table map[string][]tiles.Offset) (*grid.Grid, error) {
	cat, err := tiles.NewCatalog(table, in.Tiles)
	if err != nil {
		return nil, fmt.Errorf("puzzle: build catalog: %w", err)
	}
	silver := make(map[grid.Point]int, len(in.Silver))
	for _, s := range in.Silver {
		silver[s.Point] = s.Bonus
	}
	g, err := grid.New(in.Height, in.Width, in.Golden, silver, cat)
	if err != nil {
		return nil, fmt.Errorf("puzzle: build grid: %w", err)
	}

	return g, nil
}
