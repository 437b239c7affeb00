package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/tilegrid/search"
)

// FormatScore renders a score the way the output format expects.
func FormatScore(s float64) string {
	switch {
	case math.IsInf(s, -1):
		return "-inf"
	case math.IsInf(s, 1):
		return "inf"
	case s == math.Trunc(s) && math.Abs(s) < 1<<53:
		return strconv.FormatInt(int64(s), 10)
	default:
		return strconv.FormatFloat(s, 'g', -1, 64)
	}
}

// WriteSolution writes sol's placements and the score line to w.
// sol may be nil, in which case only the score line is written.
func WriteSolution(w io.Writer, sol *search.Solution, score float64) error {
	bw := bufio.NewWriter(w)
	if sol != nil {
		for _, pl := range sol.Placements() {
			if _, err := fmt.Fprintf(bw, "%s %d %d\n", pl.ID, pl.Col, pl.Row); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(bw, "# Score: %s\n", FormatScore(score)); err != nil {
		return err
	}

	return bw.Flush()
}
