package puzzle

import (
	"errors"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/tiles"
)

// ErrMalformed wraps every syntax or count error in the input text.
var ErrMalformed = errors.New("puzzle: malformed input")

// Silver is a bonus point of the input.
type Silver struct {
	grid.Point
	Bonus int
}

// Instance is a parsed puzzle, before validation against the catalog.
type Instance struct {
	Width, Height int
	Golden        []grid.Point
	Silver        []Silver
	Tiles         []tiles.Spec
}
