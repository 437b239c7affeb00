// Package puzzle reads tile-placement instances from their text form and
// writes solutions back out.
//
// Input:
//
//	W H GOLDEN_COUNT SILVER_COUNT TILE_TYPE_COUNT
//	x y                 (GOLDEN_COUNT lines)
//	x y bonus           (SILVER_COUNT lines)
//	tile_id cost count  (TILE_TYPE_COUNT lines)
//
// The first coordinate of a point indexes the row, the second the column.
// Blank lines are ignored. A silver point listed twice keeps its last bonus.
//
// Output:
//
//	tile_id column row  (one line per occupied cell, row-major)
//	# Score: <score>
//
// Integral scores print without a decimal point; negative infinity prints
// as "-inf". Without a solution only the score line is written.
package puzzle
