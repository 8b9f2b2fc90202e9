package jigsaw

import "math"

// Piece count limits accepted by Config.Validate.
const (
	MinPieceCount = 6
	MaxPieceCount = 300
)

// gridAspect is the target width:height ratio of the planned grid.
const gridAspect = 4.0 / 3.0

// Grid is the logical piece layout of a puzzle.
type Grid struct {
	Rows, Cols int
}

// PlanGrid derives a grid from a target piece count. The grid holds at
// least n pieces (Rows*Cols >= n, possibly more) and approximates a 4:3
// width:height ratio. Pure and deterministic: the same n always yields
// the same grid.
//
// n must already be validated (see Config.Validate); PlanGrid does not
// defend against out-of-range input.
func PlanGrid(n int) Grid {
	cols := int(math.Ceil(math.Sqrt(float64(n) * gridAspect)))
	rows := int(math.Ceil(float64(n) / float64(cols)))
	return Grid{Rows: rows, Cols: cols}
}

// PieceCount returns the number of pieces the grid holds.
func (g Grid) PieceCount() int {
	return g.Rows * g.Cols
}
