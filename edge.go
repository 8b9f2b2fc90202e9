package jigsaw

import (
	"fmt"
	"math/rand"
)

// EdgeKind classifies one of the four compass-oriented edges of a piece.
type EdgeKind uint8

const (
	// EdgeFlat is a straight edge, occurring only on the outer grid boundary.
	EdgeFlat EdgeKind = iota

	// EdgeTab is an outward protrusion that interlocks into a
	// neighboring piece's blank.
	EdgeTab

	// EdgeBlank is an inward indentation that receives a neighboring
	// piece's tab.
	EdgeBlank
)

// String returns the edge kind name.
func (k EdgeKind) String() string {
	switch k {
	case EdgeFlat:
		return "flat"
	case EdgeTab:
		return "tab"
	case EdgeBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Complement returns the kind the opposite side of a shared edge must
// carry: tab pairs with blank and vice versa. Flat complements flat.
func (k EdgeKind) Complement() EdgeKind {
	switch k {
	case EdgeTab:
		return EdgeBlank
	case EdgeBlank:
		return EdgeTab
	default:
		return EdgeFlat
	}
}

// PieceShape holds the four edge classifications of a piece in compass
// order. Derived once at generation time from the shared topology,
// never mutated afterward.
type PieceShape struct {
	Top, Right, Bottom, Left EdgeKind
}

// Topology is the rows x cols matrix of piece shapes for one puzzle.
type Topology [][]PieceShape

// GenerateTopology assigns edge kinds to every piece of the grid.
// Boundary edges stay flat. For each pair of adjacent pieces a fair
// coin flip from rng decides which side gets the tab and which the
// blank, so every internal edge is complementary by construction.
func GenerateTopology(g Grid, rng *rand.Rand) Topology {
	t := make(Topology, g.Rows)
	for r := range t {
		t[r] = make([]PieceShape, g.Cols) // zero value is all-flat
	}

	// Horizontal neighbors: (r,c).Right vs (r,c+1).Left.
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols-1; c++ {
			if rng.Intn(2) == 0 {
				t[r][c].Right = EdgeTab
				t[r][c+1].Left = EdgeBlank
			} else {
				t[r][c].Right = EdgeBlank
				t[r][c+1].Left = EdgeTab
			}
		}
	}

	// Vertical neighbors: (r,c).Bottom vs (r+1,c).Top.
	for r := 0; r < g.Rows-1; r++ {
		for c := 0; c < g.Cols; c++ {
			if rng.Intn(2) == 0 {
				t[r][c].Bottom = EdgeTab
				t[r+1][c].Top = EdgeBlank
			} else {
				t[r][c].Bottom = EdgeBlank
				t[r+1][c].Top = EdgeTab
			}
		}
	}

	return t
}

// Validate checks the topology invariants: flat on every boundary edge,
// complementary tab/blank on every internal edge. Returns nil if the
// topology is well formed.
func (t Topology) Validate() error {
	rows := len(t)
	if rows == 0 {
		return fmt.Errorf("jigsaw: empty topology")
	}
	cols := len(t[0])

	for r := 0; r < rows; r++ {
		if len(t[r]) != cols {
			return fmt.Errorf("jigsaw: ragged topology row %d", r)
		}
		for c := 0; c < cols; c++ {
			s := t[r][c]
			if r == 0 && s.Top != EdgeFlat {
				return fmt.Errorf("jigsaw: piece (%d,%d) top boundary is %s", r, c, s.Top)
			}
			if r == rows-1 && s.Bottom != EdgeFlat {
				return fmt.Errorf("jigsaw: piece (%d,%d) bottom boundary is %s", r, c, s.Bottom)
			}
			if c == 0 && s.Left != EdgeFlat {
				return fmt.Errorf("jigsaw: piece (%d,%d) left boundary is %s", r, c, s.Left)
			}
			if c == cols-1 && s.Right != EdgeFlat {
				return fmt.Errorf("jigsaw: piece (%d,%d) right boundary is %s", r, c, s.Right)
			}
			if c < cols-1 {
				if s.Right == EdgeFlat || t[r][c+1].Left != s.Right.Complement() {
					return fmt.Errorf("jigsaw: edge between (%d,%d) and (%d,%d) is %s/%s",
						r, c, r, c+1, s.Right, t[r][c+1].Left)
				}
			}
			if r < rows-1 {
				if s.Bottom == EdgeFlat || t[r+1][c].Top != s.Bottom.Complement() {
					return fmt.Errorf("jigsaw: edge between (%d,%d) and (%d,%d) is %s/%s",
						r, c, r+1, c, s.Bottom, t[r+1][c].Top)
				}
			}
		}
	}
	return nil
}
