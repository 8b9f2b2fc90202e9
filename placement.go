package jigsaw

// DefaultSnapThreshold is the maximum distance, in canvas units,
// between a proposed position and the correct position at which
// placement still snaps. Independent of piece size.
const DefaultSnapThreshold = 20.0

// Placement is the outcome of evaluating a proposed piece position.
type Placement struct {
	// Position is where the piece ends up: the exact correct position
	// when snapped, the proposed position otherwise.
	Position Point

	// Placed reports whether the piece snapped to its correct position.
	Placed bool
}

// EvaluatePlacement decides whether a proposed position counts as
// correctly placed. Within threshold of the piece's correct position
// the piece hard-snaps onto it; otherwise the proposed position stands.
//
// Pure given its inputs: it neither mutates the piece nor cares how the
// proposed position was derived (drag delta, keyboard nudge, ...).
func EvaluatePlacement(p *Piece, proposed Point, threshold float64) Placement {
	if proposed.Distance(p.Correct) < threshold {
		return Placement{Position: p.Correct, Placed: true}
	}
	return Placement{Position: proposed, Placed: false}
}
