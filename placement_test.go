package jigsaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePlacement_SnapBoundary(t *testing.T) {
	p := &Piece{Correct: Pt(100, 100)}

	tests := []struct {
		name     string
		proposed Point
		placed   bool
	}{
		{"exact", Pt(100, 100), true},
		{"well inside", Pt(105, 100), true},
		{"just inside", Pt(100+DefaultSnapThreshold-0.01, 100), true},
		{"just outside", Pt(100+DefaultSnapThreshold+0.01, 100), false},
		{"far away", Pt(150, 100), false},
		{"diagonal inside", Pt(110, 110), true},   // distance ~14.1
		{"diagonal outside", Pt(115, 115), false}, // distance ~21.2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EvaluatePlacement(p, tt.proposed, DefaultSnapThreshold)
			assert.Equal(t, tt.placed, res.Placed)
			if tt.placed {
				assert.Equal(t, p.Correct, res.Position, "snapped placement must land exactly on the target")
			} else {
				assert.Equal(t, tt.proposed, res.Position, "rejected placement must keep the proposed position")
			}
		})
	}
}

func TestEvaluatePlacement_Idempotent(t *testing.T) {
	p := &Piece{Correct: Pt(40, 40)}
	proposed := Pt(45, 43)

	first := EvaluatePlacement(p, proposed, DefaultSnapThreshold)
	second := EvaluatePlacement(p, proposed, DefaultSnapThreshold)
	assert.Equal(t, first, second)
}

func TestEvaluatePlacement_DoesNotMutatePiece(t *testing.T) {
	p := &Piece{Correct: Pt(40, 40), Current: Pt(200, 200)}
	EvaluatePlacement(p, Pt(41, 41), DefaultSnapThreshold)
	assert.Equal(t, Pt(200, 200), p.Current)
	assert.False(t, p.Placed)
}
