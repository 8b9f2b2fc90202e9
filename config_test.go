package jigsaw

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_TargetPieceCount(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{"easy", Config{Difficulty: Easy}, 12},
		{"medium", Config{Difficulty: Medium}, 48},
		{"hard", Config{Difficulty: Hard}, 120},
		{"custom overrides difficulty", Config{Difficulty: Hard, PieceCount: 30}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.TargetPieceCount())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{Difficulty: Easy}.Validate())
	assert.NoError(t, Config{PieceCount: MinPieceCount}.Validate())
	assert.NoError(t, Config{PieceCount: MaxPieceCount}.Validate())
	assert.ErrorIs(t, Config{PieceCount: MinPieceCount - 1}.Validate(), ErrPieceCount)
	assert.ErrorIs(t, Config{PieceCount: MaxPieceCount + 1}.Validate(), ErrPieceCount)
	assert.ErrorIs(t, Config{PieceCount: -4}.Validate(), ErrPieceCount)
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestCoord_ID(t *testing.T) {
	assert.Equal(t, "2:7", Coord{Row: 2, Col: 7}.ID())
	assert.Equal(t, "0:0", Coord{}.ID())
}

func TestPiece_EncodePNG(t *testing.T) {
	puzzle, err := Generate(context.Background(), gradientImage(400, 300),
		Config{Difficulty: Easy}, WithSeed(2))
	require.NoError(t, err)

	p := puzzle.Pieces[0]
	var buf bytes.Buffer
	require.NoError(t, p.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, p.Width, img.Bounds().Dx())
	assert.Equal(t, p.Height, img.Bounds().Dy())
}
