package jigsaw

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradientImage returns a w x h image with position-dependent colors,
// so neighboring pieces get distinguishable pixels.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 0x60,
				A: 0xff,
			})
		}
	}
	return img
}

func TestGenerate_EasyLayout(t *testing.T) {
	puzzle, err := Generate(context.Background(), gradientImage(800, 600),
		Config{Difficulty: Easy}, WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, Grid{Rows: 3, Cols: 4}, puzzle.Grid)
	require.Len(t, puzzle.Pieces, 12)
	assert.Equal(t, 200.0, puzzle.NominalWidth)
	assert.Equal(t, 200.0, puzzle.NominalHeight)

	// Correct positions form a regular grid of nominal cells.
	for _, p := range puzzle.Pieces {
		want := Pt(float64(p.Coord.Col)*puzzle.NominalWidth, float64(p.Coord.Row)*puzzle.NominalHeight)
		assert.Equal(t, want, p.Correct, "piece %s", p.ID())
	}

	// All shared edges pairwise complementary.
	topo := make(Topology, puzzle.Grid.Rows)
	for i := range topo {
		topo[i] = make([]PieceShape, puzzle.Grid.Cols)
	}
	for _, p := range puzzle.Pieces {
		topo[p.Coord.Row][p.Coord.Col] = p.Shape
	}
	assert.NoError(t, topo.Validate())
}

func TestGenerate_RenderedDimensionsIncludePadding(t *testing.T) {
	puzzle, err := Generate(context.Background(), gradientImage(800, 600),
		Config{Difficulty: Easy}, WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 40, puzzle.Padding) // 0.2 * 200 nominal width

	for _, p := range puzzle.Pieces {
		require.NotNil(t, p.Image, "piece %s has no raster", p.ID())
		b := p.Image.Bounds()
		assert.Equal(t, p.Width, b.Dx(), "piece %s reported width", p.ID())
		assert.Equal(t, p.Height, b.Dy(), "piece %s reported height", p.ID())
		assert.Greater(t, p.Width, int(puzzle.NominalWidth)-1+2*puzzle.Padding-1,
			"piece %s raster must include padding", p.ID())
	}
}

func TestGenerate_UnshuffledStartsSolved(t *testing.T) {
	puzzle, err := Generate(context.Background(), gradientImage(400, 300),
		Config{Difficulty: Easy, Shuffle: false}, WithSeed(7))
	require.NoError(t, err)

	for _, p := range puzzle.Pieces {
		assert.Equal(t, p.Correct, p.Current, "piece %s", p.ID())
		assert.True(t, p.Placed, "piece %s", p.ID())
	}
}

func TestGenerate_ShuffleStaysOnCanvas(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		puzzle, err := Generate(context.Background(), gradientImage(800, 600),
			Config{Difficulty: Medium, Shuffle: true}, WithSeed(seed))
		require.NoError(t, err)

		for _, p := range puzzle.Pieces {
			assert.GreaterOrEqual(t, p.Current.X, 0.0)
			assert.GreaterOrEqual(t, p.Current.Y, 0.0)
			assert.LessOrEqual(t, p.Current.X+float64(p.Width), float64(puzzle.CanvasWidth),
				"seed %d piece %s overflows right", seed, p.ID())
			assert.LessOrEqual(t, p.Current.Y+float64(p.Height), float64(puzzle.CanvasHeight),
				"seed %d piece %s overflows bottom", seed, p.ID())
			assert.False(t, p.Placed)
		}
	}
}

func TestGenerate_SeedReproducible(t *testing.T) {
	img := gradientImage(400, 300)
	cfg := Config{Difficulty: Easy, Shuffle: true}

	a, err := Generate(context.Background(), img, cfg, WithSeed(99))
	require.NoError(t, err)
	b, err := Generate(context.Background(), img, cfg, WithSeed(99))
	require.NoError(t, err)

	require.Len(t, b.Pieces, len(a.Pieces))
	for i := range a.Pieces {
		assert.Equal(t, a.Pieces[i].Coord, b.Pieces[i].Coord, "shuffle order differs at %d", i)
		assert.Equal(t, a.Pieces[i].Shape, b.Pieces[i].Shape)
		assert.Equal(t, a.Pieces[i].Current, b.Pieces[i].Current)
	}
}

func TestGenerate_InvalidInputs(t *testing.T) {
	ctx := context.Background()
	img := gradientImage(400, 300)

	_, err := Generate(ctx, img, Config{PieceCount: 5})
	assert.ErrorIs(t, err, ErrPieceCount)

	_, err = Generate(ctx, img, Config{PieceCount: 301})
	assert.ErrorIs(t, err, ErrPieceCount)

	_, err = Generate(ctx, nil, Config{Difficulty: Easy})
	assert.ErrorIs(t, err, ErrSourceImage)

	_, err = Generate(ctx, image.NewRGBA(image.Rectangle{}), Config{Difficulty: Easy})
	assert.ErrorIs(t, err, ErrSourceImage)

	_, err = Generate(ctx, img, Config{Difficulty: Easy, Shuffle: true},
		WithSeed(1), WithCanvasSize(50, 50))
	assert.ErrorIs(t, err, ErrCanvasSize)
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, gradientImage(800, 600), Config{Difficulty: Hard}, WithSeed(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_CustomPieceCountBounds(t *testing.T) {
	puzzle, err := Generate(context.Background(), gradientImage(600, 450),
		Config{PieceCount: 30}, WithSeed(3))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(puzzle.Pieces), 30)
}
