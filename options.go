package jigsaw

import "runtime"

// Option configures a generation run.
// Use functional options to customize Generate behavior.
//
// Example:
//
//	// Reproducible generation for tests
//	puzzle, err := jigsaw.Generate(ctx, img, cfg, jigsaw.WithSeed(42))
type Option func(*genOptions)

// genOptions holds optional configuration for a generation run.
type genOptions struct {
	seed        int64
	seeded      bool
	tabRatio    float64
	snap        float64
	canvasW     int
	canvasH     int
	outline     bool
	parallelism int
}

// defaultGenOptions returns the default generation options.
func defaultGenOptions() genOptions {
	return genOptions{
		tabRatio:    DefaultTabRatio,
		snap:        DefaultSnapThreshold,
		outline:     true,
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithSeed fixes the pseudo-random seed for edge assignment, shuffle
// order, and scatter positions. Same seed, config, and image produce an
// identical puzzle. Without this option each run seeds itself from the
// clock.
func WithSeed(seed int64) Option {
	return func(o *genOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithTabRatio sets the tab height as a fraction of the nominal piece
// width. The default is DefaultTabRatio. Values are clamped to
// (0, 0.5]; padding grows with the ratio so tabs never clip.
func WithTabRatio(ratio float64) Option {
	return func(o *genOptions) {
		if ratio > 0 && ratio <= 0.5 {
			o.tabRatio = ratio
		}
	}
}

// WithSnapThreshold sets the maximum distance, in canvas units, at
// which a proposed position still snaps to the correct position. The
// default is DefaultSnapThreshold.
func WithSnapThreshold(px float64) Option {
	return func(o *genOptions) {
		if px > 0 {
			o.snap = px
		}
	}
}

// WithCanvasSize sets the play area pieces are scattered over when the
// configuration asks for a shuffle. The default is the source image
// size. The canvas must fit the largest rendered piece or generation
// fails with ErrCanvasSize.
func WithCanvasSize(width, height int) Option {
	return func(o *genOptions) {
		o.canvasW = width
		o.canvasH = height
	}
}

// WithOutline toggles the faint edge line stroked along each piece's
// silhouette. Enabled by default.
func WithOutline(enabled bool) Option {
	return func(o *genOptions) {
		o.outline = enabled
	}
}

// WithParallelism bounds the number of pieces rasterized concurrently
// during generation. The default is GOMAXPROCS. Values below one mean
// fully sequential extraction.
func WithParallelism(n int) Option {
	return func(o *genOptions) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}
