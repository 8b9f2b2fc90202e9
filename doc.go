// Package jigsaw turns an arbitrary raster image into a set of
// interlocking jigsaw-puzzle pieces, evaluates piece placement, and
// detects when the puzzle is solved.
//
// # Overview
//
// Generation is a pure pipeline: a requested piece count is planned
// into a rows x cols grid, every shared edge between neighboring cells
// is assigned a complementary tab/blank pair, each piece's outline is
// built from cubic bezier curves, and the source image is clipped to
// that outline into a padded per-piece raster.
//
// # Quick Start
//
//	import "github.com/gopuzzle/jigsaw"
//
//	puzzle, err := jigsaw.Generate(ctx, img, jigsaw.Config{
//	    Difficulty: jigsaw.Easy,
//	    Shuffle:    true,
//	})
//
// At play time, wrap the generation in a Session and feed it
// pointer-driven position updates:
//
//	s := jigsaw.NewSession()
//	s.Regenerate(ctx, img, cfg)
//	piece, _ := s.EvaluatePlacement(id, jigsaw.Pt(x, y))
//	if s.Solved() { ... }
//
// # Determinism
//
// All randomness (edge assignment, shuffle order, scatter positions)
// flows from a single seed. Pass WithSeed to make a generation run
// fully reproducible.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// A piece's correct position is its nominal grid position (column x
// nominal width, row x nominal height). Its rendered raster is larger
// than the nominal cell: a padding margin on all sides makes room for
// protruding tabs.
package jigsaw
