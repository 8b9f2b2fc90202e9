// Command jigsawgen cuts an image into jigsaw pieces and writes each
// piece as a standalone PNG, plus a reassembled contact sheet for
// eyeballing the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"

	_ "image/jpeg"

	"github.com/gopuzzle/jigsaw"
)

func main() {
	var (
		input      = flag.String("image", "", "source image (PNG or JPEG)")
		difficulty = flag.String("difficulty", "easy", "easy, medium, or hard")
		pieces     = flag.Int("pieces", 0, "custom piece count (overrides difficulty)")
		shuffle    = flag.Bool("shuffle", false, "scatter pieces over the canvas")
		seed       = flag.Int64("seed", 0, "random seed (0 = from the clock)")
		outDir     = flag.String("out", "pieces", "output directory")
		sheet      = flag.String("sheet", "", "write a reassembled contact sheet to this file")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := loadImage(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	diff, err := jigsaw.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}
	cfg := jigsaw.Config{
		Difficulty: diff,
		PieceCount: *pieces,
		Shuffle:    *shuffle,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var opts []jigsaw.Option
	if *seed != 0 {
		opts = append(opts, jigsaw.WithSeed(*seed))
	}

	puzzle, err := jigsaw.Generate(context.Background(), src, cfg, opts...)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, p := range puzzle.Pieces {
		name := filepath.Join(*outDir, fmt.Sprintf("piece_%d_%d.png", p.Coord.Row, p.Coord.Col))
		if err := writePiece(p, name); err != nil {
			log.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	if *sheet != "" {
		if err := writeSheet(puzzle, *sheet); err != nil {
			log.Fatalf("Failed to write contact sheet: %v", err)
		}
	}

	log.Printf("Wrote %d pieces (%dx%d grid, seed %d) to %s\n",
		len(puzzle.Pieces), puzzle.Grid.Rows, puzzle.Grid.Cols, puzzle.Seed, *outDir)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func writePiece(p *jigsaw.Piece, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.EncodePNG(f)
}

// writeSheet reassembles every piece at its correct position. The
// padded rasters overlap by design; interlocking tabs and blanks tile
// the plane exactly, so the sheet reproduces the source image.
func writeSheet(puzzle *jigsaw.Puzzle, path string) error {
	sheet := image.NewRGBA(image.Rect(0, 0,
		puzzle.CanvasWidth+2*puzzle.Padding, puzzle.CanvasHeight+2*puzzle.Padding))
	for _, p := range puzzle.Pieces {
		x, y := int(p.Correct.X), int(p.Correct.Y)
		r := image.Rect(x, y, x+p.Width, y+p.Height)
		draw.Draw(sheet, r, p.Image, image.Point{}, draw.Over)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, sheet)
}
