package jigsaw

import (
	"context"
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

// Puzzle is the result of one generation run: the piece collection plus
// the geometry it was generated against.
type Puzzle struct {
	Grid   Grid
	Pieces []*Piece

	// NominalWidth and NominalHeight are the pre-padding cell size:
	// source image size divided by the grid dimension.
	NominalWidth  float64
	NominalHeight float64

	// CanvasWidth and CanvasHeight bound the play area pieces are
	// scattered over.
	CanvasWidth  int
	CanvasHeight int

	// TabSize is the knob height in canvas units; Padding the raster
	// margin reserved for it on every side of every piece.
	TabSize float64
	Padding int

	// SnapThreshold is the placement tolerance this puzzle was
	// generated with.
	SnapThreshold float64

	// Seed reproduces the run: same seed, config, and image yield an
	// identical puzzle.
	Seed int64
}

// Generate runs the full assembly pipeline: plan the grid, assign edge
// topology, build each piece's silhouette, clip the source image into
// padded per-piece rasters, then either scatter the pieces over the
// canvas (shuffle) or place them solved.
//
// The configuration must be validated by the caller; a nil or empty
// source image fails with ErrSourceImage. Rasterization runs on a
// bounded worker group and honors ctx: cancellation aborts the whole
// run and no partial piece set is returned.
func Generate(ctx context.Context, src image.Image, cfg Config, opts ...Option) (*Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil || src.Bounds().Empty() {
		return nil, ErrSourceImage
	}

	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	start := time.Now()
	b := src.Bounds()
	g := PlanGrid(cfg.TargetPieceCount())

	// One PRNG drives topology, shuffle order, and scatter, in that
	// order, so a seed pins the entire run.
	rng := rand.New(rand.NewSource(o.seed))
	topo := GenerateTopology(g, rng)

	nomW := float64(b.Dx()) / float64(g.Cols)
	nomH := float64(b.Dy()) / float64(g.Rows)
	tabSize := o.tabRatio * nomW
	pad := int(math.Ceil(tabSize))

	canvasW, canvasH := o.canvasW, o.canvasH
	if canvasW <= 0 || canvasH <= 0 {
		canvasW, canvasH = b.Dx(), b.Dy()
	}

	Logger().Debug("planning puzzle",
		"rows", g.Rows, "cols", g.Cols, "pieces", g.PieceCount(),
		"nominal_w", nomW, "nominal_h", nomH, "padding", pad, "seed", o.seed)

	pieces := make([]*Piece, 0, g.PieceCount())
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			// Cell boundaries are rounded per-cell so the grid tiles
			// the image exactly even when it does not divide evenly.
			x0 := int(math.Round(float64(c) * nomW))
			y0 := int(math.Round(float64(r) * nomH))
			cw := int(math.Round(float64(c+1)*nomW)) - x0
			ch := int(math.Round(float64(r+1)*nomH)) - y0

			p := &Piece{
				Coord:   Coord{Row: r, Col: c},
				Shape:   topo[r][c],
				Width:   cw + 2*pad,
				Height:  ch + 2*pad,
				Padding: pad,
				Correct: Pt(float64(c)*nomW, float64(r)*nomH),
			}
			pieces = append(pieces, p)

			eg.Go(func() error {
				if err := ectx.Err(); err != nil {
					return err
				}
				sil := Silhouette(float64(cw), float64(ch), p.Shape, tabSize)
				p.Image = extractPiece(src, image.Pt(x0, y0), cw, ch, sil, pad, o.outline)
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("jigsaw: generation aborted: %w", err)
	}

	if cfg.Shuffle {
		for _, p := range pieces {
			if p.Width > canvasW || p.Height > canvasH {
				return nil, fmt.Errorf("%w: piece %s is %dx%d, canvas %dx%d",
					ErrCanvasSize, p.ID(), p.Width, p.Height, canvasW, canvasH)
			}
		}
		rng.Shuffle(len(pieces), func(i, j int) {
			pieces[i], pieces[j] = pieces[j], pieces[i]
		})
		// Scatter within the canvas using rendered dimensions, so no
		// piece ends up even partially off-canvas.
		for _, p := range pieces {
			p.Current = Pt(
				rng.Float64()*float64(canvasW-p.Width),
				rng.Float64()*float64(canvasH-p.Height),
			)
		}
	} else {
		for _, p := range pieces {
			p.Current = p.Correct
			p.Placed = true
		}
	}

	Logger().Info("puzzle generated",
		"pieces", len(pieces), "shuffled", cfg.Shuffle,
		"elapsed", time.Since(start))

	return &Puzzle{
		Grid:          g,
		Pieces:        pieces,
		NominalWidth:  nomW,
		NominalHeight: nomH,
		CanvasWidth:   canvasW,
		CanvasHeight:  canvasH,
		TabSize:       tabSize,
		Padding:       pad,
		SnapThreshold: o.snap,
		Seed:          o.seed,
	}, nil
}
