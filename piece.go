package jigsaw

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Coord identifies a piece's position in the logical grid. Immutable
// once assigned; unique per puzzle instance.
type Coord struct {
	Row, Col int
}

// ID returns the piece identity derived from the coordinate.
func (c Coord) ID() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// Piece is one puzzle piece: its grid identity and shape, the rendered
// raster payload, and its live placement state.
//
// Width and Height are the rendered (padded) raster dimensions, not the
// nominal cell size. All placement and scatter math must use these, or
// pieces overflow their bounds.
type Piece struct {
	Coord Coord
	Shape PieceShape

	// Image is the source region clipped to the silhouette, padded on
	// all sides to contain protruding tabs.
	Image   *image.RGBA
	Width   int
	Height  int
	Padding int

	// Correct is the fixed target position: the nominal grid position
	// (column x nominal width, row x nominal height). Immutable after
	// generation.
	//
	// Positions locate the top-left of the rendered (padded) raster,
	// so a solved board sits Padding pixels in from the canvas origin
	// with every neighbor aligned.
	Correct Point

	// Current is the live position, updated by placement evaluation.
	Current Point

	// Placed reports whether the piece sits at its correct position.
	Placed bool
}

// ID returns the piece's identity string.
func (p *Piece) ID() string {
	return p.Coord.ID()
}

// EncodePNG writes the rendered piece raster as a self-contained PNG,
// suitable for direct display by a rendering layer.
func (p *Piece) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.Image)
}

// clone returns a copy of the piece for handing out as a snapshot. The
// raster payload is shared: it is immutable after generation.
func (p *Piece) clone() *Piece {
	q := *p
	return &q
}
