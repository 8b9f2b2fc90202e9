package jigsaw

import (
	"image"
	"image/color"

	"github.com/gopuzzle/jigsaw/internal/raster"
)

// outlineColor is the faint rim stroked along piece silhouettes.
var outlineColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0x50}

// extractPiece rasterizes the source region of one piece, clipped to
// its silhouette. origin is the region's top-left in source space, w
// and h the nominal cell size. The returned raster measures
// (w+2*pad) x (h+2*pad): the silhouette is drawn offset by pad so
// outward tabs land inside the margin.
//
// Source pixels outside the image bounds are simply absent from the
// output; a partially out-of-bounds region never fails.
func extractPiece(src image.Image, origin image.Point, w, h int, sil *Path, pad int, outline bool) *image.RGBA {
	rw := w + 2*pad
	rh := h + 2*pad

	mask := raster.Mask(convertPathElements(sil.Translate(float64(pad), float64(pad)).Elements()), rw, rh)

	out := image.NewRGBA(image.Rect(0, 0, rw, rh))
	sp := origin.Add(src.Bounds().Min).Sub(image.Pt(pad, pad))
	raster.Composite(out, src, sp, mask)

	if outline {
		raster.Outline(out, mask, outlineColor)
	}
	return out
}

// convertPathElements converts jigsaw.PathElement slice to
// raster.PathElement slice.
func convertPathElements(elements []PathElement) []raster.PathElement {
	result := make([]raster.PathElement, len(elements))
	for i, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			result[i] = raster.MoveTo{Point: raster.Pt(e.Point.X, e.Point.Y)}
		case LineTo:
			result[i] = raster.LineTo{Point: raster.Pt(e.Point.X, e.Point.Y)}
		case QuadTo:
			result[i] = raster.QuadTo{
				Control: raster.Pt(e.Control.X, e.Control.Y),
				Point:   raster.Pt(e.Point.X, e.Point.Y),
			}
		case CubicTo:
			result[i] = raster.CubicTo{
				Control1: raster.Pt(e.Control1.X, e.Control1.Y),
				Control2: raster.Pt(e.Control2.X, e.Control2.Y),
				Point:    raster.Pt(e.Point.X, e.Point.Y),
			}
		case Close:
			result[i] = raster.Close{}
		}
	}
	return result
}
