// Package raster converts vector paths to anti-aliased alpha masks and
// composites image regions through them. It is the CPU rasterization
// backend for piece extraction.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Point is a 2D point in device space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PathElement mirrors the public path element types so this package
// stays free of import cycles with the root package.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Mask rasterizes the path into a width x height alpha mask. Coverage
// is anti-aliased: pixels fully inside the path are opaque, pixels on
// the outline carry fractional alpha.
func Mask(elements []PathElement, width, height int) *image.Alpha {
	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			z.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case QuadTo:
			z.QuadTo(
				float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case CubicTo:
			z.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case Close:
			z.ClosePath()
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Composite draws src into dst through the mask. sp is the point in src
// corresponding to dst's origin; regions of src outside its bounds are
// simply not drawn, matching canvas drawImage semantics for partially
// out-of-bounds source rectangles.
func Composite(dst *image.RGBA, src image.Image, sp image.Point, mask *image.Alpha) {
	draw.DrawMask(dst, dst.Bounds(), src, sp, mask, image.Point{}, draw.Over)
}

// Outline tints the anti-aliased rim of the mask with col, giving the
// clipped raster a faint edge line for visual piece separation. The rim
// is the set of pixels with fractional coverage.
func Outline(dst *image.RGBA, mask *image.Alpha, col color.RGBA) {
	b := mask.Bounds()
	tint := image.NewUniform(col)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 || a == 0xff {
				continue
			}
			draw.Draw(dst, image.Rect(x, y, x+1, y+1), tint, image.Point{}, draw.Over)
		}
	}
}
