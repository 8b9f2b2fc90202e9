package jigsaw

// DefaultTabRatio is the tab height as a fraction of the nominal piece
// width. Tabs protrude (and blanks recess) by this fraction.
const DefaultTabRatio = 0.2

// Knob profile constants, expressed in a local edge frame: x runs along
// the edge as a fraction of edge length, y is the offset toward the
// bulge side in units of tab height. The profile is symmetric about the
// edge midpoint and meets the corners tangent to the edge, so a tab and
// the matching blank trace the same world-space curve regardless of
// traversal direction.
const (
	knobNeckX  = 0.38 // neck anchor along the edge
	knobNeckY  = 0.30 // neck anchor height
	knobRunC1X = 0.25 // first run-in control (on the baseline)
	knobRunC2X = 0.46 // second run-in control
	knobRunC2Y = 0.03
	knobHeadCX = 0.10 // head control; past the neck anchor, widening the head
	knobHeadCY = 1.23 // head control height; puts the head apex at ~1.0
)

// Silhouette builds the closed outline of a piece with nominal size
// w x h and the given edge shape. The path is traversed clockwise from
// the top-left nominal corner. Flat edges are straight segments; tab
// and blank edges carry a three-cubic knob bulging outward (tab) or
// inward (blank) by tabSize, constructed as exact sign-mirrors of each
// other so neighboring pieces interlock seamlessly.
//
// An all-flat shape degenerates to a plain rectangle.
func Silhouette(w, h float64, shape PieceShape, tabSize float64) *Path {
	type frame struct {
		start, end Point
		normal     Point // outward unit normal
	}
	edges := [4]struct {
		frame
		kind EdgeKind
	}{
		{frame{Pt(0, 0), Pt(w, 0), Pt(0, -1)}, shape.Top},
		{frame{Pt(w, 0), Pt(w, h), Pt(1, 0)}, shape.Right},
		{frame{Pt(w, h), Pt(0, h), Pt(0, 1)}, shape.Bottom},
		{frame{Pt(0, h), Pt(0, 0), Pt(-1, 0)}, shape.Left},
	}

	p := NewPath()
	p.MoveTo(0, 0)
	for _, e := range edges {
		switch e.kind {
		case EdgeFlat:
			p.LineTo(e.end.X, e.end.Y)
		case EdgeTab:
			appendKnob(p, e.start, e.end, e.normal, tabSize)
		case EdgeBlank:
			appendKnob(p, e.start, e.end, e.normal, -tabSize)
		}
	}
	p.Close()
	return p
}

// appendKnob emits the three cubic segments of a knob along the edge
// from s to e. height is the signed bulge: positive along the outward
// normal (tab), negative for the mirrored indentation (blank).
func appendKnob(p *Path, s, e, normal Point, height float64) {
	along := e.Sub(s)
	// at maps local profile coordinates into world space.
	at := func(x, y float64) Point {
		return s.Add(along.Mul(x)).Add(normal.Mul(y * height))
	}

	neckIn := at(knobNeckX, knobNeckY)
	neckOut := at(1-knobNeckX, knobNeckY)

	cubicTo := func(c1, c2, pt Point) {
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
	}

	// Run-in: leave the corner flat, rise into the neck.
	cubicTo(at(knobRunC1X, 0), at(knobRunC2X, knobRunC2Y), neckIn)
	// Head: a wide arc over the midpoint; control points sit outside the
	// neck anchors so the head overhangs and the pieces lock.
	cubicTo(at(knobHeadCX, knobHeadCY), at(1-knobHeadCX, knobHeadCY), neckOut)
	// Run-out: mirror of the run-in back down to the far corner.
	cubicTo(at(1-knobRunC2X, knobRunC2Y), at(1-knobRunC1X, 0), e)
}
