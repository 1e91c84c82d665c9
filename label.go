package gds

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// labelFont lazily parses the embedded Go Regular face used for mask
// labels.
var labelFont = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
})

// Label renders a string into layout polygons for chip IDs and dicing
// marks. The anchor is the baseline start, size the glyph height in µm.
// Glyph outlines come from the embedded Go Regular face; curves are
// flattened within the path tolerance.
//
// Glyph counters (the hole in an O) come out as separate polygons wound
// opposite to their outer contour, so a dark-field mask renders them
// correctly with even-odd filling.
func Label(s string, size float64, anchor Point, layer int) ([]*Polygon, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gds: label size %g: %w", size, ErrDegenerate)
	}
	f, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}

	var buf sfnt.Buffer
	// Load at a fixed ppem and scale to µm afterwards; 64 ppem keeps
	// hinting-free outlines precise enough for masks.
	const ppem = 64
	scale := size / ppem

	var polys []*Polygon
	pen := anchor
	for _, r := range s {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph index %q: %w", r, err)
		}
		segs, err := f.LoadGlyph(&buf, gi, fixed.I(ppem), nil)
		if err != nil {
			return nil, fmt.Errorf("load glyph %q: %w", r, err)
		}
		polys = append(polys, glyphPolygons(segs, pen, scale, layer)...)

		adv, err := f.GlyphAdvance(&buf, gi, fixed.I(ppem), font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph advance %q: %w", r, err)
		}
		pen.X += float64(adv) / 64 * scale
	}
	return polys, nil
}

// glyphPolygons converts glyph outline segments into polygons. Font
// coordinates grow downward; layout coordinates grow upward, so y flips
// around the baseline.
func glyphPolygons(segs sfnt.Segments, pen Point, scale float64, layer int) []*Polygon {
	toLayout := func(p fixed.Point26_6) Point {
		return Point{
			X: pen.X + float64(p.X)/64*scale,
			Y: pen.Y - float64(p.Y)/64*scale,
		}
	}

	var polys []*Polygon
	var contour []Point
	flush := func() {
		if len(contour) >= 3 {
			polys = append(polys, NewPolygon(contour, layer))
		}
		contour = nil
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			contour = append(contour, toLayout(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			contour = append(contour, toLayout(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			if len(contour) > 0 {
				p0 := contour[len(contour)-1]
				contour = appendQuad(contour, p0, toLayout(seg.Args[0]), toLayout(seg.Args[1]))
			}
		case sfnt.SegmentOpCubeTo:
			if len(contour) > 0 {
				p0 := contour[len(contour)-1]
				contour = appendCubic(contour, p0,
					toLayout(seg.Args[0]), toLayout(seg.Args[1]), toLayout(seg.Args[2]))
			}
		}
	}
	flush()
	return polys
}

// appendQuad flattens a quadratic Bezier by recursive midpoint
// subdivision until the control point sits within the flattening
// tolerance of the chord.
func appendQuad(dst []Point, p0, p1, p2 Point) []Point {
	if distanceToLine(p1, p0, p2) < flattenTolerance {
		return append(dst, p2)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)
	dst = appendQuad(dst, p0, q0, mid)
	return appendQuad(dst, mid, q1, p2)
}

// appendCubic flattens a cubic Bezier the same way, testing both control
// points against the chord.
func appendCubic(dst []Point, p0, p1, p2, p3 Point) []Point {
	if math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3)) < flattenTolerance {
		return append(dst, p3)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)
	dst = appendCubic(dst, p0, q0, r0, mid)
	return appendCubic(dst, mid, r1, q2, p3)
}

// distanceToLine returns the distance from p to the line through a and b.
func distanceToLine(p, a, b Point) float64 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return p.Distance(a)
	}
	return math.Abs(d.Cross(p.Sub(a))) / l
}
