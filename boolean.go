package gds

import "github.com/qchiplab/gds/internal/clip"

// MiterLimit bounds how far a mitered offset corner may extend, in units
// of the offset margin. Too small rounds corners off, too large grows
// spikes at sharp angles.
const MiterLimit = 10

// Offset expands (positive margin) or shrinks (negative margin) the
// polygon, keeping its layer. Returns nil if the polygon collapses.
func Offset(p *Polygon, margin float64) *Polygon {
	out := clip.Offset(toClip(p.Points), margin, MiterLimit)
	if out == nil {
		return nil
	}
	res := NewPolygon(fromClip(out), p.Layer)
	res.Datatype = p.Datatype
	return res
}

// Subtract removes the hole polygons from the subject polygons and
// returns the remaining region as simple, hole-free polygons on the
// given layer. Regions that would enclose a hole come out fractured
// into side-by-side pieces, the form a GDSII boundary requires.
func Subtract(subject, holes []*Polygon, layer int) []*Polygon {
	subj := make([][]clip.Point, len(subject))
	for i, p := range subject {
		subj[i] = toClip(p.Points)
	}
	cut := make([][]clip.Point, len(holes))
	for i, p := range holes {
		cut[i] = toClip(p.Points)
	}
	var out []*Polygon
	for _, pts := range clip.Subtract(subj, cut) {
		out = append(out, NewPolygon(fromClip(pts), layer))
	}
	return out
}

func toClip(pts []Point) []clip.Point {
	out := make([]clip.Point, len(pts))
	for i, p := range pts {
		out[i] = clip.Point{X: p.X, Y: p.Y}
	}
	return out
}

func fromClip(pts []clip.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
