package gds

import (
	"fmt"
	"math"
)

// flattenTolerance is the maximum sagitta, in µm, allowed when arcs are
// flattened to polylines. 10 nm keeps the error below the database unit.
const flattenTolerance = 0.01

// pathElement is a single routed piece of a path spine.
type pathElement interface {
	isPathElement()
}

// pathSegment is a straight spine piece.
type pathSegment struct {
	From, To Point
	Angle    float64
}

func (pathSegment) isPathElement() {}

// pathTurn is a circular spine piece around Center. Sweep is signed:
// positive turns left (counter-clockwise).
type pathTurn struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

func (pathTurn) isPathElement() {}

// Path routes one or more parallel tracks of equal width along a common
// spine, the way coplanar waveguides are drawn: for a CPW the two tracks
// are the gap trenches on either side of the center conductor.
//
// The spine starts at the anchor pointing along +x. Lengths accumulate
// along the spine, not along the individual tracks.
type Path struct {
	width    float64
	distance float64
	tracks   int
	layer    int
	datatype int

	pos    Point
	angle  float64
	length float64
	elems  []pathElement
}

// NewPath creates a path of parallel tracks.
//
// width is the width of each track, tracks the number of parallel tracks,
// and distance the center-to-center spacing between adjacent tracks. A CPW
// with center conductor c and gap g is NewPath(g, anchor, 2, c+g).
func NewPath(width float64, anchor Point, tracks int, distance float64) *Path {
	if tracks < 1 {
		tracks = 1
	}
	return &Path{
		width:    width,
		distance: distance,
		tracks:   tracks,
		pos:      anchor,
	}
}

// Position returns the current spine end point.
func (p *Path) Position() Point {
	return p.pos
}

// Direction returns the current spine heading in radians.
func (p *Path) Direction() float64 {
	return p.angle
}

// Length returns the accumulated spine length.
func (p *Path) Length() float64 {
	return p.length
}

// SetLayers places every track polygon on the given layer and returns the
// path for chaining.
func (p *Path) SetLayers(layer int) *Path {
	p.layer = layer
	return p
}

// Layer returns the layer the track polygons are placed on.
func (p *Path) Layer() int {
	return p.layer
}

// Segment extends the spine straight ahead by length.
func (p *Path) Segment(length float64) *Path {
	end := p.pos.Add(Polar(p.angle).Mul(length))
	p.elems = append(p.elems, pathSegment{From: p.pos, To: end, Angle: p.angle})
	p.pos = end
	p.length += math.Abs(length)
	return p
}

// SegmentDir turns the spine to the given axis direction, then extends it
// straight by length.
func (p *Path) SegmentDir(length float64, dir Direction) *Path {
	p.angle = dir.Angle()
	return p.Segment(length)
}

// Turn bends the spine around an arc of the given radius. turns is a
// sequence of quarter turns: "r" (quarter right), "l" (quarter left),
// "rr" (half right), "ll" (half left).
func (p *Path) Turn(radius float64, turns string) error {
	if radius <= 0 {
		return fmt.Errorf("gds: turn radius %g: %w", radius, ErrDegenerate)
	}
	var sweep float64
	switch turns {
	case "r":
		sweep = -math.Pi / 2
	case "rr":
		sweep = -math.Pi
	case "l":
		sweep = math.Pi / 2
	case "ll":
		sweep = math.Pi
	default:
		return fmt.Errorf("gds: unknown turn %q", turns)
	}
	// The arc center sits perpendicular to the heading, on the side the
	// path bends toward.
	side := math.Copysign(1, sweep)
	center := p.pos.Add(Polar(p.angle + side*math.Pi/2).Mul(radius))
	start := math.Atan2(p.pos.Y-center.Y, p.pos.X-center.X)
	p.elems = append(p.elems, pathTurn{
		Center: center,
		Radius: radius,
		Start:  start,
		Sweep:  sweep,
	})
	p.pos = center.Add(Polar(start + sweep).Mul(radius))
	p.angle += sweep
	p.length += radius * math.Abs(sweep)
	return nil
}

// trackOffsets returns the signed lateral offset of each track center from
// the spine. Positive offsets are to the left of the direction of travel.
func (p *Path) trackOffsets() []float64 {
	offsets := make([]float64, p.tracks)
	for i := range offsets {
		offsets[i] = p.distance * (float64(i) - float64(p.tracks-1)/2)
	}
	return offsets
}

// Polygons renders the path tracks as closed polygons, one per track per
// spine element. Arcs are flattened within flattenTolerance.
func (p *Path) Polygons() []*Polygon {
	var polys []*Polygon
	for _, elem := range p.elems {
		for _, off := range p.trackOffsets() {
			switch e := elem.(type) {
			case pathSegment:
				polys = append(polys, p.segmentPolygon(e, off))
			case pathTurn:
				if poly := p.turnPolygon(e, off); poly != nil {
					polys = append(polys, poly)
				}
			}
		}
	}
	return polys
}

// segmentPolygon renders one track of a straight piece as a rectangle.
func (p *Path) segmentPolygon(e pathSegment, offset float64) *Polygon {
	normal := Polar(e.Angle + math.Pi/2)
	c0 := e.From.Add(normal.Mul(offset))
	c1 := e.To.Add(normal.Mul(offset))
	half := normal.Mul(p.width / 2)
	poly := NewPolygon([]Point{
		c0.Sub(half),
		c1.Sub(half),
		c1.Add(half),
		c0.Add(half),
	}, p.layer)
	poly.Datatype = p.datatype
	return poly
}

// turnPolygon renders one track of an arc piece as an annular sector. The
// outer edge runs forward, the inner edge runs back, closing the strip.
func (p *Path) turnPolygon(e pathTurn, offset float64) *Polygon {
	// A track offset toward the arc center follows a smaller radius.
	side := math.Copysign(1, e.Sweep)
	trackRadius := e.Radius - side*offset
	inner := trackRadius - p.width/2
	outer := trackRadius + p.width/2
	if outer <= 0 {
		return nil
	}
	if inner < 0 {
		inner = 0
	}
	steps := arcSteps(outer, math.Abs(e.Sweep))
	points := make([]Point, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		a := e.Start + e.Sweep*float64(i)/float64(steps)
		points = append(points, e.Center.Add(Polar(a).Mul(outer)))
	}
	for i := steps; i >= 0; i-- {
		a := e.Start + e.Sweep*float64(i)/float64(steps)
		points = append(points, e.Center.Add(Polar(a).Mul(inner)))
	}
	poly := NewPolygon(points, p.layer)
	poly.Datatype = p.datatype
	return poly
}

// arcSteps returns the flattening step count for an arc of the given
// radius and absolute sweep angle.
func arcSteps(radius, sweep float64) int {
	if radius <= flattenTolerance {
		return 1
	}
	// Chord step angle keeping the sagitta under the tolerance.
	step := 2 * math.Acos(1-flattenTolerance/radius)
	steps := int(math.Ceil(sweep / step))
	if steps < 2 {
		steps = 2
	}
	return steps
}
