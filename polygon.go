package gds

import "math"

// Polygon is a closed boundary on a single layer. The contour is implicit:
// the last vertex connects back to the first.
type Polygon struct {
	Points   []Point
	Layer    int
	Datatype int
}

// NewPolygon creates a polygon from a vertex list.
func NewPolygon(points []Point, layer int) *Polygon {
	return &Polygon{
		Points: points,
		Layer:  layer,
	}
}

// Rectangle creates an axis-aligned rectangular polygon spanning the two
// corner points.
func Rectangle(p1, p2 Point, layer int) *Polygon {
	r := NewRect(p1, p2)
	return &Polygon{
		Points: []Point{
			r.Min,
			{X: r.Max.X, Y: r.Min.Y},
			r.Max,
			{X: r.Min.X, Y: r.Max.Y},
		},
		Layer: layer,
	}
}

// Transform applies an affine transformation to every vertex in place and
// returns the polygon for chaining.
func (p *Polygon) Transform(m Matrix) *Polygon {
	for i, pt := range p.Points {
		p.Points[i] = m.TransformPoint(pt)
	}
	return p
}

// Translate shifts the polygon by (dx, dy) and returns it for chaining.
func (p *Polygon) Translate(dx, dy float64) *Polygon {
	return p.Transform(Translation(dx, dy))
}

// Rotate rotates the polygon by angle radians about center and returns it
// for chaining.
func (p *Polygon) Rotate(angle float64, center Point) *Polygon {
	return p.Transform(Rotation(angle, center))
}

// Mirror reflects the polygon across the line through p1 and p2 and
// returns it for chaining.
func (p *Polygon) Mirror(p1, p2 Point) *Polygon {
	return p.Transform(MirrorAcross(p1, p2))
}

// Scale scales the polygon about center and returns it for chaining.
func (p *Polygon) Scale(sx, sy float64, center Point) *Polygon {
	m := Translation(center.X, center.Y).
		Multiply(Scaling(sx, sy)).
		Multiply(Translation(-center.X, -center.Y))
	return p.Transform(m)
}

// Clone creates a deep copy of the polygon.
func (p *Polygon) Clone() *Polygon {
	points := make([]Point, len(p.Points))
	copy(points, p.Points)
	return &Polygon{
		Points:   points,
		Layer:    p.Layer,
		Datatype: p.Datatype,
	}
}

// Bounds returns the bounding box of the polygon.
// An empty polygon has a zero bounds.
func (p *Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	b := Rect{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		b.Min.X = math.Min(b.Min.X, pt.X)
		b.Min.Y = math.Min(b.Min.Y, pt.Y)
		b.Max.X = math.Max(b.Max.X, pt.X)
		b.Max.Y = math.Max(b.Max.Y, pt.Y)
	}
	return b
}

// Area returns the signed area enclosed by the polygon using the shoelace
// formula. Positive for counter-clockwise orientation.
func (p *Polygon) Area() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// Centroid returns the area centroid of the polygon.
func (p *Polygon) Centroid() Point {
	n := len(p.Points)
	if n == 0 {
		return Point{}
	}
	area := p.Area()
	if area == 0 {
		// Degenerate: fall back to the vertex mean.
		var c Point
		for _, pt := range p.Points {
			c = c.Add(pt)
		}
		return c.Mul(1 / float64(n))
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	f := 1 / (6 * area)
	return Point{X: cx * f, Y: cy * f}
}

// ContainsPoint reports whether the point lies inside the polygon,
// using the even-odd rule.
func (p *Polygon) ContainsPoint(pt Point) bool {
	inside := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// SelfIntersects reports whether any two non-adjacent edges of the polygon
// cross each other.
func (p *Polygon) SelfIntersects() bool {
	n := len(p.Points)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := p.Points[i]
		a2 := p.Points[(i+1)%n]
		for j := i + 2; j < n; j++ {
			// Skip the edge pair sharing the wrap-around vertex.
			if i == 0 && j == n-1 {
				continue
			}
			b1 := p.Points[j]
			b2 := p.Points[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// segmentsCross reports whether segments a1-a2 and b1-b2 properly intersect.
func segmentsCross(a1, a2, b1, b2 Point) bool {
	d1 := a2.Sub(a1).Cross(b1.Sub(a1))
	d2 := a2.Sub(a1).Cross(b2.Sub(a1))
	d3 := b2.Sub(b1).Cross(a1.Sub(b1))
	d4 := b2.Sub(b1).Cross(a2.Sub(b1))
	return d1*d2 < 0 && d3*d4 < 0
}
