package gds

// Curve accumulates a polyline vertex by vertex. It is a lightweight
// builder for polygon outlines that are easier to express as a command
// sequence than as a literal point list.
type Curve struct {
	points []Point
}

// NewCurve starts a curve at the given point.
func NewCurve(start Point) *Curve {
	return &Curve{points: []Point{start}}
}

// LineTo appends straight line segments to the given absolute points and
// returns the curve for chaining.
func (c *Curve) LineTo(pts ...Point) *Curve {
	c.points = append(c.points, pts...)
	return c
}

// Rel appends straight line segments to points given relative to the
// current end point. All offsets share the same reference: the end point
// at the time of the call.
func (c *Curve) Rel(pts ...Point) *Curve {
	ref := c.points[len(c.points)-1]
	for _, p := range pts {
		c.points = append(c.points, ref.Add(p))
	}
	return c
}

// Points returns the accumulated vertex list.
func (c *Curve) Points() []Point {
	return c.points
}

// Polygon closes the curve into a polygon on the given layer.
func (c *Curve) Polygon(layer int) *Polygon {
	points := make([]Point, len(c.points))
	copy(points, c.points)
	return NewPolygon(points, layer)
}
