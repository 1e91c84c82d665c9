// Package clip provides the polygon operations the shape generators stay
// free of: offsetting (expand/shrink) with miter joins and boolean
// subtraction. Both work on plain coordinate slices so the package has no
// dependency on the public geometry types.
package clip

import "math"

// Point is a 2D coordinate in user units.
type Point struct {
	X, Y float64
}

// Scale is the grid the operations snap to: 1/Scale user units, matching
// the layout database resolution used elsewhere.
const Scale = 1000

// snap rounds a coordinate to the working grid.
func snap(v float64) float64 {
	return math.Round(v*Scale) / Scale
}

// area returns the signed area of a contour (shoelace formula).
func area(pts []Point) float64 {
	var a float64
	n := len(pts)
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// reverse flips a contour in place.
func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
