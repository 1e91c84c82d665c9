package clip

import (
	"math"
	"sort"
)

// edge is a non-horizontal contour edge, stored with YMin < YMax.
type edge struct {
	x0, y0 float64 // endpoint at yMin
	x1, y1 float64 // endpoint at yMax
	hole   bool    // true if the edge belongs to a hole contour
	id     int
}

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	return e.x0 + (y-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
}

// chain is a vertical run of band spans bounded by the same edge pair.
type chain struct {
	left, right *edge
	yTop        float64
	poly        []Point
}

// Subtract removes the hole contours from the subject contours using the
// even-odd rule and returns the remaining region as a set of simple,
// hole-free polygons.
//
// The result is produced by a horizontal band sweep: bands between
// consecutive vertex heights are cut into spans, and spans bounded by the
// same pair of source edges across neighboring bands are merged back into
// one quad. Regions with interior holes therefore come out fractured into
// side-by-side pieces, which is exactly the representation a GDSII
// boundary needs.
func Subtract(subject, holes [][]Point) [][]Point {
	edges := collectEdges(subject, false)
	edges = append(edges, collectEdges(holes, true)...)
	if len(edges) == 0 {
		return nil
	}

	// Band boundaries: every distinct vertex height, plus every height
	// where two edges cross. A crossing flips the left-to-right edge
	// order, so the band containing it would be classified wrongly on
	// one side of the crossing.
	ys := make([]float64, 0, 2*len(edges))
	for i := range edges {
		ys = append(ys, edges[i].y0, edges[i].y1)
	}
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if y, ok := crossingY(&edges[i], &edges[j]); ok {
				ys = append(ys, y)
			}
		}
	}
	sort.Float64s(ys)
	ys = dedupe(ys)

	var open []*chain
	var done [][]Point

	for bi := 0; bi+1 < len(ys); bi++ {
		y0, y1 := ys[bi], ys[bi+1]
		if y1-y0 < 1.0/Scale/2 {
			continue
		}
		ym := (y0 + y1) / 2

		// Edges spanning this band, ordered left to right.
		var active []*edge
		for i := range edges {
			if edges[i].y0 <= y0+1e-9 && edges[i].y1 >= y1-1e-9 {
				active = append(active, &edges[i])
			}
		}
		sort.Slice(active, func(i, j int) bool {
			return active[i].xAt(ym) < active[j].xAt(ym)
		})

		// Spans between edges where the subject is filled and no hole is.
		type span struct{ left, right *edge }
		var spans []span
		subjIn, holeIn := false, false
		for i, e := range active {
			if e.hole {
				holeIn = !holeIn
			} else {
				subjIn = !subjIn
			}
			if subjIn && !holeIn && i+1 < len(active) {
				spans = append(spans, span{left: e, right: active[i+1]})
			}
		}

		// Continue or open chains.
		var next []*chain
		for _, s := range spans {
			var found *chain
			for _, c := range open {
				if c.left.id == s.left.id && c.right.id == s.right.id &&
					math.Abs(c.yTop-y0) < 1e-9 {
					found = c
					break
				}
			}
			if found == nil {
				found = &chain{left: s.left, right: s.right}
				found.poly = []Point{
					{snap(s.left.xAt(y0)), snap(y0)},
					{snap(s.right.xAt(y0)), snap(y0)},
				}
			}
			found.yTop = y1
			next = append(next, found)
		}
		// Close chains that did not continue.
		for _, c := range open {
			if !containsChain(next, c) {
				done = append(done, closeChain(c.poly, c.left, c.right, c.yTop))
			}
		}
		open = next
	}
	for _, c := range open {
		done = append(done, closeChain(c.poly, c.left, c.right, c.yTop))
	}

	// Drop degenerate slivers the snapping may have flattened.
	out := done[:0]
	for _, p := range done {
		if math.Abs(area(p)) > 1.0/(Scale*Scale) {
			out = append(out, p)
		}
	}
	return out
}

// crossingY returns the height where the lines through a and b intersect,
// if that height lies strictly inside both edge spans. Crossings at edge
// endpoints are already band boundaries.
func crossingY(a, b *edge) (float64, bool) {
	sa := (a.x1 - a.x0) / (a.y1 - a.y0)
	sb := (b.x1 - b.x0) / (b.y1 - b.y0)
	if sa == sb {
		return 0, false
	}
	y := ((b.x0 - sb*b.y0) - (a.x0 - sa*a.y0)) / (sa - sb)
	lo := math.Max(a.y0, b.y0)
	hi := math.Min(a.y1, b.y1)
	if y <= lo+1e-9 || y >= hi-1e-9 {
		return 0, false
	}
	return y, true
}

// closeChain finishes a chain polygon by appending the top edge points in
// right-to-left order, yielding a counter-clockwise quad.
func closeChain(base []Point, left, right *edge, yTop float64) []Point {
	return append(base,
		Point{snap(right.xAt(yTop)), snap(yTop)},
		Point{snap(left.xAt(yTop)), snap(yTop)},
	)
}

func containsChain(chains []*chain, c *chain) bool {
	for _, x := range chains {
		if x == c {
			return true
		}
	}
	return false
}

// collectEdges flattens contours into non-horizontal edges.
func collectEdges(contours [][]Point, hole bool) []edge {
	var edges []edge
	id := 0
	if hole {
		id = 1 << 20
	}
	for _, pts := range contours {
		n := len(pts)
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			e := edge{hole: hole, id: id + i}
			if a.Y < b.Y {
				e.x0, e.y0, e.x1, e.y1 = a.X, a.Y, b.X, b.Y
			} else {
				e.x0, e.y0, e.x1, e.y1 = b.X, b.Y, a.X, a.Y
			}
			edges = append(edges, e)
		}
		id += n
	}
	return edges
}

// dedupe removes near-duplicate values from a sorted slice.
func dedupe(ys []float64) []float64 {
	out := ys[:0]
	for i, y := range ys {
		if i == 0 || y-out[len(out)-1] > 1e-9 {
			out = append(out, y)
		}
	}
	return out
}
