package clip

import "math"

// Offset expands (positive margin) or shrinks (negative margin) a closed
// contour. Joins are mitered; a join whose miter would extend further
// than miterLimit times the margin is cut to a bevel, so re-entrant
// corners cannot grow unbounded spikes.
//
// The input orientation does not matter; the result keeps it. Contours
// that collapse entirely under a negative margin return nil.
func Offset(pts []Point, margin, miterLimit float64) []Point {
	n := len(pts)
	if n < 3 || margin == 0 {
		out := make([]Point, n)
		copy(out, pts)
		return out
	}
	if miterLimit < 1 {
		miterLimit = 1
	}

	// Work on a counter-clockwise copy so the outward side is fixed,
	// flipping back at the end.
	work := make([]Point, n)
	copy(work, pts)
	flipped := false
	if area(work) < 0 {
		reverse(work)
		flipped = true
	}

	var out []Point
	for i := 0; i < n; i++ {
		prev := work[(i+n-1)%n]
		cur := work[i]
		next := work[(i+1)%n]

		d1 := normalize(Point{cur.X - prev.X, cur.Y - prev.Y})
		d2 := normalize(Point{next.X - cur.X, next.Y - cur.Y})
		if (d1 == Point{}) || (d2 == Point{}) {
			continue // repeated vertex
		}
		// Outward normals for a CCW contour point right of travel.
		n1 := Point{d1.Y, -d1.X}
		n2 := Point{d2.Y, -d2.X}

		// Miter direction bisects the two normals.
		bis := Point{n1.X + n2.X, n1.Y + n2.Y}
		blen2 := bis.X*bis.X + bis.Y*bis.Y
		if blen2 < 1e-12 {
			// 180 degree reversal: square off with both normals.
			out = append(out,
				Point{snap(cur.X + margin*n1.X), snap(cur.Y + margin*n1.Y)},
				Point{snap(cur.X + margin*n2.X), snap(cur.Y + margin*n2.Y)})
			continue
		}
		// Scale so the miter point sits on both offset edge lines:
		// (n1+n2) * 2/|n1+n2|^2 = (n1+n2)/(1 + n1.n2).
		scale := 2 / blen2
		mx := cur.X + margin*bis.X*scale
		my := cur.Y + margin*bis.Y*scale
		// Miter length ratio relative to the margin.
		ratio := math.Hypot(mx-cur.X, my-cur.Y) / math.Abs(margin)
		if ratio > miterLimit {
			out = append(out,
				Point{snap(cur.X + margin*n1.X), snap(cur.Y + margin*n1.Y)},
				Point{snap(cur.X + margin*n2.X), snap(cur.Y + margin*n2.Y)})
			continue
		}
		out = append(out, Point{snap(mx), snap(my)})
	}

	if len(out) < 3 {
		return nil
	}
	// Shrunk past self-elimination: orientation flips when the contour
	// collapses through itself.
	if margin < 0 && area(out) <= 0 {
		return nil
	}
	if flipped {
		reverse(out)
	}
	return out
}

// normalize returns the unit vector, or the zero vector for zero input.
func normalize(p Point) Point {
	l := math.Hypot(p.X, p.Y)
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}
