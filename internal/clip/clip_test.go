package clip

import (
	"math"
	"testing"
)

func square(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func bounds(pts []Point) (min, max Point) {
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

func TestOffset_ExpandSquare(t *testing.T) {
	out := Offset(square(0, 0, 10, 10), 2, 10)
	if len(out) != 4 {
		t.Fatalf("got %d points, want 4 (mitered square)", len(out))
	}
	min, max := bounds(out)
	if min.X != -2 || min.Y != -2 || max.X != 12 || max.Y != 12 {
		t.Errorf("bounds = %v %v, want (-2,-2)-(12,12)", min, max)
	}
	if got, want := area(out), 196.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("area = %g, want %g", got, want)
	}
}

func TestOffset_ShrinkSquare(t *testing.T) {
	out := Offset(square(0, 0, 10, 10), -3, 10)
	min, max := bounds(out)
	if min.X != 3 || min.Y != 3 || max.X != 7 || max.Y != 7 {
		t.Errorf("bounds = %v %v, want (3,3)-(7,7)", min, max)
	}
}

func TestOffset_CollapseReturnsNil(t *testing.T) {
	if out := Offset(square(0, 0, 4, 4), -3, 10); out != nil {
		t.Errorf("expected collapsed polygon, got %d points", len(out))
	}
}

func TestOffset_OrientationPreserved(t *testing.T) {
	cw := square(0, 0, 10, 10)
	reverse(cw)
	out := Offset(cw, 1, 10)
	if area(out) >= 0 {
		t.Error("clockwise input should stay clockwise")
	}
}

func TestOffset_MiterLimitBevels(t *testing.T) {
	// A needle vertex whose miter would shoot far past the limit.
	needle := []Point{{0, 0}, {100, 0}, {0, 1}}
	out := Offset(needle, 1, 2)
	// The sharp tip gets beveled, adding a vertex.
	if len(out) <= 3 {
		t.Errorf("expected beveled corner to add vertices, got %d", len(out))
	}
	for _, p := range out {
		if p.X > 110 {
			t.Errorf("miter spike at %v despite limit", p)
		}
	}
}

func TestOffset_ZeroMarginCopies(t *testing.T) {
	in := square(0, 0, 5, 5)
	out := Offset(in, 0, 10)
	if len(out) != 4 {
		t.Fatalf("got %d points, want 4", len(out))
	}
	out[0].X = 99
	if in[0].X == 99 {
		t.Error("offset must not alias its input")
	}
}

func TestSubtract_CenteredHole(t *testing.T) {
	out := Subtract(
		[][]Point{square(0, 0, 10, 10)},
		[][]Point{square(4, 4, 6, 6)},
	)
	if len(out) != 4 {
		t.Fatalf("got %d pieces, want 4 (band decomposition)", len(out))
	}
	var total float64
	for _, pts := range out {
		a := area(pts)
		if a <= 0 {
			t.Errorf("piece not counter-clockwise: area %g", a)
		}
		total += a
	}
	if math.Abs(total-96) > 1e-6 {
		t.Errorf("total area = %g, want 96", total)
	}
}

func TestSubtract_NoHoles(t *testing.T) {
	out := Subtract([][]Point{square(0, 0, 10, 10)}, nil)
	var total float64
	for _, pts := range out {
		total += area(pts)
	}
	if math.Abs(total-100) > 1e-6 {
		t.Errorf("total area = %g, want 100", total)
	}
}

func TestSubtract_HoleOutsideSubject(t *testing.T) {
	out := Subtract(
		[][]Point{square(0, 0, 10, 10)},
		[][]Point{square(20, 20, 25, 25)},
	)
	var total float64
	for _, pts := range out {
		total += area(pts)
	}
	if math.Abs(total-100) > 1e-6 {
		t.Errorf("total area = %g, want 100", total)
	}
}

func TestSubtract_HoleCoversSubject(t *testing.T) {
	out := Subtract(
		[][]Point{square(2, 2, 4, 4)},
		[][]Point{square(0, 0, 10, 10)},
	)
	if len(out) != 0 {
		t.Errorf("got %d pieces, want none", len(out))
	}
}

// containsEvenOdd reports whether any of the pieces covers the point.
func containsEvenOdd(pieces [][]Point, pt Point) bool {
	for _, pts := range pieces {
		inside := false
		n := len(pts)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := pts[i], pts[j]
			if (a.Y > pt.Y) != (b.Y > pt.Y) &&
				pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
				inside = !inside
			}
		}
		if inside {
			return true
		}
	}
	return false
}

func TestSubtract_HoleCrossingSubjectEdge(t *testing.T) {
	// The hole pokes out the right side of the subject, so its edges
	// cross the subject edge between vertex heights. Only the inner
	// overlap (area 6.4) may be removed.
	out := Subtract(
		[][]Point{square(0, 0, 10, 10)},
		[][]Point{{{8, 3}, {13, 5}, {8, 7}}},
	)
	var total float64
	for _, pts := range out {
		total += area(pts)
	}
	if math.Abs(total-93.6) > 1e-6 {
		t.Errorf("total area = %g, want 93.6", total)
	}
	if containsEvenOdd(out, Point{9, 5}) {
		t.Error("overlap region not removed")
	}
	for _, pt := range []Point{{9, 1}, {9, 9}, {4, 5}} {
		if !containsEvenOdd(out, pt) {
			t.Errorf("subject point %v lost", pt)
		}
	}
}

func TestSubtract_HoleCrossingBothSides(t *testing.T) {
	// A hole band running clean through the subject, wider than it.
	out := Subtract(
		[][]Point{square(0, 0, 10, 10)},
		[][]Point{{{-2, 4}, {12, 2}, {12, 6}, {-2, 8}}},
	)
	var total float64
	for _, pts := range out {
		total += area(pts)
	}
	// The hole covers the horizontal strip between its slanted top and
	// bottom edges: width 10, height 4 everywhere, area 40.
	if math.Abs(total-60) > 1e-6 {
		t.Errorf("total area = %g, want 60", total)
	}
}

func TestSubtract_TriangleHole(t *testing.T) {
	// Non-rectilinear holes exercise the interpolated band edges.
	out := Subtract(
		[][]Point{square(0, 0, 10, 10)},
		[][]Point{{{5, 2}, {8, 8}, {2, 8}}},
	)
	var total float64
	for _, pts := range out {
		total += area(pts)
	}
	if math.Abs(total-82) > 1e-6 {
		t.Errorf("total area = %g, want 82", total)
	}
}
