package gds

import (
	"errors"
	"math"
	"testing"
)

func TestLabel_Basic(t *testing.T) {
	polys, err := Label("A1", 10, Pt(0, 0), 5)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if len(polys) == 0 {
		t.Fatal("no polygons produced")
	}
	b := polys[0].Bounds()
	for _, p := range polys[1:] {
		b = b.Union(p.Bounds())
	}
	// Glyphs sit above the baseline and within a couple of em of the pen.
	if b.Min.Y < -5 || b.Max.Y > 15 {
		t.Errorf("vertical bounds %v out of scale for size 10", b)
	}
	if b.Min.X < -1 || b.Max.X > 25 {
		t.Errorf("horizontal bounds %v out of scale for two glyphs", b)
	}
	for i, p := range polys {
		if p.Layer != 5 {
			t.Errorf("polygon %d layer = %d, want 5", i, p.Layer)
		}
		if len(p.Points) < 3 {
			t.Errorf("polygon %d has %d points", i, len(p.Points))
		}
	}
}

func TestLabel_CounterWindsOpposite(t *testing.T) {
	// "O" has an outer contour and an inner counter with opposite winding.
	polys, err := Label("O", 10, Pt(0, 0), 1)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if len(polys) < 2 {
		t.Fatalf("got %d contours, want outer plus counter", len(polys))
	}
	pos, neg := 0, 0
	for _, p := range polys {
		if p.Area() > 0 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		t.Errorf("windings not mixed: %d positive, %d negative", pos, neg)
	}
}

func TestLabel_AnchorTranslates(t *testing.T) {
	at0, err := Label("X", 8, Pt(0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	at1, err := Label("X", 8, Pt(100, 50), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(at0) != len(at1) {
		t.Fatalf("contour counts differ: %d vs %d", len(at0), len(at1))
	}
	for i := range at0 {
		b0, b1 := at0[i].Bounds(), at1[i].Bounds()
		if math.Abs(b1.Min.X-b0.Min.X-100) > 1e-9 || math.Abs(b1.Min.Y-b0.Min.Y-50) > 1e-9 {
			t.Errorf("contour %d did not translate with the anchor: %v vs %v", i, b0, b1)
		}
	}
}

func TestLabel_Empty(t *testing.T) {
	polys, err := Label("", 10, Pt(0, 0), 1)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if len(polys) != 0 {
		t.Errorf("empty string produced %d polygons", len(polys))
	}
}

func TestLabel_BadSize(t *testing.T) {
	for _, size := range []float64{0, -3} {
		if _, err := Label("A", size, Pt(0, 0), 1); !errors.Is(err, ErrDegenerate) {
			t.Errorf("size %g: err = %v, want ErrDegenerate", size, err)
		}
	}
}

func TestLabel_ScalesWithSize(t *testing.T) {
	small, err := Label("H", 5, Pt(0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	large, err := Label("H", 10, Pt(0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	hs := small[0].Bounds().Height()
	hl := large[0].Bounds().Height()
	if math.Abs(hl/hs-2) > 0.05 {
		t.Errorf("height ratio = %g, want about 2", hl/hs)
	}
}
