package gds

import (
	"math"
	"testing"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		d     Direction
		str   string
		angle float64
		vec   Point
	}{
		{Up, "Up", math.Pi / 2, Pt(0, 1)},
		{Down, "Down", -math.Pi / 2, Pt(0, -1)},
		{Left, "Left", math.Pi, Pt(-1, 0)},
		{Right, "Right", 0, Pt(1, 0)},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.str {
			t.Errorf("%v.String() = %q, want %q", int(tt.d), got, tt.str)
		}
		if got := tt.d.Angle(); got != tt.angle {
			t.Errorf("%s.Angle() = %g, want %g", tt.str, got, tt.angle)
		}
		if got := tt.d.Vector(); got != tt.vec {
			t.Errorf("%s.Vector() = %v, want %v", tt.str, got, tt.vec)
		}
	}
	if got := Direction(42).String(); got != "Unknown" {
		t.Errorf("out-of-range String() = %q, want %q", got, "Unknown")
	}
}

func TestDirection_VectorMatchesAngle(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		want := Polar(d.Angle())
		got := d.Vector()
		if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
			t.Errorf("%s: Vector() = %v, Polar(Angle()) = %v", d, got, want)
		}
	}
}
