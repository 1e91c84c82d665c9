package gds

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translation creates a translation matrix.
func Translation(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scaling creates a scaling matrix about the origin.
func Scaling(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotation creates a rotation matrix about center (angle in radians).
func Rotation(angle float64, center Point) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: center.X - cos*center.X + sin*center.Y,
		D: sin, E: cos, F: center.Y - sin*center.X - cos*center.Y,
	}
}

// MirrorAcross creates a reflection matrix across the line through p1 and p2.
// Degenerate lines (p1 == p2) reflect through the point p1.
func MirrorAcross(p1, p2 Point) Matrix {
	d := p2.Sub(p1)
	l2 := d.Dot(d)
	if l2 == 0 {
		// Point reflection.
		return Matrix{
			A: -1, B: 0, C: 2 * p1.X,
			D: 0, E: -1, F: 2 * p1.Y,
		}
	}
	// Householder reflection across the line direction, shifted to p1.
	a := (d.X*d.X - d.Y*d.Y) / l2
	b := 2 * d.X * d.Y / l2
	return Matrix{
		A: a, B: b, C: p1.X - a*p1.X - b*p1.Y,
		D: b, E: -a, F: p1.Y - b*p1.X + a*p1.Y,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transformation and whether it exists.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}
