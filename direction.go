package gds

import "math"

// Direction selects an axis orientation for shape placement and path
// segments.
type Direction int

const (
	// Up points along +y.
	Up Direction = iota

	// Down points along -y.
	Down

	// Left points along -x.
	Left

	// Right points along +x.
	Right
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Angle returns the direction as an angle in radians (0 is right,
// counter-clockwise positive).
func (d Direction) Angle() float64 {
	switch d {
	case Up:
		return math.Pi / 2
	case Down:
		return -math.Pi / 2
	case Left:
		return math.Pi
	default:
		return 0
	}
}

// Vector returns the unit vector for the direction.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Pt(0, 1)
	case Down:
		return Pt(0, -1)
	case Left:
		return Pt(-1, 0)
	default:
		return Pt(1, 0)
	}
}
