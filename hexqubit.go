package gds

import (
	"fmt"
	"math"
)

// HexQubitConfig parameterizes a hexagonal transmon pad with six coupling
// pads and chamfered corners.
type HexQubitConfig struct {
	// R is the distance from the hexagon center to its sides.
	R float64

	// S is the cut length at each chamfered corner.
	S float64

	// PadGap is the spacing between the hexagon and the coupling pads.
	PadGap float64

	// ChamferGap is the spacing between a coupling pad and the chamfer.
	ChamferGap float64

	// PadDepth is the radial depth of each coupling pad.
	PadDepth float64

	// TailWidth and TailLength size the rectangular tail behind each
	// coupling pad.
	TailWidth  float64
	TailLength float64

	// GroundWidth and GroundLength size the ground strap rectangles at
	// the chamfered corners, GroundGap their spacing from the corner.
	GroundWidth  float64
	GroundLength float64
	GroundGap    float64

	// Anchor is the layout position of the hexagon center.
	Anchor Point

	// Layer is the layer everything is drawn on. Default 1.
	Layer int

	// KeepParts returns the individual component polygons instead of
	// the subtracted ground plane.
	KeepParts bool
}

// HexQubit builds a hexagonal qubit cell. By default it returns the
// ground-plane metalization: the outer envelope through the coupling-pad
// tails with the hexagon, pads, tails and ground straps cut out. With
// KeepParts set it returns the component polygons themselves.
func HexQubit(cfg HexQubitConfig) ([]*Polygon, error) {
	if cfg.Layer == 0 {
		cfg.Layer = 1
	}
	if cfg.R <= 0 || cfg.S < 0 || cfg.S >= 2*cfg.R || cfg.PadDepth <= 0 {
		return nil, fmt.Errorf("gds: hex qubit r=%g s=%g depth=%g: %w",
			cfg.R, cfg.S, cfg.PadDepth, ErrDegenerate)
	}

	var parts []*Polygon

	// Chamfered hexagon: two vertices per corner, repeated under the
	// six-fold rotation.
	rPt := Pt((cfg.R-cfg.S)/math.Sqrt(3), cfg.R)
	sPt := Pt((cfg.R+cfg.S/2)/math.Sqrt(3), cfg.R-cfg.S/2)
	var hexPoints []Point
	for n := 0; n < 6; n++ {
		a := -float64(n) * math.Pi / 3
		hexPoints = append(hexPoints, rPt.Rotate(a), sPt.Rotate(a))
	}
	parts = append(parts, NewPolygon(hexPoints, cfg.Layer))

	// Coupling pad above the top side: a symmetric trapezoid sloping
	// outward at the hexagon's 60 degree edge angle, then rotated copies.
	half := (cfg.R + cfg.PadGap - 2*cfg.ChamferGap - cfg.S)
	padAnchor := Pt(half/math.Sqrt(3), cfg.R+cfg.PadGap)
	pad := NewCurve(padAnchor).Rel(
		Pt(cfg.PadDepth/math.Sqrt(3), cfg.PadDepth),
		Pt(-(cfg.PadDepth+2*half)/math.Sqrt(3), cfg.PadDepth),
		Pt(-2*half/math.Sqrt(3), 0),
	).Polygon(cfg.Layer)
	for n := 0; n < 6; n++ {
		parts = append(parts, pad.Clone().Rotate(float64(n)*math.Pi/3, Pt(0, 0)))
	}

	// Tail rectangle behind each pad.
	tailTop := cfg.R + cfg.PadGap + cfg.PadDepth + cfg.TailLength
	tail := Rectangle(
		Pt(-cfg.TailWidth/2, tailTop),
		Pt(cfg.TailWidth/2, cfg.R+cfg.PadGap+cfg.PadDepth),
		cfg.Layer,
	)
	for n := 0; n < 6; n++ {
		parts = append(parts, tail.Clone().Rotate(float64(n)*math.Pi/3, Pt(0, 0)))
	}

	// Outer envelope: the dodecagon through the tail top edges.
	e1 := Pt(-cfg.TailWidth/2, tailTop)
	e2 := Pt(cfg.TailWidth/2, tailTop)
	var envPoints []Point
	for n := 0; n < 6; n++ {
		a := -float64(n) * math.Pi / 3
		envPoints = append(envPoints, e1.Rotate(a), e2.Rotate(a))
	}
	envelope := NewPolygon(envPoints, cfg.Layer)

	// Ground straps at the chamfered corners.
	gy := (cfg.R - cfg.S/4) * 2 / math.Sqrt(3)
	ground := Rectangle(
		Pt(-cfg.GroundWidth/2, gy+cfg.GroundGap+cfg.GroundLength),
		Pt(cfg.GroundWidth/2, gy+cfg.GroundGap),
		cfg.Layer,
	)
	for n := 0; n < 6; n++ {
		parts = append(parts, ground.Clone().Rotate(math.Pi/6+float64(n)*math.Pi/3, Pt(0, 0)))
	}

	if cfg.KeepParts {
		for _, p := range parts {
			p.Translate(cfg.Anchor.X, cfg.Anchor.Y)
		}
		return parts, nil
	}

	plane := Subtract([]*Polygon{envelope}, parts, cfg.Layer)
	for _, p := range plane {
		p.Translate(cfg.Anchor.X, cfg.Anchor.Y)
	}
	Logger().Debug("hex qubit built",
		"r", cfg.R, "s", cfg.S, "pieces", len(plane), "layer", cfg.Layer)
	return plane, nil
}
