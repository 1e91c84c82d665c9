package gds

import (
	"fmt"
	"math"
)

// SQUIDConfig parameterizes a two-junction SQUID with base hooks.
type SQUIDConfig struct {
	// Direction is the evaporation direction; only Up and Down are
	// meaningful, anything else resets to Up with a warning.
	Direction Direction

	// BaseLength is the length of the base hooks connecting the SQUID
	// pads down to the circuit below.
	BaseLength float64

	// Anchor is the layout position of the lower-left pad corner.
	Anchor Point

	// JunctionSize is the (width, height) of the Josephson junction
	// lines. Default (0.15, 0.15).
	JunctionSize Point

	// PadSize is the (width, height) of the three junction pads.
	// Default (6, 8).
	PadSize Point

	// PadDistance is the (dx, dy) offset between pads. Default (18, 9).
	PadDistance Point

	// BaseLayer is the layer of the base hooks. Default 1.
	BaseLayer int

	// SQUIDLayer is the layer of pads and junction lines. Default 2.
	SQUIDLayer int
}

// withDefaults fills unset fields with the standard values.
func (cfg SQUIDConfig) withDefaults() SQUIDConfig {
	if cfg.JunctionSize == (Point{}) {
		cfg.JunctionSize = Pt(0.15, 0.15)
	}
	if cfg.PadSize == (Point{}) {
		cfg.PadSize = Pt(6, 8)
	}
	if cfg.PadDistance == (Point{}) {
		cfg.PadDistance = Pt(18, 9)
	}
	if cfg.BaseLayer == 0 {
		cfg.BaseLayer = 1
	}
	if cfg.SQUIDLayer == 0 {
		cfg.SQUIDLayer = 2
	}
	return cfg
}

// SQUID builds a SQUID loop: three junction pads, two vertical and two
// horizontal junction lines placed per the evaporation direction, and
// three base hooks on the base layer. The whole assembly is translated to
// the anchor.
//
// Out-of-range parameters are logged and, where the original process
// rules require it, reset to safe defaults; only non-positive dimensions
// are an error.
func SQUID(cfg SQUIDConfig) ([]*Polygon, error) {
	cfg = cfg.withDefaults()
	if cfg.BaseLength <= 0 || cfg.PadSize.X <= 0 || cfg.PadSize.Y <= 0 ||
		cfg.JunctionSize.X <= 0 || cfg.JunctionSize.Y <= 0 {
		return nil, fmt.Errorf("gds: squid base=%g pad=(%g,%g): %w",
			cfg.BaseLength, cfg.PadSize.X, cfg.PadSize.Y, ErrDegenerate)
	}
	log := Logger()

	if cfg.Direction != Up && cfg.Direction != Down {
		log.Warn("invalid squid direction, resetting",
			"direction", cfg.Direction.String(), "reset_to", Up.String())
		cfg.Direction = Up
	}
	if cfg.PadSize.X < 4 || cfg.PadSize.Y < 2 {
		log.Warn("squid junction pads are very small, this may cause problems",
			"pad_width", cfg.PadSize.X, "pad_height", cfg.PadSize.Y)
	}
	if cfg.BaseLength < cfg.PadSize.Y {
		log.Warn("squid base length shorter than the pad height, this may cause problems",
			"base_length", cfg.BaseLength, "pad_height", cfg.PadSize.Y)
	}
	if cfg.PadDistance.X < 2*cfg.PadSize.X || cfg.PadDistance.Y < cfg.PadSize.Y {
		reset := Pt(3*cfg.PadSize.X, cfg.PadSize.Y)
		log.Warn("squid junction pads too close, resetting distance",
			"dx", cfg.PadDistance.X, "dy", cfg.PadDistance.Y,
			"reset_dx", reset.X, "reset_dy", reset.Y)
		cfg.PadDistance = reset
	}

	dx, dy := cfg.PadDistance.X, cfg.PadDistance.Y
	px, py := cfg.PadSize.X, cfg.PadSize.Y
	jx, jy := cfg.JunctionSize.X, cfg.JunctionSize.Y

	var shapes []*Polygon

	// Three pads: two below, one centered above.
	shapes = append(shapes,
		Rectangle(Pt(0, 0), cfg.PadSize, cfg.SQUIDLayer),
		Rectangle(Pt(0, 0), cfg.PadSize, cfg.SQUIDLayer).Translate(dx, 0),
		Rectangle(Pt(0, 0), cfg.PadSize, cfg.SQUIDLayer).Translate(dx/2, dy),
	)

	// Junction lines bridge the pads with a 1 µm overlap on each end.
	vLen := dy - py + 2
	hLen := dx/2 - px + 2
	vLines := []*Polygon{
		Rectangle(Pt(0, 0), Pt(jx, vLen), cfg.SQUIDLayer),
		Rectangle(Pt(0, 0), Pt(jx, vLen), cfg.SQUIDLayer),
	}
	hLines := []*Polygon{
		Rectangle(Pt(0, 0), Pt(hLen, jy), cfg.SQUIDLayer),
		Rectangle(Pt(0, 0), Pt(hLen, jy), cfg.SQUIDLayer),
	}
	switch cfg.Direction {
	case Up:
		vLines[0].Translate(px-1-jx, py)
		vLines[1].Translate(dx+1, py)
		hLines[0].Translate(px-2, dy+1)
		hLines[1].Translate(dx/2+px, dy+1)
	case Down:
		vLines[0].Translate(dx/2+1, py-2)
		vLines[1].Translate(dx/2+px-1-jx, py-2)
		hLines[0].Translate(px, py-1-jy)
		hLines[1].Translate(dx/2+px-2, py-1-jy)
	}
	shapes = append(shapes, vLines...)
	shapes = append(shapes, hLines...)

	// Base hooks: a J-shaped outline of 2 µm wall thickness, one under
	// each lower pad plus a rotated copy for the upper pad.
	hook := func() *Polygon {
		return NewCurve(Pt(0, 0)).LineTo(
			Pt(4, 0),
			Pt(4, -cfg.BaseLength),
			Pt(2, -cfg.BaseLength),
			Pt(2, -2),
			Pt(0, -2),
		).Polygon(cfg.BaseLayer).Translate(1, py-1)
	}
	left := hook()
	right := hook().Mirror(Pt((dx+px)/2, 0), Pt((dx+px)/2, 1))
	top := hook().Rotate(math.Pi, Pt(dx/4+px/2, (dy+py)/2))
	shapes = append(shapes, left, right, top)

	for _, p := range shapes {
		p.Translate(cfg.Anchor.X, cfg.Anchor.Y)
	}

	log.Debug("squid built",
		"direction", cfg.Direction.String(),
		"base_length", cfg.BaseLength,
		"junction_size", fmt.Sprintf("(%.2f, %.2f)", jx, jy),
		"pad_size", fmt.Sprintf("(%.2f, %.2f)", px, py),
		"pad_distance", fmt.Sprintf("(%.2f, %.2f)", dx, dy),
		"squid_layer", cfg.SQUIDLayer,
		"base_layer", cfg.BaseLayer)
	return shapes, nil
}
