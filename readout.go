package gds

import (
	"fmt"
	"math"
)

// ResonatorConfig parameterizes a meandered readout resonator.
type ResonatorConfig struct {
	// Length is the target electrical length of the resonator, in µm.
	Length float64

	// CenterWidth is the width of the center conductor.
	CenterWidth float64

	// Gap is the width of each gap trench beside the center conductor.
	Gap float64

	// Anchor is the layout position of the readout-line end.
	Anchor Point

	// Layer is the layer the resonator is drawn on. Default 1.
	Layer int

	// CoupleEndLength is the straight run coupled to the readout line.
	// Default 300.
	CoupleEndLength float64

	// UnitLength is the straight run inside each S-shaped meander unit.
	// Default 200.
	UnitLength float64

	// QubitEndLength is the straight run coupled to the qubit.
	// Default 300.
	QubitEndLength float64

	// MaxSUnits caps the meander count; longer resonators are hard to
	// route on chip. Default 100.
	MaxSUnits int
}

// withDefaults fills unset fields with the standard values.
func (cfg ResonatorConfig) withDefaults() ResonatorConfig {
	if cfg.Layer == 0 {
		cfg.Layer = 1
	}
	if cfg.CoupleEndLength == 0 {
		cfg.CoupleEndLength = 300
	}
	if cfg.UnitLength == 0 {
		cfg.UnitLength = 200
	}
	if cfg.QubitEndLength == 0 {
		cfg.QubitEndLength = 300
	}
	if cfg.MaxSUnits == 0 {
		cfg.MaxSUnits = 100
	}
	return cfg
}

// ReadoutResonator builds a meandered coplanar-waveguide readout
// resonator.
//
// The resonator starts with a straight coupling run at the anchor, winds
// through S-shaped meander units of two opposing half turns joined by
// straight runs,
//
//	                  ===
//	                     \\
//	                     ||
//	                    //
//	   =================
//	 //
//	||
//	 \\
//	   ==================
//
// absorbs the length residual in a final shortened unit, and ends with a
// quarter turn into the qubit coupling run. Turn radius is five times the
// center width throughout.
//
// Parameter combinations that cannot reach the target length are logged
// as warnings and yield the best path buildable, matching the tolerant
// behavior layout scripts expect.
func ReadoutResonator(cfg ResonatorConfig) (*Path, error) {
	cfg = cfg.withDefaults()
	if cfg.Length <= 0 || cfg.CenterWidth <= 0 || cfg.Gap <= 0 {
		return nil, fmt.Errorf("gds: resonator length=%g center=%g gap=%g: %w",
			cfg.Length, cfg.CenterWidth, cfg.Gap, ErrDegenerate)
	}
	log := Logger()

	radius := 5 * cfg.CenterWidth

	// The qubit end consumes its straight run plus the final quarter
	// turn; budget the meander against the remainder.
	budget := cfg.Length - (cfg.QubitEndLength + 2.5*cfg.CenterWidth*math.Pi)

	path := NewPath(cfg.Gap, cfg.Anchor, 2, cfg.CenterWidth+cfg.Gap)
	path.SetLayers(cfg.Layer)
	path.Segment(cfg.CoupleEndLength)

	// One S unit: two half turns plus two straight runs.
	sUnit := 10*cfg.CenterWidth*math.Pi + 2*cfg.UnitLength

	switch {
	case budget < cfg.CoupleEndLength:
		log.Warn("resonator length less than its coupling length",
			"length", cfg.Length, "couple_end", cfg.CoupleEndLength)

	default:
		if budget > float64(cfg.MaxSUnits)*sUnit+cfg.CoupleEndLength {
			log.Warn("resonator needs too many meander units, increase the unit length",
				"length", cfg.Length, "unit_length", cfg.UnitLength, "max_units", cfg.MaxSUnits)
		}
		for budget-path.Length() > sUnit {
			if err := meanderUnit(path, radius, cfg.UnitLength); err != nil {
				return nil, err
			}
		}
		if budget-path.Length() < 10*cfg.CenterWidth*math.Pi {
			log.Warn("resonator residual cannot fit a final meander unit, change the unit length",
				"residual", budget-path.Length())
			break
		}
		// Final unit shortened so the total lands on the budget.
		delta := path.Length() + sUnit - budget
		if err := meanderUnit(path, radius, cfg.UnitLength-delta/2); err != nil {
			return nil, err
		}
		if err := path.Turn(radius, "r"); err != nil {
			return nil, err
		}
		path.Segment(cfg.QubitEndLength)
	}

	log.Debug("readout resonator built",
		"length", path.Length(),
		"coupled_length", cfg.CoupleEndLength,
		"center_width", cfg.CenterWidth,
		"gap", cfg.Gap,
		"layer", cfg.Layer)
	return path, nil
}

// meanderUnit routes one S unit: half turn right, straight run back,
// half turn left, straight run forward.
func meanderUnit(p *Path, radius, run float64) error {
	if err := p.Turn(radius, "rr"); err != nil {
		return err
	}
	p.SegmentDir(run, Left)
	if err := p.Turn(radius, "ll"); err != nil {
		return err
	}
	p.SegmentDir(run, Right)
	return nil
}
