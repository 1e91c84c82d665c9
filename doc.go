// Package gds generates GDSII layout geometry for superconducting qubit
// chips.
//
// # Overview
//
// gds is a pure Go layout toolkit. It provides parameterized generators
// for the recurring structures of a qubit chip (meandered readout
// resonators, SQUID loops with base hooks, hexagonal transmon pads)
// together with the cell/library containers and the GDSII serialization
// needed to get them into a mask file.
//
// # Quick Start
//
//	import "github.com/qchiplab/gds"
//
//	lib := gds.NewLibrary("chip")
//	cell, _ := lib.NewCell("READOUT")
//
//	res, err := gds.ReadoutResonator(gds.ResonatorConfig{
//		Length:      4911,
//		CenterWidth: 10,
//		Gap:         5,
//		Anchor:      gds.Pt(-500, 0),
//	})
//	if err != nil {
//		// handle invalid geometry parameters
//	}
//	cell.Add(res)
//
//	err = lib.SaveGDS("chip.gds")
//
// # Coordinate System
//
// Uses layout coordinates:
//   - X increases right
//   - Y increases up
//   - All lengths in µm (user unit), database unit 1 nm
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Architecture
//
// The library is organized into:
//   - Public API: Library, Cell, Polygon, Path, Curve, Matrix, Point and
//     the shape generators
//   - Internal: gdsii (record-level binary codec), clip (polygon offset
//     and boolean subtraction)
//   - cmd/gdsgen: command line front end
//
// # Logging
//
// By default gds produces no log output. Call SetLogger to receive the
// geometry warnings (out-of-range parameters, resets to defaults) that
// the generators emit while building shapes.
package gds
