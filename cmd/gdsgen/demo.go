// The demo subcommand writes a sample library exercising every shape
// generator.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qchiplab/gds"
)

var demoCmd = &cobra.Command{
	Use:   "demo <out.gds>",
	Short: "Write a sample library with resonators, SQUIDs and hex qubits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := buildDemoLibrary(cfg.GetString(cfgKeyLibName))
		if err != nil {
			return err
		}
		if err := lib.SaveGDS(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d cells)\n", args[0], len(lib.Cells()))
		return nil
	},
}

// buildDemoLibrary assembles one cell per generator family: a row of
// resonators of stepped lengths, four SQUID variants, and a hex qubit in
// both ground-plane and component form.
func buildDemoLibrary(name string) (*gds.Library, error) {
	lib := gds.NewLibrary(name)

	one, err := lib.NewCell("ONE")
	if err != nil {
		return nil, err
	}
	for i, length := range []float64{4911, 4875, 4840, 4805} {
		res, err := gds.ReadoutResonator(gds.ResonatorConfig{
			Length:      length,
			CenterWidth: 10,
			Gap:         5,
			Anchor:      gds.Pt(float64(i-1)*500, 0),
		})
		if err != nil {
			return nil, err
		}
		one.Add(res)
	}

	two, err := lib.NewCell("TWO")
	if err != nil {
		return nil, err
	}
	squids := []gds.SQUIDConfig{
		{Direction: gds.Up, BaseLength: 10},
		{Direction: gds.Up, BaseLength: 10, Anchor: gds.Pt(0, 50), PadDistance: gds.Pt(20, 20)},
		{Direction: gds.Down, BaseLength: 20, Anchor: gds.Pt(50, 50)},
		{Direction: gds.Down, BaseLength: 20, Anchor: gds.Pt(50, 0), PadDistance: gds.Pt(20, 20)},
	}
	for _, sc := range squids {
		shapes, err := gds.SQUID(sc)
		if err != nil {
			return nil, err
		}
		two.AddPolygons(shapes)
	}

	three, err := lib.NewCell("THREE")
	if err != nil {
		return nil, err
	}
	hex := gds.HexQubitConfig{
		R: 4, S: 1,
		PadGap: 0.5, ChamferGap: 0.5,
		PadDepth:  2,
		TailWidth: 2, TailLength: 4,
		GroundWidth: 1, GroundLength: 5, GroundGap: 0.5,
	}
	plane, err := gds.HexQubit(hex)
	if err != nil {
		return nil, err
	}
	three.AddPolygons(plane)

	hex.Anchor = gds.Pt(30, 0)
	hex.KeepParts = true
	parts, err := gds.HexQubit(hex)
	if err != nil {
		return nil, err
	}
	three.AddPolygons(parts)

	return lib, nil
}
