// The svg subcommand exports a GDSII cell as SVG for inspection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qchiplab/gds"
)

var (
	flagSVGIn   string
	flagSVGOut  string
	flagSVGCell string
)

var svgCmd = &cobra.Command{
	Use:   "svg",
	Short: "Export a cell of a GDSII file as SVG",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := gds.OpenGDS(flagSVGIn)
		if err != nil {
			return err
		}
		if err := lib.SaveSVG(flagSVGOut, flagSVGCell); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagSVGOut)
		return nil
	},
}

func init() {
	svgCmd.Flags().StringVarP(&flagSVGIn, "in", "i", "", "input GDSII file")
	svgCmd.Flags().StringVarP(&flagSVGOut, "out", "o", "", "output SVG file")
	svgCmd.Flags().StringVar(&flagSVGCell, "cell", "", "cell name (default: top-level cell)")
	_ = svgCmd.MarkFlagRequired("in")
	_ = svgCmd.MarkFlagRequired("out")
}
