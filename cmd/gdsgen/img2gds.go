// The img2gds subcommand converts a bitmap into a GDSII file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qchiplab/gds"
)

var (
	flagImgIn        string
	flagImgOut       string
	flagImgThreshold int
	flagImgFlip      bool
)

var img2gdsCmd = &cobra.Command{
	Use:   "img2gds",
	Short: "Convert a bitmap (PNG/JPEG/BMP) into layout rectangles",
	Long: `img2gds binarizes an image at the grayscale threshold and emits one
1x1 µm rectangle per dark pixel (per bright pixel with --flip) into a
single-cell GDSII library.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold := flagImgThreshold
		if !cmd.Flags().Changed("threshold") {
			threshold = cfg.GetInt(cfgKeyThreshold)
		}
		if threshold < 0 || threshold > 255 {
			return fmt.Errorf("threshold %d out of range 0..255", threshold)
		}

		polys, err := gds.ImageFileToPolygons(flagImgIn, uint8(threshold), flagImgFlip)
		if err != nil {
			return err
		}
		lib := gds.NewLibrary(cfg.GetString(cfgKeyLibName))
		cell, err := lib.NewCell("TOP")
		if err != nil {
			return err
		}
		cell.AddPolygons(polys)
		if err := lib.SaveGDS(flagImgOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pixels)\n", flagImgOut, len(polys))
		return nil
	},
}

func init() {
	img2gdsCmd.Flags().StringVarP(&flagImgIn, "in", "i", "", "input image file")
	img2gdsCmd.Flags().StringVarP(&flagImgOut, "out", "o", "", "output GDSII file")
	img2gdsCmd.Flags().IntVarP(&flagImgThreshold, "threshold", "t", 128, "grayscale cutoff 0..255")
	img2gdsCmd.Flags().BoolVar(&flagImgFlip, "flip", false, "keep bright pixels instead of dark ones")
	_ = img2gdsCmd.MarkFlagRequired("in")
	_ = img2gdsCmd.MarkFlagRequired("out")
}
