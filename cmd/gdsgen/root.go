// Root command for the gdsgen CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/qchiplab/gds"
)

// Global flag values.
var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:     "gdsgen",
	Short:   "gdsgen generates and reworks GDSII chip layouts",
	Long: `gdsgen is the command line front end for the gds layout library.
It builds parameterized qubit-chip geometry (readout resonators, SQUIDs,
hex qubits), resizes existing GDSII files, converts bitmaps to layout,
and exports cells as SVG for inspection.`,
	Version: gds.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(flagConfig); err != nil {
			return err
		}
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		gds.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./.gdsgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(img2gdsCmd)
	rootCmd.AddCommand(svgCmd)
}
