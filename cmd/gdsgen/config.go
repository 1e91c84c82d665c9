// Config loading for the gdsgen CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/qchiplab/gds"
)

const (
	// Config keys with their defaults.
	cfgKeyResizeLayer = "resize_layer"
	cfgKeyThreshold   = "threshold"
	cfgKeyLibName     = "library_name"
)

// cfg holds the loaded configuration, shared by all subcommands.
var cfg *viper.Viper

// loadConfig reads the optional .gdsgen.yaml from the working directory
// (or the file given by --config) and applies defaults. A missing config
// file is not an error.
func loadConfig(path string) error {
	v := viper.New()
	v.SetDefault(cfgKeyResizeLayer, gds.DefaultResizeLayer)
	v.SetDefault(cfgKeyThreshold, 128)
	v.SetDefault(cfgKeyLibName, "library")
	v.SetEnvPrefix("GDSGEN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".gdsgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	cfg = v
	return nil
}
