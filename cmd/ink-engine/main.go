// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ink-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lnguyen/ink-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ink-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "ink-engine",
	Short: "Convert plain-text pen-stroke captures to InkML",
	Long: `ink-engine converts line-oriented plain-text trace captures into InkML.
Capture files group coordinate lines under "Stroke" header lines; the
converter infers the decimal precision of the coordinates, then emits one
<trace> element per stroke.

Each operation is a subcommand: convert transforms capture files, precision
reports the inferred precision without converting, and catalog inspects the
record of past conversions.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ink-engine.yaml or ~/.config/ink-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ink-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ink-engine"))
		}
	}

	viper.SetEnvPrefix("INK_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("convert.width_budget", types.DefaultWidthBudget)
	viper.SetDefault("convert.max_precision", types.DefaultMaxPrecision)
	viper.SetDefault("convert.output_extension", types.DefaultOutputExtension)
	viper.SetDefault("convert.stroke_marker", types.DefaultStrokeMarker)
	viper.SetDefault("convert.data_dir", "data")
	viper.SetDefault("catalog.enabled", true)
	viper.SetDefault("catalog.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
