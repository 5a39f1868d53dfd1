package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lnguyen/ink-engine/internal/precision"
)

var precisionCmd = &cobra.Command{
	Use:   "precision [captures...]",
	Short: "Report the inferred decimal precision of capture files",
	Long: `Precision runs the decimal-precision estimator over each capture file
and prints the inferred number of decimal places without converting
anything. Useful for checking how a dataset will be formatted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrecision,
}

func runPrecision(cmd *cobra.Command, args []string) error {
	maxPrecision := viper.GetInt("convert.max_precision")

	var failed int
	for _, path := range args {
		d, err := precision.EstimateFile(path, maxPrecision)
		if err != nil {
			fmt.Printf("%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("%s: %d\n", path, d)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be read", failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(precisionCmd)
}
