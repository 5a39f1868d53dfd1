package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lnguyen/ink-engine/internal/catalog"
	"github.com/lnguyen/ink-engine/internal/convert"
	"github.com/lnguyen/ink-engine/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [captures...]",
	Short: "Convert trace capture files to InkML",
	Long: `Convert transforms plain-text trace captures into InkML files written
next to their inputs. The decimal precision of each file's coordinates is
inferred before any output is written.

With --batch, all .txt files under the data directory are converted instead
of explicit arguments; captures whose output already exists are skipped.
Without --force, output files are appended to, so re-running over the same
destination concatenates documents.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	batch, _ := cmd.Flags().GetBool("batch")
	if !batch && len(args) == 0 {
		return fmt.Errorf("no input files: pass capture paths or use --batch")
	}

	cfg := convertConfig(cmd)

	var rec convert.Recorder
	if viper.GetBool("catalog.enabled") {
		store, err := catalog.NewStore(types.CatalogConfig{
			DataDir:    cfg.DataDir,
			MaxResults: viper.GetInt("catalog.max_results"),
		})
		if err != nil {
			return err
		}
		defer store.Close()
		rec = store
	}

	var result convert.BatchResult
	if batch {
		var err error
		result, err = convert.ConvertDir(cfg.DataDir, cfg, rec, os.Stdout)
		if err != nil {
			return err
		}
	} else {
		result = convert.ConvertBatch(args, cfg, rec, os.Stdout)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

// convertConfig builds the conversion settings from flags, falling back to
// viper for anything not set on the command line.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{
		WidthBudget:     viper.GetInt("convert.width_budget"),
		MaxPrecision:    viper.GetInt("convert.max_precision"),
		OutputExtension: viper.GetString("convert.output_extension"),
		StrokeMarker:    viper.GetString("convert.stroke_marker"),
		DataDir:         viper.GetString("convert.data_dir"),
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	cfg.Force, _ = cmd.Flags().GetBool("force")
	return cfg.WithDefaults()
}

func init() {
	convertCmd.Flags().Bool("batch", false, "convert all .txt captures under the data directory")
	convertCmd.Flags().String("data-dir", "data", "base directory for capture data")
	convertCmd.Flags().Bool("force", false, "truncate existing output files instead of appending")

	rootCmd.AddCommand(convertCmd)
}
