// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lnguyen/ink-engine/internal/catalog"
	"github.com/lnguyen/ink-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the conversion catalog (list, export)",
	Long: `Catalog manages the SQLite record of past conversions. Use subcommands
to list recent conversions or export the full record.`,
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded conversions, newest first",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("max-results")
	convs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(convs) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-9s  %-7s  %-7s  %s\n",
		"Input", "Precision", "Strokes", "Points", "Converted")
	for _, c := range convs {
		name := filepath.Base(c.InputPath)
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-30s  %-9d  %-7d  %-7d  %s\n",
			name, c.Precision, c.Strokes, c.Points, c.ConvertedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(os.Stdout, "\n%d conversions\n", len(convs))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversion catalog to YAML or JSON",
	RunE:  runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	dataDir := catalogDataDir(cmd)
	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(dataDir, "index", "export.yaml"))
	case "json":
		if err := store.ExportJSON(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", filepath.Join(dataDir, "index", "export.json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

// --- shared helpers ---

func catalogDataDir(cmd *cobra.Command) string {
	if cmd.Flags().Changed("data-dir") {
		dir, _ := cmd.Flags().GetString("data-dir")
		return dir
	}
	return viper.GetString("convert.data_dir")
}

func openCatalog(cmd *cobra.Command) (*catalog.Store, error) {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return catalog.NewStore(types.CatalogConfig{
		DataDir:    catalogDataDir(cmd),
		MaxResults: maxResults,
	})
}

func init() {
	catalogCmd.PersistentFlags().String("data-dir", "data", "base directory for capture data (contains index/)")
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of listed conversions")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
