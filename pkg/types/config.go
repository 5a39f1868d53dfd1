// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and record types shared across
// ink-engine stages.
package types

// Defaults for the conversion stage. The estimator epsilon formula and the
// acceptance threshold are compatibility constants and live with the
// estimator itself, not here.
const (
	// DefaultWidthBudget is the character count a trace line may reach
	// before the pending pairs are flushed as a continuation line.
	DefaultWidthBudget = 80

	// DefaultMaxPrecision bounds the estimator's candidate loop so it
	// terminates even on pathological input.
	DefaultMaxPrecision = 10

	// DefaultOutputExtension is appended to the input's base name to form
	// the output path.
	DefaultOutputExtension = ".inkml"

	// DefaultStrokeMarker is the prefix that identifies a stroke-header line.
	DefaultStrokeMarker = "Stroke"
)

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// WidthBudget is the trace-line length threshold (default 80).
	WidthBudget int `json:"width_budget" yaml:"width_budget"`

	// MaxPrecision caps the precision estimator's candidate loop (default 10).
	MaxPrecision int `json:"max_precision" yaml:"max_precision"`

	// OutputExtension is the extension of generated files (default ".inkml").
	OutputExtension string `json:"output_extension" yaml:"output_extension"`

	// StrokeMarker is the line prefix that starts a new stroke (default "Stroke").
	StrokeMarker string `json:"stroke_marker" yaml:"stroke_marker"`

	// DataDir is the base directory scanned in batch mode (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Force truncates an existing output file instead of appending to it.
	Force bool `json:"force" yaml:"force"`
}

// WithDefaults returns a copy of c with zero-valued fields replaced by the
// package defaults.
func (c ConvertConfig) WithDefaults() ConvertConfig {
	if c.WidthBudget <= 0 {
		c.WidthBudget = DefaultWidthBudget
	}
	if c.MaxPrecision <= 0 {
		c.MaxPrecision = DefaultMaxPrecision
	}
	if c.OutputExtension == "" {
		c.OutputExtension = DefaultOutputExtension
	}
	if c.StrokeMarker == "" {
		c.StrokeMarker = DefaultStrokeMarker
	}
	return c
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// DataDir is the base directory holding the catalog database (index/ink.db).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of listed records (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
