// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus reports the outcome of converting one input file.
type ConversionStatus string

const (
	// ConversionDone means the InkML output was written.
	ConversionDone ConversionStatus = "done"
	// ConversionSkipped means the output already existed and was left alone.
	ConversionSkipped ConversionStatus = "skipped"
	// ConversionFailed means an I/O error aborted this file's conversion.
	ConversionFailed ConversionStatus = "failed"
)

// Conversion records one completed trace-file conversion.
type Conversion struct {
	// InputPath is the source trace file.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the generated InkML file.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Precision is the inferred number of decimal places applied to every
	// coordinate in the file.
	Precision int `json:"precision" yaml:"precision"`

	// Strokes is the number of traces emitted.
	Strokes int `json:"strokes" yaml:"strokes"`

	// Points is the total number of coordinate pairs emitted.
	Points int `json:"points" yaml:"points"`

	// ConvertedAt is the completion time in UTC.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
