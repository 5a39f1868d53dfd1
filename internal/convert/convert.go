// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates trace-capture-to-InkML conversion: it runs the
// precision estimator over an input file, then transcodes the file's strokes
// into an InkML sibling file using the inferred precision.
package convert

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lnguyen/ink-engine/internal/inkml"
	"github.com/lnguyen/ink-engine/internal/precision"
	"github.com/lnguyen/ink-engine/pkg/types"
)

// Recorder persists conversion records. The catalog implements it; a nil
// Recorder disables persistence.
type Recorder interface {
	Record(types.Conversion) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath derives the destination for inPath: the base name truncated at
// the first '.', with ext appended, in the input's directory.
func OutputPath(inPath, ext string) string {
	base := filepath.Base(inPath)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(filepath.Dir(inPath), base+ext)
}

// ConvertFile converts the trace capture at inPath into an InkML file next to
// it, logging a status line to w. The two passes are strictly ordered: the
// precision estimate completes before any output is written. The destination
// is opened in append mode unless cfg.Force is set, so re-running over an
// existing output concatenates documents; callers that need to avoid that
// check for the output first (batch mode) or set Force.
func ConvertFile(inPath string, cfg types.ConvertConfig, w io.Writer) (types.Conversion, types.ConversionStatus) {
	cfg = cfg.WithDefaults()
	base := filepath.Base(inPath)
	outPath := OutputPath(inPath, cfg.OutputExtension)

	places, err := precision.EstimateFile(inPath, cfg.MaxPrecision)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.Conversion{}, types.ConversionFailed
	}

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.Conversion{}, types.ConversionFailed
	}
	defer in.Close()

	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if cfg.Force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	out, err := os.OpenFile(outPath, flags, 0o644)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.Conversion{}, types.ConversionFailed
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	doc := inkml.NewWriter(bw, places, cfg.WidthBudget)
	if err := inkml.Transcode(in, doc, cfg.StrokeMarker); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.Conversion{}, types.ConversionFailed
	}
	if err := bw.Flush(); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.Conversion{}, types.ConversionFailed
	}

	conv := types.Conversion{
		InputPath:   inPath,
		OutputPath:  outPath,
		Precision:   places,
		Strokes:     doc.Strokes(),
		Points:      doc.Points(),
		ConvertedAt: time.Now().UTC(),
	}
	fmt.Fprintf(w, "converted: %s (precision %d, %d strokes, %d points)\n",
		base, conv.Precision, conv.Strokes, conv.Points)
	return conv, types.ConversionDone
}

// ConvertBatch converts each input path in order, recording successful
// conversions through rec (if non-nil), printing per-file status to w and
// returning a summary. A failed file does not stop the batch.
func ConvertBatch(paths []string, cfg types.ConvertConfig, rec Recorder, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		convertOne(p, cfg, rec, w, &result)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// ConvertDir walks dir recursively for .txt capture files and converts each
// one, skipping files whose output already exists unless cfg.Force is set.
func ConvertDir(dir string, cfg types.ConvertConfig, rec Recorder, w io.Writer) (BatchResult, error) {
	cfg = cfg.WithDefaults()
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".txt") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return BatchResult{}, fmt.Errorf("walking %s: %w", dir, err)
	}

	var result BatchResult
	for _, p := range paths {
		if !cfg.Force {
			if _, err := os.Stat(OutputPath(p, cfg.OutputExtension)); err == nil {
				fmt.Fprintf(w, "skipped: %s (already exists)\n", filepath.Base(p))
				result.Skipped++
				continue
			}
		}
		convertOne(p, cfg, rec, w, &result)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// convertOne runs a single conversion and folds its outcome into result.
func convertOne(path string, cfg types.ConvertConfig, rec Recorder, w io.Writer, result *BatchResult) {
	conv, status := ConvertFile(path, cfg, w)
	switch status {
	case types.ConversionDone:
		result.Converted++
		if rec != nil {
			if err := rec.Record(conv); err != nil {
				fmt.Fprintf(w, "catalog: %s (%v)\n", filepath.Base(path), err)
			}
		}
	case types.ConversionSkipped:
		result.Skipped++
	case types.ConversionFailed:
		result.Failed++
	}
}
