// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lnguyen/ink-engine/pkg/types"
)

// recordingSink implements Recorder for testing, capturing records in order.
type recordingSink struct {
	records []types.Conversion
	err     error
}

func (r *recordingSink) Record(c types.Conversion) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, c)
	return nil
}

// writeCapture creates a capture file with the given content and returns its path.
func writeCapture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleCapture = "Stroke\n1.25 3.57\n1.31 3.59\nStroke\n2.41 4.12\n"

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple txt", filepath.Join("d", "trace.txt"), filepath.Join("d", "trace.inkml")},
		{"multiple dots truncate at first", filepath.Join("d", "a.b.txt"), filepath.Join("d", "a.inkml")},
		{"no extension", "capture", "capture.inkml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.in, ".inkml"); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	inPath := writeCapture(t, dir, "sample.txt", sampleCapture)

	var log bytes.Buffer
	conv, status := ConvertFile(inPath, types.ConvertConfig{}, &log)

	if status != types.ConversionDone {
		t.Fatalf("status = %q, want %q", status, types.ConversionDone)
	}
	if conv.Precision != 2 {
		t.Errorf("precision = %d, want 2", conv.Precision)
	}
	if conv.Strokes != 2 {
		t.Errorf("strokes = %d, want 2", conv.Strokes)
	}
	if conv.Points != 3 {
		t.Errorf("points = %d, want 3", conv.Points)
	}
	if !strings.Contains(log.String(), "converted:") {
		t.Errorf("log %q should contain converted status", log.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "sample.inkml"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "<ink xmlns=") {
		t.Error("output should start with the ink element")
	}
	if got := strings.Count(out, "<trace>"); got != 2 {
		t.Errorf("trace count = %d, want 2", got)
	}
	if !strings.Contains(out, "1.25 3.57, 1.31 3.59") {
		t.Errorf("output missing first trace pairs:\n%s", out)
	}
}

func TestConvertFile_EmptyInput(t *testing.T) {
	dir := t.TempDir()
	inPath := writeCapture(t, dir, "empty.txt", "")

	var log bytes.Buffer
	conv, status := ConvertFile(inPath, types.ConvertConfig{}, &log)
	if status != types.ConversionDone {
		t.Fatalf("status = %q, want %q", status, types.ConversionDone)
	}
	if conv.Precision != 0 || conv.Strokes != 0 || conv.Points != 0 {
		t.Errorf("conv = %+v, want zero precision, strokes, points", conv)
	}

	data, err := os.ReadFile(filepath.Join(dir, "empty.inkml"))
	if err != nil {
		t.Fatal(err)
	}
	want := "<ink xmlns=\"http://www.w3.org/2003/InkML\">\n</ink>\n"
	if string(data) != want {
		t.Errorf("output = %q, want bare wrapper %q", data, want)
	}
}

func TestConvertFile_MissingInput(t *testing.T) {
	var log bytes.Buffer
	_, status := ConvertFile(filepath.Join(t.TempDir(), "absent.txt"), types.ConvertConfig{}, &log)
	if status != types.ConversionFailed {
		t.Fatalf("status = %q, want %q", status, types.ConversionFailed)
	}
	if !strings.Contains(log.String(), "failed:") {
		t.Errorf("log %q should contain failed status", log.String())
	}
}

// Re-running without force appends a second document to the destination.
// That concatenation is the documented behavior, not a bug.
func TestConvertFile_RerunAppends(t *testing.T) {
	dir := t.TempDir()
	inPath := writeCapture(t, dir, "sample.txt", sampleCapture)

	var log bytes.Buffer
	for i := 0; i < 2; i++ {
		if _, status := ConvertFile(inPath, types.ConvertConfig{}, &log); status != types.ConversionDone {
			t.Fatalf("run %d: status = %q", i, status)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "sample.inkml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "<ink"); got != 2 {
		t.Errorf("ink element count after rerun = %d, want 2 (concatenated documents)", got)
	}
}

func TestConvertFile_ForceTruncates(t *testing.T) {
	dir := t.TempDir()
	inPath := writeCapture(t, dir, "sample.txt", sampleCapture)

	var log bytes.Buffer
	cfg := types.ConvertConfig{Force: true}
	for i := 0; i < 2; i++ {
		if _, status := ConvertFile(inPath, cfg, &log); status != types.ConversionDone {
			t.Fatalf("run %d: status = %q", i, status)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "sample.inkml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "<ink"); got != 1 {
		t.Errorf("ink element count with force = %d, want 1", got)
	}
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeCapture(t, dir, "good.txt", sampleCapture)
	missing := filepath.Join(dir, "missing.txt")

	sink := &recordingSink{}
	var log bytes.Buffer
	result := ConvertBatch([]string{good, missing}, types.ConvertConfig{}, sink, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 2 {
		t.Errorf("total = %d, want 2", result.Total())
	}
	if len(sink.records) != 1 || sink.records[0].InputPath != good {
		t.Errorf("records = %+v, want one record for %s", sink.records, good)
	}
	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("batch output should contain summary line")
	}
}

func TestConvertBatch_RecorderFailureDoesNotFailBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeCapture(t, dir, "good.txt", sampleCapture)

	sink := &recordingSink{err: errors.New("database locked")}
	var log bytes.Buffer
	result := ConvertBatch([]string{good}, types.ConvertConfig{}, sink, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if !strings.Contains(log.String(), "catalog:") {
		t.Errorf("log %q should mention the catalog failure", log.String())
	}
}

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeCapture(t, dir, "a.txt", sampleCapture)
	writeCapture(t, sub, "b.txt", sampleCapture)
	writeCapture(t, dir, "notes.md", "not a capture")

	// Pre-create output for "a" to trigger skip.
	writeCapture(t, dir, "a.inkml", "existing")

	sink := &recordingSink{}
	var log bytes.Buffer
	result, err := ConvertDir(dir, types.ConvertConfig{}, sink, &log)
	if err != nil {
		t.Fatal(err)
	}

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if result.Failed != 0 {
		t.Errorf("failed = %d, want 0", result.Failed)
	}
	if _, err := os.Stat(filepath.Join(sub, "b.inkml")); err != nil {
		t.Errorf("expected output for nested capture: %v", err)
	}
	// The skipped file's prior output must be left alone.
	data, err := os.ReadFile(filepath.Join(dir, "a.inkml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing" {
		t.Errorf("skipped output was modified: %q", data)
	}
}

func TestConvertDir_ForceReconverts(t *testing.T) {
	dir := t.TempDir()
	writeCapture(t, dir, "a.txt", sampleCapture)
	writeCapture(t, dir, "a.inkml", "existing")

	var log bytes.Buffer
	result, err := ConvertDir(dir, types.ConvertConfig{Force: true}, nil, &log)
	if err != nil {
		t.Fatal(err)
	}
	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}

	data, err := os.ReadFile(filepath.Join(dir, "a.inkml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<ink") {
		t.Errorf("forced conversion should replace prior output, got %q", data)
	}
}
