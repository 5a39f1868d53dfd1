// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inkml emits InkML documents from pen-stroke coordinate data.
//
// The output is line-structured text, not marshalled XML: coordinate pairs
// for one trace may be split across several physical lines at a width budget,
// with a trailing comma carrying the split. encoding/xml cannot reproduce
// that layout, so the writer emits raw fragments.
package inkml

import (
	"fmt"
	"io"
	"strconv"
)

// Namespace is the InkML namespace declared on the root element.
const Namespace = "http://www.w3.org/2003/InkML"

// Indentation inside the document: trace tags sit one level deep,
// coordinate data two levels deep.
const (
	traceIndent = "  "
	dataIndent  = "    "
)

// Writer emits one InkML document incrementally. Coordinate pairs accumulate
// in a trace buffer that is flushed when the width budget is exceeded or the
// trace ends. The precision is fixed at construction and applies to every
// coordinate in the document.
type Writer struct {
	out         io.Writer
	places      int
	widthBudget int

	buf       string
	traceOpen bool
	strokes   int
	points    int
}

// NewWriter returns a Writer that emits to out, formatting every coordinate
// to places decimal places and flushing trace lines that exceed widthBudget
// characters.
func NewWriter(out io.Writer, places, widthBudget int) *Writer {
	return &Writer{out: out, places: places, widthBudget: widthBudget}
}

// Begin writes the opening ink element.
func (w *Writer) Begin() error {
	_, err := fmt.Fprintf(w.out, "<ink xmlns=%q>\n", Namespace)
	return err
}

// StartTrace opens a new trace. If a trace is already open its buffered
// pairs are flushed and it is closed first.
func (w *Writer) StartTrace() error {
	if w.traceOpen {
		if err := w.endTrace(); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w.out, "%s<trace>\n", traceIndent); err != nil {
		return err
	}
	w.traceOpen = true
	w.strokes++
	return nil
}

// Point appends one coordinate pair to the open trace. If the buffer already
// exceeds the width budget it is first written out as a continuation line with
// a trailing comma. Points arriving before any trace has been opened are
// dropped: there is no element to hold them.
func (w *Writer) Point(x, y float64) error {
	if !w.traceOpen {
		return nil
	}
	if len(w.buf) > w.widthBudget {
		if _, err := fmt.Fprintf(w.out, "%s%s,\n", dataIndent, w.buf); err != nil {
			return err
		}
		w.buf = ""
	}
	if w.buf != "" {
		w.buf += ", "
	}
	w.buf += w.formatCoord(x) + " " + w.formatCoord(y)
	w.points++
	return nil
}

// Close flushes and closes any open trace and writes the closing ink tag.
func (w *Writer) Close() error {
	if w.traceOpen {
		if err := w.endTrace(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w.out, "</ink>")
	return err
}

// Strokes returns the number of traces opened so far.
func (w *Writer) Strokes() int { return w.strokes }

// Points returns the number of coordinate pairs emitted so far.
func (w *Writer) Points() int { return w.points }

func (w *Writer) endTrace() error {
	if w.buf != "" {
		if _, err := fmt.Fprintf(w.out, "%s%s\n", dataIndent, w.buf); err != nil {
			return err
		}
		w.buf = ""
	}
	if _, err := fmt.Fprintf(w.out, "%s</trace>\n", traceIndent); err != nil {
		return err
	}
	w.traceOpen = false
	return nil
}

func (w *Writer) formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', w.places, 64)
}
