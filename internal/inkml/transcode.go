// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inkml

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lnguyen/ink-engine/internal/precision"
)

// Transcode reads capture lines from r and writes a complete InkML document
// through w. A line starting with marker opens a new trace; any other line
// contributes its first two numeric tokens as a coordinate pair. Lines with
// fewer than two tokens are skipped silently. The document wrapper is always
// emitted, so empty input yields an empty ink element.
func Transcode(r io.Reader, w *Writer, marker string) error {
	if err := w.Begin(); err != nil {
		return fmt.Errorf("writing document head: %w", err)
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, marker) {
			if err := w.StartTrace(); err != nil {
				return fmt.Errorf("opening trace: %w", err)
			}
			continue
		}
		toks := precision.Tokens(line)
		if len(toks) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(toks[0], 64)
		y, errY := strconv.ParseFloat(toks[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		if err := w.Point(x, y); err != nil {
			return fmt.Errorf("writing point: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scanning input: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing document: %w", err)
	}
	return nil
}
