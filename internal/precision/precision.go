// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package precision infers the decimal precision of a trace capture file.
//
// Capture files do not declare how many decimal places their coordinates
// carry, so the converter estimates it: the smallest candidate d for which at
// least half of all numeric tokens in the file are already settled at d
// places, where "settled" means the rounding residual is below 10^-(d+2).
// The epsilon tightens as d grows, which stops coarse candidates from being
// accepted for high-precision data. Both constants are compatibility-critical:
// existing datasets were converted with exactly these values.
package precision

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
)

// tokenPattern matches an unsigned decimal number: optional integer digits,
// optional fraction, at least one digit.
var tokenPattern = regexp.MustCompile(`[0-9]*\.?[0-9]+`)

// acceptFraction is the share of tokens that must be settled at a candidate
// precision for it to be accepted.
const acceptFraction = 0.5

// Tokens returns the numeric tokens found on line, in order of appearance.
func Tokens(line string) []string {
	return tokenPattern.FindAllString(line, -1)
}

// Values parses every numeric token in r, line by line, preserving file order.
func Values(r io.Reader) ([]float64, error) {
	var vals []float64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, tok := range Tokens(sc.Text()) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				// The pattern guarantees a parseable number; skip anyway.
				continue
			}
			vals = append(vals, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}
	return vals, nil
}

// Epsilon returns the settled-residual tolerance for candidate precision d.
func Epsilon(d int) float64 {
	return math.Pow(10, -float64(d+2))
}

// Round rounds v to d decimal places.
func Round(v float64, d int) float64 {
	p := math.Pow(10, float64(d))
	return math.Round(v*p) / p
}

// Estimate returns the smallest d in [0, maxPrecision] at which at least half
// of vals are settled. An empty vals slice yields 0: with no tokens there is
// nothing to refine. If no candidate reaches the threshold, maxPrecision is
// returned so the loop always terminates.
func Estimate(vals []float64, maxPrecision int) int {
	if len(vals) == 0 {
		return 0
	}
	for d := 0; d < maxPrecision; d++ {
		settled := 0
		eps := Epsilon(d)
		for _, v := range vals {
			if math.Abs(v-Round(v, d)) < eps {
				settled++
			}
		}
		if float64(settled)/float64(len(vals)) >= acceptFraction {
			return d
		}
	}
	return maxPrecision
}

// EstimateReader buffers the numeric tokens in r and estimates their precision.
func EstimateReader(r io.Reader, maxPrecision int) (int, error) {
	vals, err := Values(r)
	if err != nil {
		return 0, err
	}
	return Estimate(vals, maxPrecision), nil
}

// EstimateFile estimates the precision of the trace file at path.
func EstimateFile(path string, maxPrecision int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return EstimateReader(f, maxPrecision)
}
