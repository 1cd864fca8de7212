// SPDX-License-Identifier: MIT

package scale

import "math"

const (
	// CentsPerOctave is the size of one octave on the cents axis.
	CentsPerOctave = 1200.0

	// OctaveRatio is the frequency ratio of one octave.
	OctaveRatio = 2.0
)

// CentsToRatio converts an interval in cents to a frequency ratio, 2^(c/1200).
func CentsToRatio(c float64) float64 {
	return math.Pow(OctaveRatio, c/CentsPerOctave)
}

// RatioToCents converts a frequency ratio to an interval in cents, 1200·log2(r).
// Non-positive ratios yield NaN or -Inf, as math.Log2 does.
func RatioToCents(r float64) float64 {
	return CentsPerOctave * math.Log2(r)
}

// centsToRatios maps CentsToRatio over cents into a fresh slice.
func centsToRatios(cents []float64) []float64 {
	out := make([]float64, len(cents))
	for i, c := range cents {
		out[i] = CentsToRatio(c)
	}

	return out
}

// ratiosToCents maps RatioToCents over ratios into a fresh slice.
func ratiosToCents(ratios []float64) []float64 {
	out := make([]float64, len(ratios))
	for i, r := range ratios {
		out[i] = RatioToCents(r)
	}

	return out
}
