// SPDX-License-Identifier: MIT

package scale

import "fmt"

// NewToneBasis stores a copy of cents verbatim. Values are neither sorted nor
// validated; negative intervals describe downward steps.
func NewToneBasis(cents ...float64) ToneBasis {
	return ToneBasis{intervals: append([]float64(nil), cents...)}
}

// Equidistant divides the octave into n equal intervals of 1200/n cents.
//
// Errors:
//   - ErrBadDivision if n < 1.
func Equidistant(n int) (ToneBasis, error) {
	if n < 1 {
		return ToneBasis{}, fmt.Errorf("Equidistant(%d): %w", n, ErrBadDivision)
	}
	step := CentsPerOctave / float64(n)
	intervals := make([]float64, n)
	for i := range intervals {
		intervals[i] = step
	}

	return ToneBasis{intervals: intervals}, nil
}

// Intervals returns a copy of the basis intervals in cents.
func (b ToneBasis) Intervals() []float64 {
	return append([]float64(nil), b.intervals...)
}

// Len returns the number of intervals.
func (b ToneBasis) Len() int { return len(b.intervals) }

// Period returns the total span of the basis in cents (1200 for any equal division).
func (b ToneBasis) Period() float64 {
	var sum float64
	for _, c := range b.intervals {
		sum += c
	}

	return sum
}

// Rates returns the frequency ratio 2^(c/1200) of every interval, in order.
func (b ToneBasis) Rates() []float64 {
	return centsToRatios(b.intervals)
}

// Scale returns the raw frequencies of the basis applied to origin.
// The result has Len()+1 elements.
func (b ToneBasis) Scale(origin float64) []float64 {
	return FromRates(origin, b.Rates())
}

// ToScale is Scale wrapped in an editable *Scale.
func (b ToneBasis) ToScale(origin float64) *Scale {
	return NewFromRates(origin, b.Rates())
}
