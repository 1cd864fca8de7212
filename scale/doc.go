// SPDX-License-Identifier: MIT

// Package scale computes musical scales: sequences of note frequencies derived
// from an origin frequency and a set of intervals measured in cents.
//
// 🚀 What is a cent?
//
//	A cent is 1/1200 of an octave on a logarithmic pitch axis, so an
//	interval of c cents corresponds to the frequency ratio 2^(c/1200):
//	  •    0 cents → ratio 1.0 (unison)
//	  •  100 cents → ratio 2^(1/12) (one 12-EDO semitone)
//	  • 1200 cents → ratio 2.0 (octave)
//	Negative cents describe downward steps.
//
// ✨ Two cooperating types:
//   - ToneBasis — an immutable, origin-independent interval pattern
//     (e.g. 12 equal steps per octave). Produces ratios and scales.
//   - Scale     — a mutable sequence of absolute frequencies anchored
//     at an origin. Reports ratios/intervals between consecutive notes
//     and supports editing single notes relative to a Reference.
//
// Both are built on FromRates, the cumulative product
//
//	notes[0] = origin
//	notes[i] = origin · rates[0] · … · rates[i-1]
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tuning/scale"
//
//	edo, err := scale.Equidistant(12)
//	if err != nil {
//	  // handle ErrBadDivision
//	}
//	s := edo.ToScale(440)                       // 13 notes, A4 … A5
//	_, err = s.SetNote(7, 702, scale.Origin)    // pure fifth above A4
//	fmt.Println(s.Intervals())
//
// Numeric policy:
//
//	Frequencies are not validated. Zero or negative origins, NaN and ±Inf
//	propagate with ordinary floating-point semantics. Only structural
//	misuse (ambiguous construction, out-of-range index, unknown reference)
//	is reported, via the sentinels in errors.go.
//
// Concurrency:
//
//	ToneBasis is immutable and safe to share. A Scale is single-owner:
//	use Copy to branch into independent editing contexts.
package scale
