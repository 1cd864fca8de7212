// SPDX-License-Identifier: MIT
// Package: tuning/scale
//
// options.go — functional options for the dual-mode New constructor.
//
// Exactly one mode must be selected:
//   (a) WithOrigin + WithRates  → notes computed by FromRates;
//   (b) WithNotes alone         → notes copied verbatim.
// Presence is tracked explicitly, so WithOrigin(0) and WithRates(nil) still
// count as "given" (a nil slice is a valid, empty rates sequence).

package scale

// Option configures New.
type Option func(*options)

type options struct {
	origin    float64
	rates     []float64
	notes     []float64
	hasOrigin bool
	hasRates  bool
	hasNotes  bool
}

// WithOrigin sets the origin frequency for mode (a).
func WithOrigin(f float64) Option {
	return func(o *options) {
		o.origin = f
		o.hasOrigin = true
	}
}

// WithRates sets the interval ratios for mode (a).
func WithRates(rates []float64) Option {
	return func(o *options) {
		o.rates = rates
		o.hasRates = true
	}
}

// WithNotes sets the full note sequence for mode (b).
func WithNotes(notes []float64) Option {
	return func(o *options) {
		o.notes = notes
		o.hasNotes = true
	}
}

// gatherOptions applies opts in order; later options override earlier ones.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
