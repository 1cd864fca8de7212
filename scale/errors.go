// SPDX-License-Identifier: MIT
// Package: tuning/scale
//
// errors.go — sentinel errors for the scale package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the return site, never baked into sentinels.
//   • Validation happens before mutation: a failed SetNote leaves the Scale untouched.
//   • Floating-point edge cases are NOT errors (see doc.go, "Numeric policy").

package scale

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstruction is the umbrella for rejected New(...) argument sets.
	// New joins it with ErrAmbiguousConstruction or ErrIncompleteConstruction,
	// so errors.Is matches both the class and the specific cause.
	ErrInvalidConstruction = errors.New("scale: invalid construction")

	// ErrAmbiguousConstruction indicates notes were supplied together with origin or rates.
	ErrAmbiguousConstruction = errors.New("scale: notes given together with origin or rates")

	// ErrIncompleteConstruction indicates notes were absent and origin or rates was missing.
	ErrIncompleteConstruction = errors.New("scale: origin and rates are both required without notes")

	// ErrOutOfRange indicates a note index outside [0, Len()), or index 0
	// combined with the Previous reference (the origin has no predecessor).
	ErrOutOfRange = errors.New("scale: note index out of range")

	// ErrUnknownReference indicates a Reference outside {Current, Previous, Origin}
	// or an unrecognized textual reference passed to ParseReference.
	ErrUnknownReference = errors.New("scale: unknown reference")

	// ErrBadDivision indicates Equidistant was asked for fewer than one step per octave.
	ErrBadDivision = errors.New("scale: equal division needs at least one step")
)

// constructionError attaches the umbrella ErrInvalidConstruction to a specific cause.
// Result matches both sentinels under errors.Is.
func constructionError(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConstruction, cause)
}

// indexError wraps ErrOutOfRange with the offending index and bound.
func indexError(method string, index, n int) error {
	return fmt.Errorf("%s: index %d with %d notes: %w", method, index, n, ErrOutOfRange)
}
