// SPDX-License-Identifier: MIT

package scale

import (
	"fmt"
	"strings"
)

// Reference selects the pitch a SetNote interval is measured from.
//
//   - Current  — shift the note by the interval from its own present pitch.
//   - Previous — place the note the interval above its predecessor.
//   - Origin   — place the note the interval above notes[0].
//
// The zero value is Current.
type Reference int

const (
	// Current measures from the edited note itself.
	Current Reference = iota

	// Previous measures from the note immediately before the edited one.
	Previous

	// Origin measures from the first note of the scale.
	Origin
)

var referenceNames = [...]string{
	Current:  "current",
	Previous: "previous",
	Origin:   "origin",
}

// String returns the lower-case name of r, or "Reference(n)" for values
// outside the enumeration.
func (r Reference) String() string {
	if r.valid() {
		return referenceNames[r]
	}

	return fmt.Sprintf("Reference(%d)", int(r))
}

func (r Reference) valid() bool {
	return r >= Current && r <= Origin
}

// ParseReference maps "current", "previous" or "origin" (any case, surrounding
// spaces ignored) to its Reference. Anything else yields ErrUnknownReference.
func ParseReference(s string) (Reference, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r, n := range referenceNames {
		if n == name {
			return Reference(r), nil
		}
	}

	return Current, fmt.Errorf("ParseReference(%q): %w", s, ErrUnknownReference)
}

// ToneBasis is an immutable, ordered sequence of intervals in cents that
// defines a repeatable tuning pattern. Build with NewToneBasis or Equidistant.
type ToneBasis struct {
	intervals []float64
}

// Scale is a mutable, ordered sequence of absolute frequencies. notes[0] is
// the origin. A Scale must not be mutated from several goroutines without
// external synchronization; use Copy to branch edits.
type Scale struct {
	notes []float64
}
