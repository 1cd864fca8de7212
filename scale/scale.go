// SPDX-License-Identifier: MIT

package scale

import "fmt"

// Method names used as error context.
const (
	methodNew     = "New"
	methodSetNote = "SetNote"
)

// NewFromRates builds a Scale whose notes are FromRates(origin, rates).
func NewFromRates(origin float64, rates []float64) *Scale {
	return &Scale{notes: FromRates(origin, rates)}
}

// NewFromNotes builds a Scale from a copy of notes.
func NewFromNotes(notes []float64) *Scale {
	return &Scale{notes: append([]float64(nil), notes...)}
}

// New builds a Scale from either (WithOrigin + WithRates) or WithNotes.
//
// Errors (both also match ErrInvalidConstruction):
//   - ErrAmbiguousConstruction  — WithNotes combined with WithOrigin or WithRates.
//   - ErrIncompleteConstruction — no WithNotes and WithOrigin or WithRates missing.
//
// No partial Scale is returned on error.
func New(opts ...Option) (*Scale, error) {
	o := gatherOptions(opts...)
	if o.hasNotes {
		if o.hasOrigin || o.hasRates {
			return nil, fmt.Errorf("%s: %w", methodNew, constructionError(ErrAmbiguousConstruction))
		}

		return NewFromNotes(o.notes), nil
	}
	if !o.hasOrigin || !o.hasRates {
		return nil, fmt.Errorf("%s: %w", methodNew, constructionError(ErrIncompleteConstruction))
	}

	return NewFromRates(o.origin, o.rates), nil
}

// Copy returns a Scale with an independent copy of the current notes.
func (s *Scale) Copy() *Scale {
	return NewFromNotes(s.notes)
}

// Notes returns a copy of the note frequencies.
func (s *Scale) Notes() []float64 {
	return append([]float64(nil), s.notes...)
}

// Len returns the number of notes (intervals + 1).
func (s *Scale) Len() int { return len(s.notes) }

// Origin returns notes[0], or 0 for an empty Scale.
func (s *Scale) Origin() float64 {
	if len(s.notes) == 0 {
		return 0
	}

	return s.notes[0]
}

// Rates returns notes[i+1]/notes[i] for every consecutive pair, computed
// from the current notes on each call.
func (s *Scale) Rates() []float64 {
	if len(s.notes) < 2 {
		return []float64{}
	}
	out := make([]float64, len(s.notes)-1)
	for i := range out {
		out[i] = s.notes[i+1] / s.notes[i]
	}

	return out
}

// Intervals returns Rates converted to cents. For any ToneBasis b and positive
// origin f, b.ToScale(f).Intervals() recovers b.Intervals() up to rounding.
func (s *Scale) Intervals() []float64 {
	return ratiosToCents(s.Rates())
}

// SetNote rewrites notes[index] to lie cents away from the pitch chosen by ref:
//
//	Current:  notes[index] ← notes[index] · 2^(cents/1200)
//	Previous: notes[index] ← notes[index-1] · 2^(cents/1200)
//	Origin:   notes[index] ← notes[0] · 2^(cents/1200)
//
// Exactly one element changes. The receiver is returned for chaining.
//
// Errors (notes left untouched):
//   - ErrOutOfRange       — index outside [0, Len()), or index 0 with Previous.
//   - ErrUnknownReference — ref outside the Reference enumeration.
func (s *Scale) SetNote(index int, cents float64, ref Reference) (*Scale, error) {
	if !ref.valid() {
		return s, fmt.Errorf("%s: %v: %w", methodSetNote, ref, ErrUnknownReference)
	}
	if index < 0 || index >= len(s.notes) {
		return s, indexError(methodSetNote, index, len(s.notes))
	}

	var base float64
	switch ref {
	case Current:
		base = s.notes[index]
	case Previous:
		if index == 0 {
			return s, fmt.Errorf("%s: origin has no previous note: %w", methodSetNote, ErrOutOfRange)
		}
		base = s.notes[index-1]
	case Origin:
		base = s.notes[0]
	}
	s.notes[index] = base * CentsToRatio(cents)

	return s, nil
}

// Transpose multiplies every note by 2^(cents/1200). Rates and intervals are
// unchanged. Returns the receiver.
func (s *Scale) Transpose(cents float64) *Scale {
	r := CentsToRatio(cents)
	for i := range s.notes {
		s.notes[i] *= r
	}

	return s
}
