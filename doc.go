// Package tuning is a small toolkit for the arithmetic of musical intervals,
// scales and temperaments, measured in cents.
//
// 🚀 What is in the module?
//
//	• scale/      — cents↔ratio conversion, the cumulative frequency builder,
//	                ToneBasis (interval patterns, equal divisions) and Scale
//	                (editable frequency sequences)
//	• cmd/scales/ — a command-line front end printing text, YAML or JSON reports
//
// ✨ Why cents?
//
//   - Intervals add where ratios multiply: 700 + 500 cents = one octave.
//   - Equal divisions are trivial: n steps of 1200/n cents.
//   - Frequencies stay in whatever unit the caller uses (conventionally Hz).
//
// Quick example:
//
//	A4 = 440 Hz, 12 equal steps:
//	    440.00 466.16 493.88 … 830.61 880.00
//
//	go get github.com/katalvlaran/tuning/scale
package tuning
