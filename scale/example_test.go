package scale_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tuning/scale"
)

// ExampleFromRates shows the cumulative product behind every scale.
func ExampleFromRates() {
	fmt.Println(scale.FromRates(100, []float64{2, 1.5, 0.5}))
	// Output:
	// [100 200 300 150]
}

// ExampleEquidistant divides the octave into four minor thirds above A4.
func ExampleEquidistant() {
	b, err := scale.Equidistant(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, f := range b.Scale(440) {
		fmt.Printf("%.2f ", f)
	}
	fmt.Println()
	// Output:
	// 440.00 523.25 622.25 739.99 880.00
}

// ExampleScale_SetNote replaces the tempered fifth of 12-EDO with a near-just one
// and reports the resulting step sizes.
func ExampleScale_SetNote() {
	edo, _ := scale.Equidistant(12)
	s := edo.ToScale(440)
	if _, err := s.SetNote(7, 702, scale.Origin); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("fifth=%.3f\n", s.Notes()[7])
	for _, c := range s.Intervals()[5:8] {
		fmt.Printf("%.2f ", c)
	}
	fmt.Println()
	// Output:
	// fifth=660.017
	// 100.00 102.00 98.00
}

// ExampleNew shows the rejected ambiguous construction.
func ExampleNew() {
	_, err := scale.New(scale.WithNotes([]float64{100, 200}), scale.WithOrigin(100))
	fmt.Println(errors.Is(err, scale.ErrInvalidConstruction))
	// Output:
	// true
}
