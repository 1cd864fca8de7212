// SPDX-License-Identifier: MIT

package scale

// FromRates returns the frequencies obtained by applying rates cumulatively to
// origin:
//
//	out[0] = origin
//	out[i] = out[i-1] · rates[i-1],  i = 1..len(rates)
//
// The result always has len(rates)+1 elements and never aliases rates.
// Inputs are not validated; NaN/Inf propagate through the running product.
//
// Complexity: O(n) time, O(n) memory.
func FromRates(origin float64, rates []float64) []float64 {
	out := make([]float64, len(rates)+1)
	out[0] = origin
	for i, r := range rates {
		out[i+1] = out[i] * r
	}

	return out
}
