package engine

import "math"

// SafeDiv divides num by den, returning fallback when the denominator is zero
// or not a number. Used wherever the contract specifies a guarded default;
// unguarded divisions deliberately propagate Inf/NaN so invalid plan data
// stays visible downstream.
func SafeDiv(num, den, fallback float64) float64 {
	if den == 0 || math.IsNaN(den) {
		return fallback
	}
	return num / den
}

// Normalize maps NaN to zero. Applied at edit boundaries that accept raw
// user input, never inside derivations.
func Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
