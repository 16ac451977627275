// Package stats provides the small floating-point helpers used by the
// colorconv demonstration tooling.
package stats

import (
	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of values.
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Mean returns the arithmetic mean of values. The element count is
// widened to float64 before dividing, so the division is floating-point
// rather than integer. An empty input yields NaN.
func Mean(values []float64) float64 {
	return Sum(values) / float64(len(values))
}
