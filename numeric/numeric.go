package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the absolute tolerance used by every solver unless the
// caller overrides it in the relevant Options struct.
const DefaultEpsilon = 1e-9

// EqualWithin reports whether a and b agree within the absolute tolerance eps.
func EqualWithin(a, b, eps float64) bool {
	return scalar.EqualWithinAbs(a, b, eps)
}

// Zero reports whether v is indistinguishable from zero within eps.
func Zero(v, eps float64) bool {
	return scalar.EqualWithinAbs(v, 0, eps)
}

// Positive reports whether v is strictly above the tolerance band,
// i.e. meaningfully greater than zero.
func Positive(v, eps float64) bool {
	return v > eps
}

// Negative reports whether v is strictly below the tolerance band,
// i.e. meaningfully less than zero.
func Negative(v, eps float64) bool {
	return v < -eps
}

// Unbounded reports whether v represents an infinite quantity
// (an uncapped edge, an instantaneous recipe).
func Unbounded(v float64) bool {
	return math.IsInf(v, 1)
}

// ClampNonNegative rounds solver noise in [-eps, 0) up to exactly zero and
// leaves every other value untouched. Interpreters use it so that reported
// rates and flows are never negative by a hair.
func ClampNonNegative(v, eps float64) float64 {
	if v < 0 && v >= -eps {
		return 0
	}

	return v
}
