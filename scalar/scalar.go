// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultEpsilon is the library-wide tolerance for approximate equality,
// predicates and invertibility checks. Sized for single precision.
const DefaultEpsilon = 1e-5

// Float is the element type contract: an IEEE-754 binary floating-point
// type with the usual field operators.
type Float interface {
	constraints.Float
}

// Zero returns the additive identity of S.
func Zero[S Float]() S { return 0 }

// One returns the multiplicative identity of S.
func One[S Float]() S { return 1 }

// Abs returns |x|.
func Abs[S Float](x S) S {
	if x < 0 {
		return -x
	}

	return x
}

// ApproxEqual reports whether |a-b| <= eps.
// NaN never compares equal, whatever the tolerance.
func ApproxEqual[S Float](a, b, eps S) bool {
	return Abs(a-b) <= eps
}

// ApproxZero reports whether |x| <= eps.
func ApproxZero[S Float](x, eps S) bool {
	return Abs(x) <= eps
}

// Rem returns the floating-point remainder of x/y with the sign of x.
func Rem[S Float](x, y S) S {
	return S(math.Mod(float64(x), float64(y)))
}

// Sqrt returns the square root of x.
func Sqrt[S Float](x S) S {
	return S(math.Sqrt(float64(x)))
}

// SinCos returns sin(theta) and cos(theta) for theta in radians.
// Evaluated in float64 and narrowed once.
func SinCos[S Float](theta S) (sin, cos S) {
	s, c := math.Sincos(float64(theta))

	return S(s), S(c)
}

// Tan returns tan(theta) for theta in radians.
func Tan[S Float](theta S) S {
	return S(math.Tan(float64(theta)))
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[S Float](x S) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
