// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the per-size tests.
//   - Centralize approximate comparison and panic inspection so individual
//     tests read as plain expectations.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// tol is the absolute tolerance for derived results (products of inverses,
// trig). Exact fixtures are compared with require.Equal instead.
const tol = 1e-9

// approx compares float64 values (and arrays of them) within tol.
var approx = cmpopts.EquateApprox(0, tol)

// Fixtures, column-major argument order.
var (
	a2 = matrix.NewMatrix2[float64](1, 3, 2, 4)
	b2 = matrix.NewMatrix2[float64](2, 4, 3, 5)
	v2 = vector.NewVector2[float64](1, 2)

	a3 = matrix.NewMatrix3[float64](1, 4, 7, 2, 5, 8, 3, 6, 9)
	b3 = matrix.NewMatrix3[float64](2, 5, 8, 3, 6, 9, 4, 7, 10)
	c3 = matrix.NewMatrix3[float64](2, 4, 6, 0, 2, 4, 0, 0, 1)
	v3 = vector.NewVector3[float64](1, 2, 3)

	a4 = matrix.NewMatrix4[float64](1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16)
	b4 = matrix.NewMatrix4[float64](2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16, 5, 9, 13, 17)
	c4 = matrix.NewMatrix4[float64](3, 2, 1, 1, 2, 3, 2, 2, 1, 2, 3, 3, 0, 1, 1, 0)
	v4 = vector.NewVector4[float64](1, 2, 3, 4)
)

// requireApprox fails unless got and want are element-wise within tol.
func requireApprox(t testing.TB, want, got any, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		require.FailNow(t, "values differ (-want +got):\n"+diff, msgAndArgs...)
	}
}

// requirePanicsWith runs fn and requires a panic whose value is an error
// matching target under errors.Is.
func requirePanicsWith(t testing.TB, target error, fn func()) {
	t.Helper()
	var rec any
	func() {
		defer func() { rec = recover() }()
		fn()
	}()
	require.NotNil(t, rec, "expected panic")
	err, ok := rec.(error)
	require.Truef(t, ok, "panic value %T is not an error", rec)
	require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
}

// randMatrix4 fills a 4×4 with values in [-10, 10) from a seeded source.
func randMatrix4(rng *rand.Rand) matrix.Matrix4[float64] {
	var m matrix.Matrix4[float64]
	for c := range m {
		for r := range m[c] {
			m[c][r] = rng.Float64()*20 - 10
		}
	}

	return m
}

// randMatrix3 fills a 3×3 with values in [-10, 10).
func randMatrix3(rng *rand.Rand) matrix.Matrix3[float64] {
	return randMatrix4(rng).Truncate()
}

// randMatrix2 fills a 2×2 with values in [-10, 10).
func randMatrix2(rng *rand.Rand) matrix.Matrix2[float64] {
	m := randMatrix4(rng)
	return matrix.NewMatrix2(m[0][0], m[0][1], m[1][0], m[1][1])
}
