// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// TestPredicates_Table runs every predicate on a small zoo of 3×3 shapes.
func TestPredicates_Table(t *testing.T) {
	sym := matrix.NewMatrix3[float64](1, 2, 3, 2, 5, 6, 3, 6, 9)
	diag := matrix.Matrix3FromDiagonal(vector.NewVector3[float64](1, -2, 3))
	nearID := matrix.Identity3[float64]()
	nearID[2][0] = 1e-7

	cases := []struct {
		name                                   string
		m                                      matrix.Matrix3[float64]
		zero, identity, diagonal, symmetric, inv bool
	}{
		{"zero", matrix.Zero3[float64](), true, false, true, true, false},
		{"identity", matrix.Identity3[float64](), false, true, true, true, true},
		{"near identity", nearID, false, true, true, true, true},
		{"diagonal", diag, false, false, true, true, true},
		{"symmetric singular", sym, false, false, false, true, false},
		{"general singular", a3, false, false, false, false, false},
		{"lower triangular", c3, false, false, false, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.zero, tc.m.IsZero(), "IsZero")
			assert.Equal(t, tc.identity, tc.m.IsIdentity(), "IsIdentity")
			assert.Equal(t, tc.diagonal, tc.m.IsDiagonal(), "IsDiagonal")
			assert.Equal(t, tc.symmetric, tc.m.IsSymmetric(), "IsSymmetric")
			assert.Equal(t, tc.inv, tc.m.IsInvertible(), "IsInvertible")
		})
	}
}

// TestPredicates_Epsilon shows the tolerance moving the verdict.
func TestPredicates_Epsilon(t *testing.T) {
	m := matrix.Identity2[float64]()
	m[1][0] = 1e-3

	assert.False(t, m.IsIdentity())
	assert.True(t, m.IsIdentity(matrix.WithEpsilon(1e-2)))
	assert.False(t, m.IsSymmetric())
	assert.True(t, m.IsSymmetric(matrix.WithEpsilon(1e-3)), "boundary is inclusive")

	exact := matrix.WithEpsilon(0)
	assert.True(t, a2.ApproxEqual(a2, exact))
	assert.False(t, a2.ApproxEqual(a2.AddM(matrix.Matrix2FromValue(1e-12)), exact))
	assert.True(t, a2.ApproxEqual(a2.AddM(matrix.Matrix2FromValue(1e-12))))
}

// TestIsInvertible_AgreesWithInvert pins the shared epsilon source: for every
// tolerance, IsInvertible(opts...) is true exactly when Invert(opts...) succeeds.
func TestIsInvertible_AgreesWithInvert(t *testing.T) {
	m := matrix.Matrix4FromDiagonal(vector.NewVector4[float64](1e-2, 1, 1, 1)) // det = 0.01

	for _, eps := range []float64{0, 1e-5, 1e-3, 1e-2, 0.011, 1} {
		opt := matrix.WithEpsilon(eps)
		_, err := m.Invert(opt)
		assert.Equalf(t, err == nil, m.IsInvertible(opt), "eps=%v", eps)
	}

	assert.True(t, m.IsInvertible())
	assert.False(t, m.IsInvertible(matrix.WithEpsilon(0.011)))
}
