// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// TestMatrix4_Arithmetic uses exact fixtures.
func TestMatrix4_Arithmetic(t *testing.T) {
	assert.Equal(t, vector.NewVector4[float64](1, 2, 3, 4), a4.Row(0))
	assert.Equal(t, vector.NewVector4[float64](1, 6, 11, 16), a4.Diagonal())
	assert.Equal(t, 12.0, a4.Elem(3, 2))

	assert.Equal(t, a4.MulS(-1), a4.Neg())
	assert.Equal(t, matrix.NewMatrix4[float64](0.5, 2.5, 4.5, 6.5, 1, 3, 5, 7, 1.5, 3.5, 5.5, 7.5, 2, 4, 6, 8), a4.MulS(0.5))
	assert.Equal(t, a4.MulS(0.5), a4.DivS(2))
	assert.Equal(t, matrix.Matrix4FromValue(-1.0).AddM(matrix.Matrix4FromValue(1.0)), matrix.Zero4[float64]())
	assert.Equal(t, matrix.NewMatrix4[float64](-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1), a4.SubM(b4))
	assert.Equal(t, a4.MulS(2), a4.AddM(a4))
	assert.Equal(t, vector.NewVector4[float64](30, 70, 110, 150), a4.MulV(v4))
	assert.Equal(t, matrix.NewMatrix4[float64](
		100, 228, 356, 484,
		110, 254, 398, 542,
		120, 280, 440, 600,
		130, 306, 482, 658,
	), a4.MulM(b4))
	assert.Equal(t, matrix.NewMatrix4[float64](1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16), a4.Transpose())
	assert.Equal(t, 34.0, a4.Trace())
	assert.Equal(t, 0.0, a4.Determinant())

	// Identity leaves a vector untouched.
	assert.Equal(t, v4, matrix.Identity4[float64]().MulV(v4))
}

// TestMatrix4_Minor checks column/row deletion and the cofactor determinant.
func TestMatrix4_Minor(t *testing.T) {
	assert.Equal(t, matrix.NewMatrix3[float64](6, 10, 14, 7, 11, 15, 8, 12, 16), a4.Minor(0, 0))
	assert.Equal(t, matrix.NewMatrix3[float64](1, 5, 13, 2, 6, 14, 3, 7, 15), a4.Minor(3, 2))
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = a4.Minor(4, 0) })

	d := matrix.NewMatrix4[float64](1, 2, 3, 4, 5, 6, 7, 8, 2, 6, 4, 8, 3, 1, 1, 2)
	assert.InDelta(t, 72.0, d.Determinant(), tol)
	assert.InDelta(t, d.Determinant(), d.Transpose().Determinant(), tol)
	assert.InDelta(t, -8.0, c4.Determinant(), tol)
}

// TestMatrix4_Invert covers Gauss-Jordan with and without pivoting.
func TestMatrix4_Invert(t *testing.T) {
	inv, err := c4.Invert()
	require.NoError(t, err)
	requireApprox(t, matrix.NewMatrix4[float64](5, -4, 1, 0, -4, 8, -4, 0, 4, -8, 4, 8, -3, 4, 1, -8), inv.MulS(8))
	assert.True(t, c4.MulM(inv).IsIdentity())
	assert.True(t, inv.MulM(c4).IsIdentity())

	// Each case has a zero in the first pivot position.
	pivots := []struct {
		name string
		m    matrix.Matrix4[float64]
		want matrix.Matrix4[float64]
	}{
		{
			name: "anti-identity",
			m:    matrix.NewMatrix4[float64](0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0),
			want: matrix.NewMatrix4[float64](0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0),
		},
		{
			name: "cyclic shift",
			m:    matrix.NewMatrix4[float64](0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0),
			want: matrix.NewMatrix4[float64](0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0),
		},
		{
			name: "scaled block swap",
			m:    matrix.NewMatrix4[float64](0, 2, 0, 0, 1, 0, 0, 0, 0, 0, 0, 3, 0, 0, 4, 0),
			want: matrix.NewMatrix4[float64](0, 1, 0, 0, 0.5, 0, 0, 0, 0, 0, 0, 0.25, 0, 0, 1.0/3, 0),
		},
	}
	for _, tc := range pivots {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.m.Invert()
			require.NoError(t, err)
			requireApprox(t, tc.want, got)
			assert.True(t, tc.m.MulM(got).IsIdentity())
		})
	}

	// Affine transform: rotation then translation.
	rt := matrix.Matrix4FromTranslation(vector.NewVector3[float64](1, -2, 3)).
		MulM(matrix.Matrix3FromAxisAngle(vector.NewVector3[float64](0, 0, 1), math.Pi/3).ToMatrix4())
	inv, err = rt.Invert()
	require.NoError(t, err)
	assert.True(t, inv.MulM(rt).IsIdentity())
	assert.True(t, rt.MulM(inv).IsIdentity())

	got, err := a4.Invert()
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrSingular))
	assert.Equal(t, matrix.Matrix4[float64]{}, got)
	requirePanicsWith(t, matrix.ErrSingular, func() {
		z := matrix.Zero4[float64]()
		z.InvertSelf()
	})
}

// TestMatrix4_SelfMatchesPure checks the in-place forms.
func TestMatrix4_SelfMatchesPure(t *testing.T) {
	m := c4
	m.InvertSelf()
	want, err := c4.Invert()
	require.NoError(t, err)
	assert.Equal(t, want, m)

	m = a4
	m.MulSelfM(b4)
	assert.Equal(t, a4.MulM(b4), m)

	m = a4
	m.RemSelfS(5)
	assert.Equal(t, a4.RemS(5), m)

	m = a4
	m.NegSelf()
	m.MulSelfS(-1)
	assert.Equal(t, a4, m)

	m = a4
	m.DivSelfS(4)
	assert.Equal(t, a4.DivS(4), m)

	m = a4
	m.TransposeSelf()
	assert.Equal(t, a4.Transpose(), m)
}
