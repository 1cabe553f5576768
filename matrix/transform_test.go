// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

func TestRotations_BasisVectors(t *testing.T) {
	q := math.Pi / 2

	requireApprox(t, vector.NewVector2[float64](0, 1), matrix.Matrix2FromAngle(q).MulV(vector.NewVector2[float64](1, 0)))
	requireApprox(t, vector.NewVector3[float64](0, 0, 1), matrix.Matrix3FromAngleX(q).MulV(vector.NewVector3[float64](0, 1, 0)))
	requireApprox(t, vector.NewVector3[float64](1, 0, 0), matrix.Matrix3FromAngleY(q).MulV(vector.NewVector3[float64](0, 0, 1)))
	requireApprox(t, vector.NewVector3[float64](0, 1, 0), matrix.Matrix3FromAngleZ(q).MulV(vector.NewVector3[float64](1, 0, 0)))
}

func TestRotations_AreOrthonormal(t *testing.T) {
	axis := vector.NewVector3[float64](1, 2, 2).Normalize()
	rots := map[string]matrix.Matrix3[float64]{
		"x":     matrix.Matrix3FromAngleX(0.3),
		"y":     matrix.Matrix3FromAngleY(-1.1),
		"z":     matrix.Matrix3FromAngleZ(2.5),
		"euler": matrix.Matrix3FromEuler(0.3, -1.1, 2.5),
		"axis":  matrix.Matrix3FromAxisAngle(axis, 0.7),
	}
	for name, r := range rots {
		t.Run(name, func(t *testing.T) {
			assert.True(t, r.MulM(r.Transpose()).IsIdentity())
			assert.InDelta(t, 1.0, r.Determinant(), tol)
			inv, err := r.Invert()
			assert.NoError(t, err)
			assert.True(t, inv.ApproxEqual(r.Transpose()))
		})
	}
}

func TestMatrix3FromEuler_ComposesZYX(t *testing.T) {
	x, y, z := 0.4, -0.9, 1.3
	want := matrix.Matrix3FromAngleZ(z).MulM(matrix.Matrix3FromAngleY(y)).MulM(matrix.Matrix3FromAngleX(x))
	requireApprox(t, want, matrix.Matrix3FromEuler(x, y, z))
}

func TestMatrix3FromAxisAngle_MatchesBasicRotations(t *testing.T) {
	requireApprox(t, matrix.Matrix3FromAngleX(0.8), matrix.Matrix3FromAxisAngle(vector.NewVector3[float64](1, 0, 0), 0.8))
	requireApprox(t, matrix.Matrix3FromAngleY(0.8), matrix.Matrix3FromAxisAngle(vector.NewVector3[float64](0, 1, 0), 0.8))
	requireApprox(t, matrix.Matrix3FromAngleZ(0.8), matrix.Matrix3FromAxisAngle(vector.NewVector3[float64](0, 0, 1), 0.8))

	// The axis itself is fixed.
	axis := vector.NewVector3[float64](0, 3, 4).Normalize()
	requireApprox(t, axis, matrix.Matrix3FromAxisAngle(axis, 1.9).MulV(axis))
}

func TestLookAt(t *testing.T) {
	dir2, up2 := vector.NewVector2[float64](0, 1), vector.NewVector2[float64](1, 0)
	requireApprox(t, vector.NewVector2[float64](0, 1), matrix.Matrix2LookAt(dir2, up2).MulV(dir2))

	dir := vector.NewVector3[float64](1, 1, 0)
	r := matrix.Matrix3LookAt(dir, vector.NewVector3[float64](0, 0, 1))
	requireApprox(t, vector.NewVector3[float64](0, 0, 1), r.MulV(dir.Normalize()))
	assert.True(t, r.MulM(r.Transpose()).IsIdentity())

	eye := vector.NewVector3[float64](0, 0, 5)
	view := matrix.Matrix4LookAt(eye, vector.Vector3[float64]{}, vector.NewVector3[float64](0, 1, 0))
	requireApprox(t, matrix.NewMatrix4[float64](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -5, 1,
	), view)
	requireApprox(t, vector.NewVector4[float64](0, 0, 0, 1), view.MulV(eye.Extend(1)))
}

func TestTranslationAndScale(t *testing.T) {
	tr := matrix.Matrix4FromTranslation(vector.NewVector3[float64](1, 2, 3))
	assert.Equal(t, vector.NewVector4[float64](1, 2, 3, 1), tr.MulV(vector.NewVector4[float64](0, 0, 0, 1)))
	assert.Equal(t, vector.NewVector4[float64](1, 0, 0, 0), tr.MulV(vector.NewVector4[float64](1, 0, 0, 0)), "directions ignore translation")

	sc := matrix.Matrix4FromScale(vector.NewVector3[float64](2, 3, 4))
	assert.Equal(t, vector.NewVector4[float64](2, 3, 4, 1), sc.MulV(vector.NewVector4[float64](1, 1, 1, 1)))
	assert.True(t, sc.IsDiagonal())

	inv, err := tr.MulM(sc).Invert()
	assert.NoError(t, err)
	requireApprox(t, vector.NewVector4[float64](0, 0, 0, 1), inv.MulV(vector.NewVector4[float64](1, 2, 3, 1)))
}
