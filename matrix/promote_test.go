// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

func TestPromote(t *testing.T) {
	assert.Equal(t, matrix.NewMatrix3[float64](1, 3, 0, 2, 4, 0, 0, 0, 1), a2.ToMatrix3())
	assert.Equal(t, matrix.NewMatrix4[float64](
		1, 3, 0, 0,
		2, 4, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	), a2.ToMatrix4())
	assert.Equal(t, matrix.NewMatrix4[float64](
		1, 4, 7, 0,
		2, 5, 8, 0,
		3, 6, 9, 0,
		0, 0, 0, 1,
	), a3.ToMatrix4())

	assert.Equal(t, a3, a3.ToMatrix4().Truncate())
	assert.Equal(t, matrix.Identity4[float64](), matrix.Identity2[float64]().ToMatrix4())

	// Determinant is preserved by the identity embedding.
	assert.Equal(t, a2.Determinant(), a2.ToMatrix3().Determinant())
	assert.Equal(t, c3.Determinant(), c3.ToMatrix4().Determinant())
}

func TestPromote_ActsOnEmbeddedVectors(t *testing.T) {
	r := matrix.Matrix2FromAngle(0.6)
	p := vector.NewVector2[float64](3, -1)

	requireApprox(t, r.MulV(p).Extend(1), r.ToMatrix3().MulV(p.Extend(1)))
	requireApprox(t, r.MulV(p).Extend(0).Extend(1), r.ToMatrix4().MulV(p.Extend(0).Extend(1)))
}
