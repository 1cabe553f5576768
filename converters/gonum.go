// SPDX-License-Identifier: MIT
// Package converters: gonum adapters.
//
// Direction:
//   - ToDense copies any lvmath matrix into a fresh row-major *mat.Dense.
//   - View exposes a matrix to gonum without copying, via the mat.Matrix
//     interface (Dims, At, T).
//   - MatrixNFromDense reads any mat.Matrix of the right shape back, failing
//     with matrix.ErrDimensionMismatch or matrix.ErrNaNInf.

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/scalar"
)

// Square is the read surface shared by Matrix2, Matrix3 and Matrix4.
type Square[S scalar.Float] interface {
	Dim() int
	Elem(c, r int) S
}

// ToDense copies m into a new n×n *mat.Dense, widening to float64.
func ToDense[S scalar.Float, M Square[S]](m M) *mat.Dense {
	n := m.Dim()
	data := make([]float64, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			data[r*n+c] = float64(m.Elem(c, r))
		}
	}

	return mat.NewDense(n, n, data)
}

// view adapts a Square to mat.Matrix.
type view[S scalar.Float, M Square[S]] struct{ m M }

// View returns a zero-copy mat.Matrix reading m. At(i, j) is row i, column j.
func View[S scalar.Float, M Square[S]](m M) mat.Matrix { return view[S, M]{m} }

func (v view[S, M]) Dims() (r, c int)    { return v.m.Dim(), v.m.Dim() }
func (v view[S, M]) At(i, j int) float64 { return float64(v.m.Elem(j, i)) }
func (v view[S, M]) T() mat.Matrix       { return mat.Transpose{Matrix: v} }

// columnMajor reads an n×n mat.Matrix into a column-major buffer.
func columnMajor(a mat.Matrix, n int) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("FromDense: nil matrix: %w", matrix.ErrDimensionMismatch)
	}
	r, c := a.Dims()
	if r != n || c != n {
		return nil, fmt.Errorf("FromDense: want %dx%d, got %dx%d: %w", n, n, r, c, matrix.ErrDimensionMismatch)
	}
	out := make([]float64, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			out = append(out, a.At(i, j))
		}
	}

	return out, nil
}

// Matrix2FromDense reads a 2×2 mat.Matrix.
func Matrix2FromDense(a mat.Matrix) (matrix.Matrix2[float64], error) {
	xs, err := columnMajor(a, 2)
	if err != nil {
		return matrix.Matrix2[float64]{}, err
	}

	return matrix.Matrix2FromSlice(xs)
}

// Matrix3FromDense reads a 3×3 mat.Matrix.
func Matrix3FromDense(a mat.Matrix) (matrix.Matrix3[float64], error) {
	xs, err := columnMajor(a, 3)
	if err != nil {
		return matrix.Matrix3[float64]{}, err
	}

	return matrix.Matrix3FromSlice(xs)
}

// Matrix4FromDense reads a 4×4 mat.Matrix.
func Matrix4FromDense(a mat.Matrix) (matrix.Matrix4[float64], error) {
	xs, err := columnMajor(a, 4)
	if err != nil {
		return matrix.Matrix4[float64]{}, err
	}

	return matrix.Matrix4FromSlice(xs)
}
