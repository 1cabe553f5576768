// SPDX-License-Identifier: MIT

// Package matrix: shared contract of the fixed-size matrix family.
// This file contains ONLY the Square interface, the operation tags used for
// error wrapping, and the compile-time assertions that Matrix2, Matrix3 and
// Matrix4 satisfy Square for both float32 and float64.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCol       = "Col"
	opRow       = "Row"
	opElem      = "Elem"
	opSwap      = "Swap"
	opInvert    = "Invert"
	opFromSlice = "FromSlice"
	opYAML      = "UnmarshalYAML"
	opFrustum   = "Frustum"
	opPersp     = "Perspective"
	opOrtho     = "Ortho"
)

// Square is the operation family every fixed-size matrix implements,
// parameterized by its scalar S, column/row vector V and own type M.
//
// The closed-form pieces (Determinant, Invert) are implemented per size;
// predicates and equality share generic kernels in predicates.go.
//
// Storage is column-major: Elem(c, r) is the element in column c, row r.
type Square[S scalar.Float, V any, M any] interface {
	// Dim returns N for an N×N matrix.
	Dim() int

	Elem(c, r int) S
	Col(i int) V
	Row(i int) V
	Diagonal() V

	Transpose() M
	Trace() S
	Determinant() S

	MulV(v V) V
	MulM(o M) M
	MulS(s S) M
	DivS(s S) M
	RemS(s S) M
	AddM(o M) M
	SubM(o M) M
	Neg() M

	// Invert returns ErrSingular (wrapped) when |Determinant()| <= eps.
	Invert(opts ...Option) (M, error)

	ApproxEqual(o M, opts ...Option) bool
	IsZero(opts ...Option) bool
	IsIdentity(opts ...Option) bool
	IsDiagonal(opts ...Option) bool
	IsSymmetric(opts ...Option) bool
	IsInvertible(opts ...Option) bool

	// Slice returns a fresh column-major copy of the N² elements.
	Slice() []S
}

var (
	_ Square[float64, vector.Vector2[float64], Matrix2[float64]] = Matrix2[float64]{}
	_ Square[float32, vector.Vector2[float32], Matrix2[float32]] = Matrix2[float32]{}
	_ Square[float64, vector.Vector3[float64], Matrix3[float64]] = Matrix3[float64]{}
	_ Square[float32, vector.Vector3[float32], Matrix3[float32]] = Matrix3[float32]{}
	_ Square[float64, vector.Vector4[float64], Matrix4[float64]] = Matrix4[float64]{}
	_ Square[float32, vector.Vector4[float32], Matrix4[float32]] = Matrix4[float32]{}
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
