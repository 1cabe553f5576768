// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix4 is a 4×4 column-major matrix: m[j] is column j and m[j][i] is the
// element at row i, column j. Column 3 carries the translation of an affine
// transform.
type Matrix4[S scalar.Float] [4]vector.Vector4[S]

// ---------- Construction ----------

// NewMatrix4 builds a matrix from 16 scalars in column-major argument order.
func NewMatrix4[S scalar.Float](
	c0r0, c0r1, c0r2, c0r3,
	c1r0, c1r1, c1r2, c1r3,
	c2r0, c2r1, c2r2, c2r3,
	c3r0, c3r1, c3r2, c3r3 S,
) Matrix4[S] {
	return Matrix4[S]{
		{c0r0, c0r1, c0r2, c0r3},
		{c1r0, c1r1, c1r2, c1r3},
		{c2r0, c2r1, c2r2, c2r3},
		{c3r0, c3r1, c3r2, c3r3},
	}
}

// Matrix4FromCols builds a matrix from its columns.
func Matrix4FromCols[S scalar.Float](c0, c1, c2, c3 vector.Vector4[S]) Matrix4[S] {
	return Matrix4[S]{c0, c1, c2, c3}
}

// Matrix4FromValue returns diag(v, v, v, v).
func Matrix4FromValue[S scalar.Float](v S) Matrix4[S] {
	return Matrix4FromDiagonal(vector.Vector4[S]{v, v, v, v})
}

// Matrix4FromDiagonal returns diag(d[0], d[1], d[2], d[3]).
func Matrix4FromDiagonal[S scalar.Float](d vector.Vector4[S]) Matrix4[S] {
	return NewMatrix4(
		d[0], 0, 0, 0,
		0, d[1], 0, 0,
		0, 0, d[2], 0,
		0, 0, 0, d[3],
	)
}

// Identity4 returns the 4×4 identity.
func Identity4[S scalar.Float]() Matrix4[S] { return Matrix4FromValue(scalar.One[S]()) }

// Zero4 returns the 4×4 zero matrix.
func Zero4[S scalar.Float]() Matrix4[S] { return Matrix4FromValue(scalar.Zero[S]()) }

// ---------- Access ----------

// Dim returns 4.
func (m Matrix4[S]) Dim() int { return 4 }

// Col returns column i. Panics with ErrOutOfRange unless 0 <= i < 4.
func (m Matrix4[S]) Col(i int) vector.Vector4[S] {
	mustIndex(opCol, i, 4)
	return m[i]
}

// ColMut returns a pointer to column i inside m.
func (m *Matrix4[S]) ColMut(i int) *vector.Vector4[S] {
	mustIndex(opCol, i, 4)
	return &m[i]
}

// SetCol overwrites column i.
func (m *Matrix4[S]) SetCol(i int, v vector.Vector4[S]) {
	*m.ColMut(i) = v
}

// Row gathers row i from the four columns.
func (m Matrix4[S]) Row(i int) vector.Vector4[S] {
	mustIndex(opRow, i, 4)
	return vector.Vector4[S]{m[0][i], m[1][i], m[2][i], m[3][i]}
}

// Elem returns the element at column c, row r.
func (m Matrix4[S]) Elem(c, r int) S {
	mustElemIndex(opElem, c, r, 4)
	return m[c][r]
}

// ElemMut returns a pointer to the element at column c, row r.
func (m *Matrix4[S]) ElemMut(c, r int) *S {
	mustElemIndex(opElem, c, r, 4)
	return &m[c][r]
}

// SetElem writes the element at column c, row r.
func (m *Matrix4[S]) SetElem(c, r int, v S) {
	*m.ElemMut(c, r) = v
}

// SwapCols exchanges columns a and b.
func (m *Matrix4[S]) SwapCols(a, b int) {
	mustIndex(opSwap, a, 4)
	mustIndex(opSwap, b, 4)
	m[a], m[b] = m[b], m[a]
}

// SwapRows exchanges rows a and b.
func (m *Matrix4[S]) SwapRows(a, b int) {
	mustIndex(opSwap, a, 4)
	mustIndex(opSwap, b, 4)
	for j := range m {
		m[j][a], m[j][b] = m[j][b], m[j][a]
	}
}

// SwapElems exchanges element (c0,r0) with (c1,r1).
func (m *Matrix4[S]) SwapElems(c0, r0, c1, r1 int) {
	mustElemIndex(opSwap, c0, r0, 4)
	mustElemIndex(opSwap, c1, r1, 4)
	m[c0][r0], m[c1][r1] = m[c1][r1], m[c0][r0]
}

// Diagonal returns (m00, m11, m22, m33).
func (m Matrix4[S]) Diagonal() vector.Vector4[S] {
	return vector.Vector4[S]{m[0][0], m[1][1], m[2][2], m[3][3]}
}

// ---------- Transpose, trace, determinant ----------

// Transpose returns the matrix with rows and columns exchanged.
func (m Matrix4[S]) Transpose() Matrix4[S] {
	m.TransposeSelf()
	return m
}

// TransposeSelf transposes m in place: one swap per strict upper element.
func (m *Matrix4[S]) TransposeSelf() {
	var c, r int
	for c = 0; c < 4; c++ {
		for r = c + 1; r < 4; r++ {
			m.SwapElems(c, r, r, c)
		}
	}
}

// Trace returns m00 + m11 + m22 + m33.
func (m Matrix4[S]) Trace() S { return m.Diagonal().Sum() }

// Minor returns the 3×3 matrix left after deleting column c and row r.
func (m Matrix4[S]) Minor(c, r int) Matrix3[S] {
	mustElemIndex(opElem, c, r, 4)
	var out Matrix3[S]
	var j, i, oj, oi int
	for j = 0; j < 4; j++ {
		if j == c {
			continue
		}
		oi = 0
		for i = 0; i < 4; i++ {
			if i == r {
				continue
			}
			out[oj][oi] = m[j][i]
			oi++
		}
		oj++
	}

	return out
}

// Determinant is the cofactor expansion along row 0:
// Σ (-1)^c · m(c,0) · det(Minor(c,0)).
func (m Matrix4[S]) Determinant() S {
	var det S
	sign := scalar.One[S]()
	for c := 0; c < 4; c++ {
		det += sign * m[c][0] * m.Minor(c, 0).Determinant()
		sign = -sign
	}

	return det
}

// ---------- Products and scalar ops ----------

// MulV returns m·v with v as a column vector.
func (m Matrix4[S]) MulV(v vector.Vector4[S]) vector.Vector4[S] {
	return vector.Vector4[S]{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v), m.Row(3).Dot(v)}
}

// MulM returns m·o; column j of the result is m.MulV(o[j]).
func (m Matrix4[S]) MulM(o Matrix4[S]) Matrix4[S] {
	return Matrix4[S]{m.MulV(o[0]), m.MulV(o[1]), m.MulV(o[2]), m.MulV(o[3])}
}

// MulS scales every element by s.
func (m Matrix4[S]) MulS(s S) Matrix4[S] {
	return Matrix4[S]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s), m[3].MulS(s)}
}

// DivS divides every element by s.
func (m Matrix4[S]) DivS(s S) Matrix4[S] {
	return Matrix4[S]{m[0].DivS(s), m[1].DivS(s), m[2].DivS(s), m[3].DivS(s)}
}

// RemS takes the floating-point remainder of every element by s.
func (m Matrix4[S]) RemS(s S) Matrix4[S] {
	return Matrix4[S]{m[0].RemS(s), m[1].RemS(s), m[2].RemS(s), m[3].RemS(s)}
}

// AddM returns m + o.
func (m Matrix4[S]) AddM(o Matrix4[S]) Matrix4[S] {
	return Matrix4[S]{m[0].AddV(o[0]), m[1].AddV(o[1]), m[2].AddV(o[2]), m[3].AddV(o[3])}
}

// SubM returns m - o.
func (m Matrix4[S]) SubM(o Matrix4[S]) Matrix4[S] {
	return Matrix4[S]{m[0].SubV(o[0]), m[1].SubV(o[1]), m[2].SubV(o[2]), m[3].SubV(o[3])}
}

// Neg returns -m.
func (m Matrix4[S]) Neg() Matrix4[S] {
	return Matrix4[S]{m[0].Neg(), m[1].Neg(), m[2].Neg(), m[3].Neg()}
}

// MulSelfM sets m = m·o.
func (m *Matrix4[S]) MulSelfM(o Matrix4[S]) { *m = m.MulM(o) }

func (m *Matrix4[S]) MulSelfS(s S)          { *m = m.MulS(s) }
func (m *Matrix4[S]) DivSelfS(s S)          { *m = m.DivS(s) }
func (m *Matrix4[S]) RemSelfS(s S)          { *m = m.RemS(s) }
func (m *Matrix4[S]) AddSelfM(o Matrix4[S]) { *m = m.AddM(o) }
func (m *Matrix4[S]) SubSelfM(o Matrix4[S]) { *m = m.SubM(o) }
func (m *Matrix4[S]) NegSelf()              { *m = m.Neg() }

// ---------- Inversion ----------

// Invert returns the inverse by Gauss-Jordan elimination with partial
// pivoting (see gaussJordan4). Singularity is decided up front from the
// determinant so Invert agrees with IsInvertible for the same opts.
// Returns ErrSingular (wrapped with "Invert") when |det| <= eps.
func (m Matrix4[S]) Invert(opts ...Option) (Matrix4[S], error) {
	if !invertible(m.Determinant(), epsilonOf[S](opts)) {
		return Matrix4[S]{}, matrixErrorf(opInvert, ErrSingular)
	}

	return gaussJordan4(m), nil
}

// InvertSelf replaces m with its inverse. Panics on a singular matrix.
func (m *Matrix4[S]) InvertSelf(opts ...Option) {
	inv, err := m.Invert(opts...)
	if err != nil {
		panic(err)
	}
	*m = inv
}

// ---------- Predicates ----------

// ApproxEqual reports whether every element of m is within eps of o.
func (m Matrix4[S]) ApproxEqual(o Matrix4[S], opts ...Option) bool {
	return approxEqual[S](m, o, epsilonOf[S](opts))
}

func (m Matrix4[S]) IsZero(opts ...Option) bool { return isZero[S](m, epsilonOf[S](opts)) }

// IsIdentity reports whether m ≈ I. Useful as a round-trip check after
// inversion: inv.MulM(m).IsIdentity().
func (m Matrix4[S]) IsIdentity(opts ...Option) bool { return m.ApproxEqual(Identity4[S](), opts...) }

func (m Matrix4[S]) IsDiagonal(opts ...Option) bool { return isDiagonal[S](m, epsilonOf[S](opts)) }

func (m Matrix4[S]) IsSymmetric(opts ...Option) bool { return isSymmetric[S](m, epsilonOf[S](opts)) }

// IsInvertible reports whether |det| > eps; true iff Invert(opts...) succeeds.
func (m Matrix4[S]) IsInvertible(opts ...Option) bool {
	return invertible(m.Determinant(), epsilonOf[S](opts))
}
