// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix2 is a 2×2 column-major matrix: m[j] is column j and m[j][i] is the
// element at row i, column j.
type Matrix2[S scalar.Float] [2]vector.Vector2[S]

// ---------- Construction ----------

// NewMatrix2 builds a matrix from 4 scalars in column-major argument order.
func NewMatrix2[S scalar.Float](c0r0, c0r1, c1r0, c1r1 S) Matrix2[S] {
	return Matrix2[S]{
		{c0r0, c0r1},
		{c1r0, c1r1},
	}
}

// Matrix2FromCols builds a matrix from its columns.
func Matrix2FromCols[S scalar.Float](c0, c1 vector.Vector2[S]) Matrix2[S] {
	return Matrix2[S]{c0, c1}
}

// Matrix2FromValue returns diag(v, v).
func Matrix2FromValue[S scalar.Float](v S) Matrix2[S] {
	return NewMatrix2(v, 0, 0, v)
}

// Matrix2FromDiagonal returns diag(d[0], d[1]).
func Matrix2FromDiagonal[S scalar.Float](d vector.Vector2[S]) Matrix2[S] {
	return NewMatrix2(d[0], 0, 0, d[1])
}

// Identity2 returns the 2×2 identity.
func Identity2[S scalar.Float]() Matrix2[S] { return Matrix2FromValue(scalar.One[S]()) }

// Zero2 returns the 2×2 zero matrix.
func Zero2[S scalar.Float]() Matrix2[S] { return Matrix2FromValue(scalar.Zero[S]()) }

// ---------- Access ----------

// Dim returns 2.
func (m Matrix2[S]) Dim() int { return 2 }

// Col returns column i. Panics with ErrOutOfRange unless 0 <= i < 2.
func (m Matrix2[S]) Col(i int) vector.Vector2[S] {
	mustIndex(opCol, i, 2)
	return m[i]
}

// ColMut returns a pointer to column i inside m.
func (m *Matrix2[S]) ColMut(i int) *vector.Vector2[S] {
	mustIndex(opCol, i, 2)
	return &m[i]
}

// SetCol overwrites column i.
func (m *Matrix2[S]) SetCol(i int, v vector.Vector2[S]) {
	*m.ColMut(i) = v
}

// Row gathers row i from both columns; it is not stored.
func (m Matrix2[S]) Row(i int) vector.Vector2[S] {
	mustIndex(opRow, i, 2)
	return vector.Vector2[S]{m[0][i], m[1][i]}
}

// Elem returns the element at column c, row r. The column index comes first.
func (m Matrix2[S]) Elem(c, r int) S {
	mustElemIndex(opElem, c, r, 2)
	return m[c][r]
}

// ElemMut returns a pointer to the element at column c, row r.
func (m *Matrix2[S]) ElemMut(c, r int) *S {
	mustElemIndex(opElem, c, r, 2)
	return &m[c][r]
}

// SetElem writes the element at column c, row r.
func (m *Matrix2[S]) SetElem(c, r int, v S) {
	*m.ElemMut(c, r) = v
}

// SwapCols exchanges columns a and b.
func (m *Matrix2[S]) SwapCols(a, b int) {
	mustIndex(opSwap, a, 2)
	mustIndex(opSwap, b, 2)
	m[a], m[b] = m[b], m[a]
}

// SwapRows exchanges rows a and b.
func (m *Matrix2[S]) SwapRows(a, b int) {
	mustIndex(opSwap, a, 2)
	mustIndex(opSwap, b, 2)
	for j := range m {
		m[j][a], m[j][b] = m[j][b], m[j][a]
	}
}

// SwapElems exchanges element (c0,r0) with (c1,r1).
func (m *Matrix2[S]) SwapElems(c0, r0, c1, r1 int) {
	mustElemIndex(opSwap, c0, r0, 2)
	mustElemIndex(opSwap, c1, r1, 2)
	m[c0][r0], m[c1][r1] = m[c1][r1], m[c0][r0]
}

// Diagonal returns (m00, m11).
func (m Matrix2[S]) Diagonal() vector.Vector2[S] {
	return vector.Vector2[S]{m[0][0], m[1][1]}
}

// ---------- Transpose, trace, determinant ----------

// Transpose returns the matrix with rows and columns exchanged.
// It runs TransposeSelf on the receiver copy.
func (m Matrix2[S]) Transpose() Matrix2[S] {
	m.TransposeSelf()
	return m
}

// TransposeSelf transposes m in place with a single off-diagonal swap.
func (m *Matrix2[S]) TransposeSelf() {
	m.SwapElems(0, 1, 1, 0)
}

// Trace returns m00 + m11.
func (m Matrix2[S]) Trace() S { return m.Diagonal().Sum() }

// Determinant returns elem(0,0)*elem(1,1) - elem(1,0)*elem(0,1).
func (m Matrix2[S]) Determinant() S {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

// ---------- Products and scalar ops ----------

// MulV returns m·v with v as a column vector.
func (m Matrix2[S]) MulV(v vector.Vector2[S]) vector.Vector2[S] {
	return vector.Vector2[S]{m.Row(0).Dot(v), m.Row(1).Dot(v)}
}

// MulM returns m·o; column j of the result is m.MulV(o[j]).
func (m Matrix2[S]) MulM(o Matrix2[S]) Matrix2[S] {
	return Matrix2[S]{m.MulV(o[0]), m.MulV(o[1])}
}

// MulS scales every element by s.
func (m Matrix2[S]) MulS(s S) Matrix2[S] { return Matrix2[S]{m[0].MulS(s), m[1].MulS(s)} }

// DivS divides every element by s.
func (m Matrix2[S]) DivS(s S) Matrix2[S] { return Matrix2[S]{m[0].DivS(s), m[1].DivS(s)} }

// RemS takes the floating-point remainder of every element by s.
func (m Matrix2[S]) RemS(s S) Matrix2[S] { return Matrix2[S]{m[0].RemS(s), m[1].RemS(s)} }

// AddM returns m + o.
func (m Matrix2[S]) AddM(o Matrix2[S]) Matrix2[S] { return Matrix2[S]{m[0].AddV(o[0]), m[1].AddV(o[1])} }

// SubM returns m - o.
func (m Matrix2[S]) SubM(o Matrix2[S]) Matrix2[S] { return Matrix2[S]{m[0].SubV(o[0]), m[1].SubV(o[1])} }

// Neg returns -m.
func (m Matrix2[S]) Neg() Matrix2[S] { return Matrix2[S]{m[0].Neg(), m[1].Neg()} }

// MulSelfM sets m = m·o.
func (m *Matrix2[S]) MulSelfM(o Matrix2[S]) { *m = m.MulM(o) }

// MulSelfS sets m = m·s.
func (m *Matrix2[S]) MulSelfS(s S) { *m = m.MulS(s) }

// DivSelfS sets m = m/s.
func (m *Matrix2[S]) DivSelfS(s S) { *m = m.DivS(s) }

// RemSelfS sets m = m mod s.
func (m *Matrix2[S]) RemSelfS(s S) { *m = m.RemS(s) }

// AddSelfM sets m = m + o.
func (m *Matrix2[S]) AddSelfM(o Matrix2[S]) { *m = m.AddM(o) }

// SubSelfM sets m = m - o.
func (m *Matrix2[S]) SubSelfM(o Matrix2[S]) { *m = m.SubM(o) }

// NegSelf sets m = -m.
func (m *Matrix2[S]) NegSelf() { *m = m.Neg() }

// ---------- Inversion ----------

// Invert returns the adjugate divided by the determinant.
// Returns ErrSingular (wrapped with "Invert") when |det| <= eps.
func (m Matrix2[S]) Invert(opts ...Option) (Matrix2[S], error) {
	det := m.Determinant()
	if !invertible(det, epsilonOf[S](opts)) {
		return Matrix2[S]{}, matrixErrorf(opInvert, ErrSingular)
	}

	return NewMatrix2(
		m[1][1]/det, -m[0][1]/det,
		-m[1][0]/det, m[0][0]/det,
	), nil
}

// InvertSelf replaces m with its inverse. Panics on a singular matrix; use
// Invert when invertibility has not been established.
func (m *Matrix2[S]) InvertSelf(opts ...Option) {
	inv, err := m.Invert(opts...)
	if err != nil {
		panic(err)
	}
	*m = inv
}

// ---------- Predicates ----------

// ApproxEqual reports whether every element of m is within eps of o.
func (m Matrix2[S]) ApproxEqual(o Matrix2[S], opts ...Option) bool {
	return approxEqual[S](m, o, epsilonOf[S](opts))
}

// IsZero reports whether m ≈ 0.
func (m Matrix2[S]) IsZero(opts ...Option) bool { return isZero[S](m, epsilonOf[S](opts)) }

// IsIdentity reports whether m ≈ I.
func (m Matrix2[S]) IsIdentity(opts ...Option) bool { return m.ApproxEqual(Identity2[S](), opts...) }

// IsDiagonal reports whether every off-diagonal element is within eps of zero.
func (m Matrix2[S]) IsDiagonal(opts ...Option) bool { return isDiagonal[S](m, epsilonOf[S](opts)) }

// IsSymmetric reports whether m ≈ mᵀ.
func (m Matrix2[S]) IsSymmetric(opts ...Option) bool { return isSymmetric[S](m, epsilonOf[S](opts)) }

// IsInvertible reports whether |det| > eps; true iff Invert(opts...) succeeds.
func (m Matrix2[S]) IsInvertible(opts ...Option) bool {
	return invertible(m.Determinant(), epsilonOf[S](opts))
}
