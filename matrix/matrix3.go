// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix3 is a 3×3 column-major matrix: m[j] is column j and m[j][i] is the
// element at row i, column j.
type Matrix3[S scalar.Float] [3]vector.Vector3[S]

// ---------- Construction ----------

// NewMatrix3 builds a matrix from 9 scalars in column-major argument order.
func NewMatrix3[S scalar.Float](
	c0r0, c0r1, c0r2,
	c1r0, c1r1, c1r2,
	c2r0, c2r1, c2r2 S,
) Matrix3[S] {
	return Matrix3[S]{
		{c0r0, c0r1, c0r2},
		{c1r0, c1r1, c1r2},
		{c2r0, c2r1, c2r2},
	}
}

// Matrix3FromCols builds a matrix from its columns.
func Matrix3FromCols[S scalar.Float](c0, c1, c2 vector.Vector3[S]) Matrix3[S] {
	return Matrix3[S]{c0, c1, c2}
}

// Matrix3FromValue returns diag(v, v, v).
func Matrix3FromValue[S scalar.Float](v S) Matrix3[S] {
	return Matrix3FromDiagonal(vector.Vector3[S]{v, v, v})
}

// Matrix3FromDiagonal returns diag(d[0], d[1], d[2]), a non-uniform scale.
func Matrix3FromDiagonal[S scalar.Float](d vector.Vector3[S]) Matrix3[S] {
	return NewMatrix3(
		d[0], 0, 0,
		0, d[1], 0,
		0, 0, d[2],
	)
}

// Identity3 returns the 3×3 identity.
func Identity3[S scalar.Float]() Matrix3[S] { return Matrix3FromValue(scalar.One[S]()) }

// Zero3 returns the 3×3 zero matrix.
func Zero3[S scalar.Float]() Matrix3[S] { return Matrix3FromValue(scalar.Zero[S]()) }

// ---------- Access ----------

// Dim returns 3.
func (m Matrix3[S]) Dim() int { return 3 }

// Col returns column i. Panics with ErrOutOfRange unless 0 <= i < 3.
func (m Matrix3[S]) Col(i int) vector.Vector3[S] {
	mustIndex(opCol, i, 3)
	return m[i]
}

// ColMut returns a pointer to column i inside m.
func (m *Matrix3[S]) ColMut(i int) *vector.Vector3[S] {
	mustIndex(opCol, i, 3)
	return &m[i]
}

// SetCol overwrites column i.
func (m *Matrix3[S]) SetCol(i int, v vector.Vector3[S]) {
	*m.ColMut(i) = v
}

// Row gathers row i from the three columns.
func (m Matrix3[S]) Row(i int) vector.Vector3[S] {
	mustIndex(opRow, i, 3)
	return vector.Vector3[S]{m[0][i], m[1][i], m[2][i]}
}

// Elem returns the element at column c, row r.
func (m Matrix3[S]) Elem(c, r int) S {
	mustElemIndex(opElem, c, r, 3)
	return m[c][r]
}

// ElemMut returns a pointer to the element at column c, row r.
func (m *Matrix3[S]) ElemMut(c, r int) *S {
	mustElemIndex(opElem, c, r, 3)
	return &m[c][r]
}

// SetElem writes the element at column c, row r.
func (m *Matrix3[S]) SetElem(c, r int, v S) {
	*m.ElemMut(c, r) = v
}

// SwapCols exchanges columns a and b.
func (m *Matrix3[S]) SwapCols(a, b int) {
	mustIndex(opSwap, a, 3)
	mustIndex(opSwap, b, 3)
	m[a], m[b] = m[b], m[a]
}

// SwapRows exchanges rows a and b.
func (m *Matrix3[S]) SwapRows(a, b int) {
	mustIndex(opSwap, a, 3)
	mustIndex(opSwap, b, 3)
	for j := range m {
		m[j][a], m[j][b] = m[j][b], m[j][a]
	}
}

// SwapElems exchanges element (c0,r0) with (c1,r1).
func (m *Matrix3[S]) SwapElems(c0, r0, c1, r1 int) {
	mustElemIndex(opSwap, c0, r0, 3)
	mustElemIndex(opSwap, c1, r1, 3)
	m[c0][r0], m[c1][r1] = m[c1][r1], m[c0][r0]
}

// Diagonal returns (m00, m11, m22).
func (m Matrix3[S]) Diagonal() vector.Vector3[S] {
	return vector.Vector3[S]{m[0][0], m[1][1], m[2][2]}
}

// ---------- Transpose, trace, determinant ----------

// Transpose returns the matrix with rows and columns exchanged.
func (m Matrix3[S]) Transpose() Matrix3[S] {
	m.TransposeSelf()
	return m
}

// TransposeSelf transposes m in place: three swaps across the diagonal.
func (m *Matrix3[S]) TransposeSelf() {
	m.SwapElems(0, 1, 1, 0)
	m.SwapElems(0, 2, 2, 0)
	m.SwapElems(1, 2, 2, 1)
}

// Trace returns m00 + m11 + m22.
func (m Matrix3[S]) Trace() S { return m.Diagonal().Sum() }

// Determinant returns the scalar triple product c0·(c1×c2), equal to the
// cofactor expansion along the first row.
func (m Matrix3[S]) Determinant() S {
	return m[0].Dot(m[1].Cross(m[2]))
}

// ---------- Products and scalar ops ----------

// MulV returns m·v with v as a column vector.
func (m Matrix3[S]) MulV(v vector.Vector3[S]) vector.Vector3[S] {
	return vector.Vector3[S]{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

// MulM returns m·o; column j of the result is m.MulV(o[j]).
func (m Matrix3[S]) MulM(o Matrix3[S]) Matrix3[S] {
	return Matrix3[S]{m.MulV(o[0]), m.MulV(o[1]), m.MulV(o[2])}
}

// MulS scales every element by s.
func (m Matrix3[S]) MulS(s S) Matrix3[S] {
	return Matrix3[S]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s)}
}

// DivS divides every element by s.
func (m Matrix3[S]) DivS(s S) Matrix3[S] {
	return Matrix3[S]{m[0].DivS(s), m[1].DivS(s), m[2].DivS(s)}
}

// RemS takes the floating-point remainder of every element by s.
func (m Matrix3[S]) RemS(s S) Matrix3[S] {
	return Matrix3[S]{m[0].RemS(s), m[1].RemS(s), m[2].RemS(s)}
}

// AddM returns m + o.
func (m Matrix3[S]) AddM(o Matrix3[S]) Matrix3[S] {
	return Matrix3[S]{m[0].AddV(o[0]), m[1].AddV(o[1]), m[2].AddV(o[2])}
}

// SubM returns m - o.
func (m Matrix3[S]) SubM(o Matrix3[S]) Matrix3[S] {
	return Matrix3[S]{m[0].SubV(o[0]), m[1].SubV(o[1]), m[2].SubV(o[2])}
}

// Neg returns -m.
func (m Matrix3[S]) Neg() Matrix3[S] {
	return Matrix3[S]{m[0].Neg(), m[1].Neg(), m[2].Neg()}
}

func (m *Matrix3[S]) MulSelfM(o Matrix3[S]) { *m = m.MulM(o) }
func (m *Matrix3[S]) MulSelfS(s S)          { *m = m.MulS(s) }
func (m *Matrix3[S]) DivSelfS(s S)          { *m = m.DivS(s) }
func (m *Matrix3[S]) RemSelfS(s S)          { *m = m.RemS(s) }
func (m *Matrix3[S]) AddSelfM(o Matrix3[S]) { *m = m.AddM(o) }
func (m *Matrix3[S]) SubSelfM(o Matrix3[S]) { *m = m.SubM(o) }
func (m *Matrix3[S]) NegSelf()              { *m = m.Neg() }

// ---------- Inversion ----------

// Invert computes the inverse from the adjugate expressed with cross
// products: the columns c1×c2, c2×c0, c0×c1 divided by the determinant are
// the ROWS of the inverse, hence the final transpose.
// Returns ErrSingular (wrapped with "Invert") when |det| <= eps.
func (m Matrix3[S]) Invert(opts ...Option) (Matrix3[S], error) {
	det := m.Determinant()
	if !invertible(det, epsilonOf[S](opts)) {
		return Matrix3[S]{}, matrixErrorf(opInvert, ErrSingular)
	}

	return Matrix3FromCols(
		m[1].Cross(m[2]).DivS(det),
		m[2].Cross(m[0]).DivS(det),
		m[0].Cross(m[1]).DivS(det),
	).Transpose(), nil
}

// InvertSelf replaces m with its inverse. Panics on a singular matrix.
func (m *Matrix3[S]) InvertSelf(opts ...Option) {
	inv, err := m.Invert(opts...)
	if err != nil {
		panic(err)
	}
	*m = inv
}

// ---------- Predicates ----------

func (m Matrix3[S]) ApproxEqual(o Matrix3[S], opts ...Option) bool {
	return approxEqual[S](m, o, epsilonOf[S](opts))
}

func (m Matrix3[S]) IsZero(opts ...Option) bool { return isZero[S](m, epsilonOf[S](opts)) }

func (m Matrix3[S]) IsIdentity(opts ...Option) bool { return m.ApproxEqual(Identity3[S](), opts...) }

func (m Matrix3[S]) IsDiagonal(opts ...Option) bool { return isDiagonal[S](m, epsilonOf[S](opts)) }

func (m Matrix3[S]) IsSymmetric(opts ...Option) bool { return isSymmetric[S](m, epsilonOf[S](opts)) }

// IsInvertible reports whether |det| > eps; true iff Invert(opts...) succeeds.
func (m Matrix3[S]) IsInvertible(opts ...Option) bool {
	return invertible(m.Determinant(), epsilonOf[S](opts))
}
