// Package matrix implements fixed-size square matrices for real-time
// graphics: Matrix2, Matrix3 and Matrix4, generic over float32 and float64.
//
// Storage is column-major. m[j] is column j and m[j][i] is the element at
// row i, column j; Elem(c, r) takes the column index first. Constructors
// take their scalars in the same order (c0r0, c0r1, …), and Slice and the
// YAML encoding emit it too, so a matrix can be handed to a GL-style API
// without transposition.
//
// Every matrix provides:
//
//   - construction (NewMatrixN, MatrixNFromCols, FromValue, FromDiagonal,
//     IdentityN, ZeroN) and bounds-checked access by column, row and element;
//   - Transpose, Trace, Determinant and Invert;
//   - products with vectors, matrices and scalars, each with an in-place
//     *Self variant defined as *m = m.Op(…);
//   - approximate predicates (ApproxEqual, IsZero, IsIdentity, IsDiagonal,
//     IsSymmetric, IsInvertible).
//
// Determinants and inverses use closed forms for 2×2 and 3×3 and
// Gauss-Jordan elimination with partial pivoting for 4×4.
//
// Numeric policy is a single tolerance, DefaultEpsilon, overridable per call
// with WithEpsilon. IsInvertible(opts...) is true exactly when
// Invert(opts...) succeeds.
//
// Errors: Invert returns ErrSingular; decoders return ErrDimensionMismatch
// or ErrNaNInf; projections return ErrInvalidProjection. A bad index panics
// with an error wrapping ErrOutOfRange, as does InvertSelf with ErrSingular.
//
// The package also carries the usual graphics constructors (rotations,
// look-at views, translation, scale, Frustum, Perspective, Ortho) and
// promotions between sizes (ToMatrix3, ToMatrix4, Truncate).
package matrix
