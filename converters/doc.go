// Package converters provides two-way adapters between lvmath matrices and
// popular Go numeric and imaging libraries:
//   - golang.org/x/image/math/f32 and f64 (row-major Mat3, Mat4, Aff3, Vec*)
//   - golang.org/x/image/draw (affine image transforms driven by a Matrix3)
//   - gonum.org/v1/gonum/mat (*mat.Dense and the mat.Matrix interface)
//
// lvmath stores matrices column-major; every adapter here performs the
// transposition to or from the row-major layout of the target library, so
// element (row r, column c) is the same number on both sides.
package converters
