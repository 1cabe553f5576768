// Package lvmath is a small, generic linear-algebra library for real-time
// graphics: fixed-size vectors and square matrices over float32 and float64.
//
// 🚀 What is inside?
//
//	• Scalars: the Float constraint, one library-wide epsilon, trig helpers
//	• Vectors: Vector2/3/4 with dot, cross, length and normalization
//	• Matrices: Matrix2/3/4, column-major, with transpose, trace,
//	  determinant, inversion (Gauss-Jordan with pivoting for 4×4) and
//	  approximate predicates
//	• Graphics constructors: rotations, look-at views, translation, scale,
//	  frustum, perspective and orthographic projections
//	• Interop: golang.org/x/image math types and draw transforms, gonum mat
//
// ✨ Why choose lvmath?
//
//   - Plain values – matrices are arrays, copyable and allocation-free
//   - One tolerance – IsInvertible(opts...) agrees with Invert(opts...)
//   - Two disciplines – Invert returns ErrSingular, InvertSelf panics
//   - Pure Go – no cgo, no assembly
//
// Under the hood, everything is organized under these subpackages:
//
//	scalar/     - Float constraint, DefaultEpsilon, approximate comparison
//	vector/     - Vector2, Vector3, Vector4
//	matrix/     - Matrix2, Matrix3, Matrix4, options, errors, projections, YAML
//	converters/ - x/image f32/f64 + draw adapters, gonum mat adapters
//	examples/   - runnable scenarios (camera, rigid body, YAML scene, image warp)
//
// Quick example:
//
//	m := matrix.NewMatrix2(1.0, 3, 2, 4) // columns (1,3) and (2,4)
//	inv, err := m.Invert()               // [[-2 1.5] [1 -0.5]], nil
//
//	go get github.com/katalvlaran/lvmath
package lvmath
