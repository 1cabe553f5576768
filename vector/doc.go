// Package vector provides the fixed-size column vectors consumed by the
// matrix package: Vector2, Vector3 and Vector4.
//
// Each vector is a plain array value ([N]S), so it is freely copyable,
// comparable with ==, and indexable as v[i]. An out-of-range index is a
// programming error and panics like any Go array access.
//
// Operations:
//   - componentwise AddV, SubV, MulS, DivS, Neg;
//   - Dot, Sum, Length, Normalize, and Cross (Vector3 only);
//   - ApproxEqual with an explicit tolerance;
//   - Extend/Truncate to move between dimensions.
//
// All operations are O(N) with no allocation.
package vector
