// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vector4 is a 4-component column vector: v[0]=x, v[1]=y, v[2]=z, v[3]=w.
type Vector4[S scalar.Float] [4]S

// NewVector4 builds a Vector4 from its components.
func NewVector4[S scalar.Float](x, y, z, w S) Vector4[S] {
	return Vector4[S]{x, y, z, w}
}

// AddV returns v + o.
func (v Vector4[S]) AddV(o Vector4[S]) Vector4[S] {
	return Vector4[S]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// SubV returns v - o.
func (v Vector4[S]) SubV(o Vector4[S]) Vector4[S] {
	return Vector4[S]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// MulS returns v scaled by s.
func (v Vector4[S]) MulS(s S) Vector4[S] {
	return Vector4[S]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// DivS returns v with every component divided by s.
func (v Vector4[S]) DivS(s S) Vector4[S] {
	return Vector4[S]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// RemS returns the componentwise floating-point remainder of v by s.
func (v Vector4[S]) RemS(s S) Vector4[S] {
	return Vector4[S]{
		scalar.Rem(v[0], s), scalar.Rem(v[1], s),
		scalar.Rem(v[2], s), scalar.Rem(v[3], s),
	}
}

// Neg returns -v.
func (v Vector4[S]) Neg() Vector4[S] {
	return Vector4[S]{-v[0], -v[1], -v[2], -v[3]}
}

// Dot returns the inner product v·o.
func (v Vector4[S]) Dot(o Vector4[S]) S {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

// Sum returns the sum of the components.
func (v Vector4[S]) Sum() S {
	return v[0] + v[1] + v[2] + v[3]
}

// Length returns the Euclidean norm.
func (v Vector4[S]) Length() S {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. A zero vector yields NaNs.
func (v Vector4[S]) Normalize() Vector4[S] {
	return v.DivS(v.Length())
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector4[S]) ApproxEqual(o Vector4[S], eps S) bool {
	return scalar.ApproxEqual(v[0], o[0], eps) &&
		scalar.ApproxEqual(v[1], o[1], eps) &&
		scalar.ApproxEqual(v[2], o[2], eps) &&
		scalar.ApproxEqual(v[3], o[3], eps)
}

// Truncate drops w.
func (v Vector4[S]) Truncate() Vector3[S] {
	return Vector3[S]{v[0], v[1], v[2]}
}
