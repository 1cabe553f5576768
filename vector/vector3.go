// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vector3 is a 3-component column vector: v[0]=x, v[1]=y, v[2]=z.
type Vector3[S scalar.Float] [3]S

// NewVector3 builds a Vector3 from its components.
func NewVector3[S scalar.Float](x, y, z S) Vector3[S] {
	return Vector3[S]{x, y, z}
}

// AddV returns v + o.
func (v Vector3[S]) AddV(o Vector3[S]) Vector3[S] {
	return Vector3[S]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// SubV returns v - o.
func (v Vector3[S]) SubV(o Vector3[S]) Vector3[S] {
	return Vector3[S]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// MulS returns v scaled by s.
func (v Vector3[S]) MulS(s S) Vector3[S] {
	return Vector3[S]{v[0] * s, v[1] * s, v[2] * s}
}

// DivS returns v with every component divided by s.
func (v Vector3[S]) DivS(s S) Vector3[S] {
	return Vector3[S]{v[0] / s, v[1] / s, v[2] / s}
}

// RemS returns the componentwise floating-point remainder of v by s.
func (v Vector3[S]) RemS(s S) Vector3[S] {
	return Vector3[S]{scalar.Rem(v[0], s), scalar.Rem(v[1], s), scalar.Rem(v[2], s)}
}

// Neg returns -v.
func (v Vector3[S]) Neg() Vector3[S] {
	return Vector3[S]{-v[0], -v[1], -v[2]}
}

// Dot returns the inner product v·o.
func (v Vector3[S]) Dot(o Vector3[S]) S {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the right-handed cross product v×o.
func (v Vector3[S]) Cross(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Sum returns the sum of the components.
func (v Vector3[S]) Sum() S {
	return v[0] + v[1] + v[2]
}

// Length returns the Euclidean norm.
func (v Vector3[S]) Length() S {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. A zero vector yields NaNs.
func (v Vector3[S]) Normalize() Vector3[S] {
	return v.DivS(v.Length())
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector3[S]) ApproxEqual(o Vector3[S], eps S) bool {
	return scalar.ApproxEqual(v[0], o[0], eps) &&
		scalar.ApproxEqual(v[1], o[1], eps) &&
		scalar.ApproxEqual(v[2], o[2], eps)
}

// Extend appends w and returns a Vector4.
func (v Vector3[S]) Extend(w S) Vector4[S] {
	return Vector4[S]{v[0], v[1], v[2], w}
}

// Truncate drops z.
func (v Vector3[S]) Truncate() Vector2[S] {
	return Vector2[S]{v[0], v[1]}
}
