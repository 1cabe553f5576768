// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvmath/scalar"

// Vector2 is a 2-component column vector: v[0]=x, v[1]=y.
type Vector2[S scalar.Float] [2]S

// NewVector2 builds a Vector2 from its components.
func NewVector2[S scalar.Float](x, y S) Vector2[S] {
	return Vector2[S]{x, y}
}

// AddV returns v + o.
func (v Vector2[S]) AddV(o Vector2[S]) Vector2[S] {
	return Vector2[S]{v[0] + o[0], v[1] + o[1]}
}

// SubV returns v - o.
func (v Vector2[S]) SubV(o Vector2[S]) Vector2[S] {
	return Vector2[S]{v[0] - o[0], v[1] - o[1]}
}

// MulS returns v scaled by s.
func (v Vector2[S]) MulS(s S) Vector2[S] {
	return Vector2[S]{v[0] * s, v[1] * s}
}

// DivS returns v with every component divided by s.
func (v Vector2[S]) DivS(s S) Vector2[S] {
	return Vector2[S]{v[0] / s, v[1] / s}
}

// RemS returns the componentwise floating-point remainder of v by s.
func (v Vector2[S]) RemS(s S) Vector2[S] {
	return Vector2[S]{scalar.Rem(v[0], s), scalar.Rem(v[1], s)}
}

// Neg returns -v.
func (v Vector2[S]) Neg() Vector2[S] {
	return Vector2[S]{-v[0], -v[1]}
}

// Dot returns the inner product v·o.
func (v Vector2[S]) Dot(o Vector2[S]) S {
	return v[0]*o[0] + v[1]*o[1]
}

// Sum returns the sum of the components.
func (v Vector2[S]) Sum() S {
	return v[0] + v[1]
}

// Length returns the Euclidean norm.
func (v Vector2[S]) Length() S {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. A zero vector yields NaNs.
func (v Vector2[S]) Normalize() Vector2[S] {
	return v.DivS(v.Length())
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector2[S]) ApproxEqual(o Vector2[S], eps S) bool {
	return scalar.ApproxEqual(v[0], o[0], eps) &&
		scalar.ApproxEqual(v[1], o[1], eps)
}

// Extend appends z and returns a Vector3.
func (v Vector2[S]) Extend(z S) Vector3[S] {
	return Vector3[S]{v[0], v[1], z}
}
