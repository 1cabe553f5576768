// SPDX-License-Identifier: MIT
// Package matrix: OpenGL-style projection matrices.
//
// All three constructors produce clip space with z in [-1, 1] and a camera
// looking down -z. Parameters are validated; invalid ones return an error
// wrapping ErrInvalidProjection and the zero matrix.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// Frustum returns the perspective projection of the view volume bounded by
// the given planes (glFrustum). Requires left < right, bottom < top and
// 0 < near < far.
func Frustum[S scalar.Float](left, right, bottom, top, near, far S) (Matrix4[S], error) {
	if err := validateBox(left, right, bottom, top, near, far); err != nil {
		return Matrix4[S]{}, matrixErrorf(opFrustum, err)
	}
	if near <= 0 {
		return Matrix4[S]{}, matrixErrorf(opFrustum, fmt.Errorf("near %v must be > 0: %w", near, ErrInvalidProjection))
	}

	return NewMatrix4(
		2*near/(right-left), 0, 0, 0,
		0, 2*near/(top-bottom), 0, 0,
		(right+left)/(right-left), (top+bottom)/(top-bottom), -(far+near)/(far-near), -1,
		0, 0, -2*far*near/(far-near), 0,
	), nil
}

// Perspective returns the symmetric perspective projection (gluPerspective)
// for a vertical field of view fovy in radians. Requires 0 < fovy < π,
// aspect > 0 and 0 < near < far.
func Perspective[S scalar.Float](fovy, aspect, near, far S) (Matrix4[S], error) {
	switch {
	case !(fovy > 0) || float64(fovy) >= math.Pi:
		return Matrix4[S]{}, matrixErrorf(opPersp, fmt.Errorf("fovy %v not in (0,π): %w", fovy, ErrInvalidProjection))
	case !(aspect > 0):
		return Matrix4[S]{}, matrixErrorf(opPersp, fmt.Errorf("aspect %v must be > 0: %w", aspect, ErrInvalidProjection))
	case !(near > 0):
		return Matrix4[S]{}, matrixErrorf(opPersp, fmt.Errorf("near %v must be > 0: %w", near, ErrInvalidProjection))
	case !(far > near):
		return Matrix4[S]{}, matrixErrorf(opPersp, fmt.Errorf("far %v must be > near %v: %w", far, near, ErrInvalidProjection))
	}

	ymax := near * scalar.Tan(fovy/2)
	xmax := ymax * aspect

	m, err := Frustum(-xmax, xmax, -ymax, ymax, near, far)
	if err != nil {
		return Matrix4[S]{}, matrixErrorf(opPersp, err)
	}

	return m, nil
}

// Ortho returns the orthographic projection of the given box (glOrtho).
// Requires left < right, bottom < top and near < far; near may be negative.
func Ortho[S scalar.Float](left, right, bottom, top, near, far S) (Matrix4[S], error) {
	if err := validateBox(left, right, bottom, top, near, far); err != nil {
		return Matrix4[S]{}, matrixErrorf(opOrtho, err)
	}

	return NewMatrix4(
		2/(right-left), 0, 0, 0,
		0, 2/(top-bottom), 0, 0,
		0, 0, -2/(far-near), 0,
		-(right+left)/(right-left), -(top+bottom)/(top-bottom), -(far+near)/(far-near), 1,
	), nil
}

// validateBox checks that each min/max pair is strictly ordered and finite.
func validateBox[S scalar.Float](left, right, bottom, top, near, far S) error {
	if err := ValidateFinite(left, right, bottom, top, near, far); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProjection, err)
	}
	switch {
	case !(left < right):
		return fmt.Errorf("left %v must be < right %v: %w", left, right, ErrInvalidProjection)
	case !(bottom < top):
		return fmt.Errorf("bottom %v must be < top %v: %w", bottom, top, ErrInvalidProjection)
	case !(near < far):
		return fmt.Errorf("near %v must be < far %v: %w", near, far, ErrInvalidProjection)
	}

	return nil
}
