// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrNotAffine indicates a Matrix3 whose bottom row is not (0, 0, 1), so
	// it cannot be expressed as a 2×3 affine transform.
	ErrNotAffine = errors.New("converters: matrix is not affine")

	// ErrNilImage indicates a nil source or destination image.
	ErrNilImage = errors.New("converters: nil image")
)
