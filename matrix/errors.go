// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Recoverable failures are returned as these sentinels and tests
// check them via errors.Is. Panics are reserved for programmer errors
// (bad index, invalid option, InvertSelf on a singular matrix); the panic
// value is always an error wrapping one of these sentinels.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Kernels wrap with matrixErrorf(op, ErrX) so the surface
// reads "Invert: matrix: singular matrix"; callers still use errors.Is.
//
// ERROR PRIORITY:
// index -> shape -> numeric (singular / NaN) -> projection parameters.

var (
	// ErrOutOfRange indicates that a column or row index is outside [0, N).
	// Accessors panic with an error wrapping it; the size is part of the type,
	// so a bad index is always a bug in the calling code.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that external data (flat slice, YAML
	// document, gonum matrix) does not have the N×N shape of the target type.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when inversion is requested on a matrix whose
	// determinant is within epsilon of zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (decoded data, projection parameters).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidProjection signals frustum parameters that cannot produce a
	// projection matrix (left >= right, near >= far, field of view outside (0, π)).
	ErrInvalidProjection = errors.New("matrix: invalid projection parameters")
)
