// SPDX-License-Identifier: MIT
// Package matrix: central validators for indices, external shapes and
// numeric values.
//
// Policy:
//   - Index checks PANIC with an error wrapping ErrOutOfRange (programmer error).
//   - Shape and finiteness checks RETURN sentinels (data error at a boundary:
//     decoding, slice import, gonum import).
//   - Deterministic messages with bound and offending value.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// mustIndex panics unless 0 <= i < n.
// Complexity: O(1).
func mustIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(matrixErrorf(op, fmt.Errorf("index %d not in [0,%d): %w", i, n, ErrOutOfRange)))
	}
}

// mustElemIndex panics unless both the column and the row index are in range.
func mustElemIndex(op string, c, r, n int) {
	mustIndex(op, c, n)
	mustIndex(op, r, n)
}

// ValidateLen checks that a flat buffer holds exactly n*n elements.
// Returns ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateLen(length, n int) error {
	if length != n*n {
		return fmt.Errorf("want %d elements for %dx%d, got %d: %w", n*n, n, n, length, ErrDimensionMismatch)
	}

	return nil
}

// ValidateColumns checks a column-major nested sequence is n columns of n rows.
// Returns ErrDimensionMismatch naming the first ragged column.
// Complexity: O(n).
func ValidateColumns[S scalar.Float](cols [][]S, n int) error {
	if len(cols) != n {
		return fmt.Errorf("want %d columns, got %d: %w", n, len(cols), ErrDimensionMismatch)
	}
	for j, c := range cols {
		if len(c) != n {
			return fmt.Errorf("column %d: want %d rows, got %d: %w", j, n, len(c), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateFinite returns ErrNaNInf for the first non-finite value, reporting
// its column-major position.
// Complexity: O(len(xs)).
func ValidateFinite[S scalar.Float](xs ...S) error {
	for i, x := range xs {
		if !scalar.IsFinite(x) {
			return fmt.Errorf("value %v at position %d: %w", x, i, ErrNaNInf)
		}
	}

	return nil
}
