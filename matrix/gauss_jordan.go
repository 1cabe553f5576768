// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan inversion for the 4×4 case.
//
// Formulation:
//   - Elimination runs on COLUMNS, which is natural for column-major storage:
//     every step is a whole-column operation (swap, scale, axpy).
//   - Column operations right-multiply: A·E₁·…·Eₖ = I, and applying the same
//     operations to I yields E₁·…·Eₖ = A⁻¹.
//   - Partial pivoting: at step j the pivot is the column p >= j with the
//     largest |a(p, j)| in row j. Swapping columns p and j of both the working
//     copy and the accumulator keeps the two in lock-step.
//
// Preconditions:
//   - The caller has already rejected singular input (|det| <= eps); a zero
//     pivot cannot occur for a non-singular matrix in exact arithmetic.
//
// Complexity: O(N³) with N = 4.

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
)

// gaussJordan4 returns the inverse of a. The argument is a value copy and is
// used as scratch space.
func gaussJordan4[S scalar.Float](a Matrix4[S]) Matrix4[S] {
	inv := Identity4[S]()

	var i, j, p int
	var best, cand, f S
	for j = 0; j < 4; j++ {
		// Pivot search along row j among the not-yet-reduced columns.
		p, best = j, scalar.Abs(a[j][j])
		for i = j + 1; i < 4; i++ {
			if cand = scalar.Abs(a[i][j]); cand > best {
				p, best = i, cand
			}
		}
		if p != j {
			a.SwapCols(p, j)
			inv.SwapCols(p, j)
		}

		// Normalize the pivot column so a(j, j) == 1.
		f = a[j][j]
		a[j] = a[j].DivS(f)
		inv[j] = inv[j].DivS(f)

		// Clear row j in every other column.
		for i = 0; i < 4; i++ {
			if i == j {
				continue
			}
			f = a[i][j]
			if f == 0 {
				continue
			}
			a[i] = a[i].SubV(a[j].MulS(f))
			inv[i] = inv[i].SubV(inv[j].MulS(f))
		}
	}

	return inv
}
