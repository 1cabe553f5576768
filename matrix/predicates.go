// SPDX-License-Identifier: MIT
// Package matrix: shared predicate kernels.
//
// Purpose:
//   - Implement approximate equality and the structural predicates once,
//     generically over any size exposing Dim/Elem, instead of per size.
//   - Keep the epsilon policy in one place: callers resolve eps through
//     epsilonOf and pass it down.
//
// Determinism:
//   - Fixed column→row scan order; short-circuit on the first violation.

package matrix

import "github.com/katalvlaran/lvmath/scalar"

// elementer is the minimal read surface the predicate kernels need.
type elementer[S scalar.Float] interface {
	Dim() int
	Elem(c, r int) S
}

// approxEqual reports whether |a(c,r) - b(c,r)| <= eps for every element.
// Complexity: O(N²).
func approxEqual[S scalar.Float, E elementer[S]](a, b E, eps S) bool {
	n := a.Dim()
	var c, r int
	for c = 0; c < n; c++ {
		for r = 0; r < n; r++ {
			if !scalar.ApproxEqual(a.Elem(c, r), b.Elem(c, r), eps) {
				return false
			}
		}
	}

	return true
}

// isZero reports whether every element is within eps of zero.
func isZero[S scalar.Float, E elementer[S]](m E, eps S) bool {
	n := m.Dim()
	var c, r int
	for c = 0; c < n; c++ {
		for r = 0; r < n; r++ {
			if !scalar.ApproxZero(m.Elem(c, r), eps) {
				return false
			}
		}
	}

	return true
}

// isDiagonal reports whether max_{c≠r} |m(c,r)| <= eps.
// Complexity: O(N²).
func isDiagonal[S scalar.Float, E elementer[S]](m E, eps S) bool {
	n := m.Dim()
	var c, r int
	for c = 0; c < n; c++ {
		for r = 0; r < n; r++ {
			if c != r && !scalar.ApproxZero(m.Elem(c, r), eps) {
				return false
			}
		}
	}

	return true
}

// isSymmetric reports whether m(c,r) ≈ m(r,c) for all c≠r.
// Only the strict upper triangle is scanned; the relation is symmetric.
// Complexity: O(N²/2).
func isSymmetric[S scalar.Float, E elementer[S]](m E, eps S) bool {
	n := m.Dim()
	var c, r int
	for c = 0; c < n; c++ {
		for r = c + 1; r < n; r++ {
			if !scalar.ApproxEqual(m.Elem(c, r), m.Elem(r, c), eps) {
				return false
			}
		}
	}

	return true
}

// invertible is the one-sided singularity criterion shared by IsInvertible
// and Invert: |det| > eps.
func invertible[S scalar.Float](det, eps S) bool {
	return !scalar.ApproxZero(det, eps)
}
