// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Single epsilon source: every predicate, ApproxEqual, IsInvertible and
//     Invert call resolves eps through gatherOptions, so IsInvertible(opts...)
//     and Invert(opts...) can never disagree for the same opts.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon defines the non-negative tolerance used by approximate
// equality, predicates and the invertibility check.
const DefaultEpsilon = scalar.DefaultEpsilon

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the numeric tolerance eps used by approximate equality,
// the Is* predicates, IsInvertible and Invert.
//
// Behavior highlights:
//   - Strict validation in the constructor; panics on NaN, ±Inf or eps < 0.
//   - eps = 0 turns every comparison into exact equality and makes only an
//     exactly-zero determinant singular.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewMatrixOptions resolves opts on top of the defaults. Exposed so callers
// can inspect the policy a given option list produces.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies user-provided Option setters on top of defaults,
// in order (last-writer-wins). Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// epsilonOf narrows the resolved tolerance to the element type S.
func epsilonOf[S scalar.Float](opts []Option) S {
	return S(gatherOptions(opts...).eps)
}
