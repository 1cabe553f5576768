// SPDX-License-Identifier: MIT
package matrix

import "github.com/katalvlaran/lvmath/scalar"

// Test-only exports for the external matrix_test package.

// PanicEpsilonInvalid_TestOnly is the stable WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// EpsilonOf_TestOnly exposes the per-type tolerance resolution.
func EpsilonOf_TestOnly[S scalar.Float](opts ...Option) S {
	return epsilonOf[S](opts)
}
