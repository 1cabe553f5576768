// Package scalar defines the element type contract shared by every vector and
// matrix in lvmath.
//
// What & Why:
//
//	All lvmath types are generic over a single type parameter S constrained
//	by Float (float32, float64 and named types over them). Field operations
//	are Go's built-in operators; this package adds the few helpers Go does
//	not provide generically: typed zero/one, absolute value, remainder,
//	square root, trigonometry and epsilon-based approximate equality.
//
// Numeric policy:
//
//	DefaultEpsilon is the single library-wide tolerance. Two scalars are
//	approximately equal when |a-b| <= eps. Exact equality is never used for
//	derived floating-point results.
//
// Complexity:
//
//	Every helper is O(1) and allocation-free.
package scalar
