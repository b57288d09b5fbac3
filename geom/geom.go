// Package geom provides the geometric primitives used by physical-design
// (VLSI layout) tooling: closed intervals, composable coordinate pairs,
// and the rotated-space merge rectangles that reduce Manhattan-metric
// problems to axis-aligned interval arithmetic.
//
// It is patterned after image.Rectangle and image.Point, but the types
// here are generic over their element types so that the same operations
// apply uniformly to scalars, intervals, and nested compositions of
// either.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the coordinate types that geom types and
// functions can handle. The core is integer-oriented; distances widen to
// uint64 instead of rounding.
type Scalar interface {
	constraints.Signed
}

// Shape is the capability set shared by every composable geometric value.
// Interval satisfies it directly, Point satisfies it by lifting each
// operation coordinate-wise, and MergeObj satisfies it by delegating to
// its rotated-space point. Operations that can produce an empty result
// return a value for which IsInvalid reports true rather than an error.
type Shape[T any] interface {
	// Overlaps reports whether the two values share at least one point.
	Overlaps(T) bool

	// Contains reports whether the argument lies entirely within the
	// receiver.
	Contains(T) bool

	// MinDistWith returns the minimum separation from the argument,
	// zero when the two overlap.
	MinDistWith(T) uint64

	// HullWith returns the smallest value covering both operands.
	HullWith(T) T

	// IntersectWith returns the common region of both operands, invalid
	// when they do not overlap.
	IntersectWith(T) T

	// EnlargeWith grows the value by alpha in every direction.
	EnlargeWith(alpha uint64) T

	// IsInvalid reports whether the value represents the empty set.
	IsInvalid() bool
}

// Displaceable constrains coordinates that support bound-wise
// displacement, the difference of the receiver and the argument.
type Displaceable[T any] interface {
	Displace(T) T
}

// Translatable constrains coordinates that can be shifted by a delta of
// type D.
type Translatable[T, D any] interface {
	Add(D) T
	Sub(D) T
}
