package geom

import "fmt"

// Interval is the closed range [Lb, Ub] over an ordered scalar. The
// constructor performs no normalization: an interval with Lb > Ub is the
// legal sentinel for the empty set, producible by IntersectWith and
// checked with IsInvalid. All operations are total on invalid intervals
// and never panic; they propagate invalidity structurally instead.
type Interval[T Scalar] struct {
	Lb, Ub T
}

// NewInterval returns the closed interval [lb, ub]. Callers may pass
// lb > ub deliberately to build an invalid interval.
func NewInterval[T Scalar](lb, ub T) Interval[T] {
	return Interval[T]{Lb: lb, Ub: ub}
}

// Degenerate returns the single-point interval [v, v], the lift that lets
// a bare scalar participate in the composable layer.
func Degenerate[T Scalar](v T) Interval[T] {
	return Interval[T]{Lb: v, Ub: v}
}

// IsInvalid reports whether the interval represents the empty set.
func (iv Interval[T]) IsInvalid() bool { return iv.Lb > iv.Ub }

// Length returns Ub - Lb. It is negative and meaningless on invalid
// intervals; callers check IsInvalid first.
func (iv Interval[T]) Length() T { return iv.Ub - iv.Lb }

// Overlaps reports whether the two closed intervals share at least one
// point, touching endpoints included.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	return iv.Ub >= other.Lb && other.Ub >= iv.Lb
}

// OverlapsValue reports whether v lies on the interval.
func (iv Interval[T]) OverlapsValue(v T) bool {
	return iv.Ub >= v && v >= iv.Lb
}

// Contains reports whether other lies entirely within iv.
func (iv Interval[T]) Contains(other Interval[T]) bool {
	return iv.Lb <= other.Lb && other.Ub <= iv.Ub
}

// ContainsValue reports whether v lies within the interval. The reverse
// question is settled by policy: a bare value never contains a
// non-degenerate interval.
func (iv Interval[T]) ContainsValue(v T) bool {
	return iv.Lb <= v && v <= iv.Ub
}

// MinDistWith returns the gap between the nearer endpoints of the two
// intervals, zero when they overlap.
func (iv Interval[T]) MinDistWith(other Interval[T]) uint64 {
	switch {
	case iv.Ub < other.Lb:
		return MinDist(other.Lb, iv.Ub)
	case other.Ub < iv.Lb:
		return MinDist(iv.Lb, other.Ub)
	}
	return 0
}

// MinDistToValue returns the distance from v to the nearer endpoint, zero
// when v lies on the interval.
func (iv Interval[T]) MinDistToValue(v T) uint64 {
	switch {
	case iv.Ub < v:
		return MinDist(v, iv.Ub)
	case v < iv.Lb:
		return MinDist(iv.Lb, v)
	}
	return 0
}

// Displace returns the bound-wise offset iv - other.
func (iv Interval[T]) Displace(other Interval[T]) Interval[T] {
	return Interval[T]{Lb: iv.Lb - other.Lb, Ub: iv.Ub - other.Ub}
}

// HullWith returns the smallest interval covering both operands.
func (iv Interval[T]) HullWith(other Interval[T]) Interval[T] {
	return Interval[T]{Lb: min(iv.Lb, other.Lb), Ub: max(iv.Ub, other.Ub)}
}

// HullValue returns the smallest interval covering iv and v.
func (iv Interval[T]) HullValue(v T) Interval[T] {
	return Interval[T]{Lb: min(iv.Lb, v), Ub: max(iv.Ub, v)}
}

// IntersectWith returns the common region of both intervals. The result
// is invalid when they do not overlap; callers check IsInvalid before
// reading its bounds.
func (iv Interval[T]) IntersectWith(other Interval[T]) Interval[T] {
	return Interval[T]{Lb: max(iv.Lb, other.Lb), Ub: min(iv.Ub, other.Ub)}
}

// IntersectValue returns the common region of the interval and v,
// degenerate when v lies on the interval and invalid otherwise.
func (iv Interval[T]) IntersectValue(v T) Interval[T] {
	return Interval[T]{Lb: max(iv.Lb, v), Ub: min(iv.Ub, v)}
}

// EnlargeWith returns the interval grown by alpha on both sides, the
// Minkowski sum with a ball of radius alpha.
func (iv Interval[T]) EnlargeWith(alpha uint64) Interval[T] {
	return Interval[T]{Lb: iv.Lb - T(alpha), Ub: iv.Ub + T(alpha)}
}

// Add returns the interval translated up by delta.
func (iv Interval[T]) Add(delta T) Interval[T] {
	return Interval[T]{Lb: iv.Lb + delta, Ub: iv.Ub + delta}
}

// Sub returns the interval translated down by delta.
func (iv Interval[T]) Sub(delta T) Interval[T] {
	return Interval[T]{Lb: iv.Lb - delta, Ub: iv.Ub - delta}
}

// Scale returns the interval with both bounds multiplied by k. A negative
// k flips the bounds and produces an invalid interval.
func (iv Interval[T]) Scale(k T) Interval[T] {
	return Interval[T]{Lb: iv.Lb * k, Ub: iv.Ub * k}
}

// Neg returns the reflection of the interval through zero.
func (iv Interval[T]) Neg() Interval[T] {
	return Interval[T]{Lb: -iv.Ub, Ub: -iv.Lb}
}

// Compare orders intervals by position: -1 when iv lies entirely below
// other, +1 when entirely above, 0 when they overlap. It is a weak order,
// not a total one: any two overlapping intervals compare equal here
// regardless of their exact bounds, while == still distinguishes them
// structurally. Sorting with Compare arranges disjoint intervals by
// position without imposing an order among overlapping ones.
func (iv Interval[T]) Compare(other Interval[T]) int {
	switch {
	case iv.Ub < other.Lb:
		return -1
	case other.Ub < iv.Lb:
		return 1
	}
	return 0
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Lb, iv.Ub)
}
