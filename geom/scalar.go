package geom

// Overlap reports whether two scalars overlap. A scalar is a degenerate
// region, so only equal values overlap.
func Overlap[T Scalar](a, b T) bool { return a == b }

// Contain reports whether a contains b. For scalars this is equality; a
// bare value never contains a non-degenerate region.
func Contain[T Scalar](a, b T) bool { return a == b }

// MinDist returns the absolute difference of a and b. The subtraction is
// performed in uint64 so it is exact even when the operands sit at
// opposite ends of the int64 range.
func MinDist[T Scalar](a, b T) uint64 {
	if a < b {
		a, b = b, a
	}
	return uint64(a) - uint64(b)
}

// Displace returns the directional offset a - b.
func Displace[T Scalar](a, b T) T { return a - b }

// Hull returns the smallest interval covering both scalars.
func Hull[T Scalar](a, b T) Interval[T] {
	if a < b {
		return NewInterval(a, b)
	}
	return NewInterval(b, a)
}

// Intersect returns the common region of two scalars: degenerate when
// they are equal, invalid otherwise.
func Intersect[T Scalar](a, b T) Interval[T] {
	return NewInterval(max(a, b), min(a, b))
}

// Enlarge returns the interval reaching alpha away from v on both sides.
func Enlarge[T Scalar](v T, alpha uint64) Interval[T] {
	return NewInterval(v-T(alpha), v+T(alpha))
}
