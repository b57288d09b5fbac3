package geom

import "fmt"

// Point is a coordinate pair whose axes may have independent types.
// Instantiated with Interval coordinates it is an axis-aligned box;
// with degenerate intervals it is a literal 2D point; points of points
// nest further. Every Shape operation lifts coordinate-wise, so a Point
// satisfies Shape itself and can in turn serve as a coordinate.
type Point[T1 Shape[T1], T2 Shape[T2]] struct {
	X T1
	Y T2
}

// Pt is shorthand for constructing a Point.
func Pt[T1 Shape[T1], T2 Shape[T2]](x T1, y T2) Point[T1, T2] {
	return Point[T1, T2]{X: x, Y: y}
}

// Box is an axis-aligned rectangle: a point whose coordinates are the
// spanned intervals.
type Box[T Scalar] = Point[Interval[T], Interval[T]]

// Rt returns the box spanning [x0, x1] horizontally and [y0, y1]
// vertically, without normalizing either pair of bounds.
func Rt[T Scalar](x0, y0, x1, y1 T) Box[T] {
	return Pt(NewInterval(x0, x1), NewInterval(y0, y1))
}

// Overlaps reports whether the two points overlap on both axes.
func (p Point[T1, T2]) Overlaps(other Point[T1, T2]) bool {
	return p.X.Overlaps(other.X) && p.Y.Overlaps(other.Y)
}

// Contains reports whether other lies within p on both axes.
func (p Point[T1, T2]) Contains(other Point[T1, T2]) bool {
	return p.X.Contains(other.X) && p.Y.Contains(other.Y)
}

// MinDistWith returns the Manhattan separation between the two points:
// the sum of the per-axis distances.
func (p Point[T1, T2]) MinDistWith(other Point[T1, T2]) uint64 {
	return p.X.MinDistWith(other.X) + p.Y.MinDistWith(other.Y)
}

// HullWith returns the smallest point covering both operands on each
// axis.
func (p Point[T1, T2]) HullWith(other Point[T1, T2]) Point[T1, T2] {
	return Point[T1, T2]{X: p.X.HullWith(other.X), Y: p.Y.HullWith(other.Y)}
}

// IntersectWith returns the per-axis intersection. Either axis of the
// result may be invalid when the points do not overlap there.
func (p Point[T1, T2]) IntersectWith(other Point[T1, T2]) Point[T1, T2] {
	return Point[T1, T2]{X: p.X.IntersectWith(other.X), Y: p.Y.IntersectWith(other.Y)}
}

// EnlargeWith grows both axes by alpha.
func (p Point[T1, T2]) EnlargeWith(alpha uint64) Point[T1, T2] {
	return Point[T1, T2]{X: p.X.EnlargeWith(alpha), Y: p.Y.EnlargeWith(alpha)}
}

// IsInvalid reports whether either axis represents the empty set.
func (p Point[T1, T2]) IsInvalid() bool {
	return p.X.IsInvalid() || p.Y.IsInvalid()
}

// Flip swaps the axes. Algorithms that handle x- and y-monotone cases
// symmetrically flip their inputs instead of duplicating logic.
func (p Point[T1, T2]) Flip() Point[T2, T1] {
	return Point[T2, T1]{X: p.Y, Y: p.X}
}

func (p Point[T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Translate returns the point shifted by v.
func Translate[T1 interface {
	Shape[T1]
	Translatable[T1, D1]
}, T2 interface {
	Shape[T2]
	Translatable[T2, D2]
}, D1, D2 any](p Point[T1, T2], v Vector2[D1, D2]) Point[T1, T2] {
	return Point[T1, T2]{X: p.X.Add(v.X), Y: p.Y.Add(v.Y)}
}

// Untranslate returns the point shifted back by v, the inverse of
// [Translate].
func Untranslate[T1 interface {
	Shape[T1]
	Translatable[T1, D1]
}, T2 interface {
	Shape[T2]
	Translatable[T2, D2]
}, D1, D2 any](p Point[T1, T2], v Vector2[D1, D2]) Point[T1, T2] {
	return Point[T1, T2]{X: p.X.Sub(v.X), Y: p.Y.Sub(v.Y)}
}

// Displacement returns the per-axis offset a - b as a vector.
func Displacement[T1 interface {
	Shape[T1]
	Displaceable[T1]
}, T2 interface {
	Shape[T2]
	Displaceable[T2]
}](a, b Point[T1, T2]) Vector2[T1, T2] {
	return Vector2[T1, T2]{X: a.X.Displace(b.X), Y: a.Y.Displace(b.Y)}
}
