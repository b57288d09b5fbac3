package geom

import "fmt"

// MergeObj is a Manhattan-metric region stored in coordinates rotated 45
// degrees from the physical plane: u = i+j, v = i-j. In the rotated space
// a Manhattan disk becomes an axis-aligned square, so the Interval and
// Point machinery implements true Manhattan-distance operations on the
// rotated axes. Merging two regions yields the minimal region whose
// points balance the distance to both, the building block for picking
// buffer and Steiner-point locations between terminals.
type MergeObj[T1 Shape[T1], T2 Shape[T2]] struct {
	rot Point[T1, T2]
}

// NewMergeObj wraps coordinates that are already in rotated space.
func NewMergeObj[T1 Shape[T1], T2 Shape[T2]](x T1, y T2) MergeObj[T1, T2] {
	return MergeObj[T1, T2]{rot: Pt(x, y)}
}

// MergeObjAt returns the merge object for the physical plane point
// (i, j), performing the rotation. The rotated coordinates are stored as
// degenerate intervals so the result composes with enlarged and merged
// regions.
func MergeObjAt[T Scalar](i, j T) MergeObj[Interval[T], Interval[T]] {
	return NewMergeObj(Degenerate(i+j), Degenerate(i-j))
}

// Rotated returns the underlying rotated-space point.
func (m MergeObj[T1, T2]) Rotated() Point[T1, T2] { return m.rot }

// MinDistWith returns the Manhattan separation between two regions. Each
// rotated axis contributes its own gap; taking the maximum of the two
// converts the Chebyshev combination in rotated space back into the
// Manhattan metric of the physical plane.
func (m MergeObj[T1, T2]) MinDistWith(other MergeObj[T1, T2]) uint64 {
	return max(
		m.rot.X.MinDistWith(other.rot.X),
		m.rot.Y.MinDistWith(other.rot.Y),
	)
}

// Overlaps reports whether the two regions share at least one point.
func (m MergeObj[T1, T2]) Overlaps(other MergeObj[T1, T2]) bool {
	return m.rot.Overlaps(other.rot)
}

// Contains reports whether other lies entirely within m.
func (m MergeObj[T1, T2]) Contains(other MergeObj[T1, T2]) bool {
	return m.rot.Contains(other.rot)
}

// HullWith returns the smallest region covering both operands.
func (m MergeObj[T1, T2]) HullWith(other MergeObj[T1, T2]) MergeObj[T1, T2] {
	return MergeObj[T1, T2]{rot: m.rot.HullWith(other.rot)}
}

// EnlargeWith grows the region by alpha on both rotated axes, the
// Minkowski sum with a Manhattan ball of radius alpha in the physical
// plane.
func (m MergeObj[T1, T2]) EnlargeWith(alpha uint64) MergeObj[T1, T2] {
	return MergeObj[T1, T2]{rot: m.rot.EnlargeWith(alpha)}
}

// IntersectWith intersects per rotated axis. Either axis of the result
// may be invalid when the regions do not overlap there.
func (m MergeObj[T1, T2]) IntersectWith(other MergeObj[T1, T2]) MergeObj[T1, T2] {
	return MergeObj[T1, T2]{rot: m.rot.IntersectWith(other.rot)}
}

// IsInvalid reports whether the region represents the empty set.
func (m MergeObj[T1, T2]) IsInvalid() bool { return m.rot.IsInvalid() }

// MergeWith returns the minimal region whose points lie within the
// balancing radii of both operands: the two regions are enlarged by
// halves of their Manhattan separation and intersected. The odd unit of
// an odd separation goes to the second operand; downstream consumers
// depend on that tie-break direction, so it must not be rounded
// symmetrically. When the regions already overlap this degenerates to a
// plain intersection.
func (m MergeObj[T1, T2]) MergeWith(other MergeObj[T1, T2]) MergeObj[T1, T2] {
	alpha := m.MinDistWith(other)
	half := alpha / 2
	trr1 := m.EnlargeWith(half)
	trr2 := other.EnlargeWith(alpha - half)
	return trr1.IntersectWith(trr2)
}

func (m MergeObj[T1, T2]) String() string {
	return fmt.Sprintf("/%v, %v/", m.rot.X, m.rot.Y)
}

// TranslateMergeObj shifts the region by the physical-plane vector v,
// applying the rotation (dx+dy, dx-dy) to the stored coordinates.
func TranslateMergeObj[T1 interface {
	Shape[T1]
	Translatable[T1, D]
}, T2 interface {
	Shape[T2]
	Translatable[T2, D]
}, D Scalar](m MergeObj[T1, T2], v Vector2[D, D]) MergeObj[T1, T2] {
	return MergeObj[T1, T2]{rot: Point[T1, T2]{
		X: m.rot.X.Add(v.X + v.Y),
		Y: m.rot.Y.Add(v.X - v.Y),
	}}
}

// UntranslateMergeObj shifts the region back by the physical-plane
// vector v, the inverse of [TranslateMergeObj].
func UntranslateMergeObj[T1 interface {
	Shape[T1]
	Translatable[T1, D]
}, T2 interface {
	Shape[T2]
	Translatable[T2, D]
}, D Scalar](m MergeObj[T1, T2], v Vector2[D, D]) MergeObj[T1, T2] {
	return MergeObj[T1, T2]{rot: Point[T1, T2]{
		X: m.rot.X.Sub(v.X + v.Y),
		Y: m.rot.Y.Sub(v.X - v.Y),
	}}
}
