package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/physdes/geom"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	a := geom.NewInterval(4, 8)
	b := geom.NewInterval(5, 6)

	require.True(t, a.Overlaps(b))
	require.True(t, b.Overlaps(a))
	require.True(t, a.Contains(b))
	require.False(t, b.Contains(a))
	require.True(t, a.ContainsValue(4))
	require.True(t, a.ContainsValue(8))

	require.True(t, a.Overlaps(a))
	require.True(t, a.Contains(a))
	require.True(t, b.Overlaps(b))
	require.True(t, b.Contains(b))

	require.Equal(t, a, a)
	require.NotEqual(t, a, b)
}

func TestIntervalInvalid(t *testing.T) {
	require.False(t, geom.NewInterval(3, 5).IsInvalid())
	require.False(t, geom.Degenerate(3).IsInvalid())
	require.True(t, geom.NewInterval(5, 3).IsInvalid())

	// The constructor does not normalize: an inverted pair is a
	// deliberate empty sentinel, not an error.
	require.Equal(t, geom.Interval[int]{Lb: 5, Ub: 3}, geom.NewInterval(5, 3))
}

func TestIntervalLength(t *testing.T) {
	require.Equal(t, 2, geom.NewInterval(3, 5).Length())
	require.Equal(t, 0, geom.Degenerate(7).Length())
}

func TestIntervalCompare(t *testing.T) {
	a := geom.NewInterval(4, 5)
	b := geom.NewInterval(6, 8)
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestIntervalCompareWeakOrder(t *testing.T) {
	// Overlapping intervals compare equal positionally even though they
	// differ structurally.
	a := geom.NewInterval(4, 8)
	b := geom.NewInterval(5, 6)
	require.Equal(t, 0, a.Compare(b))
	require.Equal(t, 0, b.Compare(a))
	require.NotEqual(t, a, b)

	ivs := []geom.Interval[int]{
		geom.NewInterval(7, 8),
		geom.NewInterval(3, 5),
		geom.NewInterval(-2, 0),
	}
	slices.SortFunc(ivs, geom.Interval[int].Compare)
	require.Equal(t, []geom.Interval[int]{
		geom.NewInterval(-2, 0),
		geom.NewInterval(3, 5),
		geom.NewInterval(7, 8),
	}, ivs)
}

func TestIntervalArithmetic(t *testing.T) {
	a := geom.NewInterval(3, 5)
	require.Equal(t, geom.NewInterval(4, 6), a.Add(1))
	require.Equal(t, geom.NewInterval(2, 4), a.Sub(1))
	require.Equal(t, geom.NewInterval(6, 10), a.Scale(2))
	require.Equal(t, geom.NewInterval(-5, -3), a.Neg())
	require.Equal(t, a, a.Add(1).Sub(1))
}

func TestIntervalOverlap(t *testing.T) {
	a := geom.NewInterval(3, 5)
	b := geom.NewInterval(5, 7)
	c := geom.NewInterval(7, 8)

	require.True(t, a.Overlaps(b))
	require.True(t, b.Overlaps(c))
	require.False(t, a.Overlaps(c))
	require.False(t, c.Overlaps(a))

	require.True(t, a.OverlapsValue(4))
	require.False(t, a.OverlapsValue(6))
}

func TestIntervalContains(t *testing.T) {
	a := geom.NewInterval(3, 5)
	b := geom.NewInterval(5, 7)

	require.False(t, a.Contains(b))
	require.False(t, b.Contains(a))
	require.True(t, a.ContainsValue(4))
	require.False(t, a.ContainsValue(6))

	// A bare value never contains a non-degenerate interval; lifted to a
	// degenerate interval the same policy falls out of the bounds check.
	require.False(t, geom.Degenerate(4).Contains(a))
	require.True(t, geom.Degenerate(4).Contains(geom.Degenerate(4)))
}

func TestIntervalIntersect(t *testing.T) {
	a := geom.NewInterval(3, 5)
	b := geom.NewInterval(5, 7)
	c := geom.NewInterval(7, 8)

	require.Equal(t, geom.NewInterval(5, 5), a.IntersectWith(b))
	require.Equal(t, geom.NewInterval(7, 7), b.IntersectWith(c))
	require.True(t, a.IntersectWith(c).IsInvalid())

	require.Equal(t, geom.NewInterval(4, 4), a.IntersectValue(4))
	require.True(t, a.IntersectValue(6).IsInvalid())

	// Emptiness of the intersection coincides exactly with disjointness.
	for _, other := range []geom.Interval[int]{a, b, c, geom.NewInterval(-1, 2), geom.NewInterval(4, 9)} {
		require.Equal(t, !a.Overlaps(other), a.IntersectWith(other).IsInvalid())
	}
}

func TestIntervalHull(t *testing.T) {
	a := geom.NewInterval(3, 5)
	b := geom.NewInterval(5, 7)
	c := geom.NewInterval(7, 8)

	require.Equal(t, geom.NewInterval(3, 7), a.HullWith(b))
	require.Equal(t, geom.NewInterval(5, 8), b.HullWith(c))
	require.Equal(t, geom.NewInterval(3, 8), a.HullWith(c))
	require.Equal(t, geom.NewInterval(1, 7), a.HullWith(geom.NewInterval(1, 7)))

	require.Equal(t, geom.NewInterval(3, 5), a.HullValue(4))
	require.Equal(t, geom.NewInterval(3, 6), a.HullValue(6))
	require.Equal(t, geom.NewInterval(0, 5), a.HullValue(0))
}

func TestIntervalMinDist(t *testing.T) {
	a := geom.NewInterval(3, 5)
	b := geom.NewInterval(5, 7)
	c := geom.NewInterval(7, 8)

	require.Equal(t, uint64(0), a.MinDistWith(b))
	require.Equal(t, uint64(2), a.MinDistWith(c))
	require.Equal(t, uint64(2), c.MinDistWith(a))
	require.Equal(t, uint64(0), b.MinDistWith(c))

	require.Equal(t, uint64(0), a.MinDistToValue(4))
	require.Equal(t, uint64(1), a.MinDistToValue(6))
	require.Equal(t, uint64(2), a.MinDistToValue(1))

	require.Equal(t, uint64(2), geom.NewInterval(3, 5).MinDistWith(geom.NewInterval(7, 8)))
}

func TestIntervalDisplace(t *testing.T) {
	a := geom.NewInterval(3, 5)
	b := geom.NewInterval(5, 7)
	c := geom.NewInterval(7, 8)

	require.Equal(t, geom.NewInterval(-2, -2), a.Displace(b))
	require.Equal(t, geom.NewInterval(-4, -3), a.Displace(c))
	require.Equal(t, geom.NewInterval(-2, -1), b.Displace(c))
}

func TestIntervalEnlarge(t *testing.T) {
	a := geom.NewInterval(3, 5)
	require.Equal(t, geom.NewInterval(1, 7), a.EnlargeWith(2))
	require.Equal(t, a, a.EnlargeWith(0))
}

func TestIntervalString(t *testing.T) {
	require.Equal(t, "[3, 5]", geom.NewInterval(3, 5).String())
	require.Equal(t, "[5, 3]", geom.NewInterval(5, 3).String())
}
