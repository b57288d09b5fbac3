package geom

import "fmt"

// Vector2 is a displacement pair, algebraically the difference of two
// Points. Its coordinate types are unconstrained so that displacing boxes
// yields vectors of intervals.
type Vector2[T1, T2 any] struct {
	X T1
	Y T2
}

// Vec2 is shorthand for constructing a Vector2.
func Vec2[T1, T2 any](x T1, y T2) Vector2[T1, T2] {
	return Vector2[T1, T2]{X: x, Y: y}
}

// Flip swaps the axes.
func (v Vector2[T1, T2]) Flip() Vector2[T2, T1] {
	return Vector2[T2, T1]{X: v.Y, Y: v.X}
}

func (v Vector2[T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// AddVec returns the component-wise sum of two scalar vectors.
func AddVec[T1, T2 Scalar](a, b Vector2[T1, T2]) Vector2[T1, T2] {
	return Vector2[T1, T2]{X: a.X + b.X, Y: a.Y + b.Y}
}

// SubVec returns the component-wise difference of two scalar vectors.
func SubVec[T1, T2 Scalar](a, b Vector2[T1, T2]) Vector2[T1, T2] {
	return Vector2[T1, T2]{X: a.X - b.X, Y: a.Y - b.Y}
}

// NegVec returns the scalar vector pointing the opposite way.
func NegVec[T1, T2 Scalar](v Vector2[T1, T2]) Vector2[T1, T2] {
	return Vector2[T1, T2]{X: -v.X, Y: -v.Y}
}

// ScaleVec multiplies both components by k.
func ScaleVec[T Scalar](v Vector2[T, T], k T) Vector2[T, T] {
	return Vector2[T, T]{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of two scalar vectors.
func Dot[T Scalar](a, b Vector2[T, T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the 2D cross product of two scalar vectors.
func Cross[T Scalar](a, b Vector2[T, T]) T {
	return a.X*b.Y - a.Y*b.X
}

// L1Norm returns |x| + |y|, the Manhattan distance from the origin.
func L1Norm[T Scalar](v Vector2[T, T]) uint64 {
	return MinDist(v.X, 0) + MinDist(v.Y, 0)
}

// LInfNorm returns max(|x|, |y|), the Chebyshev distance from the origin.
func LInfNorm[T Scalar](v Vector2[T, T]) uint64 {
	return max(MinDist(v.X, 0), MinDist(v.Y, 0))
}
