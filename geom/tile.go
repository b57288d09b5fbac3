package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// splitH splits a box into two boxes arranged horizontally, the left one
// w wide.
func splitH[T Scalar](b Box[T], w T) (left, right Box[T]) {
	left = Pt(NewInterval(b.X.Lb, b.X.Lb+w), b.Y)
	right = Pt(NewInterval(b.X.Lb+w, b.X.Ub), b.Y)
	return left, right
}

// splitV splits a box into two boxes arranged vertically.
func splitV[T Scalar](b Box[T], h T) (top, bottom Box[T]) {
	top = Pt(b.X, NewInterval(b.Y.Lb, b.Y.Lb+h))
	bottom = Pt(b.X, NewInterval(b.Y.Lb+h, b.Y.Ub))
	return top, bottom
}

// TileEvenVertically arranges and resizes the elements of tiles so that
// the result is a series of boxes that comprise an even, vertical
// splitting of b. Candidate-site generation walks such tiles when seeding
// a placement region.
func TileEvenVertically[T Scalar](tiles []Box[T], b Box[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), b))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that it
// yields the tiles from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, b Box[T]) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		h := b.Y.Length() / T(numtiles)
		c, _ := splitV(b, h)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = Pt(c.X, c.Y.Add(h))
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so that
// the result is a series of boxes that comprise an even, horizontal
// splitting of b.
func TileEvenHorizontally[T Scalar](tiles []Box[T], b Box[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), b))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except that
// it yields the tiles from an iterator.
func TiledEvenHorizontally[T Scalar](numtiles int, b Box[T]) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		w := b.X.Length() / T(numtiles)
		c, _ := splitH(b, w)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = Pt(c.X.Add(w), c.Y)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a series
// of rows and columns the union of which reproduces b. Each full row is
// split evenly into cols columns; the remainder of the tiles forms a
// shorter final row.
func TileRows[T Scalar](tiles []Box[T], b Box[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), b, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, b Box[T], cols int) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, b)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

func insertTilesFromSeq[T Scalar](tiles []Box[T], s iter.Seq[Box[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
