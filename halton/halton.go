// Package halton generates integer van der Corput and Halton
// low-discrepancy sequences. Placement heuristics use them to scatter
// candidate sites evenly across a region without the clumping of
// pseudo-random sampling.
package halton

import (
	"iter"

	"deedles.dev/physdes/geom"
)

// vdc returns the radix inverse of k in the given base, scaled up to
// scale digits so the result stays an integer.
func vdc(k, base, scale int) int {
	v := 0
	factor := 1
	for range scale {
		factor *= base
	}
	for k != 0 {
		factor /= base
		v += (k % base) * factor
		k /= base
	}
	return v
}

// VdCorput is a van der Corput sequence generator. The zero value is not
// usable; construct with [NewVdCorput].
type VdCorput struct {
	count int
	base  int
	scale int
}

// NewVdCorput returns a generator for the given base whose outputs range
// over [0, base^scale).
func NewVdCorput(base, scale int) *VdCorput {
	return &VdCorput{base: base, scale: scale}
}

// Pop returns the next element of the sequence.
func (v *VdCorput) Pop() int {
	v.count++
	return vdc(v.count, v.base, v.scale)
}

// Reseed rewinds the generator to the given position. Reseed(0) restarts
// the sequence from the beginning.
func (v *VdCorput) Reseed(seed int) { v.count = seed }

// Halton interleaves two van der Corput sequences, one per axis.
type Halton struct {
	vdc0, vdc1 VdCorput
}

// New returns a Halton generator with per-axis bases and scales. The two
// bases should be coprime, conventionally 2 and 3.
func New(base, scale [2]int) *Halton {
	return &Halton{
		vdc0: VdCorput{base: base[0], scale: scale[0]},
		vdc1: VdCorput{base: base[1], scale: scale[1]},
	}
}

// Pop returns the next coordinate pair.
func (h *Halton) Pop() [2]int {
	return [2]int{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed rewinds both axes to the given position.
func (h *Halton) Reseed(seed int) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}

// Points yields the next n coordinate pairs as plane vectors.
func (h *Halton) Points(n int) iter.Seq[geom.Vector2[int, int]] {
	return func(yield func(geom.Vector2[int, int]) bool) {
		for range n {
			p := h.Pop()
			if !yield(geom.Vec2(p[0], p[1])) {
				return
			}
		}
	}
}
