// SPDX-License-Identifier: MIT

package extract

import "github.com/katalvlaran/lvjet/errors"

// Buffers holds the four momentum columns of one subtree and the half-open
// range of every group: group k is [Starts[k], Stops[k]).
type Buffers struct {
	Px, Py, Pz, E []float64
	Starts, Stops []int64
}

// Len returns the total number of particles.
func (b *Buffers) Len() int { return len(b.Px) }

// Groups returns the number of groups.
func (b *Buffers) Groups() int { return len(b.Starts) }

// Group returns the column slices of group k. The slices alias b.
func (b *Buffers) Group(k int) (px, py, pz, e []float64) {
	lo, hi := b.Starts[k], b.Stops[k]
	return b.Px[lo:hi], b.Py[lo:hi], b.Pz[lo:hi], b.E[lo:hi]
}

// Offsets returns Starts followed by the final stop. Only meaningful for
// contiguous buffers, which is what Read produces.
func (b *Buffers) Offsets() []int64 {
	out := make([]int64, len(b.Starts)+1)
	copy(out, b.Starts)
	if n := len(b.Stops); n > 0 {
		out[n] = b.Stops[n-1]
	}
	return out
}

// Validate checks the column and range invariants.
func (b *Buffers) Validate() error {
	n := len(b.Px)
	if len(b.Py) != n || len(b.Pz) != n || len(b.E) != n {
		return errors.Wrapf(errors.ErrInvalidStructure,
			"extract: column lengths differ (px=%d py=%d pz=%d E=%d)", n, len(b.Py), len(b.Pz), len(b.E))
	}
	if len(b.Starts) != len(b.Stops) {
		return errors.Wrapf(errors.ErrInvalidStructure,
			"extract: %d starts but %d stops", len(b.Starts), len(b.Stops))
	}
	for k := range b.Starts {
		if b.Starts[k] < 0 || b.Stops[k] < b.Starts[k] || b.Stops[k] > int64(n) {
			return errors.Wrapf(errors.ErrInvalidStructure,
				"extract: group %d range [%d, %d) outside %d particles", k, b.Starts[k], b.Stops[k], n)
		}
	}
	return nil
}
