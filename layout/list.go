// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvjet/errors"

// List is a ragged list: group k covers content elements [starts[k], stops[k]).
// Groups may overlap or leave gaps; a List is contiguous when
// starts[k+1] == stops[k] for every k.
type List struct {
	starts  []int64
	stops   []int64
	content Node
}

// NewList builds a List from explicit starts and stops.
//
// Errors: ErrInvalidStructure when lengths differ, a stop precedes its start,
// or a range leaves the content.
// Complexity: O(len(starts)).
func NewList(starts, stops []int64, content Node) (*List, error) {
	if content == nil {
		return nil, errors.Wrap(errors.ErrInvalidStructure, "layout: list content is nil")
	}
	if len(starts) != len(stops) {
		return nil, errors.Wrapf(errors.ErrInvalidStructure,
			"layout: list has %d starts but %d stops", len(starts), len(stops))
	}
	n := int64(content.Len())
	for k := range starts {
		if starts[k] < 0 || stops[k] < starts[k] {
			return nil, errors.Wrapf(errors.ErrInvalidStructure,
				"layout: list group %d has range [%d, %d)", k, starts[k], stops[k])
		}
		if stops[k] > starts[k] && stops[k] > n {
			return nil, errors.Wrapf(errors.ErrInvalidStructure,
				"layout: list group %d stop %d exceeds content length %d", k, stops[k], n)
		}
	}
	return &List{starts: starts, stops: stops, content: content}, nil
}

// NewListOffset builds a contiguous List from a monotonic offsets buffer of
// length groups+1.
func NewListOffset(offsets []int64, content Node) (*List, error) {
	if len(offsets) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidStructure, "layout: offsets must hold at least one entry")
	}
	for k := 1; k < len(offsets); k++ {
		if offsets[k] < offsets[k-1] {
			return nil, errors.Wrapf(errors.ErrInvalidStructure,
				"layout: offsets decrease at %d (%d < %d)", k, offsets[k], offsets[k-1])
		}
	}
	return NewList(offsets[:len(offsets)-1], offsets[1:], content)
}

func (l *List) Kind() Kind  { return KindList }
func (l *List) Len() int    { return len(l.starts) }
func (l *List) layoutNode() {}

// Starts returns the group start indices. Callers must not modify it.
func (l *List) Starts() []int64 { return l.starts }

// Stops returns the group stop indices. Callers must not modify it.
func (l *List) Stops() []int64 { return l.stops }

// Content returns the list content.
func (l *List) Content() Node { return l.content }

// GroupLen returns the number of elements in group k.
func (l *List) GroupLen(k int) int { return int(l.stops[k] - l.starts[k]) }

// Contiguous reports whether every group starts where the previous one stops.
func (l *List) Contiguous() bool {
	for k := 1; k < len(l.starts); k++ {
		if l.starts[k] != l.stops[k-1] {
			return false
		}
	}
	return true
}

// Offsets returns a fresh offsets buffer when the list is contiguous.
func (l *List) Offsets() ([]int64, bool) {
	if !l.Contiguous() {
		return nil, false
	}
	out := make([]int64, len(l.starts)+1)
	if len(l.starts) > 0 {
		copy(out, l.starts)
		out[len(l.starts)] = l.stops[len(l.stops)-1]
	}
	return out, true
}

// WithContent returns a copy of l sharing its ranges but holding c.
func (l *List) WithContent(c Node) *List {
	return &List{starts: l.starts, stops: l.stops, content: c}
}
