// SPDX-License-Identifier: MIT

package extract

import (
	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/layout"
)

// Extract canonicalises l and reads its momentum buffers.
func Extract(l *layout.List) (*Buffers, error) {
	c, err := Canonicalize(l)
	if err != nil {
		return nil, err
	}

	return Read(c)
}

// Canonicalize returns a contiguous List equivalent to l, with offsets
// starting at 0 and masked-out or missing particles dropped. l itself is
// returned when it is already canonical.
func Canonicalize(l *layout.List) (*layout.List, error) {
	if l == nil {
		return nil, errors.Wrap(errors.ErrInvalidStructure, "extract: list is nil")
	}
	rec, ok := layout.Unwrap(l.Content()).(*layout.Record)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidStructure,
			"extract: list content is %s, want a record", layout.Format(l.Content()))
	}

	// 1. Gather: map every kept element to its row in the stripped record
	starts, stops := l.Starts(), l.Stops()
	offsets := make([]int64, 1, len(starts)+1)
	take := make([]int64, 0, rec.Len())
	for k := range starts {
		for j := starts[k]; j < stops[k]; j++ {
			r, present, err := row(l.Content(), int(j))
			if err != nil {
				return nil, errors.Wrapf(err, "extract: group %d element %d", k, j)
			}
			if present {
				take = append(take, int64(r))
			}
		}
		offsets = append(offsets, int64(len(take)))
	}

	// 2. Short-cut: already canonical
	if l.Content() == layout.Node(rec) && isIdentity(take, rec.Len()) {
		if offs, ok := l.Offsets(); ok && (len(offs) == 1 || offs[0] == 0) {
			return l, nil
		}
	}

	// 3. Build the contiguous form
	var content layout.Node = rec
	if !isIdentity(take, rec.Len()) {
		idx, err := layout.NewIndexed(take, rec)
		if err != nil {
			return nil, err
		}
		content = idx
	}

	return layout.NewListOffset(offsets, content)
}

// Read decodes the momentum columns of a canonical List.
func Read(c *layout.List) (*Buffers, error) {
	offs, ok := c.Offsets()
	if !ok || (len(offs) > 1 && offs[0] != 0) {
		return nil, errors.Wrap(errors.ErrInvalidStructure, "extract: list is not canonical")
	}
	n := int(offs[len(offs)-1])

	cols, err := readColumns(c.Content(), n)
	if err != nil {
		return nil, err
	}
	b := &Buffers{
		Px: cols[0], Py: cols[1], Pz: cols[2], E: cols[3],
		Starts: append([]int64(nil), c.Starts()...),
		Stops:  append([]int64(nil), c.Stops()...),
	}

	return b, b.Validate()
}

// Momenta reads a query unit: a List yields its own groups, any other node
// yields one group per element holding that element's record, or an empty
// group when the element is masked out or missing.
func Momenta(unit layout.Node) (*Buffers, error) {
	if l, ok := unit.(*layout.List); ok {
		return Extract(l)
	}
	rec, ok := layout.Unwrap(unit).(*layout.Record)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidStructure,
			"extract: query unit is %s, want a record", layout.Format(unit))
	}
	cols, err := momentumColumns(rec)
	if err != nil {
		return nil, err
	}

	b := &Buffers{}
	for k := 0; k < unit.Len(); k++ {
		b.Starts = append(b.Starts, int64(len(b.Px)))
		r, present, err := row(unit, k)
		if err != nil {
			return nil, errors.Wrapf(err, "extract: query element %d", k)
		}
		if present {
			v, err := momentumAt(cols, r)
			if err != nil {
				return nil, err
			}
			b.Px = append(b.Px, v[0])
			b.Py = append(b.Py, v[1])
			b.Pz = append(b.Pz, v[2])
			b.E = append(b.E, v[3])
		}
		b.Stops = append(b.Stops, int64(len(b.Px)))
	}

	return b, b.Validate()
}

// readColumns decodes the four momentum columns of the first n elements of
// content, which is a Record or an Indexed layer over one.
func readColumns(content layout.Node, n int) ([4][]float64, error) {
	var cols [4][]float64
	rec, ok := layout.Unwrap(content).(*layout.Record)
	if !ok {
		return cols, errors.Wrapf(errors.ErrInvalidStructure,
			"extract: content is %s, want a record", layout.Format(content))
	}
	src, err := momentumColumns(rec)
	if err != nil {
		return cols, err
	}
	for f := range cols {
		cols[f] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		r, present, err := row(content, i)
		if err != nil {
			return cols, err
		}
		if !present {
			return cols, errors.Wrapf(errors.ErrInvalidStructure, "extract: canonical element %d is missing", i)
		}
		v, err := momentumAt(src, r)
		if err != nil {
			return cols, err
		}
		for f := range cols {
			cols[f][i] = v[f]
		}
	}

	return cols, nil
}

// momentumColumns looks the four momentum fields up once.
func momentumColumns(rec *layout.Record) ([4]layout.Node, error) {
	var cols [4]layout.Node
	for f, name := range layout.MomentumFields {
		c, ok := rec.Field(name)
		if !ok {
			return cols, errors.Wrapf(errors.ErrInvalidStructure, "extract: record has no %q field", name)
		}
		cols[f] = c
	}

	return cols, nil
}

// momentumAt decodes px, py, pz, E of row r.
func momentumAt(cols [4]layout.Node, r int) ([4]float64, error) {
	var v [4]float64
	for f, c := range cols {
		x, present, err := valueAt(c, r)
		if err != nil {
			return v, errors.Wrapf(err, "extract: field %q", layout.MomentumFields[f])
		}
		if !present {
			return v, errors.Wrapf(errors.ErrInvalidStructure,
				"extract: field %q is missing at row %d", layout.MomentumFields[f], r)
		}
		v[f] = x
	}

	return v, nil
}

// row follows element i of n through Indexed and Masked layers down to the
// Record below and returns the row it lands on. present is false when a
// layer marks the element missing.
func row(n layout.Node, i int) (r int, present bool, err error) {
	for {
		switch t := n.(type) {
		case *layout.Record:
			return i, true, nil
		case *layout.Indexed:
			j := t.Index()[i]
			if j < 0 {
				return 0, false, nil
			}
			i, n = int(j), t.Content()
		case *layout.Masked:
			if !t.Valid(i) {
				return 0, false, nil
			}
			n = t.Content()
		default:
			return 0, false, errors.Wrapf(errors.ErrInvalidStructure,
				"extract: unexpected %s node above the particle record", n.Kind())
		}
	}
}

// valueAt is row for numeric columns.
func valueAt(n layout.Node, i int) (v float64, present bool, err error) {
	for {
		switch t := n.(type) {
		case *layout.Leaf:
			return t.Float64At(i), true, nil
		case *layout.Indexed:
			j := t.Index()[i]
			if j < 0 {
				return 0, false, nil
			}
			i, n = int(j), t.Content()
		case *layout.Masked:
			if !t.Valid(i) {
				return 0, false, nil
			}
			n = t.Content()
		default:
			return 0, false, errors.Wrapf(errors.ErrInvalidStructure,
				"extract: %s column is not numeric", n.Kind())
		}
	}
}

func isIdentity(take []int64, n int) bool {
	if len(take) != n {
		return false
	}
	for i, j := range take {
		if int64(i) != j {
			return false
		}
	}
	return true
}
