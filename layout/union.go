// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvjet/errors"

// Union holds one alternative per element: element i is
// contents[tags[i]] at position index[i].
type Union struct {
	tags     []int8
	index    []int64
	contents []Node
}

// NewUnion validates tags and index against the alternatives.
func NewUnion(tags []int8, index []int64, contents ...Node) (*Union, error) {
	if len(tags) != len(index) {
		return nil, errors.Wrapf(errors.ErrInvalidStructure,
			"layout: union has %d tags but %d index entries", len(tags), len(index))
	}
	if len(contents) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidStructure, "layout: union needs at least one alternative")
	}
	for i, c := range contents {
		if c == nil {
			return nil, errors.Wrapf(errors.ErrInvalidStructure, "layout: union alternative %d is nil", i)
		}
	}
	for i, t := range tags {
		if t < 0 || int(t) >= len(contents) {
			return nil, errors.Wrapf(errors.ErrInvalidStructure, "layout: union tag %d at %d out of range", t, i)
		}
		if index[i] < 0 || index[i] >= int64(contents[t].Len()) {
			return nil, errors.Wrapf(errors.ErrInvalidStructure,
				"layout: union index %d at %d outside alternative %d", index[i], i, t)
		}
	}
	cs := make([]Node, len(contents))
	copy(cs, contents)
	return &Union{tags: tags, index: index, contents: cs}, nil
}

func (u *Union) Kind() Kind  { return KindUnion }
func (u *Union) Len() int    { return len(u.tags) }
func (u *Union) layoutNode() {}

// Tags returns the per-element alternative tags.
func (u *Union) Tags() []int8 { return u.tags }

// Index returns the per-element positions inside the chosen alternative.
func (u *Union) Index() []int64 { return u.index }

// NumContents returns the number of alternatives.
func (u *Union) NumContents() int { return len(u.contents) }

// Content returns alternative i.
func (u *Union) Content(i int) Node { return u.contents[i] }

// Contents returns a copy of the alternatives in declaration order.
func (u *Union) Contents() []Node {
	out := make([]Node, len(u.contents))
	copy(out, u.contents)
	return out
}

// WithContent returns a copy of u whose alternative i is c.
func (u *Union) WithContent(i int, c Node) *Union {
	cs := make([]Node, len(u.contents))
	copy(cs, u.contents)
	cs[i] = c
	return &Union{tags: u.tags, index: u.index, contents: cs}
}
