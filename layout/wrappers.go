// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvjet/errors"

// Indexed redirects element i to content[index[i]]. A negative index marks a
// missing element.
type Indexed struct {
	index   []int64
	content Node
}

// NewIndexed checks every non-negative index against the content length.
func NewIndexed(index []int64, content Node) (*Indexed, error) {
	if content == nil {
		return nil, errors.Wrap(errors.ErrInvalidStructure, "layout: indexed content is nil")
	}
	n := int64(content.Len())
	for i, j := range index {
		if j >= n {
			return nil, errors.Wrapf(errors.ErrInvalidStructure,
				"layout: index %d at %d exceeds content length %d", j, i, n)
		}
	}
	return &Indexed{index: index, content: content}, nil
}

func (x *Indexed) Kind() Kind  { return KindIndexed }
func (x *Indexed) Len() int    { return len(x.index) }
func (x *Indexed) layoutNode() {}

// Index returns the redirection buffer.
func (x *Indexed) Index() []int64 { return x.index }

// Content returns the wrapped node.
func (x *Indexed) Content() Node { return x.content }

// IsOption reports whether any element is missing.
func (x *Indexed) IsOption() bool {
	for _, j := range x.index {
		if j < 0 {
			return true
		}
	}
	return false
}

// WithContent returns a copy of x holding c.
func (x *Indexed) WithContent(c Node) *Indexed {
	return &Indexed{index: x.index, content: c}
}

// Masked marks element i valid when mask[i] == validWhen.
type Masked struct {
	mask      []bool
	validWhen bool
	content   Node
}

// NewMasked requires the content to cover every mask entry.
func NewMasked(mask []bool, validWhen bool, content Node) (*Masked, error) {
	if content == nil {
		return nil, errors.Wrap(errors.ErrInvalidStructure, "layout: masked content is nil")
	}
	if content.Len() < len(mask) {
		return nil, errors.Wrapf(errors.ErrInvalidStructure,
			"layout: mask of %d entries over content of %d", len(mask), content.Len())
	}
	return &Masked{mask: mask, validWhen: validWhen, content: content}, nil
}

func (m *Masked) Kind() Kind  { return KindMasked }
func (m *Masked) Len() int    { return len(m.mask) }
func (m *Masked) layoutNode() {}

// Mask returns the raw mask.
func (m *Masked) Mask() []bool { return m.mask }

// ValidWhen returns the mask value meaning "present".
func (m *Masked) ValidWhen() bool { return m.validWhen }

// Valid reports whether element i is present.
func (m *Masked) Valid(i int) bool { return m.mask[i] == m.validWhen }

// Content returns the wrapped node.
func (m *Masked) Content() Node { return m.content }

// WithContent returns a copy of m holding c.
func (m *Masked) WithContent(c Node) *Masked {
	return &Masked{mask: m.mask, validWhen: m.validWhen, content: c}
}
