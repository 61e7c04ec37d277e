// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvjet/errors"

// Field is one named column of a Record.
type Field struct {
	Name    string
	Content Node
}

// Record is a struct of arrays with fields in declaration order.
type Record struct {
	name   string
	fields []Field
	length int
}

// NewRecord builds a Record of the given length. Every field content must
// expose at least length elements and field names must be unique.
func NewRecord(length int, fields ...Field) (*Record, error) {
	if length < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidStructure, "layout: negative record length %d", length)
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Content == nil {
			return nil, errors.Wrapf(errors.ErrInvalidStructure, "layout: field %q has nil content", f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, errors.Wrapf(errors.ErrInvalidStructure, "layout: duplicate field %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Content.Len() < length {
			return nil, errors.Wrapf(errors.ErrInvalidStructure,
				"layout: field %q has %d elements, record needs %d", f.Name, f.Content.Len(), length)
		}
	}
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Record{fields: fs, length: length}, nil
}

// NewNamedRecord is NewRecord plus a record name such as "Momentum4D".
func NewNamedRecord(name string, length int, fields ...Field) (*Record, error) {
	r, err := NewRecord(length, fields...)
	if err != nil {
		return nil, err
	}
	r.name = name
	return r, nil
}

func (r *Record) Kind() Kind  { return KindRecord }
func (r *Record) Len() int    { return r.length }
func (r *Record) layoutNode() {}

// Name returns the record name, empty when unnamed.
func (r *Record) Name() string { return r.name }

// NumFields returns the number of fields.
func (r *Record) NumFields() int { return len(r.fields) }

// Fields returns a copy of the field list in declaration order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// FieldNames returns the field names in declaration order.
func (r *Record) FieldNames() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Field looks a field up by name.
func (r *Record) Field(name string) (Node, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Content, true
		}
	}
	return nil, false
}

// HasFields reports whether every name is declared on r.
func (r *Record) HasFields(names ...string) bool {
	for _, n := range names {
		if _, ok := r.Field(n); !ok {
			return false
		}
	}
	return true
}

// WithField returns a copy of r whose field name holds c. The boolean is
// false, and r is returned unchanged, when the field does not exist.
func (r *Record) WithField(name string, c Node) (*Record, bool) {
	for i, f := range r.fields {
		if f.Name != name {
			continue
		}
		fs := make([]Field, len(r.fields))
		copy(fs, r.fields)
		fs[i] = Field{Name: name, Content: c}
		return &Record{name: r.name, fields: fs, length: r.length}, true
	}
	return r, false
}

// WithName returns a copy of r carrying a different record name.
func (r *Record) WithName(name string) *Record {
	return &Record{name: name, fields: r.fields, length: r.length}
}
