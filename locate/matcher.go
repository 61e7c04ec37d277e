// SPDX-License-Identifier: MIT

package locate

import "github.com/katalvlaran/lvjet/layout"

// MatchRecord reports whether n, after stripping any chain of Indexed and Masked
// wrappers, is a Record whose px, py, pz and E fields are numeric columns.
// The stripped Record is returned so callers need no second lookup.
// Extra fields are allowed.
func MatchRecord(n layout.Node) (*layout.Record, bool) {
	rec, ok := layout.Unwrap(n).(*layout.Record)
	if !ok {
		return nil, false
	}
	for _, name := range layout.MomentumFields {
		c, ok := rec.Field(name)
		if !ok {
			return nil, false
		}
		if _, numeric := layout.Unwrap(c).(*layout.Leaf); !numeric {
			return nil, false
		}
	}
	return rec, true
}

// IsClusterable is MatchRecord without the record.
func IsClusterable(n layout.Node) bool {
	_, ok := MatchRecord(n)
	return ok
}

// IsClusterableList reports whether n is a List whose content matches.
func IsClusterableList(n layout.Node) (*layout.Record, bool) {
	l, ok := n.(*layout.List)
	if !ok {
		return nil, false
	}
	return MatchRecord(l.Content())
}
