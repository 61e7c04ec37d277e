// SPDX-License-Identifier: MIT

package layout

// Kind enumerates the closed set of node kinds.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindList
	KindRecord
	KindUnion
	KindIndexed
	KindMasked
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	case KindUnion:
		return "union"
	case KindIndexed:
		return "indexed"
	case KindMasked:
		return "masked"
	default:
		return "unknown"
	}
}

// Node is one vertex of a Layout Tree. The interface is sealed: only the
// types of this package implement it, so a type switch over
// *List, *Record, *Union, *Indexed, *Masked and *Leaf is exhaustive.
type Node interface {
	// Kind reports the node kind.
	Kind() Kind
	// Len reports the number of elements the node exposes.
	Len() int

	layoutNode()
}

// Momentum field names required on a clusterable record.
const (
	FieldPx = "px"
	FieldPy = "py"
	FieldPz = "pz"
	FieldE  = "E"
)

// MomentumFields lists the four required fields in canonical order.
var MomentumFields = [4]string{FieldPx, FieldPy, FieldPz, FieldE}

// MomentumRecordName is the record name given to freshly built four-momenta.
const MomentumRecordName = "Momentum4D"

// Must panics if err is non-nil and returns v otherwise. Intended for
// literal trees in tests and examples.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// SingleContent returns the only child of a List, Indexed or Masked node.
func SingleContent(n Node) (Node, bool) {
	switch t := n.(type) {
	case *List:
		return t.content, true
	case *Indexed:
		return t.content, true
	case *Masked:
		return t.content, true
	default:
		return nil, false
	}
}

// Unwrap strips any chain of Indexed and Masked wrappers around n.
func Unwrap(n Node) Node {
	for {
		switch t := n.(type) {
		case *Indexed:
			n = t.content
		case *Masked:
			n = t.content
		default:
			return n
		}
	}
}
