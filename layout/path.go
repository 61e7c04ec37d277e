// SPDX-License-Identifier: MIT

package layout

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvjet/errors"
)

// StepKind distinguishes the three ways of descending one level.
type StepKind uint8

const (
	// StepDescend enters the single unnamed content of a List, Indexed or Masked node.
	StepDescend StepKind = iota
	// StepField enters a named Record field.
	StepField
	// StepAlt enters a Union alternative.
	StepAlt
)

// Step is one descent in a Path.
type Step struct {
	kind StepKind
	name string
	alt  int
}

// FieldStep descends into the record field name.
func FieldStep(name string) Step { return Step{kind: StepField, name: name} }

// AltStep descends into union alternative i.
func AltStep(i int) Step { return Step{kind: StepAlt, alt: i} }

// DescendStep descends through a single-content wrapper ("None").
func DescendStep() Step { return Step{kind: StepDescend} }

// Kind returns the step kind.
func (s Step) Kind() StepKind { return s.kind }

// Name returns the field name of a StepField.
func (s Step) Name() string { return s.name }

// Alt returns the alternative index of a StepAlt.
func (s Step) Alt() int { return s.alt }

func (s Step) String() string {
	switch s.kind {
	case StepField:
		return strconv.Quote(s.name)
	case StepAlt:
		return strconv.Itoa(s.alt)
	default:
		return "None"
	}
}

// Path addresses one node from the root by repeated descent.
type Path []Step

// Append returns a new Path with s added; p itself is never aliased.
func (p Path) Append(s ...Step) Path {
	out := make(Path, len(p), len(p)+len(s))
	copy(out, p)
	return append(out, s...)
}

// Equal reports step-by-step equality.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Target drops the trailing Descend marker of a located path.
func (p Path) Target() (Path, bool) {
	if len(p) == 0 || p[len(p)-1].kind != StepDescend {
		return p, false
	}
	return p[:len(p)-1], true
}

// String renders the path as ["event", None].
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Resolve follows p from root and returns the node it addresses.
//
// Errors: ErrStructuralDesync when a step does not fit the node kind at
// its level, or names a missing field or alternative.
func Resolve(root Node, p Path) (Node, error) {
	n := root
	for level, s := range p {
		next, err := descend(n, s)
		if err != nil {
			return nil, errors.Wrapf(err, "layout: resolve %s at level %d", p, level)
		}
		n = next
	}
	return n, nil
}

func descend(n Node, s Step) (Node, error) {
	switch s.kind {
	case StepDescend:
		if c, ok := SingleContent(n); ok {
			return c, nil
		}
	case StepField:
		if r, ok := n.(*Record); ok {
			if c, ok := r.Field(s.name); ok {
				return c, nil
			}
			return nil, errors.Desyncf("record has no field %q", s.name)
		}
	case StepAlt:
		if u, ok := n.(*Union); ok {
			if s.alt >= 0 && s.alt < len(u.contents) {
				return u.contents[s.alt], nil
			}
			return nil, errors.Desyncf("union has no alternative %d", s.alt)
		}
	}
	return nil, errors.Desyncf("step %s does not apply to a %s node", s, n.Kind())
}
