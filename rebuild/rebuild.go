// SPDX-License-Identifier: MIT

// File: rebuild.go
// Role: copy-on-path replacement over layout trees.
// Determinism:
//   - Paths are applied in the order given; each sees the previous output.
// Concurrency:
//   - Pure functions over immutable nodes; safe to call concurrently.

package rebuild

import (
	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/layout"
)

// Rebuild replaces, for every i, the unit addressed by the located path
// paths[i] (see layout.Path.Target) with replacements[i].
//
// Errors:
//   - ErrInvalidArgument when the slices differ in length, a replacement is
//     nil, or a replacement length differs from the unit it replaces.
//   - ErrStructuralDesync when a path does not end with a None step or does
//     not fit the tree.
func Rebuild(root layout.Node, paths []layout.Path, replacements []layout.Node) (layout.Node, error) {
	if len(paths) != len(replacements) {
		return nil, errors.Wrapf(errors.ErrInvalidArgument,
			"rebuild: %d paths but %d replacements", len(paths), len(replacements))
	}

	out := root
	for i, p := range paths {
		target, ok := p.Target()
		if !ok {
			return nil, errors.Desyncf("rebuild: path %s is not a located path", p)
		}
		next, err := Replace(out, target, replacements[i])
		if err != nil {
			return nil, errors.Wrapf(err, "rebuild: subtree %d", i)
		}
		out = next
	}

	return out, nil
}

// Replace returns a copy of tree in which the node addressed by path is
// replacement. An empty path replaces the root.
func Replace(tree layout.Node, path layout.Path, replacement layout.Node) (layout.Node, error) {
	if tree == nil {
		return nil, errors.Desyncf("rebuild: tree is nil")
	}
	if replacement == nil {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "rebuild: nil replacement at %s", path)
	}

	return replaceAt(tree, path, 0, replacement)
}

func replaceAt(n layout.Node, path layout.Path, level int, repl layout.Node) (layout.Node, error) {
	// 1. Reached the target: swap the whole node
	if level == len(path) {
		if repl.Len() != n.Len() {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrInvalidArgument,
					"rebuild: replacement of length %d for a node of length %d at %s", repl.Len(), n.Len(), path),
				"a result subtree needs one element per group of the subtree it replaces")
		}
		return repl, nil
	}

	// 2. Copy this level with exactly one child slot replaced
	s := path[level]
	switch t := n.(type) {
	case *layout.List:
		if s.Kind() == layout.StepDescend {
			c, err := replaceAt(t.Content(), path, level+1, repl)
			if err != nil {
				return nil, err
			}
			return t.WithContent(c), nil
		}

	case *layout.Indexed:
		if s.Kind() == layout.StepDescend {
			c, err := replaceAt(t.Content(), path, level+1, repl)
			if err != nil {
				return nil, err
			}
			return t.WithContent(c), nil
		}

	case *layout.Masked:
		if s.Kind() == layout.StepDescend {
			c, err := replaceAt(t.Content(), path, level+1, repl)
			if err != nil {
				return nil, err
			}
			return t.WithContent(c), nil
		}

	case *layout.Record:
		if s.Kind() == layout.StepField {
			child, ok := t.Field(s.Name())
			if !ok {
				return nil, errors.Desyncf("rebuild: record has no field %q at level %d of %s", s.Name(), level, path)
			}
			c, err := replaceAt(child, path, level+1, repl)
			if err != nil {
				return nil, err
			}
			r, _ := t.WithField(s.Name(), c)
			return r, nil
		}

	case *layout.Union:
		if s.Kind() == layout.StepAlt {
			if s.Alt() < 0 || s.Alt() >= t.NumContents() {
				return nil, errors.Desyncf("rebuild: union has no alternative %d at level %d of %s", s.Alt(), level, path)
			}
			c, err := replaceAt(t.Content(s.Alt()), path, level+1, repl)
			if err != nil {
				return nil, err
			}
			return t.WithContent(s.Alt(), c), nil
		}
	}

	// 3. Nothing fits: the path was not located on this tree
	return nil, errors.Desyncf("rebuild: step %s at level %d of %s does not fit a %s node", s, level, path, n.Kind())
}
