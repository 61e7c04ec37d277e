// SPDX-License-Identifier: MIT

package locate

import (
	"github.com/katalvlaran/lvjet/layout"
	"github.com/katalvlaran/lvjet/logger"
)

// walker holds the state of one locator call. It is never shared between
// calls, so concurrent locators on one tree are safe.
type walker struct {
	opts  Options
	query bool // query form: bare records are units

	matches []Match
	queries []QueryMatch
}

// Locate returns every clusterable subtree of root in depth-first, declared
// order. No match is not an error.
func Locate(root layout.Node, opts ...Option) ([]Match, error) {
	w, err := newWalker(root, false, opts)
	if err != nil {
		return nil, err
	}
	if err = w.visit(root, layout.Path{}); err != nil {
		return nil, err
	}

	return w.matches, nil
}

// LocateQuery returns every query unit of root in depth-first, declared order.
func LocateQuery(root layout.Node, opts ...Option) ([]QueryMatch, error) {
	w, err := newWalker(root, true, opts)
	if err != nil {
		return nil, err
	}
	if err = w.visit(root, layout.Path{}); err != nil {
		return nil, err
	}

	return w.queries, nil
}

func newWalker(root layout.Node, query bool, opts []Option) (*walker, error) {
	// 1. Validate input tree
	if root == nil {
		return nil, ErrNilTree
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker{opts: o, query: query}, nil
}

// visit dispatches on the node kind. path addresses n.
func (w *walker) visit(n layout.Node, path layout.Path) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && len(path) > w.opts.MaxDepth {
		return nil
	}

	// 3. Query form: a bare momentum record (possibly wrapped) is a unit
	if w.query && n.Kind() != layout.KindList {
		if rec, ok := MatchRecord(n); ok {
			w.recordQuery(path, n, rec)
			return nil
		}
	}

	// 4. Dispatch
	switch t := n.(type) {
	case *layout.List:
		if rec, ok := IsClusterableList(t); ok {
			if w.query {
				w.recordQuery(path, t, rec)
			} else {
				w.record(path, t, rec)
			}
			return nil
		}
		return w.visit(t.Content(), path.Append(layout.DescendStep()))

	case *layout.Indexed:
		return w.visit(t.Content(), path.Append(layout.DescendStep()))

	case *layout.Masked:
		return w.visit(t.Content(), path.Append(layout.DescendStep()))

	case *layout.Record:
		for _, f := range t.Fields() {
			if err := w.visit(f.Content, path.Append(layout.FieldStep(f.Name))); err != nil {
				return err
			}
		}

	case *layout.Union:
		for i := 0; i < t.NumContents(); i++ {
			if err := w.visit(t.Content(i), path.Append(layout.AltStep(i))); err != nil {
				return err
			}
		}
	}

	// Leaves end the branch.
	return nil
}

func (w *walker) record(path layout.Path, l *layout.List, rec *layout.Record) {
	p := path.Append(layout.DescendStep())
	w.matches = append(w.matches, Match{Path: p, Subtree: l, Record: rec})
	w.opts.Logger.Debugw("clusterable subtree",
		logger.FieldPath, p.String(),
		logger.FieldGroups, l.Len(),
		logger.FieldLayout, layout.Format(l))
}

func (w *walker) recordQuery(path layout.Path, unit layout.Node, rec *layout.Record) {
	p := path.Append(layout.DescendStep())
	w.queries = append(w.queries, QueryMatch{Path: p, Unit: unit, Record: rec})
	w.opts.Logger.Debugw("query unit",
		logger.FieldPath, p.String(),
		logger.FieldCount, unit.Len())
}

// Paths returns the paths of ms in order.
func Paths(ms []Match) []layout.Path {
	out := make([]layout.Path, len(ms))
	for i, m := range ms {
		out[i] = m.Path
	}
	return out
}

// Correlate pairs every query match with the primary match whose path is
// equal. Query matches without a primary counterpart are skipped. The result
// follows query order.
func Correlate(primary []Match, query []QueryMatch) []Pair {
	pairs := make([]Pair, 0, len(query))
	for qi, q := range query {
		for pi, p := range primary {
			if p.Path.Equal(q.Path) {
				pairs = append(pairs, Pair{Primary: pi, Query: qi})
				break
			}
		}
	}

	return pairs
}
