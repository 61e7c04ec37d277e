// SPDX-License-Identifier: MIT

package jets

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/extract"
	"github.com/katalvlaran/lvjet/layout"
	"github.com/katalvlaran/lvjet/locate"
	"github.com/katalvlaran/lvjet/logger"
	"github.com/katalvlaran/lvjet/rebuild"
)

// ErrNothingToCluster is returned when a tree holds no clusterable subtree,
// or a query tree holds no momentum record.
var ErrNothingToCluster = errors.Mark(errors.New("jets: no clusterable subtree found"), errors.ErrInvalidStructure)

// subtree is the cached state of one located region.
type subtree struct {
	path  layout.Path
	canon *layout.List // contiguous form of the located List
	buf   *extract.Buffers
	seqs  cluster.Sequences
}

// Engine answers clustering operations over one tree. It is immutable after
// NewEngine and safe for concurrent use.
type Engine struct {
	root     layout.Node
	def      cluster.Definition
	opts     Options
	matches  []locate.Match
	subtrees []subtree
}

// NewEngine locates every clusterable subtree of tree and clusters it with
// def.
//
// Errors:
//   - errors.ErrInvalidArgument for an invalid def.
//   - ErrNothingToCluster (an errors.ErrInvalidStructure) when tree holds no
//     clusterable subtree.
//   - extraction errors, and service errors unmodified.
func NewEngine(ctx context.Context, tree layout.Node, def cluster.Definition, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	// 1. Discover
	matches, err := locate.Locate(tree,
		locate.WithContext(ctx), locate.WithLogger(o.Logger), locate.WithMaxDepth(o.MaxDepth))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.Wrapf(ErrNothingToCluster, "tree %s", layout.Format(tree))
	}

	// 2. Canonicalise and extract
	e := &Engine{root: tree, def: def, opts: o, matches: matches, subtrees: make([]subtree, len(matches))}
	for i, m := range matches {
		canon, err := extract.Canonicalize(m.Subtree)
		if err != nil {
			return nil, errors.Wrapf(err, "jets: subtree %s", m.Path)
		}
		buf, err := extract.Read(canon)
		if err != nil {
			return nil, errors.Wrapf(err, "jets: subtree %s", m.Path)
		}
		e.subtrees[i] = subtree{path: m.Path, canon: canon, buf: buf}
	}

	// 3. Cluster every subtree
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range e.subtrees {
		s := &e.subtrees[i]
		g.Go(func() error {
			seqs, err := o.Service.Cluster(gctx, s.buf, def)
			if err != nil {
				return err
			}
			if seqs.Groups() != s.buf.Groups() {
				return errors.AssertionFailedf("jets: service returned %d groups for %d at %s",
					seqs.Groups(), s.buf.Groups(), s.path)
			}
			s.seqs = seqs
			o.Metrics.clustered(s.buf.Groups())
			return nil
		})
	}
	err = g.Wait()
	o.Metrics.observe("cluster", start, err)
	if err != nil {
		return nil, err
	}

	o.Logger.Debugw("jets: engine ready",
		logger.FieldAlgorithm, def.String(),
		logger.FieldCount, len(matches),
		logger.FieldPaths, e.pathStrings(),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return e, nil
}

// Definition returns the clustering definition.
func (e *Engine) Definition() cluster.Definition { return e.def }

// Paths returns the located paths in discovery order.
func (e *Engine) Paths() []layout.Path { return locate.Paths(e.matches) }

// Subtrees returns the number of located subtrees.
func (e *Engine) Subtrees() int { return len(e.subtrees) }

func (e *Engine) pathStrings() []string {
	out := make([]string, len(e.subtrees))
	for i, s := range e.subtrees {
		out[i] = s.path.String()
	}
	return out
}

// apply builds one replacement per cached subtree and rebuilds the tree.
func (e *Engine) apply(op string, build func(s *subtree) (layout.Node, error)) (layout.Node, error) {
	start := time.Now()
	out, err := e.fanOut(len(e.subtrees), func(i int) (layout.Node, error) {
		return build(&e.subtrees[i])
	})
	if err == nil {
		var tree layout.Node
		tree, err = rebuild.Rebuild(e.root, e.Paths(), out)
		e.finish(op, start, err)
		return tree, err
	}
	e.finish(op, start, err)
	return nil, err
}

// fanOut runs build for 0..n-1 on at most Workers goroutines.
func (e *Engine) fanOut(n int, build func(i int) (layout.Node, error)) ([]layout.Node, error) {
	out := make([]layout.Node, n)
	var g errgroup.Group
	g.SetLimit(e.opts.Workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			node, err := build(i)
			if err != nil {
				return err
			}
			out[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) finish(op string, start time.Time, err error) {
	e.opts.Metrics.observe(op, start, err)
	if err != nil {
		e.opts.Logger.Debugw("jets: operation failed",
			logger.FieldOperation, op,
			logger.FieldError, err,
		)
		return
	}
	e.opts.Logger.Debugw("jets: operation done",
		logger.FieldOperation, op,
		logger.FieldCount, len(e.subtrees),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// warnExclusive logs once per call when exclusive jets are requested from
// an algorithm for which they are not well defined.
func (e *Engine) warnExclusive(op string) {
	if e.def.ExclusiveSafe() {
		return
	}
	e.opts.Logger.Warnw("jets: dcut and exclusive jets for jet-finders other than kt, C/A or genkt with p >= 0 should be interpreted with care",
		logger.FieldOperation, op,
		logger.FieldAlgorithm, e.def.String(),
	)
}

// perGroup collects f over every group of s.
func perGroup[T any](s *subtree, f func(cluster.Sequence) (T, error)) ([]T, error) {
	out := make([]T, s.seqs.Groups())
	for k := range out {
		v, err := f(s.seqs.Group(k))
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
