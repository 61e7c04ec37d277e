// SPDX-License-Identifier: MIT

package jets

import (
	"time"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/extract"
	"github.com/katalvlaran/lvjet/layout"
	"github.com/katalvlaran/lvjet/locate"
	"github.com/katalvlaran/lvjet/rebuild"
)

// queryOp answers a per-jet question for every query unit that shares its
// path with a clustered subtree, and rebuilds the query tree. Query units
// without a clustered counterpart are left untouched.
func (e *Engine) queryOp(op string, query layout.Node, build func(s *subtree, jets []cluster.PseudoJet) (layout.Node, error)) (layout.Node, error) {
	start := time.Now()
	tree, err := e.answer(query, build)
	e.finish(op, start, err)
	return tree, err
}

func (e *Engine) answer(query layout.Node, build func(s *subtree, jets []cluster.PseudoJet) (layout.Node, error)) (layout.Node, error) {
	units, err := locate.LocateQuery(query,
		locate.WithLogger(e.opts.Logger), locate.WithMaxDepth(e.opts.MaxDepth))
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, errors.Wrapf(ErrNothingToCluster, "query tree %s", layout.Format(query))
	}

	pairs := locate.Correlate(e.matches, units)
	out, err := e.fanOut(len(pairs), func(i int) (layout.Node, error) {
		s := &e.subtrees[pairs[i].Primary]
		u := units[pairs[i].Query]
		jets, err := queryJets(u, s.seqs.Groups())
		if err != nil {
			return nil, err
		}
		return build(s, jets)
	})
	if err != nil {
		return nil, err
	}

	paths := make([]layout.Path, len(pairs))
	for i, p := range pairs {
		paths[i] = units[p.Query].Path
	}
	return rebuild.Rebuild(query, paths, out)
}

// queryJets reads exactly one jet per group from a query unit.
func queryJets(u locate.QueryMatch, groups int) ([]cluster.PseudoJet, error) {
	buf, err := extract.Momenta(u.Unit)
	if err != nil {
		return nil, errors.Wrapf(err, "jets: query %s", u.Path)
	}
	if buf.Groups() != groups {
		return nil, errors.Wrapf(errors.ErrInvalidArgument,
			"jets: query %s has %d groups, clustered subtree has %d", u.Path, buf.Groups(), groups)
	}
	jets := make([]cluster.PseudoJet, groups)
	for k := range jets {
		px, py, pz, en := buf.Group(k)
		if len(px) != 1 {
			return nil, errors.Wrapf(errors.ErrInvalidArgument,
				"jets: query %s group %d holds %d jets, want exactly one", u.Path, k, len(px))
		}
		jets[k] = cluster.NewPseudoJet(px[0], py[0], pz[0], en[0])
	}
	return jets, nil
}

// queryPerGroup asks f once per group with that group's query jet.
func queryPerGroup[T any](s *subtree, jets []cluster.PseudoJet, f func(cluster.Sequence, cluster.PseudoJet) (T, error)) ([]T, error) {
	out := make([]T, len(jets))
	for k, j := range jets {
		v, err := f(s.seqs.Group(k), j)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func queryMomenta(e *Engine, op string, query layout.Node, f func(cluster.Sequence, cluster.PseudoJet) ([]cluster.PseudoJet, error)) (layout.Node, error) {
	return e.queryOp(op, query, func(s *subtree, jets []cluster.PseudoJet) (layout.Node, error) {
		groups, err := queryPerGroup(s, jets, f)
		if err != nil {
			return nil, err
		}
		return momentaList(groups)
	})
}

func queryScalar[T any](e *Engine, op string, query layout.Node, f func(cluster.Sequence, cluster.PseudoJet) (T, error), leaf func([]T) (layout.Node, error)) (layout.Node, error) {
	return e.queryOp(op, query, func(s *subtree, jets []cluster.PseudoJet) (layout.Node, error) {
		vals, err := queryPerGroup(s, jets, f)
		if err != nil {
			return nil, err
		}
		return leaf(vals)
	})
}

// ExclusiveSubjets returns, for the one query jet of every group, its
// exclusive subjets selected by count or by dcut.
func (e *Engine) ExclusiveSubjets(query layout.Node, sel Selector) (layout.Node, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if n, ok := sel.Count(); ok {
		return queryMomenta(e, "exclusive_subjets", query, func(q cluster.Sequence, j cluster.PseudoJet) ([]cluster.PseudoJet, error) {
			return q.ExclusiveSubjetsN(j, n)
		})
	}
	dcut, _ := sel.Dcut()
	return queryMomenta(e, "exclusive_subjets", query, func(q cluster.Sequence, j cluster.PseudoJet) ([]cluster.PseudoJet, error) {
		return q.ExclusiveSubjets(j, dcut)
	})
}

// ExclusiveSubjetsUpTo returns at most n exclusive subjets of every query jet.
func (e *Engine) ExclusiveSubjetsUpTo(query layout.Node, n int) (layout.Node, error) {
	if err := checkCount("nsub", n); err != nil {
		return nil, err
	}
	return queryMomenta(e, "exclusive_subjets_up_to", query, func(q cluster.Sequence, j cluster.PseudoJet) ([]cluster.PseudoJet, error) {
		return q.ExclusiveSubjetsUpTo(j, n)
	})
}

// ExclusiveSubdmerge returns the dij at which every query jet went from n+1
// to n subjets.
func (e *Engine) ExclusiveSubdmerge(query layout.Node, n int) (layout.Node, error) {
	if err := checkCount("nsub", n); err != nil {
		return nil, err
	}
	return queryScalar(e, "exclusive_subdmerge", query, func(q cluster.Sequence, j cluster.PseudoJet) (float64, error) {
		return q.ExclusiveSubdmerge(j, n)
	}, float64Leaf)
}

// ExclusiveSubdmergeMax is ExclusiveSubdmerge using the running maximum of dij.
func (e *Engine) ExclusiveSubdmergeMax(query layout.Node, n int) (layout.Node, error) {
	if err := checkCount("nsub", n); err != nil {
		return nil, err
	}
	return queryScalar(e, "exclusive_subdmerge_max", query, func(q cluster.Sequence, j cluster.PseudoJet) (float64, error) {
		return q.ExclusiveSubdmergeMax(j, n)
	}, float64Leaf)
}

// NExclusiveSubjets returns the number of subjets of every query jet left
// when merging stops at dcut.
func (e *Engine) NExclusiveSubjets(query layout.Node, dcut float64) (layout.Node, error) {
	return queryScalar(e, "n_exclusive_subjets", query, func(q cluster.Sequence, j cluster.PseudoJet) (int, error) {
		return q.NExclusiveSubjets(j, dcut)
	}, int64Leaf)
}

// HasParents reports, per group, whether the query jet came from a merge.
func (e *Engine) HasParents(query layout.Node) (layout.Node, error) {
	return queryScalar(e, "has_parents", query, cluster.Sequence.HasParents, boolLeaf)
}

// HasChild reports, per group, whether the query jet was merged further.
func (e *Engine) HasChild(query layout.Node) (layout.Node, error) {
	return queryScalar(e, "has_child", query, cluster.Sequence.HasChild, boolLeaf)
}

// Parents returns the parents of every query jet, harder first.
func (e *Engine) Parents(query layout.Node) (layout.Node, error) {
	return queryMomenta(e, "parents", query, cluster.Sequence.Parents)
}

// Child returns the child of every query jet, or an empty list.
func (e *Engine) Child(query layout.Node) (layout.Node, error) {
	return queryMomenta(e, "child", query, cluster.Sequence.Child)
}

// JetScaleForAlgorithm returns the momentum scale the algorithm assigns to
// every query jet.
func (e *Engine) JetScaleForAlgorithm(query layout.Node) (layout.Node, error) {
	return queryScalar(e, "jet_scale_for_algorithm", query, cluster.Sequence.JetScaleForAlgorithm, float64Leaf)
}
