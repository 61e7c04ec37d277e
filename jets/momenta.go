// SPDX-License-Identifier: MIT

package jets

import (
	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/layout"
)

// momentaOp replaces every subtree by a list of jets per group.
func (e *Engine) momentaOp(op string, f func(cluster.Sequence) ([]cluster.PseudoJet, error)) (layout.Node, error) {
	return e.apply(op, func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, f)
		if err != nil {
			return nil, err
		}
		return momentaList(groups)
	})
}

// InclusiveJets replaces each subtree by the inclusive jets of each group
// with pt >= minPt.
func (e *Engine) InclusiveJets(minPt float64) (layout.Node, error) {
	return e.momentaOp("inclusive_jets", func(s cluster.Sequence) ([]cluster.PseudoJet, error) {
		return s.InclusiveJets(minPt)
	})
}

// ExclusiveJets replaces each subtree by the exclusive jets of each group,
// selected by count or by dcut.
func (e *Engine) ExclusiveJets(sel Selector) (layout.Node, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	e.warnExclusive("exclusive_jets")
	if n, ok := sel.Count(); ok {
		return e.momentaOp("exclusive_jets", func(s cluster.Sequence) ([]cluster.PseudoJet, error) {
			return s.ExclusiveJets(n)
		})
	}
	dcut, _ := sel.Dcut()
	return e.momentaOp("exclusive_jets", func(s cluster.Sequence) ([]cluster.PseudoJet, error) {
		return s.ExclusiveJetsDcut(dcut)
	})
}

// ExclusiveJetsUpTo is ExclusiveJets(ByCount(n)) that returns every
// particle of groups holding fewer than n.
func (e *Engine) ExclusiveJetsUpTo(n int) (layout.Node, error) {
	if err := checkCount("njets", n); err != nil {
		return nil, err
	}
	e.warnExclusive("exclusive_jets_up_to")
	return e.momentaOp("exclusive_jets_up_to", func(s cluster.Sequence) ([]cluster.PseudoJet, error) {
		return s.ExclusiveJetsUpTo(n)
	})
}

// ExclusiveJetsYcut selects exclusive jets with dcut = ycut * Q^2.
func (e *Engine) ExclusiveJetsYcut(ycut float64) (layout.Node, error) {
	e.warnExclusive("exclusive_jets_ycut")
	return e.momentaOp("exclusive_jets_ycut", func(s cluster.Sequence) ([]cluster.PseudoJet, error) {
		return s.ExclusiveJetsYcut(ycut)
	})
}

// UnclusteredParticles replaces each subtree by the particles of each group
// that never took part in a merge.
func (e *Engine) UnclusteredParticles() (layout.Node, error) {
	return e.momentaOp("unclustered_particles", cluster.Sequence.UnclusteredParticles)
}

// ChildlessPseudojets replaces each subtree by the pseudojets of each group
// without a child in the merge history.
func (e *Engine) ChildlessPseudojets() (layout.Node, error) {
	return e.momentaOp("childless_pseudojets", cluster.Sequence.ChildlessPseudojets)
}

// Jets replaces each subtree by every pseudojet of each group's history.
func (e *Engine) Jets() (layout.Node, error) {
	return e.momentaOp("jets", cluster.Sequence.Jets)
}

// UniqueHistoryOrder replaces each subtree by the history order per group.
func (e *Engine) UniqueHistoryOrder() (layout.Node, error) {
	return e.apply("unique_history_order", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, cluster.Sequence.UniqueHistoryOrder)
		if err != nil {
			return nil, err
		}
		return indexList(groups)
	})
}

// ConstituentIndex replaces each subtree by, per group and per inclusive
// jet with pt >= minPt, the group-local positions of its constituents.
func (e *Engine) ConstituentIndex(minPt float64) (layout.Node, error) {
	return e.apply("constituent_index", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, func(q cluster.Sequence) ([][]int, error) { return q.ConstituentIndex(minPt) })
		if err != nil {
			return nil, err
		}
		return nestedIndexList(groups)
	})
}

// ExclusiveJetsConstituentIndex is ConstituentIndex for the n exclusive jets.
func (e *Engine) ExclusiveJetsConstituentIndex(n int) (layout.Node, error) {
	if err := checkCount("njets", n); err != nil {
		return nil, err
	}
	e.warnExclusive("exclusive_jets_constituent_index")
	return e.apply("exclusive_jets_constituent_index", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, func(q cluster.Sequence) ([][]int, error) { return q.ExclusiveJetsConstituentIndex(n) })
		if err != nil {
			return nil, err
		}
		return nestedIndexList(groups)
	})
}

// Constituents replaces each subtree by, per group and per inclusive jet
// with pt >= minPt, the caller's own particle records (every field kept).
func (e *Engine) Constituents(minPt float64) (layout.Node, error) {
	return e.apply("constituents", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, func(q cluster.Sequence) ([][]int, error) { return q.ConstituentIndex(minPt) })
		if err != nil {
			return nil, err
		}
		return constituentList(s, groups)
	})
}

// ExclusiveJetsConstituents is Constituents for the n exclusive jets.
func (e *Engine) ExclusiveJetsConstituents(n int) (layout.Node, error) {
	if err := checkCount("njets", n); err != nil {
		return nil, err
	}
	e.warnExclusive("exclusive_jets_constituents")
	return e.apply("exclusive_jets_constituents", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, func(q cluster.Sequence) ([][]int, error) { return q.ExclusiveJetsConstituentIndex(n) })
		if err != nil {
			return nil, err
		}
		return constituentList(s, groups)
	})
}
