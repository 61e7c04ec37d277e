// SPDX-License-Identifier: MIT

package jets

import (
	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/layout"
)

// scalarOp replaces every subtree by one value per group.
func scalarOp[T any](e *Engine, op string, f func(cluster.Sequence) (T, error), leaf func([]T) (layout.Node, error)) (layout.Node, error) {
	return e.apply(op, func(s *subtree) (layout.Node, error) {
		vals, err := perGroup(s, f)
		if err != nil {
			return nil, err
		}
		return leaf(vals)
	})
}

// NParticles replaces each subtree by its particle count per group.
func (e *Engine) NParticles() (layout.Node, error) {
	return scalarOp(e, "n_particles", cluster.Sequence.NParticles, int64Leaf)
}

// NExclusiveJets replaces each subtree by the number of exclusive jets that
// would be obtained when clustering stops at dcut.
func (e *Engine) NExclusiveJets(dcut float64) (layout.Node, error) {
	e.warnExclusive("n_exclusive_jets")
	return scalarOp(e, "n_exclusive_jets", func(s cluster.Sequence) (int, error) {
		return s.NExclusiveJets(dcut)
	}, int64Leaf)
}

// ExclusiveDmerge replaces each subtree by the dij at which the event went
// from n+1 to n jets.
func (e *Engine) ExclusiveDmerge(n int) (layout.Node, error) {
	return e.merging("exclusive_dmerge", n, cluster.Sequence.ExclusiveDmerge)
}

// ExclusiveDmergeMax is ExclusiveDmerge using the running maximum of dij.
func (e *Engine) ExclusiveDmergeMax(n int) (layout.Node, error) {
	return e.merging("exclusive_dmerge_max", n, cluster.Sequence.ExclusiveDmergeMax)
}

// ExclusiveYmerge is ExclusiveDmerge divided by Q^2.
func (e *Engine) ExclusiveYmerge(n int) (layout.Node, error) {
	return e.merging("exclusive_ymerge", n, cluster.Sequence.ExclusiveYmerge)
}

// ExclusiveYmergeMax is ExclusiveDmergeMax divided by Q^2.
func (e *Engine) ExclusiveYmergeMax(n int) (layout.Node, error) {
	return e.merging("exclusive_ymerge_max", n, cluster.Sequence.ExclusiveYmergeMax)
}

func (e *Engine) merging(op string, n int, f func(cluster.Sequence, int) (float64, error)) (layout.Node, error) {
	if err := checkCount("njets", n); err != nil {
		return nil, err
	}
	e.warnExclusive(op)
	return scalarOp(e, op, func(s cluster.Sequence) (float64, error) { return f(s, n) }, float64Leaf)
}

// Q replaces each subtree by the summed energy of each group.
func (e *Engine) Q() (layout.Node, error) {
	return scalarOp(e, "Q", cluster.Sequence.Q, float64Leaf)
}

// Q2 replaces each subtree by the squared summed energy of each group.
func (e *Engine) Q2() (layout.Node, error) {
	return scalarOp(e, "Q2", cluster.Sequence.Q2, float64Leaf)
}
