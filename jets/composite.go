// SPDX-License-Identifier: MIT

package jets

import (
	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/layout"
)

// Field names of the groomed-jet record.
const (
	FieldConstituents     = "constituents"
	FieldMSoftdrop        = "msoftdrop"
	FieldPtSoftdrop       = "ptsoftdrop"
	FieldEtaSoftdrop      = "etasoftdrop"
	FieldPhiSoftdrop      = "phisoftdrop"
	FieldESoftdrop        = "Esoftdrop"
	FieldPzSoftdrop       = "pzsoftdrop"
	FieldDeltaRSoftdrop   = "deltaRsoftdrop"
	FieldSymmetrySoftdrop = "symmetrysoftdrop"

	FieldLundDelta = "Delta"
	FieldLundKt    = "kt"
)

// ExclusiveJetsSoftdropGrooming grooms the p.NJets exclusive jets of every
// group and replaces each subtree by, per group, a list over jets of the
// groomed-jet record.
func (e *Engine) ExclusiveJetsSoftdropGrooming(p cluster.SoftdropParams) (layout.Node, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e.warnExclusive("exclusive_jets_softdrop_grooming")
	return e.apply("exclusive_jets_softdrop_grooming", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, func(q cluster.Sequence) ([]cluster.Groomed, error) { return q.ExclusiveSoftdrop(p) })
		if err != nil {
			return nil, err
		}
		flat, offsets := flatten(groups)
		rec, err := groomedRecord(flat)
		if err != nil {
			return nil, err
		}
		return layout.NewListOffset(offsets, rec)
	})
}

func groomedRecord(jets []cluster.Groomed) (*layout.Record, error) {
	n := len(jets)
	cols := make([][]float64, 8)
	for i := range cols {
		cols[i] = make([]float64, n)
	}
	parts := make([][]cluster.PseudoJet, n)
	for i, g := range jets {
		j := g.Jet
		cols[0][i], cols[1][i], cols[2][i], cols[3][i] = j.M(), j.Pt(), j.Eta(), j.Phi()
		cols[4][i], cols[5][i], cols[6][i], cols[7][i] = j.E, j.Pz, g.DeltaR, g.Symmetry
		parts[i] = g.Constituents
	}
	constituents, err := momentaList(parts)
	if err != nil {
		return nil, err
	}
	names := []string{
		FieldMSoftdrop, FieldPtSoftdrop, FieldEtaSoftdrop, FieldPhiSoftdrop,
		FieldESoftdrop, FieldPzSoftdrop, FieldDeltaRSoftdrop, FieldSymmetrySoftdrop,
	}
	fields := []layout.Field{{Name: FieldConstituents, Content: constituents}}
	for i, name := range names {
		fields = append(fields, layout.Field{Name: name, Content: layout.NewFloat64Leaf(cols[i])})
	}
	return layout.NewRecord(n, fields...)
}

// ExclusiveJetsLundDeclusterings replaces each subtree by, per group and per
// exclusive jet, the primary Lund plane coordinates {Delta, kt}.
func (e *Engine) ExclusiveJetsLundDeclusterings(n int) (layout.Node, error) {
	if err := checkCount("njets", n); err != nil {
		return nil, err
	}
	e.warnExclusive("exclusive_jets_lund_declusterings")
	return e.apply("exclusive_jets_lund_declusterings", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, func(q cluster.Sequence) ([][]cluster.LundStep, error) { return q.ExclusiveLund(n) })
		if err != nil {
			return nil, err
		}
		counts, lens, flat := splitNested(groups)
		delta, kt := make([]float64, len(flat)), make([]float64, len(flat))
		for i, st := range flat {
			delta[i], kt[i] = st.Delta, st.Kt
		}
		rec, err := layout.NewRecord(len(flat),
			layout.Field{Name: FieldLundDelta, Content: layout.NewFloat64Leaf(delta)},
			layout.Field{Name: FieldLundKt, Content: layout.NewFloat64Leaf(kt)},
		)
		if err != nil {
			return nil, err
		}
		return nestedList(counts, lens, rec)
	})
}

// ExclusiveJetsEnergyCorrelator replaces each subtree by, per group, one
// correlator value for each of the p.NJets exclusive jets.
func (e *Engine) ExclusiveJetsEnergyCorrelator(p cluster.ECFParams) (layout.Node, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e.warnExclusive("exclusive_jets_energy_correlator")
	return e.apply("exclusive_jets_energy_correlator", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, func(q cluster.Sequence) ([]float64, error) { return q.ExclusiveECF(p) })
		if err != nil {
			return nil, err
		}
		flat, offsets := flatten(groups)
		return layout.NewListOffset(offsets, layout.NewFloat64Leaf(flat))
	})
}

// Njettiness replaces each subtree by, per group, tau_N for every N in
// p.NJets.
func (e *Engine) Njettiness(p cluster.NjettinessParams) (layout.Node, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return e.apply("njettiness", func(s *subtree) (layout.Node, error) {
		groups, err := perGroup(s, func(q cluster.Sequence) ([]float64, error) { return q.Njettiness(p) })
		if err != nil {
			return nil, err
		}
		flat, offsets := flatten(groups)
		return layout.NewListOffset(offsets, layout.NewFloat64Leaf(flat))
	})
}
