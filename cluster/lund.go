// SPDX-License-Identifier: MIT

package cluster

import "math"

// LundStep is one primary declustering: the separation of the two branches
// and the transverse momentum of the softer one relative to the harder.
type LundStep struct {
	Delta float64
	Kt    float64
}

// ExclusiveLund returns, per exclusive jet, its primary Lund declusterings
// from the widest splitting inwards.
func (h *History) ExclusiveLund(njets int) ([][]LundStep, error) {
	jets, err := h.ExclusiveJets(njets)
	if err != nil {
		return nil, err
	}
	out := make([][]LundStep, len(jets))
	for i, j := range jets {
		out[i] = lund(h.constituentJets(j))
	}
	return out, nil
}

func lund(parts []PseudoJet) []LundStep {
	steps := []LundStep{}
	ca, jet, ok := reclusterCA(parts)
	if !ok {
		return steps
	}
	for {
		hard, soft, split := ca.parents(jet)
		if !split {
			return steps
		}
		d := math.Sqrt(hard.DeltaR2(soft))
		steps = append(steps, LundStep{Delta: d, Kt: soft.Pt() * d})
		jet = hard
	}
}
