// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvjet/errors"
)

// SymmetryMeasure is the momentum-sharing variable tested at each SoftDrop
// declustering.
type SymmetryMeasure int

const (
	ScalarZ   SymmetryMeasure = iota // min(pt1, pt2) / (pt1 + pt2)
	VectorZ                          // min(pt1, pt2) / pt(j)
	Y                                // min(pt1^2, pt2^2) dR^2 / m^2(j)
	ThetaE                           // energy fraction, opening angle
	CosThetaE                        // energy fraction, sqrt(2(1 - cos theta))
)

var symmetryNames = []string{"scalar_z", "vector_z", "y", "theta_E", "cos_theta_E"}

func (m SymmetryMeasure) String() string {
	if m >= 0 && int(m) < len(symmetryNames) {
		return symmetryNames[m]
	}
	return "unknown"
}

// ParseSymmetryMeasure accepts the String forms, any case.
func ParseSymmetryMeasure(s string) (SymmetryMeasure, error) {
	for i, name := range symmetryNames {
		if strings.EqualFold(name, s) {
			return SymmetryMeasure(i), nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown symmetry measure %q", s)
}

// RecursionChoice picks the branch followed after a failed SoftDrop test.
type RecursionChoice int

const (
	LargerPt RecursionChoice = iota
	LargerMt
	LargerM
	LargerE
)

var recursionNames = []string{"larger_pt", "larger_mt", "larger_m", "larger_E"}

func (r RecursionChoice) String() string {
	if r >= 0 && int(r) < len(recursionNames) {
		return recursionNames[r]
	}
	return "unknown"
}

// ParseRecursionChoice accepts the String forms, any case.
func ParseRecursionChoice(s string) (RecursionChoice, error) {
	for i, name := range recursionNames {
		if strings.EqualFold(name, s) {
			return RecursionChoice(i), nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown recursion choice %q", s)
}

// SoftdropParams configures SoftDrop grooming of exclusive jets.
type SoftdropParams struct {
	NJets           int
	Beta            float64
	SymmetryCut     float64
	SymmetryMeasure SymmetryMeasure
	R0              float64
	RecursionChoice RecursionChoice
	MuCut           float64 // mass-drop threshold; +Inf disables it
}

// DefaultSoftdropParams returns one jet, beta 0, zcut 0.1, scalar_z,
// R0 0.8, larger_pt and no mass drop.
func DefaultSoftdropParams() SoftdropParams {
	return SoftdropParams{
		NJets:           1,
		Beta:            0,
		SymmetryCut:     0.1,
		SymmetryMeasure: ScalarZ,
		R0:              0.8,
		RecursionChoice: LargerPt,
		MuCut:           math.Inf(1),
	}
}

// Validate rejects parameters SoftDrop cannot run with.
func (p SoftdropParams) Validate() error {
	switch {
	case p.NJets <= 0:
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: softdrop njets must be > 0, got %d", p.NJets)
	case !(p.R0 > 0):
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: softdrop R0 must be > 0, got %g", p.R0)
	case !(p.MuCut > 0):
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: softdrop mu cut must be > 0, got %g", p.MuCut)
	case p.SymmetryMeasure.String() == "unknown":
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown symmetry measure %d", int(p.SymmetryMeasure))
	case p.RecursionChoice.String() == "unknown":
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown recursion choice %d", int(p.RecursionChoice))
	}
	return nil
}

// Groomed is one SoftDrop-groomed jet.
type Groomed struct {
	Jet          PseudoJet   // groomed four-momentum
	Constituents []PseudoJet // surviving input particles
	DeltaR       float64     // separation of the accepted splitting, 0 if none
	Symmetry     float64     // symmetry of the accepted splitting, 0 if none
}

// ExclusiveSoftdrop grooms each of the p.NJets exclusive jets.
func (h *History) ExclusiveSoftdrop(p SoftdropParams) ([]Groomed, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	jets, err := h.ExclusiveJets(p.NJets)
	if err != nil {
		return nil, err
	}
	out := make([]Groomed, len(jets))
	for i, j := range jets {
		out[i] = softdrop(h.constituentJets(j), p)
	}
	return out, nil
}

// softdrop walks the C/A declustering of parts, dropping the softer branch
// until a splitting passes the symmetry and mass-drop conditions.
func softdrop(parts []PseudoJet, p SoftdropParams) Groomed {
	ca, jet, ok := reclusterCA(parts)
	if !ok {
		return Groomed{Constituents: []PseudoJet{}}
	}
	for {
		p1, p2, split := ca.parents(jet)
		if !split {
			return Groomed{Jet: free(jet), Constituents: ca.constituentJets(jet)}
		}
		dR, z := splitting(p.SymmetryMeasure, p1, p2, jet)
		cut := p.SymmetryCut * math.Pow(dR/p.R0, p.Beta)
		if z >= cut && massDrop(p.MuCut, p1, p2, jet) {
			return Groomed{Jet: free(jet), Constituents: ca.constituentJets(jet), DeltaR: dR, Symmetry: z}
		}
		jet = follow(p.RecursionChoice, p1, p2)
	}
}

func splitting(m SymmetryMeasure, p1, p2, j PseudoJet) (dR, z float64) {
	switch m {
	case ThetaE, CosThetaE:
		cos := p1.CosTheta(p2)
		if m == ThetaE {
			dR = math.Acos(cos)
		} else {
			dR = math.Sqrt(2 * (1 - cos))
		}
		return dR, ratio(math.Min(p1.E, p2.E), p1.E+p2.E)
	}
	dR2 := p1.DeltaR2(p2)
	dR = math.Sqrt(dR2)
	pt1, pt2 := p1.Pt(), p2.Pt()
	switch m {
	case VectorZ:
		z = ratio(math.Min(pt1, pt2), j.Pt())
	case Y:
		z = ratio(math.Min(pt1*pt1, pt2*pt2)*dR2, j.M2())
	default:
		z = ratio(math.Min(pt1, pt2), pt1+pt2)
	}
	return dR, z
}

func massDrop(mu float64, p1, p2, j PseudoJet) bool {
	if math.IsInf(mu, 1) {
		return true
	}
	m2 := j.M2()
	return m2 > 0 && math.Max(p1.M2(), p2.M2()) < mu*mu*m2
}

func follow(c RecursionChoice, p1, p2 PseudoJet) PseudoJet {
	var a, b float64
	switch c {
	case LargerMt:
		a, b = p1.Mt(), p2.Mt()
	case LargerM:
		a, b = p1.M(), p2.M()
	case LargerE:
		a, b = p1.E, p2.E
	default:
		a, b = p1.Pt2(), p2.Pt2()
	}
	if b > a {
		return p2
	}
	return p1
}

// reclusterCA clusters parts into a single Cambridge/Aachen jet.
func reclusterCA(parts []PseudoJet) (*History, PseudoJet, bool) {
	if len(parts) == 0 {
		return nil, PseudoJet{}, false
	}
	ca, err := NewHistory(Definition{Algorithm: CambridgeAachen, R: maxR}, parts)
	if err != nil {
		return nil, PseudoJet{}, false
	}
	return ca, ca.exclusive(1)[0], true
}

func free(p PseudoJet) PseudoJet { return NewPseudoJet(p.Px, p.Py, p.Pz, p.E) }

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
