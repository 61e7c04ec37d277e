// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvjet/errors"
)

// Measure selects how N-subjettiness weighs particle-to-axis distances.
type Measure int

const (
	NormalizedMeasure         Measure = iota // (beta, R0)
	UnnormalizedMeasure                      // (beta)
	OriginalGeometricMeasure                 // not evaluated by History
	NormalizedCutoffMeasure                  // (beta, R0, Rcutoff)
	UnnormalizedCutoffMeasure                // (beta, Rcutoff)
	GeometricCutoffMeasure                   // not evaluated by History
)

var measureNames = []string{
	"NormalizedMeasure", "UnnormalizedMeasure", "OriginalGeometricMeasure",
	"NormalizedCutoffMeasure", "UnnormalizedCutoffMeasure", "GeometricCutoffMeasure",
}

func (m Measure) String() string {
	if m >= 0 && int(m) < len(measureNames) {
		return measureNames[m]
	}
	return "unknown"
}

// ParseMeasure looks up a measure by its String form.
func ParseMeasure(s string) (Measure, error) {
	for i, name := range measureNames {
		if name == s {
			return Measure(i), nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown njettiness measure %q", s)
}

// Axes selects how the N candidate subjet axes are found.
type Axes int

const (
	KTAxes Axes = iota
	CAAxes
	AntiKTAxes // (AkAxesR0)
	WTAKTAxes
	WTACAAxes
	ManualAxes // not evaluated by History
	OnePassKTAxes
	OnePassCAAxes
	OnePassAntiKTAxes // (AkAxesR0)
	OnePassWTAKTAxes
	OnePassWTACAAxes
	OnePassManualAxes // not evaluated by History
	MultiPassAxes     // (NPass)
)

var axesNames = []string{
	"KT_Axes", "CA_Axes", "AntiKT_Axes", "WTA_KT_Axes", "WTA_CA_Axes", "Manual_Axes",
	"OnePass_KT_Axes", "OnePass_CA_Axes", "OnePass_AntiKT_Axes", "OnePass_WTA_KT_Axes",
	"OnePass_WTA_CA_Axes", "OnePass_Manual_Axes", "MultiPass_Axes",
}

func (a Axes) String() string {
	if a >= 0 && int(a) < len(axesNames) {
		return axesNames[a]
	}
	return "unknown"
}

// ParseAxes looks up an axes definition by its String form.
func ParseAxes(s string) (Axes, error) {
	for i, name := range axesNames {
		if name == s {
			return Axes(i), nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown njettiness axes %q", s)
}

// NjettinessParams configures N-subjettiness over every particle of a group.
type NjettinessParams struct {
	NJets    []int
	Beta     float64
	R0       float64
	Rcutoff  float64 // UnsetFloat when not given
	Measure  Measure
	Axes     Axes
	NPass    int     // UnsetInt when not given
	AkAxesR0 float64 // UnsetFloat when not given
}

// DefaultNjettinessParams returns tau1..tau4 with the normalised measure,
// beta 1, R0 0.8 and one-pass kt axes.
func DefaultNjettinessParams() NjettinessParams {
	return NjettinessParams{
		NJets:    []int{1, 2, 3, 4},
		Beta:     1,
		R0:       0.8,
		Rcutoff:  UnsetFloat,
		Measure:  NormalizedMeasure,
		Axes:     OnePassKTAxes,
		NPass:    UnsetInt,
		AkAxesR0: UnsetFloat,
	}
}

// Validate rejects parameters no measure accepts.
func (p NjettinessParams) Validate() error {
	if len(p.NJets) == 0 {
		return errors.Wrap(errors.ErrInvalidArgument, "cluster: njettiness needs at least one njets value")
	}
	for _, n := range p.NJets {
		if n <= 0 {
			return errors.Wrapf(errors.ErrInvalidArgument, "cluster: njettiness njets must be > 0, got %d", n)
		}
	}
	switch {
	case !(p.Beta > 0):
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: njettiness beta must be > 0, got %g", p.Beta)
	case !(p.R0 > 0):
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: njettiness R0 must be > 0, got %g", p.R0)
	case !(p.Rcutoff > 0):
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: njettiness Rcutoff must be > 0, got %g", p.Rcutoff)
	case (p.Axes == AntiKTAxes || p.Axes == OnePassAntiKTAxes) && !(p.AkAxesR0 > 0):
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: njettiness akAxesR0 must be > 0, got %g", p.AkAxesR0)
	case p.NPass <= 0:
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: njettiness nPass must be > 0, got %d", p.NPass)
	case p.Measure.String() == "unknown":
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown njettiness measure %d", int(p.Measure))
	case p.Axes.String() == "unknown":
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown njettiness axes %d", int(p.Axes))
	}
	return nil
}

// Njettiness returns tau_N for every N in p.NJets over all particles of
// the group. tau_N is 0 when the group has at most N particles.
func (h *History) Njettiness(p NjettinessParams) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch p.Measure {
	case OriginalGeometricMeasure, GeometricCutoffMeasure:
		return nil, errors.Wrapf(ErrUnsupported, "njettiness measure %s", p.Measure)
	}
	switch p.Axes {
	case ManualAxes, OnePassManualAxes:
		return nil, errors.Wrapf(ErrUnsupported, "njettiness axes %s", p.Axes)
	}
	parts := make([]PseudoJet, h.n)
	for i := range parts {
		parts[i] = free(h.jets[i])
	}
	out := make([]float64, len(p.NJets))
	for k, n := range p.NJets {
		if len(parts) <= n {
			continue
		}
		out[k] = tau(parts, findAxes(parts, n, p), p)
	}
	return out, nil
}

func tau(parts, axes []PseudoJet, p NjettinessParams) float64 {
	if len(axes) == 0 {
		return 0
	}
	cutoff := math.Inf(1)
	if p.Measure == NormalizedCutoffMeasure || p.Measure == UnnormalizedCutoffMeasure {
		cutoff = math.Pow(p.Rcutoff, p.Beta)
	}
	var num float64
	for _, q := range parts {
		_, d2 := nearest(q, axes)
		num += q.Pt() * math.Min(math.Pow(d2, p.Beta/2), cutoff)
	}
	if p.Measure == UnnormalizedMeasure || p.Measure == UnnormalizedCutoffMeasure {
		return num
	}
	return ratio(num, sumPt(parts)*math.Pow(p.R0, p.Beta))
}

func nearest(q PseudoJet, axes []PseudoJet) (int, float64) {
	best, at := math.Inf(1), 0
	for k, a := range axes {
		if d := q.DeltaR2(a); d < best {
			best, at = d, k
		}
	}
	return at, best
}

// findAxes seeds n axes by reclustering parts, then refines them for the
// one-pass and multi-pass definitions.
func findAxes(parts []PseudoJet, n int, p NjettinessParams) []PseudoJet {
	var (
		alg    = Kt
		rec    = EScheme
		passes = 0
	)
	switch p.Axes {
	case CAAxes, OnePassCAAxes:
		alg = CambridgeAachen
	case AntiKTAxes, OnePassAntiKTAxes:
		alg = AntiKt
	case WTAKTAxes, OnePassWTAKTAxes:
		rec = WTAPtScheme
	case WTACAAxes, OnePassWTACAAxes:
		alg, rec = CambridgeAachen, WTAPtScheme
	}
	switch p.Axes {
	case OnePassKTAxes, OnePassCAAxes, OnePassAntiKTAxes, OnePassWTAKTAxes, OnePassWTACAAxes:
		passes = 1
	case MultiPassAxes:
		passes = p.NPass
	}

	var axes []PseudoJet
	if alg == AntiKt {
		r := math.Min(p.AkAxesR0, maxR)
		h, _ := NewHistory(Definition{Algorithm: AntiKt, R: r, Recombiner: rec}, parts)
		incl, _ := h.InclusiveJets(0)
		sort.SliceStable(incl, func(a, b int) bool { return incl[a].Pt2() > incl[b].Pt2() })
		axes = incl[:min(n, len(incl))]
	} else {
		h, _ := NewHistory(Definition{Algorithm: alg, R: maxR, Recombiner: rec}, parts)
		axes = h.exclusive(n)
	}
	for i := 0; i < passes; i++ {
		next, moved := refine(parts, axes)
		axes = next
		if !moved {
			break
		}
	}
	return axes
}

// refine moves every axis to the pt-weighted centroid, in rapidity and
// azimuth, of the particles closest to it.
func refine(parts, axes []PseudoJet) ([]PseudoJet, bool) {
	k := len(axes)
	var (
		w    = make([]float64, k)
		dy   = make([]float64, k)
		dphi = make([]float64, k)
	)
	for _, q := range parts {
		at, _ := nearest(q, axes)
		pt := q.Pt()
		a := axes[at]
		w[at] += pt
		dy[at] += pt * (q.Rap() - a.Rap())
		dphi[at] += pt * wrapPhi(q.Phi()-a.Phi())
	}
	out := make([]PseudoJet, k)
	moved := false
	for i, a := range axes {
		if w[i] == 0 {
			out[i] = a
			continue
		}
		shiftY, shiftPhi := dy[i]/w[i], dphi[i]/w[i]
		if math.Abs(shiftY) <= axisTolerance && math.Abs(shiftPhi) <= axisTolerance {
			out[i] = a
			continue
		}
		moved = true
		out[i] = ptYPhiM(w[i], a.Rap()+shiftY, a.Phi()+shiftPhi, 0)
	}
	return out, moved
}

// axisTolerance is the rapidity and azimuth shift below which an axis is
// considered converged.
const axisTolerance = 1e-12

func wrapPhi(d float64) float64 {
	switch {
	case d > math.Pi:
		return d - 2*math.Pi
	case d < -math.Pi:
		return d + 2*math.Pi
	}
	return d
}

// sumPt is the scalar pt sum of parts.
func sumPt(parts []PseudoJet) float64 {
	pts := make([]float64, len(parts))
	for i, p := range parts {
		pts[i] = p.Pt()
	}
	return floats.Sum(pts)
}
