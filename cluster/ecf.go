// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvjet/errors"
)

// ECFFunction names an energy-correlation observable.
type ECFFunction int

const (
	ECFGeneralized ECFFunction = iota
	ECFGeneric
	ECFRatio
	ECFDoubleRatio
	ECFC1
	ECFC2
	ECFD2
	ECFGeneralizedD2
	ECFNseries
	ECFN2
	ECFN3
	ECFMseries
	ECFM2
	ECFCseries
	ECFUseries
	ECFU1
	ECFU2
	ECFU3
)

var ecfNames = []string{
	"generalized", "generic", "ratio", "doubleratio", "c1", "c2", "d2", "generalizedd2",
	"nseries", "n2", "n3", "mseries", "m2", "cseries", "useries", "u1", "u2", "u3",
}

func (f ECFFunction) String() string {
	if f >= 0 && int(f) < len(ecfNames) {
		return ecfNames[f]
	}
	return "unknown"
}

// ParseECFFunction lower-cases s and looks it up.
func ParseECFFunction(s string) (ECFFunction, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range ecfNames {
		if name == key {
			return ECFFunction(i), nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown energy correlator %q", s)
}

// maxPoints is the largest correlator order evaluated.
const maxPoints = 4

// ECFParams configures the energy correlator evaluated on exclusive jets.
type ECFParams struct {
	NJets      int
	NPoint     int
	Angles     int // number of pairwise angles kept, -1 for all
	Beta       float64
	Alpha      float64 // angular exponent of the numerator of generalizedd2
	Function   ECFFunction
	Normalized bool // only consulted by generic
}

// DefaultECFParams returns the normalised generalized correlator with
// npoint 0, all angles and beta 1 on one jet.
func DefaultECFParams() ECFParams {
	return ECFParams{NJets: 1, NPoint: 0, Angles: -1, Beta: 1, Alpha: 0, Function: ECFGeneralized, Normalized: true}
}

// Validate rejects parameter combinations no correlator accepts.
func (p ECFParams) Validate() error {
	switch {
	case p.NJets <= 0:
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: energy correlator njets must be > 0, got %d", p.NJets)
	case p.NPoint < 0:
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: npoint must be >= 0, got %d", p.NPoint)
	case p.Angles == 0 || p.Angles < -1:
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: angles must be -1 or > 0, got %d", p.Angles)
	case !(p.Beta > 0):
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: beta must be > 0, got %g", p.Beta)
	case p.Function == ECFGeneralizedD2 && !(p.Alpha > 0):
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: generalizedd2 alpha must be > 0, got %g", p.Alpha)
	case p.Function.String() == "unknown":
		return errors.Wrapf(errors.ErrInvalidArgument, "cluster: unknown energy correlator %d", int(p.Function))
	}
	return nil
}

// ExclusiveECF evaluates p on each exclusive jet.
func (h *History) ExclusiveECF(p ECFParams) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	jets, err := h.ExclusiveJets(p.NJets)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(jets))
	for i, j := range jets {
		c := newCorrelator(j, h.constituentJets(j))
		if out[i], err = c.eval(p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// correlator holds the pt and pairwise distances of one jet's constituents.
type correlator struct {
	pt    []float64
	z     []float64 // pt fractions of the jet pt
	theta [][]float64
}

func newCorrelator(jet PseudoJet, parts []PseudoJet) *correlator {
	n := len(parts)
	c := &correlator{pt: make([]float64, n), z: make([]float64, n), theta: make([][]float64, n)}
	for i, p := range parts {
		c.pt[i] = p.Pt()
		c.theta[i] = make([]float64, n)
		for k := 0; k < i; k++ {
			d := math.Sqrt(p.DeltaR2(parts[k]))
			c.theta[i][k], c.theta[k][i] = d, d
		}
	}
	copy(c.z, c.pt)
	if jpt := jet.Pt(); jpt > 0 {
		floats.Scale(1/jpt, c.z)
	}
	return c
}

func (c *correlator) eval(p ECFParams) (float64, error) {
	b := p.Beta
	g := c.generalized
	switch p.Function {
	case ECFGeneralized:
		return g(p.NPoint, p.Angles, b)
	case ECFGeneric:
		if p.Normalized {
			return g(p.NPoint, -1, b)
		}
		return c.ecf(c.pt, p.NPoint, -1, b)
	case ECFRatio:
		return c.quotient(func(e ecfFunc) (float64, float64, error) {
			return pair(e, p.NPoint+1, p.NPoint, b)
		})
	case ECFDoubleRatio:
		return c.doubleRatio(p.NPoint, b)
	case ECFC1:
		return c.doubleRatio(1, b)
	case ECFC2:
		return c.doubleRatio(2, b)
	case ECFD2:
		return c.quotient(func(e ecfFunc) (float64, float64, error) {
			e1, err := e(1, -1, b)
			if err != nil {
				return 0, 0, err
			}
			e2, e3, err := pair(e, 2, 3, b)
			return e3 * e1 * e1 * e1, e2 * e2 * e2, err
		})
	case ECFGeneralizedD2:
		num, err := g(3, 3, p.Alpha)
		if err != nil {
			return 0, err
		}
		den, err := g(2, 1, b)
		if err != nil {
			return 0, err
		}
		return ratio(num, math.Pow(den, 3*p.Alpha/b)), nil
	case ECFNseries, ECFN2, ECFN3:
		n := seriesOrder(p, ECFNseries, ECFN2)
		num, err := g(n+1, 2, b)
		if err != nil {
			return 0, err
		}
		den, err := g(n, 1, b)
		return ratio(num, den*den), err
	case ECFMseries, ECFM2:
		n := seriesOrder(p, ECFMseries, ECFM2)
		num, err := g(n+1, 1, b)
		if err != nil {
			return 0, err
		}
		den, err := g(n, 1, b)
		return ratio(num, den), err
	case ECFCseries:
		lo, err := g(p.NPoint-1, -1, b)
		if err != nil {
			return 0, err
		}
		mid, hi, err := pair(g, p.NPoint, p.NPoint+1, b)
		return ratio(lo*hi, mid*mid), err
	default:
		n := seriesOrder(p, ECFUseries, ECFU1)
		return g(n+1, 1, b)
	}
}

type ecfFunc func(n, angles int, beta float64) (float64, error)

func pair(e ecfFunc, n1, n2 int, beta float64) (float64, float64, error) {
	a, err := e(n1, -1, beta)
	if err != nil {
		return 0, 0, err
	}
	b, err := e(n2, -1, beta)
	return a, b, err
}

func (c *correlator) unnormalized(n, angles int, beta float64) (float64, error) {
	return c.ecf(c.pt, n, angles, beta)
}

func (c *correlator) generalized(n, angles int, beta float64) (float64, error) {
	return c.ecf(c.z, n, angles, beta)
}

func (c *correlator) quotient(f func(ecfFunc) (float64, float64, error)) (float64, error) {
	num, den, err := f(c.unnormalized)
	return ratio(num, den), err
}

func (c *correlator) doubleRatio(n int, beta float64) (float64, error) {
	if n < 1 {
		return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: doubleratio npoint must be >= 1, got %d", n)
	}
	return c.quotient(func(e ecfFunc) (float64, float64, error) {
		lo, err := e(n-1, -1, beta)
		if err != nil {
			return 0, 0, err
		}
		mid, hi, err := pair(e, n, n+1, beta)
		return lo * hi, mid * mid, err
	})
}

// seriesOrder maps the fixed-order shorthands (n2, u1, ...) to their order.
func seriesOrder(p ECFParams, series, first ECFFunction) int {
	if p.Function == series {
		return p.NPoint
	}
	base := 2
	if series == ECFUseries {
		base = 1
	}
	return base + int(p.Function-first)
}

// ecf sums prod(w) times the product of the `angles` smallest pairwise
// distances, raised to beta, over all n-subsets of the constituents.
func (c *correlator) ecf(w []float64, n, angles int, beta float64) (float64, error) {
	switch {
	case n < 0:
		return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: correlator order must be >= 0, got %d", n)
	case n > maxPoints:
		return 0, errors.Wrapf(ErrUnsupported, "%d-point energy correlator", n)
	case n == 0:
		return 1, nil
	case n == 1:
		return floats.Sum(w), nil
	}
	npairs := n * (n - 1) / 2
	if angles == -1 {
		angles = npairs
	}
	if angles > npairs {
		return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: %d angles exceed the %d pairs of a %d-point correlator", angles, npairs, n)
	}
	var (
		sum   float64
		idx   = make([]int, n)
		wts   = make([]float64, n)
		dists = make([]float64, 0, npairs)
	)
	var walk func(depth, from int)
	walk = func(depth, from int) {
		if depth == n {
			dists = dists[:0]
			for a := 0; a < n; a++ {
				wts[a] = w[idx[a]]
				for b := a + 1; b < n; b++ {
					dists = append(dists, c.theta[idx[a]][idx[b]])
				}
			}
			sort.Float64s(dists)
			sum += floats.Prod(wts) * math.Pow(floats.Prod(dists[:angles]), beta)
			return
		}
		for i := from; i < len(w); i++ {
			idx[depth] = i
			walk(depth+1, i+1)
		}
	}
	walk(0, 0)
	return sum, nil
}
