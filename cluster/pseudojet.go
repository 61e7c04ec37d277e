// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"strconv"
)

// maxRap is the rapidity assigned to massless momenta along the beam.
const maxRap = 1e5

// PseudoJet is a four-momentum, possibly tied to a node of a merge history.
type PseudoJet struct {
	Px, Py, Pz, E float64

	hist int // history index inside the owning sequence, -1 if none
}

// NewPseudoJet returns a free four-momentum.
func NewPseudoJet(px, py, pz, e float64) PseudoJet {
	return PseudoJet{Px: px, Py: py, Pz: pz, E: e, hist: -1}
}

// Pt2 is the squared transverse momentum.
func (p PseudoJet) Pt2() float64 { return p.Px*p.Px + p.Py*p.Py }

// Pt is the transverse momentum.
func (p PseudoJet) Pt() float64 { return math.Sqrt(p.Pt2()) }

// ModP2 is the squared three-momentum.
func (p PseudoJet) ModP2() float64 { return p.Pt2() + p.Pz*p.Pz }

// M2 is the squared invariant mass.
func (p PseudoJet) M2() float64 { return (p.E+p.Pz)*(p.E-p.Pz) - p.Pt2() }

// M is the invariant mass, negative for space-like momenta.
func (p PseudoJet) M() float64 {
	m2 := p.M2()
	if m2 < 0 {
		return -math.Sqrt(-m2)
	}
	return math.Sqrt(m2)
}

// Mt is the transverse mass.
func (p PseudoJet) Mt() float64 {
	return math.Sqrt(math.Max(p.Pt2()+p.M2(), 0))
}

// Rap is the rapidity. Momenta along the beam get +-(maxRap + |pz|).
func (p PseudoJet) Rap() float64 {
	pt2 := p.Pt2()
	if p.E == math.Abs(p.Pz) && pt2 == 0 {
		r := maxRap + math.Abs(p.Pz)
		if p.Pz < 0 {
			r = -r
		}
		return r
	}
	ePlus := p.E + math.Abs(p.Pz)
	r := 0.5 * math.Log((pt2+math.Max(p.M2(), 0))/(ePlus*ePlus))
	if p.Pz > 0 {
		r = -r
	}
	return r
}

// Phi is the azimuth in [0, 2pi).
func (p PseudoJet) Phi() float64 {
	if p.Px == 0 && p.Py == 0 {
		return 0
	}
	phi := math.Atan2(p.Py, p.Px)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi
}

// Eta is the pseudorapidity.
func (p PseudoJet) Eta() float64 {
	pt := p.Pt()
	if pt == 0 {
		if p.Pz < 0 {
			return -maxRap - math.Abs(p.Pz)
		}
		return maxRap + math.Abs(p.Pz)
	}
	return math.Asinh(p.Pz / pt)
}

// Add returns the four-vector sum, detached from any history.
func (p PseudoJet) Add(q PseudoJet) PseudoJet {
	return NewPseudoJet(p.Px+q.Px, p.Py+q.Py, p.Pz+q.Pz, p.E+q.E)
}

// DeltaR2 is the squared rapidity-azimuth distance.
func (p PseudoJet) DeltaR2(q PseudoJet) float64 {
	dy := p.Rap() - q.Rap()
	dphi := math.Abs(p.Phi() - q.Phi())
	if dphi > math.Pi {
		dphi = 2*math.Pi - dphi
	}
	return dy*dy + dphi*dphi
}

// CosTheta is the cosine of the opening angle, 1 when either is at rest.
func (p PseudoJet) CosTheta(q PseudoJet) float64 {
	norm := math.Sqrt(p.ModP2() * q.ModP2())
	if norm == 0 {
		return 1
	}
	c := (p.Px*q.Px + p.Py*q.Py + p.Pz*q.Pz) / norm
	return math.Max(-1, math.Min(1, c))
}

// ptYPhiM builds a massless-or-massive momentum from collider coordinates.
func ptYPhiM(pt, y, phi, m float64) PseudoJet {
	mt := math.Sqrt(pt*pt + m*m)
	return NewPseudoJet(pt*math.Cos(phi), pt*math.Sin(phi), mt*math.Sinh(y), mt*math.Cosh(y))
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
