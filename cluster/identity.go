// SPDX-License-Identifier: MIT

package cluster

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvjet/extract"
)

// Identity is a Service in which every particle is its own jet. It answers
// the particle-count, Q, inclusive-jet, jet and index queries and reports
// ErrUnsupported for the rest.
type Identity struct{}

func (Identity) Cluster(ctx context.Context, in *extract.Buffers, def Definition) (Sequences, error) {
	if err := checkInput(in, def); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(GroupSequences, in.Groups())
	for k := range out {
		_, _, _, e := in.Group(k)
		out[k] = &identity{parts: particles(in, k), q: floats.Sum(e)}
	}
	return out, nil
}

type identity struct {
	Unsupported
	parts []PseudoJet
	q     float64
}

func (s *identity) NParticles() (int, error) { return len(s.parts), nil }
func (s *identity) Q() (float64, error)      { return s.q, nil }
func (s *identity) Q2() (float64, error)     { return s.q * s.q, nil }

func (s *identity) InclusiveJets(ptmin float64) ([]PseudoJet, error) {
	out := make([]PseudoJet, 0, len(s.parts))
	for _, p := range s.parts {
		if p.Pt2() >= ptmin*ptmin {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *identity) Jets() ([]PseudoJet, error) {
	out := make([]PseudoJet, len(s.parts))
	copy(out, s.parts)
	return out, nil
}

func (s *identity) UniqueHistoryOrder() ([]int, error) {
	out := make([]int, len(s.parts))
	for i := range out {
		out[i] = i
	}
	return out, nil
}

func (s *identity) ConstituentIndex(ptmin float64) ([][]int, error) {
	out := make([][]int, 0, len(s.parts))
	for i, p := range s.parts {
		if p.Pt2() >= ptmin*ptmin {
			out = append(out, []int{i})
		}
	}
	return out, nil
}

var _ Service = Identity{}
