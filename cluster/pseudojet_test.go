package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvjet/cluster"
)

func TestPseudoJet_Kinematics(t *testing.T) {
	p := cluster.NewPseudoJet(3, 4, 0, 5)
	assert.Equal(t, 25.0, p.Pt2())
	assert.Equal(t, 5.0, p.Pt())
	assert.Equal(t, 0.0, p.M())
	assert.InDelta(t, 0.0, p.Rap(), 1e-12)
	assert.InDelta(t, 0.0, p.Eta(), 1e-12)
	assert.InDelta(t, math.Atan2(4, 3), p.Phi(), 1e-12)
	assert.InDelta(t, 5.0, p.Mt(), 1e-12)
}

func TestPseudoJet_PhiRange(t *testing.T) {
	assert.InDelta(t, 1.5*math.Pi, cluster.NewPseudoJet(0, -1, 0, 1).Phi(), 1e-12)
	assert.Equal(t, 0.0, cluster.NewPseudoJet(0, 0, 1, 1).Phi())
}

func TestPseudoJet_Mass(t *testing.T) {
	assert.Equal(t, 2.0, cluster.NewPseudoJet(0, 0, 0, 2).M())
	assert.Less(t, cluster.NewPseudoJet(3, 0, 0, 1).M(), 0.0)
}

func TestPseudoJet_RapAlongBeam(t *testing.T) {
	assert.Equal(t, 1e5+2, cluster.NewPseudoJet(0, 0, 2, 2).Rap())
	assert.Equal(t, -1e5-2, cluster.NewPseudoJet(0, 0, -2, 2).Rap())
}

func TestPseudoJet_RapMassless(t *testing.T) {
	p := cluster.NewPseudoJet(0, -5, 5, math.Sqrt(50))
	assert.InDelta(t, math.Asinh(1), p.Rap(), 1e-12)
	assert.InDelta(t, math.Asinh(1), p.Eta(), 1e-12)
}

func TestPseudoJet_DeltaR2WrapsAzimuth(t *testing.T) {
	a := cluster.NewPseudoJet(1, 0, 0, 1)
	b := cluster.NewPseudoJet(0, -1, 0, 1)
	assert.InDelta(t, math.Pi*math.Pi/4, a.DeltaR2(b), 1e-12)
}

func TestPseudoJet_CosTheta(t *testing.T) {
	a := cluster.NewPseudoJet(0, 0, 5, 5)
	b := cluster.NewPseudoJet(0, 0, -5, 5)
	assert.Equal(t, -1.0, a.CosTheta(b))
	assert.Equal(t, 1.0, a.CosTheta(cluster.NewPseudoJet(0, 0, 0, 1)))
}
