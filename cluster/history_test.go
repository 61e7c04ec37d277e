package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/errors"
)

// event returns two collinear particles along +x and a softer one at
// phi = 3pi/2, rapidity asinh(1).
func event() []cluster.PseudoJet {
	return []cluster.PseudoJet{
		cluster.NewPseudoJet(10, 0, 0, 10),
		cluster.NewPseudoJet(2, 0, 0, 2),
		cluster.NewPseudoJet(0, -5, 5, math.Sqrt(50)),
	}
}

// dR2 is the squared distance between the +x pair and the third particle.
var dR2 = math.Asinh(1)*math.Asinh(1) + math.Pi*math.Pi/4

func mustHistory(t *testing.T, def cluster.Definition, parts []cluster.PseudoJet) *cluster.History {
	t.Helper()
	h, err := cluster.NewHistory(def, parts)
	require.NoError(t, err)
	return h
}

func ktEvent(t *testing.T) *cluster.History {
	return mustHistory(t, cluster.Definition{Algorithm: cluster.Kt, R: 1}, event())
}

func assertJet(t *testing.T, want, got cluster.PseudoJet) {
	t.Helper()
	assert.InDelta(t, want.Px, got.Px, 1e-9)
	assert.InDelta(t, want.Py, got.Py, 1e-9)
	assert.InDelta(t, want.Pz, got.Pz, 1e-9)
	assert.InDelta(t, want.E, got.E, 1e-9)
}

func TestHistory_KtSteps(t *testing.T) {
	steps := ktEvent(t).Steps()
	require.Len(t, steps, 6)

	assert.Equal(t, cluster.Step{Parent1: cluster.InexistentParent, Parent2: cluster.InexistentParent, Child: 3, Jet: 0}, steps[0])
	assert.Equal(t, 3, steps[1].Child)
	assert.Equal(t, 4, steps[2].Child)

	assert.Equal(t, 0, steps[3].Parent1)
	assert.Equal(t, 1, steps[3].Parent2)
	assert.Equal(t, 3, steps[3].Jet)
	assert.Equal(t, 0.0, steps[3].Dij)
	assert.Equal(t, 5, steps[3].Child)

	assert.Equal(t, 2, steps[4].Parent1)
	assert.Equal(t, cluster.BeamJet, steps[4].Parent2)
	assert.Equal(t, cluster.Invalid, steps[4].Jet)
	assert.InDelta(t, 25.0, steps[4].Dij, 1e-9)

	assert.Equal(t, 3, steps[5].Parent1)
	assert.InDelta(t, 144.0, steps[5].Dij, 1e-9)
	assert.InDelta(t, 144.0, steps[5].MaxDij, 1e-9)
	assert.Equal(t, cluster.Invalid, steps[5].Child)
}

func TestHistory_InclusiveJets(t *testing.T) {
	h := ktEvent(t)
	jets, err := h.InclusiveJets(0)
	require.NoError(t, err)
	require.Len(t, jets, 2)
	assertJet(t, cluster.NewPseudoJet(12, 0, 0, 12), jets[0])
	assertJet(t, event()[2], jets[1])

	hard, err := h.InclusiveJets(6)
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.InDelta(t, 12.0, hard[0].Pt(), 1e-9)
}

func TestHistory_ExclusiveJets(t *testing.T) {
	h := ktEvent(t)

	two, err := h.ExclusiveJets(2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assertJet(t, event()[2], two[0])
	assertJet(t, cluster.NewPseudoJet(12, 0, 0, 12), two[1])

	three, err := h.ExclusiveJets(3)
	require.NoError(t, err)
	require.Len(t, three, 3)
	for i, p := range event() {
		assertJet(t, p, three[i])
	}

	_, err = h.ExclusiveJets(4)
	assert.True(t, errors.Is(err, cluster.ErrTooManyJets))

	upTo, err := h.ExclusiveJetsUpTo(10)
	require.NoError(t, err)
	assert.Len(t, upTo, 3)
}

func TestHistory_NExclusiveJetsAndDcut(t *testing.T) {
	h := ktEvent(t)
	for dcut, want := range map[float64]int{200: 0, 30: 1, 10: 2, -1: 3} {
		n, err := h.NExclusiveJets(dcut)
		require.NoError(t, err)
		assert.Equal(t, want, n, "dcut=%g", dcut)
	}
	jets, err := h.ExclusiveJetsDcut(30)
	require.NoError(t, err)
	require.Len(t, jets, 1)
	assert.InDelta(t, 12.0, jets[0].E, 1e-9)
}

func TestHistory_MergingScales(t *testing.T) {
	h := ktEvent(t)

	d, err := h.ExclusiveDmerge(1)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, d, 1e-9)

	d, err = h.ExclusiveDmergeMax(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, err = h.ExclusiveDmerge(3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	_, err = h.ExclusiveDmerge(0)
	assert.True(t, errors.IsInvalidArgument(err))

	q, err := h.Q()
	require.NoError(t, err)
	assert.InDelta(t, 12+math.Sqrt(50), q, 1e-9)
	q2, err := h.Q2()
	require.NoError(t, err)
	assert.InDelta(t, q*q, q2, 1e-9)

	y, err := h.ExclusiveYmerge(1)
	require.NoError(t, err)
	assert.InDelta(t, 25/q2, y, 1e-12)

	jets, err := h.ExclusiveJetsYcut(30 / q2)
	require.NoError(t, err)
	assert.Len(t, jets, 1)
}

func TestHistory_Bookkeeping(t *testing.T) {
	h := ktEvent(t)

	n, err := h.NParticles()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	order, err := h.UniqueHistoryOrder()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 5, 2, 4}, order)

	idx, err := h.ConstituentIndex(0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, idx)

	idx, err = h.ExclusiveJetsConstituentIndex(3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, idx)

	all, err := h.Jets()
	require.NoError(t, err)
	assert.Len(t, all, 4)

	un, err := h.UnclusteredParticles()
	require.NoError(t, err)
	assert.Empty(t, un)

	childless, err := h.ChildlessPseudojets()
	require.NoError(t, err)
	assert.Empty(t, childless)
}

func TestHistory_AntiKtMergesHardFirst(t *testing.T) {
	h := mustHistory(t, cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4}, event())
	jets, err := h.InclusiveJets(0)
	require.NoError(t, err)
	require.Len(t, jets, 2)
	assertJet(t, event()[2], jets[0])
	assertJet(t, cluster.NewPseudoJet(12, 0, 0, 12), jets[1])
}

func TestHistory_CambridgeLargeRadiusMergesAll(t *testing.T) {
	h := mustHistory(t, cluster.Definition{Algorithm: cluster.CambridgeAachen, R: 10}, event())
	jets, err := h.InclusiveJets(0)
	require.NoError(t, err)
	require.Len(t, jets, 1)
	assertJet(t, cluster.NewPseudoJet(12, -5, 5, 12+math.Sqrt(50)), jets[0])
}

func TestHistory_WTAKeepsHarderAxis(t *testing.T) {
	parts := []cluster.PseudoJet{
		cluster.NewPseudoJet(10, 0, 0, 10),
		cluster.NewPseudoJet(0, 1, 0, 1),
	}
	h := mustHistory(t, cluster.Definition{Algorithm: cluster.CambridgeAachen, R: 10, Recombiner: cluster.WTAPtScheme}, parts)
	jets, err := h.InclusiveJets(0)
	require.NoError(t, err)
	require.Len(t, jets, 1)
	assert.InDelta(t, 11.0, jets[0].Pt(), 1e-9)
	assert.InDelta(t, 0.0, jets[0].Phi(), 1e-9)
	assert.InDelta(t, 0.0, jets[0].M(), 1e-6)
}

func TestHistory_EEKtMergesEverything(t *testing.T) {
	parts := []cluster.PseudoJet{
		cluster.NewPseudoJet(0, 0, 5, 5),
		cluster.NewPseudoJet(0, 0, -5, 5),
	}
	h := mustHistory(t, cluster.Definition{Algorithm: cluster.EEKt}, parts)
	steps := h.Steps()
	require.Len(t, steps, 4)
	assert.InDelta(t, 100.0, steps[2].Dij, 1e-9)
	assert.Equal(t, math.MaxFloat64, steps[3].Dij)

	d, err := h.ExclusiveDmerge(1)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, d, 1e-9)

	jets, err := h.ExclusiveJets(1)
	require.NoError(t, err)
	require.Len(t, jets, 1)
	assertJet(t, cluster.NewPseudoJet(0, 0, 0, 10), jets[0])
}

func TestHistory_EmptyGroup(t *testing.T) {
	h := mustHistory(t, cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4}, nil)
	jets, err := h.InclusiveJets(0)
	require.NoError(t, err)
	assert.Empty(t, jets)
	n, err := h.NExclusiveJets(0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	_, err = h.ExclusiveJets(1)
	assert.True(t, errors.Is(err, cluster.ErrTooManyJets))
}

func TestNewHistory_RejectsDefinition(t *testing.T) {
	_, err := cluster.NewHistory(cluster.Definition{Algorithm: cluster.Kt}, event())
	assert.True(t, errors.IsInvalidArgument(err))
}
