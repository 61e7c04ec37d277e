// SPDX-License-Identifier: MIT

package cluster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvjet/errors"
)

// Sentinel values in history parent and child slots.
const (
	BeamJet          = -1
	InexistentParent = -2
	Invalid          = -3
)

// Step is one entry of a merge history. Entries 0..N-1 are the input
// particles; each later entry is a pairwise merge or a merge with the beam.
type Step struct {
	Parent1, Parent2 int     // Parent1 < Parent2, or Parent2 == BeamJet
	Child            int     // Invalid until the entry is merged further
	Jet              int     // index into Jets(), Invalid for beam merges
	Dij              float64 // distance at which the merge happened
	MaxDij           float64 // running maximum of Dij up to this entry
}

// History is the clustering of one group by sequential pairwise
// recombination. It implements Sequence.
//
// Determinism: ties in the distance search go to the lowest active index,
// beam distances before pair distances.
type History struct {
	def     Definition
	n       int
	jets    []PseudoJet
	steps   []Step
	q       float64
	rNorm   float64 // R^2 for pp algorithms, the angular norm for EEGenKt
	expnt   float64
	mScales []float64 // momentum scale per jet
}

// NewHistory clusters particles with def. The particles are copied.
//
// Complexity: O(N^3) time, O(N) memory beyond the 2N-entry history.
func NewHistory(def Definition, particles []PseudoJet) (*History, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	n := len(particles)
	h := &History{
		def:     def,
		n:       n,
		jets:    make([]PseudoJet, n, 2*n),
		steps:   make([]Step, n, 2*n),
		expnt:   def.exponent(),
		mScales: make([]float64, n, 2*n),
	}
	energies := make([]float64, n)
	for i, p := range particles {
		p.hist = i
		h.jets[i] = p
		h.steps[i] = Step{Parent1: InexistentParent, Parent2: InexistentParent, Child: Invalid, Jet: i}
		h.mScales[i] = h.momentumScale(p)
		energies[i] = p.E
	}
	h.q = floats.Sum(energies)
	switch {
	case def.Algorithm == EEGenKt && def.R < math.Pi:
		h.rNorm = 1 - math.Cos(def.R)
	case def.Algorithm == EEGenKt:
		h.rNorm = 3 + math.Cos(def.R)
	default:
		h.rNorm = def.R * def.R
	}
	h.run()
	return h, nil
}

func (h *History) run() {
	active := make([]int, h.n)
	for i := range active {
		active[i] = i
	}
	for len(active) > 0 {
		best, ai, aj := inf, 0, -1
		for a, i := range active {
			if d := h.beamDistance(i); d < best {
				best, ai, aj = d, a, -1
			}
			for b := a + 1; b < len(active); b++ {
				if d := h.pairDistance(i, active[b]); d < best {
					best, ai, aj = d, a, b
				}
			}
		}
		i := active[ai]
		if aj < 0 {
			h.addStep(h.jets[i].hist, BeamJet, Invalid, best)
			active = append(active[:ai], active[ai+1:]...)
			continue
		}
		active[ai] = h.merge(i, active[aj], best)
		active = append(active[:aj], active[aj+1:]...)
	}
}

func (h *History) merge(i, j int, dij float64) int {
	a, b := h.jets[i], h.jets[j]
	k := len(h.jets)
	nj := recombine(h.def.Recombiner, a, b)
	nj.hist = len(h.steps)
	h.jets = append(h.jets, nj)
	h.mScales = append(h.mScales, h.momentumScale(nj))
	p1, p2 := a.hist, b.hist
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	h.addStep(p1, p2, k, dij)
	return k
}

func (h *History) addStep(p1, p2, jet int, dij float64) {
	at := len(h.steps)
	maxDij := dij
	if at > 0 {
		maxDij = math.Max(maxDij, h.steps[at-1].MaxDij)
	}
	h.steps = append(h.steps, Step{Parent1: p1, Parent2: p2, Child: Invalid, Jet: jet, Dij: dij, MaxDij: maxDij})
	h.steps[p1].Child = at
	if p2 >= 0 {
		h.steps[p2].Child = at
	}
}

func recombine(r Recombiner, a, b PseudoJet) PseudoJet {
	if r != WTAPtScheme {
		return a.Add(b)
	}
	hard := a
	if b.Pt2() > a.Pt2() {
		hard = b
	}
	return ptYPhiM(a.Pt()+b.Pt(), hard.Rap(), hard.Phi(), 0)
}

// momentumScale is pt^2p for pp algorithms and E^2p for ee ones.
func (h *History) momentumScale(p PseudoJet) float64 {
	if h.def.Algorithm.IsEE() {
		return scalePow(p.E*p.E, h.expnt)
	}
	return scalePow(p.Pt2(), h.expnt)
}

func scalePow(x2, p float64) float64 {
	switch {
	case p == 0:
		return 1
	case p == 1:
		return x2
	case p < 0 && x2 < 1e-300:
		x2 = 1e-300
	}
	return math.Pow(x2, p)
}

func (h *History) beamDistance(i int) float64 {
	switch {
	case h.def.Algorithm == EEKt:
		return math.MaxFloat64
	case h.def.Algorithm == EEGenKt && h.def.R >= math.Pi:
		return math.MaxFloat64
	}
	return h.mScales[i]
}

func (h *History) pairDistance(i, j int) float64 {
	m := math.Min(h.mScales[i], h.mScales[j])
	a, b := h.jets[i], h.jets[j]
	switch h.def.Algorithm {
	case EEKt:
		return 2 * m * (1 - a.CosTheta(b))
	case EEGenKt:
		return m * (1 - a.CosTheta(b)) / h.rNorm
	default:
		return m * a.DeltaR2(b) / h.rNorm
	}
}

// Definition returns the definition h was clustered with.
func (h *History) Definition() Definition { return h.def }

// Steps returns a copy of the merge history.
func (h *History) Steps() []Step {
	out := make([]Step, len(h.steps))
	copy(out, h.steps)
	return out
}

func (h *History) NParticles() (int, error) { return h.n, nil }
func (h *History) Q() (float64, error)      { return h.q, nil }
func (h *History) Q2() (float64, error)     { return h.q * h.q, nil }

// NExclusiveJets returns the number of jets left when merging stops at
// dcut, capped at the number of particles.
func (h *History) NExclusiveJets(dcut float64) (int, error) {
	i := len(h.steps) - 1
	for i >= 0 && h.steps[i].MaxDij > dcut {
		i--
	}
	return min(2*h.n-(i+1), h.n), nil
}

func (h *History) ExclusiveDmerge(njets int) (float64, error) {
	return h.dmerge(njets, false)
}

func (h *History) ExclusiveDmergeMax(njets int) (float64, error) {
	return h.dmerge(njets, true)
}

func (h *History) ExclusiveYmerge(njets int) (float64, error) {
	return h.ymerge(njets, false)
}

func (h *History) ExclusiveYmergeMax(njets int) (float64, error) {
	return h.ymerge(njets, true)
}

// dmerge is the dij at which njets+1 jets became njets; 0 once njets
// reaches the particle count.
func (h *History) dmerge(njets int, running bool) (float64, error) {
	if njets <= 0 {
		return 0, errors.Wrapf(errors.ErrInvalidArgument, "cluster: njets must be > 0, got %d", njets)
	}
	if njets >= h.n {
		return 0, nil
	}
	s := h.steps[2*h.n-njets-1]
	if running {
		return s.MaxDij, nil
	}
	return s.Dij, nil
}

func (h *History) ymerge(njets int, running bool) (float64, error) {
	d, err := h.dmerge(njets, running)
	if err != nil || d == 0 {
		return 0, err
	}
	return d / (h.q * h.q), nil
}

// InclusiveJets returns every jet merged with the beam whose pt is at least
// ptmin, most recent merge first.
func (h *History) InclusiveJets(ptmin float64) ([]PseudoJet, error) {
	cut := ptmin * ptmin
	var out []PseudoJet
	for i := len(h.steps) - 1; i >= 0; i-- {
		s := h.steps[i]
		if s.Parent2 != BeamJet {
			continue
		}
		if j := h.jets[h.steps[s.Parent1].Jet]; j.Pt2() >= cut {
			out = append(out, j)
		}
	}
	return out, nil
}

// ExclusiveJets returns the njets jets present once the history is undone
// down to njets entries.
func (h *History) ExclusiveJets(njets int) ([]PseudoJet, error) {
	if njets < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "cluster: njets must be >= 0, got %d", njets)
	}
	if njets > h.n {
		return nil, errors.Wrapf(ErrTooManyJets, "requested %d exclusive jets but there were only %d particles", njets, h.n)
	}
	return h.exclusive(njets), nil
}

func (h *History) exclusive(njets int) []PseudoJet {
	stop := 2*h.n - njets
	out := make([]PseudoJet, 0, njets)
	for i := stop; i < len(h.steps); i++ {
		s := h.steps[i]
		if s.Parent1 < stop {
			out = append(out, h.jets[h.steps[s.Parent1].Jet])
		}
		if s.Parent2 < stop && s.Parent2 > 0 {
			out = append(out, h.jets[h.steps[s.Parent2].Jet])
		}
	}
	return out
}

func (h *History) ExclusiveJetsDcut(dcut float64) ([]PseudoJet, error) {
	n, _ := h.NExclusiveJets(dcut)
	return h.exclusive(n), nil
}

func (h *History) ExclusiveJetsUpTo(njets int) ([]PseudoJet, error) {
	if njets < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "cluster: njets must be >= 0, got %d", njets)
	}
	return h.exclusive(min(njets, h.n)), nil
}

func (h *History) ExclusiveJetsYcut(ycut float64) ([]PseudoJet, error) {
	return h.ExclusiveJetsDcut(ycut * h.q * h.q)
}

// UnclusteredParticles returns input particles never merged; empty after a
// complete clustering.
func (h *History) UnclusteredParticles() ([]PseudoJet, error) {
	var out []PseudoJet
	for i := 0; i < h.n; i++ {
		if h.steps[i].Child == Invalid {
			out = append(out, h.jets[h.steps[i].Jet])
		}
	}
	return out, nil
}

// ChildlessPseudojets returns jets with no child in the history.
func (h *History) ChildlessPseudojets() ([]PseudoJet, error) {
	var out []PseudoJet
	for _, j := range h.jets {
		if h.steps[j.hist].Child == Invalid {
			out = append(out, j)
		}
	}
	return out, nil
}

// Jets returns the input particles followed by every merged jet.
func (h *History) Jets() ([]PseudoJet, error) {
	out := make([]PseudoJet, len(h.jets))
	copy(out, h.jets)
	return out, nil
}

// UniqueHistoryOrder lists history indices so that parents precede children
// and each tree is emitted together, ordered by its lowest constituent.
func (h *History) UniqueHistoryOrder() ([]int, error) {
	size := len(h.steps)
	lowest := make([]int, size)
	for i := range lowest {
		lowest[i] = size
	}
	for i, s := range h.steps {
		lowest[i] = min(lowest[i], i)
		if s.Child > 0 {
			lowest[s.Child] = min(lowest[s.Child], lowest[i])
		}
	}
	done := make([]bool, size)
	out := make([]int, 0, size)
	var parents func(int)
	parents = func(at int) {
		if done[at] {
			return
		}
		p1, p2 := h.steps[at].Parent1, h.steps[at].Parent2
		if p1 >= 0 && p2 >= 0 && lowest[p1] > lowest[p2] {
			p1, p2 = p2, p1
		}
		if p1 >= 0 && !done[p1] {
			parents(p1)
		}
		if p2 >= 0 && !done[p2] {
			parents(p2)
		}
		out = append(out, at)
		done[at] = true
	}
	for i := 0; i < h.n; i++ {
		if done[i] {
			continue
		}
		out = append(out, i)
		done[i] = true
		for at := h.steps[i].Child; at >= 0; at = h.steps[at].Child {
			parents(at)
		}
	}
	return out, nil
}

// constituents appends the input-particle indices under history entry at.
func (h *History) constituents(at int, out []int) []int {
	s := h.steps[at]
	if s.Parent1 == InexistentParent {
		return append(out, at)
	}
	out = h.constituents(s.Parent1, out)
	if s.Parent2 != BeamJet {
		out = h.constituents(s.Parent2, out)
	}
	return out
}

func (h *History) constituentJets(j PseudoJet) []PseudoJet {
	idx := h.constituents(j.hist, nil)
	out := make([]PseudoJet, len(idx))
	for i, at := range idx {
		out[i] = NewPseudoJet(h.jets[at].Px, h.jets[at].Py, h.jets[at].Pz, h.jets[at].E)
	}
	return out
}

func (h *History) indexLists(jets []PseudoJet) [][]int {
	out := make([][]int, len(jets))
	for i, j := range jets {
		out[i] = h.constituents(j.hist, nil)
	}
	return out
}

// ConstituentIndex returns, per inclusive jet, the input positions of its
// constituents.
func (h *History) ConstituentIndex(ptmin float64) ([][]int, error) {
	jets, _ := h.InclusiveJets(ptmin)
	return h.indexLists(jets), nil
}

func (h *History) ExclusiveJetsConstituentIndex(njets int) ([][]int, error) {
	jets, err := h.ExclusiveJets(njets)
	if err != nil {
		return nil, err
	}
	return h.indexLists(jets), nil
}

// find locates the inclusive jet with the rapidity of q.
func (h *History) find(q PseudoJet) (PseudoJet, error) {
	rap := q.Rap()
	jets, _ := h.InclusiveJets(0)
	for _, j := range jets {
		if j.Rap() == rap {
			return j, nil
		}
	}
	return PseudoJet{}, errors.Wrapf(ErrJetNotFound, "rapidity %g", rap)
}

// subhistory splits the entry of j into its parents, highest history index
// first, until maxjet entries are reached, the top entry is a particle, or
// its running dij is at most dcut. The result is sorted ascending.
func (h *History) subhistory(j PseudoJet, dcut float64, maxjet int) []int {
	set := []int{j.hist}
	for njet := 1; ; njet++ {
		top := h.steps[set[len(set)-1]]
		if njet == maxjet || top.Parent1 < 0 || top.MaxDij <= dcut {
			break
		}
		set = insertSorted(set[:len(set)-1], top.Parent1)
		set = insertSorted(set, top.Parent2)
	}
	return set
}

func insertSorted(s []int, v int) []int {
	at := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[at+1:], s[at:])
	s[at] = v
	return s
}

func (h *History) jetsOf(set []int) []PseudoJet {
	out := make([]PseudoJet, len(set))
	for i, at := range set {
		out[i] = h.jets[h.steps[at].Jet]
	}
	return out
}

func (h *History) ExclusiveSubjets(q PseudoJet, dcut float64) ([]PseudoJet, error) {
	j, err := h.find(q)
	if err != nil {
		return nil, err
	}
	return h.jetsOf(h.subhistory(j, dcut, 0)), nil
}

func (h *History) ExclusiveSubjetsN(q PseudoJet, nsub int) ([]PseudoJet, error) {
	set, err := h.subjetSet(q, nsub)
	if err != nil {
		return nil, err
	}
	if len(set) < nsub {
		return nil, errors.Wrapf(ErrTooManyJets, "requested %d exclusive subjets but there were only %d", nsub, len(set))
	}
	return h.jetsOf(set), nil
}

func (h *History) ExclusiveSubjetsUpTo(q PseudoJet, nsub int) ([]PseudoJet, error) {
	set, err := h.subjetSet(q, nsub)
	if err != nil {
		return nil, err
	}
	return h.jetsOf(set), nil
}

func (h *History) ExclusiveSubdmerge(q PseudoJet, nsub int) (float64, error) {
	set, err := h.subjetSet(q, nsub)
	if err != nil {
		return 0, err
	}
	return h.steps[set[len(set)-1]].Dij, nil
}

func (h *History) ExclusiveSubdmergeMax(q PseudoJet, nsub int) (float64, error) {
	set, err := h.subjetSet(q, nsub)
	if err != nil {
		return 0, err
	}
	return h.steps[set[len(set)-1]].MaxDij, nil
}

func (h *History) subjetSet(q PseudoJet, nsub int) ([]int, error) {
	if nsub < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "cluster: nsub must be >= 0, got %d", nsub)
	}
	j, err := h.find(q)
	if err != nil {
		return nil, err
	}
	return h.subhistory(j, -1, nsub), nil
}

func (h *History) NExclusiveSubjets(q PseudoJet, dcut float64) (int, error) {
	j, err := h.find(q)
	if err != nil {
		return 0, err
	}
	return len(h.subhistory(j, dcut, 0)), nil
}

// Parents returns the two parents of the matched jet, harder in pt first,
// or nothing for an input particle.
func (h *History) Parents(q PseudoJet) ([]PseudoJet, error) {
	j, err := h.find(q)
	if err != nil {
		return nil, err
	}
	p1, p2, ok := h.parents(j)
	if !ok {
		return []PseudoJet{}, nil
	}
	return []PseudoJet{p1, p2}, nil
}

func (h *History) parents(j PseudoJet) (PseudoJet, PseudoJet, bool) {
	s := h.steps[j.hist]
	if s.Parent1 < 0 || s.Parent2 < 0 {
		return PseudoJet{}, PseudoJet{}, false
	}
	p1, p2 := h.jets[h.steps[s.Parent1].Jet], h.jets[h.steps[s.Parent2].Jet]
	if p1.Pt2() < p2.Pt2() {
		p1, p2 = p2, p1
	}
	return p1, p2, true
}

func (h *History) HasParents(q PseudoJet) (bool, error) {
	p, err := h.Parents(q)
	return len(p) > 0, err
}

// Child returns the jet the matched jet merged into, or nothing when it
// merged with the beam.
func (h *History) Child(q PseudoJet) ([]PseudoJet, error) {
	j, err := h.find(q)
	if err != nil {
		return nil, err
	}
	s := h.steps[j.hist]
	if s.Child >= 0 && h.steps[s.Child].Jet >= 0 {
		return []PseudoJet{h.jets[h.steps[s.Child].Jet]}, nil
	}
	return []PseudoJet{}, nil
}

func (h *History) HasChild(q PseudoJet) (bool, error) {
	c, err := h.Child(q)
	return len(c) > 0, err
}

// JetScaleForAlgorithm returns pt^2p of the matched jet. Only pp algorithms
// define it.
func (h *History) JetScaleForAlgorithm(q PseudoJet) (float64, error) {
	j, err := h.find(q)
	if err != nil {
		return 0, err
	}
	if h.def.Algorithm.IsEE() {
		return 0, errors.Wrapf(ErrUnsupported, "jet scale for %s", h.def.Algorithm)
	}
	return scalePow(j.Pt2(), h.expnt), nil
}
