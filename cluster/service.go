// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"math"

	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/extract"
)

// Sentinel errors reported by services.
var (
	// ErrTooManyJets indicates a request for more jets than particles.
	ErrTooManyJets = errors.New("cluster: more jets requested than particles")

	// ErrJetNotFound indicates a query jet that is not an inclusive jet of
	// its group.
	ErrJetNotFound = errors.New("cluster: jet not in this cluster sequence")

	// ErrUnsupported indicates a query the service does not implement.
	ErrUnsupported = errors.New("cluster: query not supported by this service")
)

// Unset sentinels for numeric parameters the caller did not supply.
const (
	UnsetFloat = 999.0
	UnsetInt   = 999
)

// Service clusters every group of one extracted subtree.
//
// Implementations must not retain in beyond the call; the engine may reuse
// its slices. Errors are passed to the caller unmodified.
type Service interface {
	Cluster(ctx context.Context, in *extract.Buffers, def Definition) (Sequences, error)
}

// Sequences is the per-subtree handle returned by a Service.
type Sequences interface {
	// Groups returns the number of groups, equal to in.Groups().
	Groups() int
	// Group returns the sequence of group k.
	Group(k int) Sequence
}

// Sequence answers every query about one clustered group.
//
// Jets passed to the query family (ExclusiveSubjets and below) are free
// momenta supplied by the caller; implementations locate them among their
// own jets and report ErrJetNotFound when they cannot.
type Sequence interface {
	NParticles() (int, error)
	Q() (float64, error)
	Q2() (float64, error)
	NExclusiveJets(dcut float64) (int, error)
	ExclusiveDmerge(njets int) (float64, error)
	ExclusiveDmergeMax(njets int) (float64, error)
	ExclusiveYmerge(njets int) (float64, error)
	ExclusiveYmergeMax(njets int) (float64, error)

	InclusiveJets(ptmin float64) ([]PseudoJet, error)
	ExclusiveJets(njets int) ([]PseudoJet, error)
	ExclusiveJetsDcut(dcut float64) ([]PseudoJet, error)
	ExclusiveJetsUpTo(njets int) ([]PseudoJet, error)
	ExclusiveJetsYcut(ycut float64) ([]PseudoJet, error)
	UnclusteredParticles() ([]PseudoJet, error)
	ChildlessPseudojets() ([]PseudoJet, error)
	Jets() ([]PseudoJet, error)

	UniqueHistoryOrder() ([]int, error)
	ConstituentIndex(ptmin float64) ([][]int, error)
	ExclusiveJetsConstituentIndex(njets int) ([][]int, error)

	ExclusiveSoftdrop(p SoftdropParams) ([]Groomed, error)
	ExclusiveLund(njets int) ([][]LundStep, error)
	ExclusiveECF(p ECFParams) ([]float64, error)
	Njettiness(p NjettinessParams) ([]float64, error)

	ExclusiveSubjets(jet PseudoJet, dcut float64) ([]PseudoJet, error)
	ExclusiveSubjetsN(jet PseudoJet, nsub int) ([]PseudoJet, error)
	ExclusiveSubjetsUpTo(jet PseudoJet, nsub int) ([]PseudoJet, error)
	ExclusiveSubdmerge(jet PseudoJet, nsub int) (float64, error)
	ExclusiveSubdmergeMax(jet PseudoJet, nsub int) (float64, error)
	NExclusiveSubjets(jet PseudoJet, dcut float64) (int, error)
	HasParents(jet PseudoJet) (bool, error)
	HasChild(jet PseudoJet) (bool, error)
	Parents(jet PseudoJet) ([]PseudoJet, error)
	Child(jet PseudoJet) ([]PseudoJet, error)
	JetScaleForAlgorithm(jet PseudoJet) (float64, error)
}

// GroupSequences is the slice-backed Sequences used by the services of
// this package.
type GroupSequences []Sequence

func (g GroupSequences) Groups() int          { return len(g) }
func (g GroupSequences) Group(k int) Sequence { return g[k] }

// CloseOffsets returns offsets ending with total. Producers that report only
// group starts get the final boundary appended; well-formed offsets are
// returned as is.
func CloseOffsets(offsets []int64, total int64) []int64 {
	if n := len(offsets); n > 0 && offsets[n-1] == total {
		return offsets
	}
	out := make([]int64, len(offsets), len(offsets)+1)
	copy(out, offsets)
	return append(out, total)
}

// Unsupported answers every Sequence query with ErrUnsupported. Partial
// implementations embed it and override what they support.
type Unsupported struct{}

func unsupported(op string) error { return errors.Wrapf(ErrUnsupported, "%s", op) }

func (Unsupported) NParticles() (int, error) { return 0, unsupported("n_particles") }
func (Unsupported) Q() (float64, error)      { return 0, unsupported("Q") }
func (Unsupported) Q2() (float64, error)     { return 0, unsupported("Q2") }
func (Unsupported) NExclusiveJets(float64) (int, error) {
	return 0, unsupported("n_exclusive_jets")
}
func (Unsupported) ExclusiveDmerge(int) (float64, error) {
	return 0, unsupported("exclusive_dmerge")
}
func (Unsupported) ExclusiveDmergeMax(int) (float64, error) {
	return 0, unsupported("exclusive_dmerge_max")
}
func (Unsupported) ExclusiveYmerge(int) (float64, error) {
	return 0, unsupported("exclusive_ymerge")
}
func (Unsupported) ExclusiveYmergeMax(int) (float64, error) {
	return 0, unsupported("exclusive_ymerge_max")
}
func (Unsupported) InclusiveJets(float64) ([]PseudoJet, error) {
	return nil, unsupported("inclusive_jets")
}
func (Unsupported) ExclusiveJets(int) ([]PseudoJet, error) {
	return nil, unsupported("exclusive_jets")
}
func (Unsupported) ExclusiveJetsDcut(float64) ([]PseudoJet, error) {
	return nil, unsupported("exclusive_jets(dcut)")
}
func (Unsupported) ExclusiveJetsUpTo(int) ([]PseudoJet, error) {
	return nil, unsupported("exclusive_jets_up_to")
}
func (Unsupported) ExclusiveJetsYcut(float64) ([]PseudoJet, error) {
	return nil, unsupported("exclusive_jets_ycut")
}
func (Unsupported) UnclusteredParticles() ([]PseudoJet, error) {
	return nil, unsupported("unclustered_particles")
}
func (Unsupported) ChildlessPseudojets() ([]PseudoJet, error) {
	return nil, unsupported("childless_pseudojets")
}
func (Unsupported) Jets() ([]PseudoJet, error) { return nil, unsupported("jets") }
func (Unsupported) UniqueHistoryOrder() ([]int, error) {
	return nil, unsupported("unique_history_order")
}
func (Unsupported) ConstituentIndex(float64) ([][]int, error) {
	return nil, unsupported("constituent_index")
}
func (Unsupported) ExclusiveJetsConstituentIndex(int) ([][]int, error) {
	return nil, unsupported("exclusive_jets_constituent_index")
}
func (Unsupported) ExclusiveSoftdrop(SoftdropParams) ([]Groomed, error) {
	return nil, unsupported("exclusive_jets_softdrop_grooming")
}
func (Unsupported) ExclusiveLund(int) ([][]LundStep, error) {
	return nil, unsupported("exclusive_jets_lund_declusterings")
}
func (Unsupported) ExclusiveECF(ECFParams) ([]float64, error) {
	return nil, unsupported("exclusive_jets_energy_correlator")
}
func (Unsupported) Njettiness(NjettinessParams) ([]float64, error) {
	return nil, unsupported("njettiness")
}
func (Unsupported) ExclusiveSubjets(PseudoJet, float64) ([]PseudoJet, error) {
	return nil, unsupported("exclusive_subjets")
}
func (Unsupported) ExclusiveSubjetsN(PseudoJet, int) ([]PseudoJet, error) {
	return nil, unsupported("exclusive_subjets(nsub)")
}
func (Unsupported) ExclusiveSubjetsUpTo(PseudoJet, int) ([]PseudoJet, error) {
	return nil, unsupported("exclusive_subjets_up_to")
}
func (Unsupported) ExclusiveSubdmerge(PseudoJet, int) (float64, error) {
	return 0, unsupported("exclusive_subdmerge")
}
func (Unsupported) ExclusiveSubdmergeMax(PseudoJet, int) (float64, error) {
	return 0, unsupported("exclusive_subdmerge_max")
}
func (Unsupported) NExclusiveSubjets(PseudoJet, float64) (int, error) {
	return 0, unsupported("n_exclusive_subjets")
}
func (Unsupported) HasParents(PseudoJet) (bool, error) { return false, unsupported("has_parents") }
func (Unsupported) HasChild(PseudoJet) (bool, error)   { return false, unsupported("has_child") }
func (Unsupported) Parents(PseudoJet) ([]PseudoJet, error) {
	return nil, unsupported("parents")
}
func (Unsupported) Child(PseudoJet) ([]PseudoJet, error) { return nil, unsupported("child") }
func (Unsupported) JetScaleForAlgorithm(PseudoJet) (float64, error) {
	return 0, unsupported("jet_scale_for_algorithm")
}

// particles converts group k of in to free pseudojets.
func particles(in *extract.Buffers, k int) []PseudoJet {
	px, py, pz, e := in.Group(k)
	out := make([]PseudoJet, len(px))
	for i := range out {
		out[i] = NewPseudoJet(px[i], py[i], pz[i], e[i])
	}
	return out
}

// checkInput validates the arguments every service receives.
func checkInput(in *extract.Buffers, def Definition) error {
	if in == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "cluster: nil buffers")
	}
	if err := in.Validate(); err != nil {
		return err
	}
	return def.Validate()
}

var inf = math.Inf(1)
