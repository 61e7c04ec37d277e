// SPDX-License-Identifier: MIT
// Package: lvjet/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract (strict):
//   • Every constructor resolves its options into an immutable builderConfig.
//   • Determinism: same inputs/options/seed ⇒ identical layouts, byte for byte.
//   • Safety: never panic; return sentinel errors (see errors.go).
//   • Output shape: List[G] of Record{px, py, pz, E, extras...}, contiguous
//     offsets starting at 0, leaves in the configured byte order.

package builder

import (
	"math"

	"github.com/katalvlaran/lvjet/layout"
)

// Particle is one four-momentum as supplied by a caller.
type Particle struct {
	Px, Py, Pz, E float64
}

// Events builds one group per element of events.
//
// Errors: ErrLengthMismatch / ErrDuplicateField for bad extra fields.
// Complexity: O(total particles) time and space.
func Events(events [][]Particle, opts ...BuilderOption) (*layout.List, error) {
	offsets := make([]int64, 1, len(events)+1)
	var px, py, pz, e []float64
	for _, ev := range events {
		for _, p := range ev {
			px, py, pz, e = append(px, p.Px), append(py, p.Py), append(pz, p.Pz), append(e, p.E)
		}
		offsets = append(offsets, int64(len(px)))
	}

	return build(MethodEvents, px, py, pz, e, offsets, newBuilderConfig(opts...))
}

// Momenta builds groups from flat columns split by offsets (len = G+1,
// starting at 0, ending at len(px)).
//
// Errors: ErrLengthMismatch, ErrBadOffsets, ErrDuplicateField.
// Complexity: O(len(px)) time and space.
func Momenta(px, py, pz, e []float64, offsets []int64, opts ...BuilderOption) (*layout.List, error) {
	return build(MethodMomenta, px, py, pz, e, offsets, newBuilderConfig(opts...))
}

// Scalars builds a flat column with one value per group, honouring
// WithByteOrder and WithFloat32.
func Scalars(values []float64, opts ...BuilderOption) (*layout.Leaf, error) {
	cfg := newBuilderConfig(opts...)
	leaf, err := encode(values, cfg)
	if err != nil {
		return nil, builderErrorf(err, MethodScalars, "%d values", len(values))
	}

	return leaf, nil
}

// RandomEvents builds groups events of 1..maxParticles massless particles
// with pt in [MinPt, MaxPt), rapidity in [-MaxRapidity, MaxRapidity) and
// uniform azimuth. Requires WithSeed or WithRand.
//
// Errors: ErrBadSize, ErrNeedRandSource.
// Complexity: O(groups * maxParticles) time and space.
func RandomEvents(groups, maxParticles int, opts ...BuilderOption) (*layout.List, error) {
	if err := validateMin(MethodRandomEvents, groups, MinGroups); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRandomEvents, maxParticles, MinParticles); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(ErrNeedRandSource, MethodRandomEvents, "use WithSeed or WithRand")
	}

	offsets := make([]int64, 1, groups+1)
	var px, py, pz, e []float64
	for g := 0; g < groups; g++ {
		size := 1 + cfg.rng.Intn(maxParticles)
		for i := 0; i < size; i++ {
			pt := MinPt + (MaxPt-MinPt)*cfg.rng.Float64()
			y := MaxRapidity * (2*cfg.rng.Float64() - 1)
			phi := 2 * math.Pi * cfg.rng.Float64()
			px = append(px, pt*math.Cos(phi))
			py = append(py, pt*math.Sin(phi))
			pz = append(pz, pt*math.Sinh(y))
			e = append(e, pt*math.Cosh(y))
		}
		offsets = append(offsets, int64(len(px)))
	}

	return build(MethodRandomEvents, px, py, pz, e, offsets, cfg)
}

// build validates the columns and assembles the particle list.
func build(method string, px, py, pz, e []float64, offsets []int64, cfg builderConfig) (*layout.List, error) {
	if err := validateColumns(method, px, py, pz, e); err != nil {
		return nil, err
	}
	if err := validateOffsets(method, offsets, len(px)); err != nil {
		return nil, err
	}
	if err := validateExtras(method, cfg.extras, len(px)); err != nil {
		return nil, err
	}

	cols := []struct {
		name   string
		values []float64
	}{
		{layout.FieldPx, px}, {layout.FieldPy, py}, {layout.FieldPz, pz}, {layout.FieldE, e},
	}
	fields := make([]layout.Field, 0, len(cols)+len(cfg.extras))
	for _, c := range cols {
		leaf, err := encode(c.values, cfg)
		if err != nil {
			return nil, builderErrorf(err, method, "field %q", c.name)
		}
		fields = append(fields, layout.Field{Name: c.name, Content: leaf})
	}
	plain := cfg
	plain.float32 = false
	for _, x := range cfg.extras {
		leaf, err := encode(x.values, plain)
		if err != nil {
			return nil, builderErrorf(err, method, "field %q", x.name)
		}
		fields = append(fields, layout.Field{Name: x.name, Content: leaf})
	}

	var (
		rec *layout.Record
		err error
	)
	if cfg.recordName == "" {
		rec, err = layout.NewRecord(len(px), fields...)
	} else {
		rec, err = layout.NewNamedRecord(cfg.recordName, len(px), fields...)
	}
	if err != nil {
		return nil, builderErrorf(err, method, "particle record")
	}
	list, err := layout.NewListOffset(offsets, rec)
	if err != nil {
		return nil, builderErrorf(err, method, "particle list")
	}

	return list, nil
}
