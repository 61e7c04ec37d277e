// SPDX-License-Identifier: MIT
// Package: lvjet/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"encoding/binary"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before the layout is assembled.
type BuilderOption func(*builderConfig)

// WithByteOrder encodes every emitted leaf in order. Panics on nil.
func WithByteOrder(order binary.ByteOrder) BuilderOption {
	if order == nil {
		panic("builder: WithByteOrder(nil)")
	}
	return func(c *builderConfig) {
		c.order = order
	}
}

// WithRecordName names the particle record. An empty name leaves the
// record unnamed; particle lists stay clusterable either way.
func WithRecordName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.recordName = name
	}
}

// WithExtraField appends a per-particle float64 column named name after
// the momentum fields. Panics on an empty name or nil values; a length
// mismatch surfaces from the builder as ErrLengthMismatch.
func WithExtraField(name string, values []float64) BuilderOption {
	if name == "" {
		panic("builder: WithExtraField with empty name")
	}
	if values == nil {
		panic("builder: WithExtraField(" + name + ", nil)")
	}
	return func(c *builderConfig) {
		c.extras = append(c.extras, extraField{name: name, values: values})
	}
}

// WithFloat32 stores the momentum columns as float32.
func WithFloat32() BuilderOption {
	return func(c *builderConfig) {
		c.float32 = true
	}
}

// WithRand provides an explicit RNG for RandomEvents. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
