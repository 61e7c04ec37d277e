// SPDX-License-Identifier: MIT
// Package: lvjet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • order       = binary.NativeEndian
//   • recordName  = DefaultRecordName ("Momentum4D")
//   • float32     = false               (momentum columns are float64)
//   • extras      = none
//   • rng         = nil                 (RandomEvents needs WithSeed/WithRand)

package builder

import (
	"encoding/binary"
	"math/rand"
)

// extraField is one caller-supplied column appended after the momenta.
type extraField struct {
	name   string
	values []float64
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Byte order of every emitted leaf.
	order binary.ByteOrder
	// Name of the particle record; "" leaves it unnamed.
	recordName string
	// Encode momentum columns as float32 instead of float64.
	float32 bool
	// Extra per-particle columns, in declaration order.
	extras []extraField
	// RNG for RandomEvents; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		order:      binary.NativeEndian,
		recordName: DefaultRecordName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
