// SPDX-License-Identifier: MIT

// Package builder assembles particle layouts for tests, examples and
// callers that hold plain Go slices instead of columnar buffers.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Events:        [][]Particle → List[G] of Record{px,py,pz,E}.
//     – Momenta:       flat columns plus offsets → the same shape.
//     – Scalars:       one value per group → a flat leaf.
//     – RandomEvents:  reproducible massless events (needs WithSeed/WithRand).
//   - Functional options (BuilderOption):
//     – WithByteOrder:   byte order of every emitted leaf (default native).
//     – WithRecordName:  particle record name (default "Momentum4D").
//     – WithExtraField:  an extra per-particle column, kept after the momenta.
//     – WithFloat32:     float32 momentum columns.
//     – WithSeed/WithRand: RNG for RandomEvents.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors marked as
//     errors.ErrInvalidArgument (ErrBadSize, ErrLengthMismatch, ErrBadOffsets,
//     ErrDuplicateField, ErrNeedRandSource).
//   - Every produced List is clusterable: locate.Locate finds it at its own
//     position and extract reads it back to the same float64 values (float32
//     columns round to float32 precision).
package builder
