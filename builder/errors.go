// SPDX-License-Identifier: MIT
// Package: lvjet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Every sentinel is marked as errors.ErrInvalidArgument, so callers may
//     branch either on the builder sentinel or on the lvjet taxonomy.
//   • Option constructors panic on meaningless inputs; builders never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvjet/errors"
)

// ErrBadSize indicates a negative or too small size (groups, particles).
var ErrBadSize = errors.Mark(errors.New("builder: invalid size"), errors.ErrInvalidArgument)

// ErrLengthMismatch indicates column slices of different lengths, or an
// extra field whose length differs from the particle count.
var ErrLengthMismatch = errors.Mark(errors.New("builder: column lengths differ"), errors.ErrInvalidArgument)

// ErrBadOffsets indicates offsets that are empty, decreasing, or do not
// span the columns.
var ErrBadOffsets = errors.Mark(errors.New("builder: invalid offsets"), errors.ErrInvalidArgument)

// ErrDuplicateField indicates an extra field that clashes with a momentum
// field or another extra field.
var ErrDuplicateField = errors.Mark(errors.New("builder: duplicate field"), errors.ErrInvalidArgument)

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.Mark(errors.New("builder: rng is required"), errors.ErrInvalidArgument)

// builderErrorf wraps sentinel with the method context:
// "<Method>: <formatted message>: <sentinel>".
func builderErrorf(sentinel error, method, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, "%s: %s", method, fmt.Sprintf(format, args...))
}
