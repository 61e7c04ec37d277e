// SPDX-License-Identifier: MIT

// Package errors provides error handling for lvjet.
//
// This package re-exports github.com/cockroachdb/errors and adds the error
// taxonomy shared by every lvjet package:
//
//   - ErrInvalidStructure  the input (or query) tree holds nothing clusterable,
//     or a buffer/offset layout is malformed.
//   - ErrInvalidArgument   a caller parameter is out of range or a mutually
//     exclusive pair was supplied inconsistently. Reported before any
//     clustering work starts.
//   - ErrStructuralDesync  the locator and the rebuilder disagree about the
//     shape of a tree. Always a programming error; never retried.
//
// Usage:
//
//	if count <= 0 {
//	    return errors.Wrapf(errors.ErrInvalidArgument, "jets: count must be > 0, got %d", count)
//	}
//
//	if errors.Is(err, errors.ErrInvalidStructure) {
//	    // report to caller
//	}
//
// Errors reported by a clustering service are returned unmodified.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is          = crdb.Is
	IsAny       = crdb.IsAny
	As          = crdb.As
	Unwrap      = crdb.Unwrap
	UnwrapAll   = crdb.UnwrapAll
	GetAllHints = crdb.GetAllHints
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	IsAssertionFailure  = crdb.IsAssertionFailure
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Taxonomy roots. Wrap these with Wrapf to add context while preserving
// errors.Is matching.
var (
	// ErrInvalidStructure indicates a tree without any clusterable region, a
	// query tree without any matching record, or malformed buffers.
	ErrInvalidStructure = New("invalid structure")

	// ErrInvalidArgument indicates a rejected caller parameter.
	ErrInvalidArgument = New("invalid argument")

	// ErrStructuralDesync indicates that a recorded path no longer fits the
	// tree it is applied to.
	ErrStructuralDesync = New("structural desync")
)

// IsInvalidStructure reports whether err is or wraps ErrInvalidStructure.
func IsInvalidStructure(err error) bool {
	return err != nil && Is(err, ErrInvalidStructure)
}

// IsInvalidArgument reports whether err is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return err != nil && Is(err, ErrInvalidArgument)
}

// IsStructuralDesync reports whether err is or wraps ErrStructuralDesync.
func IsStructuralDesync(err error) bool {
	return err != nil && Is(err, ErrStructuralDesync)
}

// Desyncf builds an assertion failure marked as ErrStructuralDesync.
func Desyncf(format string, args ...interface{}) error {
	return Mark(AssertionFailedf(format, args...), ErrStructuralDesync)
}
