// SPDX-License-Identifier: MIT

package locate

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/layout"
	"github.com/katalvlaran/lvjet/logger"
)

// ErrNilTree is returned when a nil root is passed to a locator.
var ErrNilTree = errors.Mark(errors.New("locate: tree is nil"), errors.ErrInvalidStructure)

// Match is one clusterable subtree found by Locate.
type Match struct {
	// Path ends with a None step; Path.Target addresses Subtree.
	Path layout.Path
	// Subtree is the clusterable List.
	Subtree *layout.List
	// Record is the particle record inside Subtree with wrappers stripped.
	Record *layout.Record
}

// QueryMatch is one query unit found by LocateQuery.
type QueryMatch struct {
	// Path ends with a None step; Path.Target addresses Unit.
	Path layout.Path
	// Unit is either a List of momentum records or a (possibly wrapped)
	// momentum Record.
	Unit layout.Node
	// Record is the momentum record inside Unit with wrappers stripped.
	Record *layout.Record
}

// Pair links a query match to the primary match sharing its path.
type Pair struct {
	Primary int // index into the primary matches
	Query   int // index into the query matches
}

// Option configures a locator call.
type Option func(*Options)

// Options holds the per-call locator settings.
type Options struct {
	// Ctx is checked before every node visit; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, stops descent below that many path steps.
	// Default is -1 (no limit).
	MaxDepth int

	// Logger receives a debug entry for every match.
	Logger *zap.SugaredLogger
}

// DefaultOptions returns Options with a background context, no depth limit
// and the package-level logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Logger:   logger.Logger,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to paths of at most limit steps.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLogger routes match logging to l. A nil l is ignored.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
