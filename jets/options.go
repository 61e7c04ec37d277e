// SPDX-License-Identifier: MIT

package jets

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/logger"
)

// Option configures an Engine.
type Option func(*Options)

// Options holds the Engine settings.
type Options struct {
	// Service clusters each subtree; defaults to cluster.NewSequential().
	Service cluster.Service

	// Workers bounds the number of subtrees processed at once. Default 1.
	Workers int

	// MaxDepth limits the locator walk; -1 (default) means unlimited.
	MaxDepth int

	// Logger receives discovery and per-operation debug entries.
	Logger *zap.SugaredLogger

	// Metrics, when non-nil, records operation counts and durations.
	Metrics *Metrics
}

// DefaultOptions returns the reference service, one worker, no depth limit,
// the package-level logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Service:  cluster.NewSequential(),
		Workers:  1,
		MaxDepth: -1,
		Logger:   logger.Logger,
	}
}

// WithService sets the clustering service. Panics on nil.
func WithService(s cluster.Service) Option {
	if s == nil {
		panic("jets: WithService(nil)")
	}
	return func(o *Options) {
		o.Service = s
	}
}

// WithWorkers bounds per-subtree concurrency. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("jets: WithWorkers requires n >= 1")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxDepth limits how deep the locator descends.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLogger routes Engine logging to l. A nil l is ignored.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records operation metrics in m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
