// SPDX-License-Identifier: MIT

package cluster

import (
	"context"

	"github.com/katalvlaran/lvjet/extract"
)

// Sequential is the reference Service: every group is clustered into its
// own History, one group after another.
type Sequential struct{}

// NewSequential returns the reference clustering service.
func NewSequential() *Sequential { return &Sequential{} }

// Cluster implements Service. The context is checked between groups.
func (s *Sequential) Cluster(ctx context.Context, in *extract.Buffers, def Definition) (Sequences, error) {
	if err := checkInput(in, def); err != nil {
		return nil, err
	}
	out := make(GroupSequences, in.Groups())
	for k := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h, err := NewHistory(def, particles(in, k))
		if err != nil {
			return nil, err
		}
		out[k] = h
	}
	return out, nil
}

var _ Service = (*Sequential)(nil)
var _ Sequence = (*History)(nil)
