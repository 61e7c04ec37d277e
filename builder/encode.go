// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/lvjet/layout"
)

// encode writes values in the configured byte order and width.
func encode(values []float64, cfg builderConfig) (*layout.Leaf, error) {
	if cfg.float32 {
		buf := make([]byte, 4*len(values))
		for i, v := range values {
			cfg.order.PutUint32(buf[4*i:], math.Float32bits(float32(v)))
		}
		return layout.NewLeafBytes(layout.Float32, cfg.order, buf)
	}
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		cfg.order.PutUint64(buf[8*i:], math.Float64bits(v))
	}

	return layout.NewLeafBytes(layout.Float64, cfg.order, buf)
}
