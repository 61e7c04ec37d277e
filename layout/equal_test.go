package layout_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/layout"
)

func TestEqual_IgnoresByteOrder(t *testing.T) {
	native := layout.NewFloat64Leaf([]float64{1, 2.25, -8})
	big, err := layout.NewLeafBytes(layout.Float64, binary.BigEndian, bigEndianFloat64(1, 2.25, -8))
	require.NoError(t, err)
	assert.True(t, layout.Equal(native, big))
	assert.False(t, layout.Equal(native, layout.NewFloat64Leaf([]float64{1, 2.25, 8})))
	assert.False(t, layout.Equal(native, layout.NewInt64Leaf([]int64{1, 2, -8})), "dtype differs")
}

func TestEqual_Structure(t *testing.T) {
	mk := func(off []int64) layout.Node {
		return layout.Must(layout.NewListOffset(off, momentumRecord(t, 4)))
	}
	assert.True(t, layout.Equal(mk([]int64{0, 3, 4}), mk([]int64{0, 3, 4})))
	assert.False(t, layout.Equal(mk([]int64{0, 3, 4}), mk([]int64{0, 1, 4})))
	assert.False(t, layout.Equal(mk([]int64{0, 3, 4}), momentumRecord(t, 2)))
	assert.True(t, layout.Equal(nil, nil))
	assert.False(t, layout.Equal(nil, momentumRecord(t, 1)))
}

func TestFormat(t *testing.T) {
	list := layout.Must(layout.NewListOffset([]int64{0, 1}, momentumRecord(t, 1)))
	root := layout.Must(layout.NewRecord(1, layout.Field{Name: "event", Content: list}))
	assert.Equal(t, "{event: var * {px: float64, py: float64, pz: float64, E: float64}}", layout.Format(root))

	opt := layout.Must(layout.NewIndexed([]int64{-1}, layout.NewInt64Leaf([]int64{1})))
	u := layout.Must(layout.NewUnion([]int8{0}, []int64{0}, opt, layout.NewFloat32Leaf([]float32{1})))
	assert.Equal(t, "union[?int64, float32]", layout.Format(u))
}

func TestValidate(t *testing.T) {
	list := layout.Must(layout.NewListOffset([]int64{0, 3, 4}, momentumRecord(t, 4)))
	assert.NoError(t, layout.Validate(list))

	// WithContent skips validation; Validate catches the short content.
	broken := list.WithContent(momentumRecord(t, 2))
	assert.True(t, errors.IsInvalidStructure(layout.Validate(broken)))
}
