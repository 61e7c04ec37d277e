package jets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/jets"
)

func TestSelector(t *testing.T) {
	tests := []struct {
		name  string
		sel   jets.Selector
		valid bool
		text  string
	}{
		{"count", jets.ByCount(3), true, "njets=3"},
		{"dcut", jets.ByDcut(0.5), true, "dcut=0.5"},
		{"zero dcut", jets.ByDcut(0), true, "dcut=0"},
		{"zero count", jets.ByCount(0), false, "njets=0"},
		{"negative dcut", jets.ByDcut(-2), false, "dcut=-2"},
		{"empty", jets.Selector{}, false, "none"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sel.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.IsInvalidArgument(err))
			}
			assert.Equal(t, tc.text, tc.sel.String())
		})
	}
}

func TestSelectorFromLegacy(t *testing.T) {
	sel, err := jets.SelectorFromLegacy(2, -1)
	require.NoError(t, err)
	n, ok := sel.Count()
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	sel, err = jets.SelectorFromLegacy(-1, 0.3)
	require.NoError(t, err)
	d, ok := sel.Dcut()
	assert.True(t, ok)
	assert.Equal(t, 0.3, d)

	_, err = jets.SelectorFromLegacy(2, 0.3)
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = jets.SelectorFromLegacy(-1, -1)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestOptions_PanicOnBadValues(t *testing.T) {
	assert.Panics(t, func() { jets.WithService(nil) })
	assert.Panics(t, func() { jets.WithWorkers(0) })

	o := jets.DefaultOptions()
	assert.Equal(t, 1, o.Workers)
	assert.Equal(t, -1, o.MaxDepth)
	assert.NotNil(t, o.Service)
	assert.NotNil(t, o.Logger)
	jets.WithLogger(nil)(&o)
	assert.NotNil(t, o.Logger)
}
