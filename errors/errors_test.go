package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvjet/errors"
)

func TestTaxonomy_WrapKeepsIdentity(t *testing.T) {
	err := errors.Wrapf(errors.ErrInvalidArgument, "jets: count must be > 0, got %d", 0)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.False(t, errors.IsInvalidStructure(err))
	assert.Contains(t, err.Error(), "count must be > 0")
}

func TestTaxonomy_NilIsNothing(t *testing.T) {
	assert.False(t, errors.IsInvalidArgument(nil))
	assert.False(t, errors.IsInvalidStructure(nil))
	assert.False(t, errors.IsStructuralDesync(nil))
}

func TestDesyncf_IsAssertion(t *testing.T) {
	err := errors.Desyncf("rebuild: step %d expects a record, got %s", 2, "list")
	assert.True(t, errors.IsStructuralDesync(err))
	assert.True(t, errors.HasAssertionFailure(err))
	assert.Contains(t, err.Error(), "expects a record")
}
