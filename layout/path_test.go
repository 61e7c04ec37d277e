package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/layout"
)

func TestPath_StringEqualTarget(t *testing.T) {
	p := layout.Path{layout.FieldStep("event"), layout.DescendStep()}
	assert.Equal(t, `["event", None]`, p.String())
	assert.Equal(t, `[0, None]`, layout.Path{layout.AltStep(0), layout.DescendStep()}.String())
	assert.Equal(t, "[]", layout.Path{}.String())

	q := layout.Path{}.Append(layout.FieldStep("event"), layout.DescendStep())
	assert.True(t, p.Equal(q))
	assert.False(t, p.Equal(layout.Path{layout.FieldStep("event")}))
	assert.False(t, p.Equal(layout.Path{layout.AltStep(0), layout.DescendStep()}))

	target, ok := p.Target()
	require.True(t, ok)
	assert.True(t, target.Equal(layout.Path{layout.FieldStep("event")}))
	_, ok = target.Target()
	assert.False(t, ok)
}

func TestPath_AppendDoesNotAlias(t *testing.T) {
	base := make(layout.Path, 1, 8)
	base[0] = layout.FieldStep("a")
	x := base.Append(layout.FieldStep("x"))
	y := base.Append(layout.FieldStep("y"))
	assert.Equal(t, "x", x[1].Name())
	assert.Equal(t, "y", y[1].Name())
}

func TestResolve(t *testing.T) {
	rec := momentumRecord(t, 4)
	list := layout.Must(layout.NewListOffset([]int64{0, 3, 4}, rec))
	root := layout.Must(layout.NewRecord(2, layout.Field{Name: "event", Content: list}))

	n, err := layout.Resolve(root, layout.Path{layout.FieldStep("event")})
	require.NoError(t, err)
	assert.Same(t, list, n)

	n, err = layout.Resolve(root, layout.Path{layout.FieldStep("event"), layout.DescendStep()})
	require.NoError(t, err)
	assert.Same(t, rec, n)

	_, err = layout.Resolve(root, layout.Path{layout.AltStep(0)})
	assert.True(t, errors.IsStructuralDesync(err))
	_, err = layout.Resolve(root, layout.Path{layout.FieldStep("missing")})
	assert.True(t, errors.IsStructuralDesync(err))
}
