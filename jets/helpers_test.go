package jets_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/extract"
	"github.com/katalvlaran/lvjet/jets"
	"github.com/katalvlaran/lvjet/layout"
)

var kt = cluster.Definition{Algorithm: cluster.Kt, R: 1}

// momenta builds a Momentum4D record, optionally with extra int64 fields
// holding 0..n-1.
func momenta(px, py, pz, e []float64, extra ...string) *layout.Record {
	n := len(px)
	fields := []layout.Field{
		{Name: layout.FieldPx, Content: layout.NewFloat64Leaf(px)},
		{Name: layout.FieldPy, Content: layout.NewFloat64Leaf(py)},
		{Name: layout.FieldPz, Content: layout.NewFloat64Leaf(pz)},
		{Name: layout.FieldE, Content: layout.NewFloat64Leaf(e)},
	}
	for _, name := range extra {
		ids := make([]int64, n)
		for i := range ids {
			ids[i] = int64(i)
		}
		fields = append(fields, layout.Field{Name: name, Content: layout.NewInt64Leaf(ids)})
	}
	return layout.Must(layout.NewNamedRecord(layout.MomentumRecordName, n, fields...))
}

// particles is two groups: a collinear pair plus one wide particle, and a
// lone particle.
func particles(extra ...string) *layout.Record {
	return momenta(
		[]float64{10, 2, 0, 0},
		[]float64{0, 0, -5, 3},
		[]float64{0, 0, 5, 0},
		[]float64{10, 2, math.Sqrt(50), 3},
		extra...,
	)
}

// eventTree is {event: List[particles]} with starts [0,3] and stops [3,4].
func eventTree(extra ...string) *layout.Record {
	l := layout.Must(layout.NewList([]int64{0, 3}, []int64{3, 4}, particles(extra...)))
	return layout.Must(layout.NewRecord(2, layout.Field{Name: "event", Content: l}))
}

func newEngine(t *testing.T, tree layout.Node, def cluster.Definition, opts ...jets.Option) *jets.Engine {
	t.Helper()
	e, err := jets.NewEngine(context.Background(), tree, def, opts...)
	require.NoError(t, err)
	return e
}

func field(t *testing.T, n layout.Node, name string) layout.Node {
	t.Helper()
	out, err := layout.Resolve(n, layout.Path{layout.FieldStep(name)})
	require.NoError(t, err)
	return out
}

func leaf(t *testing.T, n layout.Node) *layout.Leaf {
	t.Helper()
	l, ok := n.(*layout.Leaf)
	require.True(t, ok, "want a leaf, got %s", layout.Format(n))
	return l
}

func list(t *testing.T, n layout.Node) *layout.List {
	t.Helper()
	l, ok := n.(*layout.List)
	require.True(t, ok, "want a list, got %s", layout.Format(n))
	return l
}

// read decodes a List of Momentum4D back into buffers.
func read(t *testing.T, n layout.Node) *extract.Buffers {
	t.Helper()
	b, err := extract.Extract(list(t, n))
	require.NoError(t, err)
	return b
}

// queryTree is {event: Momentum4D} holding one jet per group.
func queryTree(px, py, pz, e []float64) *layout.Record {
	return layout.Must(layout.NewRecord(len(px), layout.Field{Name: "event", Content: momenta(px, py, pz, e)}))
}

// hardestJets are the inclusive kt jets of particles with the largest pt
// in each group.
func hardestJets() *layout.Record {
	return queryTree([]float64{12, 0}, []float64{0, 3}, []float64{0, 0}, []float64{12, 3})
}
