package jets_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/extract"
	"github.com/katalvlaran/lvjet/jets"
	"github.com/katalvlaran/lvjet/layout"
)

func TestNewEngine_EventScenario(t *testing.T) {
	e := newEngine(t, eventTree(), kt)
	require.Equal(t, 1, e.Subtrees())
	assert.Equal(t, `["event", None]`, e.Paths()[0].String())
	assert.Equal(t, kt, e.Definition())

	out, err := e.NParticles()
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, leaf(t, field(t, out, "event")).Int64s())
}

func TestNewEngine_UnionScenario(t *testing.T) {
	evs := layout.Must(layout.NewListOffset([]int64{0, 3, 4}, particles()))
	other := layout.Must(layout.NewRecord(1,
		layout.Field{Name: "x", Content: layout.NewFloat64Leaf([]float64{1})},
	))
	u := layout.Must(layout.NewUnion([]int8{0, 1, 0}, []int64{0, 0, 1}, evs, other))

	e := newEngine(t, u, kt)
	assert.Equal(t, `[0, None]`, e.Paths()[0].String())

	out, err := e.NParticles()
	require.NoError(t, err)
	alt, err := layout.Resolve(out, layout.Path{layout.AltStep(0)})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, leaf(t, alt).Int64s())
	kept, err := layout.Resolve(out, layout.Path{layout.AltStep(1)})
	require.NoError(t, err)
	assert.Same(t, other, kept)
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := jets.NewEngine(context.Background(), eventTree(), cluster.Definition{Algorithm: cluster.AntiKt})
	assert.True(t, errors.IsInvalidArgument(err))

	plain := layout.Must(layout.NewRecord(1,
		layout.Field{Name: "x", Content: layout.NewFloat64Leaf([]float64{1})},
	))
	_, err = jets.NewEngine(context.Background(), plain, kt)
	assert.ErrorIs(t, err, jets.ErrNothingToCluster)
	assert.True(t, errors.IsInvalidStructure(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = jets.NewEngine(ctx, eventTree(), kt)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Scalars(t *testing.T) {
	e := newEngine(t, eventTree(), kt)

	q, err := e.Q()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{12 + math.Sqrt(50), 3}, leaf(t, field(t, q, "event")).Float64s(), 1e-12)

	q2, err := e.Q2()
	require.NoError(t, err)
	assert.InDelta(t, 9.0, leaf(t, field(t, q2, "event")).Float64At(1), 1e-12)

	n, err := e.NExclusiveJets(30)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0}, leaf(t, field(t, n, "event")).Int64s())

	d, err := e.ExclusiveDmerge(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{25, 0}, leaf(t, field(t, d, "event")).Float64s())

	d, err = e.ExclusiveDmergeMax(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, leaf(t, field(t, d, "event")).Float64s())

	y, err := e.ExclusiveYmerge(1)
	require.NoError(t, err)
	qq := 12 + math.Sqrt(50)
	assert.InDelta(t, 25/(qq*qq), leaf(t, field(t, y, "event")).Float64At(0), 1e-12)
}

func TestEngine_CountMustBePositive(t *testing.T) {
	e := newEngine(t, eventTree(), kt)

	_, err := e.ExclusiveDmerge(0)
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = e.ExclusiveYmergeMax(-3)
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = e.ExclusiveJetsUpTo(0)
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = e.ExclusiveJets(jets.ByCount(0))
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = e.ExclusiveJets(jets.Selector{})
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = e.ExclusiveJetsLundDeclusterings(0)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestEngine_InclusiveJets(t *testing.T) {
	e := newEngine(t, eventTree(), kt)

	out, err := e.InclusiveJets(0)
	require.NoError(t, err)
	b := read(t, field(t, out, "event"))
	assert.Equal(t, []int64{0, 2}, b.Starts)
	assert.Equal(t, []int64{2, 3}, b.Stops)
	assert.Equal(t, []float64{12, 0, 0}, b.Px)
	assert.Equal(t, []float64{0, -5, 3}, b.Py)

	out, err = e.InclusiveJets(6)
	require.NoError(t, err)
	b = read(t, field(t, out, "event"))
	assert.Equal(t, []int64{0, 1}, b.Starts)
	assert.Equal(t, []int64{1, 1}, b.Stops)
}

func TestEngine_ExclusiveJets(t *testing.T) {
	e := newEngine(t, eventTree(), kt)

	out, err := e.ExclusiveJets(jets.ByCount(1))
	require.NoError(t, err)
	b := read(t, field(t, out, "event"))
	assert.Equal(t, []float64{12, 0}, b.Px)

	out, err = e.ExclusiveJets(jets.ByDcut(10))
	require.NoError(t, err)
	b = read(t, field(t, out, "event"))
	assert.Equal(t, []int64{0, 2}, b.Starts)
	assert.Equal(t, []int64{2, 2}, b.Stops)

	out, err = e.ExclusiveJetsUpTo(2)
	require.NoError(t, err)
	b = read(t, field(t, out, "event"))
	assert.Equal(t, 3, b.Len())
}

func TestEngine_HistoryViews(t *testing.T) {
	e := newEngine(t, eventTree(), kt)

	out, err := e.UniqueHistoryOrder()
	require.NoError(t, err)
	order := list(t, field(t, out, "event"))
	assert.Equal(t, 6, order.GroupLen(0))
	assert.Equal(t, 2, order.GroupLen(1))

	out, err = e.Jets()
	require.NoError(t, err)
	assert.Equal(t, 4+1, read(t, field(t, out, "event")).Len())

	// a complete clustering leaves nothing unmerged
	out, err = e.UnclusteredParticles()
	require.NoError(t, err)
	assert.Zero(t, read(t, field(t, out, "event")).Len())

	out, err = e.ChildlessPseudojets()
	require.NoError(t, err)
	assert.Zero(t, read(t, field(t, out, "event")).Len())
}

func TestEngine_ConstituentIndex(t *testing.T) {
	e := newEngine(t, eventTree(), kt)

	out, err := e.ConstituentIndex(0)
	require.NoError(t, err)
	outer := list(t, field(t, out, "event"))
	assert.Equal(t, 2, outer.GroupLen(0))
	assert.Equal(t, 1, outer.GroupLen(1))
	inner := list(t, outer.Content())
	assert.Equal(t, []int64{0, 2, 3}, inner.Starts())
	assert.Equal(t, []int64{0, 1, 2, 0}, leaf(t, inner.Content()).Int64s())
}

func TestEngine_ConstituentsKeepCallerFields(t *testing.T) {
	e := newEngine(t, eventTree("id"), kt)

	out, err := e.Constituents(0)
	require.NoError(t, err)
	outer := list(t, field(t, out, "event"))
	inner := list(t, outer.Content())
	idx, ok := inner.Content().(*layout.Indexed)
	require.True(t, ok)
	assert.Equal(t, []int64{0, 1, 2, 3}, idx.Index())
	rec, ok := idx.Content().(*layout.Record)
	require.True(t, ok)
	assert.True(t, rec.HasFields("px", "py", "pz", "E", "id"))

	out, err = e.ExclusiveJetsConstituents(1)
	require.NoError(t, err)
	outer = list(t, field(t, out, "event"))
	inner = list(t, outer.Content())
	assert.Equal(t, []int64{0, 1, 3}, inner.Content().(*layout.Indexed).Index())
}

func TestEngine_IdentityRoundTrip(t *testing.T) {
	evs := layout.Must(layout.NewListOffset([]int64{0, 3, 4}, particles()))
	tree := layout.Must(layout.NewRecord(2, layout.Field{Name: "event", Content: evs}))

	e := newEngine(t, tree, kt, jets.WithService(cluster.Identity{}))
	out, err := e.InclusiveJets(0)
	require.NoError(t, err)
	assert.True(t, layout.Equal(tree, out), "got %s", layout.Format(out))

	_, err = e.ExclusiveDmerge(1)
	assert.ErrorIs(t, err, cluster.ErrUnsupported)
}

var errBrokenBackend = errors.New("backend down")

// failSecond delegates to the sequential service but fails its second call.
type failSecond struct {
	calls atomic.Int32
	next  cluster.Service
}

func (f *failSecond) Cluster(ctx context.Context, in *extract.Buffers, def cluster.Definition) (cluster.Sequences, error) {
	if f.calls.Add(1) == 2 {
		return nil, errBrokenBackend
	}
	return f.next.Cluster(ctx, in, def)
}

func TestNewEngine_ServiceFailureAbortsAll(t *testing.T) {
	evs := layout.Must(layout.NewListOffset([]int64{0, 3, 4}, particles()))
	tree := layout.Must(layout.NewRecord(2,
		layout.Field{Name: "a", Content: evs},
		layout.Field{Name: "b", Content: evs},
	))

	for _, workers := range []int{1, 2} {
		svc := &failSecond{next: cluster.NewSequential()}
		e, err := jets.NewEngine(context.Background(), tree, kt,
			jets.WithService(svc), jets.WithWorkers(workers))
		assert.Nil(t, e, "workers=%d", workers)
		require.Error(t, err, "workers=%d", workers)
		assert.True(t, errors.Is(err, errBrokenBackend), "workers=%d", workers)
		assert.Equal(t, errBrokenBackend, err, "workers=%d: error is returned unmodified", workers)
		assert.EqualValues(t, 2, svc.calls.Load())
	}
}

func TestEngine_SiblingsWithWorkers(t *testing.T) {
	evs := layout.Must(layout.NewListOffset([]int64{0, 3, 4}, particles()))
	meta := layout.NewInt64Leaf([]int64{7, 8})
	tree := layout.Must(layout.NewRecord(2,
		layout.Field{Name: "a", Content: evs},
		layout.Field{Name: "meta", Content: meta},
		layout.Field{Name: "b", Content: evs},
	))

	serial := newEngine(t, tree, kt)
	parallel := newEngine(t, tree, kt, jets.WithWorkers(4))
	require.Equal(t, 2, parallel.Subtrees())

	want, err := serial.InclusiveJets(0)
	require.NoError(t, err)
	got, err := parallel.InclusiveJets(0)
	require.NoError(t, err)
	assert.True(t, layout.Equal(want, got))
	assert.Same(t, meta, field(t, got, "meta"))
	assert.True(t, layout.Equal(field(t, got, "a"), field(t, got, "b")))
}

func TestEngine_Composites(t *testing.T) {
	e := newEngine(t, eventTree(), kt)

	out, err := e.ExclusiveJetsSoftdropGrooming(cluster.DefaultSoftdropParams())
	require.NoError(t, err)
	groomed := list(t, field(t, out, "event"))
	assert.Equal(t, []int64{0, 1}, groomed.Starts())
	rec, ok := groomed.Content().(*layout.Record)
	require.True(t, ok)
	assert.Equal(t, []string{
		jets.FieldConstituents, jets.FieldMSoftdrop, jets.FieldPtSoftdrop, jets.FieldEtaSoftdrop,
		jets.FieldPhiSoftdrop, jets.FieldESoftdrop, jets.FieldPzSoftdrop, jets.FieldDeltaRSoftdrop,
		jets.FieldSymmetrySoftdrop,
	}, rec.FieldNames())

	out, err = e.ExclusiveJetsLundDeclusterings(1)
	require.NoError(t, err)
	lund := list(t, field(t, out, "event"))
	assert.Equal(t, 1, lund.GroupLen(0))

	p := cluster.DefaultECFParams()
	out, err = e.ExclusiveJetsEnergyCorrelator(p)
	require.NoError(t, err)
	assert.Equal(t, 1, list(t, field(t, out, "event")).GroupLen(1))

	out, err = e.Njettiness(cluster.DefaultNjettinessParams())
	require.NoError(t, err)
	taus := list(t, field(t, out, "event"))
	assert.Equal(t, 4, taus.GroupLen(0))
	assert.Equal(t, 4, taus.GroupLen(1))

	bad := cluster.DefaultNjettinessParams()
	bad.NJets = nil
	_, err = e.Njettiness(bad)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestEngine_WarnsForExclusiveAntiKt(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core).Sugar()

	anti := newEngine(t, eventTree(), cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4}, jets.WithLogger(log))
	_, err := anti.ExclusiveJets(jets.ByCount(1))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessageSnippet("interpreted with care").Len())

	plain := newEngine(t, eventTree(), kt, jets.WithLogger(log))
	_, err = plain.ExclusiveJets(jets.ByCount(1))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
}
