package jets_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvjet/builder"
	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/jets"
	"github.com/katalvlaran/lvjet/layout"
)

func benchTree(b *testing.B, groups, size int) layout.Node {
	b.Helper()
	evs, err := builder.RandomEvents(groups, size, builder.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}
	return layout.Must(layout.NewRecord(groups, layout.Field{Name: "event", Content: evs}))
}

func BenchmarkNewEngine_AntiKt(b *testing.B) {
	tree := benchTree(b, 100, 50)
	def := cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := jets.NewEngine(context.Background(), tree, def); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewEngine_Workers(b *testing.B) {
	evs, err := builder.RandomEvents(100, 50, builder.WithSeed(7))
	if err != nil {
		b.Fatal(err)
	}
	tree := layout.Must(layout.NewRecord(100,
		layout.Field{Name: "a", Content: evs},
		layout.Field{Name: "b", Content: evs},
		layout.Field{Name: "c", Content: evs},
		layout.Field{Name: "d", Content: evs},
	))
	def := cluster.Definition{Algorithm: cluster.Kt, R: 0.6}
	for i := 0; i < b.N; i++ {
		if _, err := jets.NewEngine(context.Background(), tree, def, jets.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngine_InclusiveJets(b *testing.B) {
	e, err := jets.NewEngine(context.Background(), benchTree(b, 100, 50), cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.InclusiveJets(5); err != nil {
			b.Fatal(err)
		}
	}
}
