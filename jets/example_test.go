package jets_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/jets"
	"github.com/katalvlaran/lvjet/layout"
)

func ExampleEngine_NParticles() {
	rec := layout.Must(layout.NewNamedRecord(layout.MomentumRecordName, 4,
		layout.Field{Name: "px", Content: layout.NewFloat64Leaf([]float64{1, 2, 3, 4})},
		layout.Field{Name: "py", Content: layout.NewFloat64Leaf([]float64{0, 1, 0, 1})},
		layout.Field{Name: "pz", Content: layout.NewFloat64Leaf([]float64{0, 0, 1, 1})},
		layout.Field{Name: "E", Content: layout.NewFloat64Leaf([]float64{2, 3, 4, 5})},
	))
	events := layout.Must(layout.NewList([]int64{0, 3}, []int64{3, 4}, rec))
	tree := layout.Must(layout.NewRecord(2, layout.Field{Name: "event", Content: events}))

	def := cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4}
	e, err := jets.NewEngine(context.Background(), tree, def)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := e.NParticles()
	if err != nil {
		fmt.Println(err)
		return
	}
	counts, _ := layout.Resolve(out, layout.Path{layout.FieldStep("event")})
	fmt.Println(e.Paths()[0], counts.(*layout.Leaf).Int64s())
	// Output: ["event", None] [3 1]
}
