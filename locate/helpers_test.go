package locate_test

import (
	"github.com/katalvlaran/lvjet/layout"
)

// particles builds a flat momentum record of n entries with values i+1.
func particles(n int, extra ...string) *layout.Record {
	col := func(scale float64) layout.Node {
		v := make([]float64, n)
		for i := range v {
			v[i] = scale * float64(i+1)
		}
		return layout.NewFloat64Leaf(v)
	}
	fields := []layout.Field{
		{Name: "px", Content: col(1)},
		{Name: "py", Content: col(2)},
		{Name: "pz", Content: col(3)},
		{Name: "E", Content: col(10)},
	}
	for _, name := range extra {
		fields = append(fields, layout.Field{Name: name, Content: col(0)})
	}
	return layout.Must(layout.NewRecord(n, fields...))
}

// events wraps particles into a list with the given offsets.
func events(offsets ...int64) *layout.List {
	return layout.Must(layout.NewListOffset(offsets, particles(int(offsets[len(offsets)-1]))))
}

// xy is a record that does not expose four-momenta.
func xy(n int) *layout.Record {
	return layout.Must(layout.NewRecord(n,
		layout.Field{Name: "x", Content: layout.NewFloat64Leaf(make([]float64, n))},
		layout.Field{Name: "y", Content: layout.NewFloat64Leaf(make([]float64, n))},
	))
}

func path(steps ...interface{}) layout.Path {
	p := make(layout.Path, 0, len(steps))
	for _, s := range steps {
		switch v := s.(type) {
		case string:
			p = append(p, layout.FieldStep(v))
		case int:
			p = append(p, layout.AltStep(v))
		case nil:
			p = append(p, layout.DescendStep())
		}
	}
	return p
}
