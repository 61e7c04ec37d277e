// SPDX-License-Identifier: MIT

package jets

import (
	"github.com/katalvlaran/lvjet/cluster"
	"github.com/katalvlaran/lvjet/errors"
	"github.com/katalvlaran/lvjet/layout"
)

// flatten concatenates groups and returns the closed offsets.
func flatten[T any](groups [][]T) ([]T, []int64) {
	offsets := make([]int64, 1, len(groups)+1)
	var flat []T
	for _, g := range groups {
		flat = append(flat, g...)
		offsets = append(offsets, int64(len(flat)))
	}
	return flat, offsets
}

// momentumRecord packs jets into a Momentum4D record of float64 columns.
func momentumRecord(jets []cluster.PseudoJet) (*layout.Record, error) {
	n := len(jets)
	px, py, pz, e := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i, j := range jets {
		px[i], py[i], pz[i], e[i] = j.Px, j.Py, j.Pz, j.E
	}
	return layout.NewNamedRecord(layout.MomentumRecordName, n,
		layout.Field{Name: layout.FieldPx, Content: layout.NewFloat64Leaf(px)},
		layout.Field{Name: layout.FieldPy, Content: layout.NewFloat64Leaf(py)},
		layout.Field{Name: layout.FieldPz, Content: layout.NewFloat64Leaf(pz)},
		layout.Field{Name: layout.FieldE, Content: layout.NewFloat64Leaf(e)},
	)
}

// momentaList is List[G] of Momentum4D.
func momentaList(groups [][]cluster.PseudoJet) (layout.Node, error) {
	flat, offsets := flatten(groups)
	rec, err := momentumRecord(flat)
	if err != nil {
		return nil, err
	}
	return layout.NewListOffset(cluster.CloseOffsets(offsets, int64(len(flat))), rec)
}

// nestedList wraps content, already flattened over jets, into
// List[G] of List[jets] using the per-group jet counts and per-jet lengths.
func nestedList(jetsPerGroup []int, jetLens []int64, content layout.Node) (layout.Node, error) {
	inner := make([]int64, 1, len(jetLens)+1)
	for _, n := range jetLens {
		inner = append(inner, inner[len(inner)-1]+n)
	}
	l, err := layout.NewListOffset(inner, content)
	if err != nil {
		return nil, err
	}
	outer := make([]int64, 1, len(jetsPerGroup)+1)
	for _, n := range jetsPerGroup {
		outer = append(outer, outer[len(outer)-1]+int64(n))
	}
	return layout.NewListOffset(outer, l)
}

// indexList is List[G] of int64.
func indexList(groups [][]int) (layout.Node, error) {
	flat, offsets := flatten(groups)
	return layout.NewListOffset(offsets, layout.NewInt64Leaf(toInt64(flat)))
}

// nestedIndexList is List[G] of List[jets] of int64.
func nestedIndexList(groups [][][]int) (layout.Node, error) {
	counts, lens, flat := splitNested(groups)
	return nestedList(counts, lens, layout.NewInt64Leaf(toInt64(flat)))
}

func splitNested[T any](groups [][][]T) (counts []int, lens []int64, flat []T) {
	counts = make([]int, len(groups))
	for k, g := range groups {
		counts[k] = len(g)
		for _, jet := range g {
			lens = append(lens, int64(len(jet)))
			flat = append(flat, jet...)
		}
	}
	return counts, lens, flat
}

func toInt64(v []int) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = int64(x)
	}
	return out
}

// constituentList is List[G] of List[jets] of the caller's particle records,
// selected through one Indexed layer over the canonical content of s.
// indices are group-local, as returned by the service.
func constituentList(s *subtree, groups [][][]int) (layout.Node, error) {
	counts, lens, _ := splitNested(groups)
	starts := s.canon.Starts()
	var take []int64
	for k, g := range groups {
		size := int64(s.canon.GroupLen(k))
		for _, jet := range g {
			for _, local := range jet {
				if local < 0 || int64(local) >= size {
					return nil, errors.Wrapf(errors.ErrInvalidStructure,
						"jets: constituent index %d outside group %d of %d particles", local, k, size)
				}
				take = append(take, starts[k]+int64(local))
			}
		}
	}
	content, err := gather(s.canon.Content(), take)
	if err != nil {
		return nil, err
	}
	return nestedList(counts, lens, content)
}

// gather selects rows of content, folding into an existing Indexed layer.
func gather(content layout.Node, rows []int64) (layout.Node, error) {
	if idx, ok := content.(*layout.Indexed); ok {
		base := idx.Index()
		folded := make([]int64, len(rows))
		for i, r := range rows {
			folded[i] = base[r]
		}
		return layout.NewIndexed(folded, idx.Content())
	}
	return layout.NewIndexed(rows, content)
}

func float64Leaf(v []float64) (layout.Node, error) { return layout.NewFloat64Leaf(v), nil }
func int64Leaf(v []int) (layout.Node, error)       { return layout.NewInt64Leaf(toInt64(v)), nil }
func boolLeaf(v []bool) (layout.Node, error)       { return layout.NewBoolLeaf(v), nil }
