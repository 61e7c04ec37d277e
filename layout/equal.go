// SPDX-License-Identifier: MIT

package layout

// Equal reports whether a and b describe the same array: same kinds, same
// ranges, same field names and record names, same dtypes and same decoded
// values. Byte order is not compared, so a big-endian leaf equals its
// little-endian twin.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || a.Len() != b.Len() {
		return false
	}
	switch x := a.(type) {
	case *Leaf:
		y := b.(*Leaf)
		if x.dtype != y.dtype {
			return false
		}
		if x.dtype.IsFloat() {
			for i := 0; i < x.Len(); i++ {
				if x.Float64At(i) != y.Float64At(i) {
					return false
				}
			}
			return true
		}
		for i := 0; i < x.Len(); i++ {
			if x.Int64At(i) != y.Int64At(i) {
				return false
			}
		}
		return true
	case *List:
		y := b.(*List)
		return equalInts(x.starts, y.starts) && equalInts(x.stops, y.stops) && Equal(x.content, y.content)
	case *Record:
		y := b.(*Record)
		if x.name != y.name || len(x.fields) != len(y.fields) {
			return false
		}
		for i := range x.fields {
			if x.fields[i].Name != y.fields[i].Name || !Equal(x.fields[i].Content, y.fields[i].Content) {
				return false
			}
		}
		return true
	case *Union:
		y := b.(*Union)
		if len(x.contents) != len(y.contents) || !equalInts(x.index, y.index) {
			return false
		}
		for i := range x.tags {
			if x.tags[i] != y.tags[i] {
				return false
			}
		}
		for i := range x.contents {
			if !Equal(x.contents[i], y.contents[i]) {
				return false
			}
		}
		return true
	case *Indexed:
		y := b.(*Indexed)
		return equalInts(x.index, y.index) && Equal(x.content, y.content)
	case *Masked:
		y := b.(*Masked)
		if x.validWhen != y.validWhen {
			return false
		}
		for i := range x.mask {
			if x.mask[i] != y.mask[i] {
				return false
			}
		}
		return Equal(x.content, y.content)
	}
	return false
}

func equalInts(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
