// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/lvjet/layout"

// validateMin ensures that got >= min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(ErrBadSize, method, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateColumns ensures px, py, pz and e share one length.
func validateColumns(method string, px, py, pz, e []float64) error {
	n := len(px)
	if len(py) != n || len(pz) != n || len(e) != n {
		return builderErrorf(ErrLengthMismatch, method, "px=%d py=%d pz=%d E=%d", len(px), len(py), len(pz), len(e))
	}

	return nil
}

// validateOffsets ensures offsets start at 0, never decrease and end at n.
func validateOffsets(method string, offsets []int64, n int) error {
	if len(offsets) == 0 {
		return builderErrorf(ErrBadOffsets, method, "offsets must hold at least one entry")
	}
	if offsets[0] != 0 {
		return builderErrorf(ErrBadOffsets, method, "offsets must start at 0, got %d", offsets[0])
	}
	for k := 1; k < len(offsets); k++ {
		if offsets[k] < offsets[k-1] {
			return builderErrorf(ErrBadOffsets, method, "offsets decrease at %d (%d < %d)", k, offsets[k], offsets[k-1])
		}
	}
	if last := offsets[len(offsets)-1]; last != int64(n) {
		return builderErrorf(ErrBadOffsets, method, "offsets end at %d, columns hold %d", last, n)
	}

	return nil
}

// validateExtras ensures extra field names are unique, do not shadow a
// momentum field, and carry one value per particle.
func validateExtras(method string, extras []extraField, n int) error {
	seen := map[string]struct{}{
		layout.FieldPx: {}, layout.FieldPy: {}, layout.FieldPz: {}, layout.FieldE: {},
	}
	for _, f := range extras {
		if _, dup := seen[f.name]; dup {
			return builderErrorf(ErrDuplicateField, method, "field %q", f.name)
		}
		seen[f.name] = struct{}{}
		if len(f.values) != n {
			return builderErrorf(ErrLengthMismatch, method, "field %q has %d values, want %d", f.name, len(f.values), n)
		}
	}

	return nil
}
