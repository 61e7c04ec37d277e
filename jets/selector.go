// SPDX-License-Identifier: MIT

package jets

import (
	"fmt"

	"github.com/katalvlaran/lvjet/errors"
)

type selectorKind uint8

const (
	selectNone selectorKind = iota
	selectCount
	selectDcut
)

// Selector chooses exclusive jets either by count or by a dcut threshold.
// The zero Selector is invalid.
type Selector struct {
	kind  selectorKind
	count int
	dcut  float64
}

// ByCount selects exactly n exclusive jets (subjets for query operations).
func ByCount(n int) Selector { return Selector{kind: selectCount, count: n} }

// ByDcut selects the exclusive jets left when merging stops at dcut.
func ByDcut(dcut float64) Selector { return Selector{kind: selectDcut, dcut: dcut} }

// legacyUnset is the "not given" value of the legacy (n, dcut) pair.
const legacyUnset = -1

// SelectorFromLegacy maps the legacy pair where -1 means "not given".
// Exactly one of n and dcut must be given.
func SelectorFromLegacy(n int, dcut float64) (Selector, error) {
	hasN, hasDcut := n != legacyUnset, dcut != legacyUnset
	switch {
	case hasN && hasDcut:
		return Selector{}, errors.Wrapf(errors.ErrInvalidArgument,
			"jets: either njets or dcut can be given, not both (njets=%d, dcut=%g)", n, dcut)
	case !hasN && !hasDcut:
		return Selector{}, errors.Wrap(errors.ErrInvalidArgument, "jets: one of njets or dcut must be given")
	case hasN:
		return ByCount(n), nil
	default:
		return ByDcut(dcut), nil
	}
}

// Count returns the jet count and whether s selects by count.
func (s Selector) Count() (int, bool) { return s.count, s.kind == selectCount }

// Dcut returns the threshold and whether s selects by dcut.
func (s Selector) Dcut() (float64, bool) { return s.dcut, s.kind == selectDcut }

// Validate reports errors.ErrInvalidArgument for the zero Selector, a
// count below 1 or a negative dcut.
func (s Selector) Validate() error {
	switch s.kind {
	case selectCount:
		return checkCount("njets", s.count)
	case selectDcut:
		if s.dcut < 0 {
			return errors.Wrapf(errors.ErrInvalidArgument, "jets: dcut must be >= 0, got %g", s.dcut)
		}
		return nil
	default:
		return errors.Wrap(errors.ErrInvalidArgument, "jets: empty selector")
	}
}

func (s Selector) String() string {
	switch s.kind {
	case selectCount:
		return fmt.Sprintf("njets=%d", s.count)
	case selectDcut:
		return fmt.Sprintf("dcut=%g", s.dcut)
	default:
		return "none"
	}
}

func checkCount(name string, n int) error {
	if n <= 0 {
		return errors.Wrapf(errors.ErrInvalidArgument, "jets: %s must be > 0, got %d", name, n)
	}
	return nil
}
