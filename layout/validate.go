// SPDX-License-Identifier: MIT

package layout

import "github.com/katalvlaran/lvjet/errors"

// Validate re-checks every level of the tree. Constructors already validate
// their own level; Validate matters for trees assembled with With* copies,
// which skip validation.
func Validate(n Node) error {
	return validate(n, Path{})
}

func validate(n Node, at Path) error {
	switch t := n.(type) {
	case nil:
		return errors.Wrapf(errors.ErrInvalidStructure, "layout: nil node at %s", at)
	case *Leaf:
		if t.dtype.Size() == 0 || len(t.data)%t.dtype.Size() != 0 {
			return errors.Wrapf(errors.ErrInvalidStructure, "layout: malformed leaf at %s", at)
		}
		return nil
	case *List:
		if _, err := NewList(t.starts, t.stops, t.content); err != nil {
			return errors.Wrapf(err, "at %s", at)
		}
		return validate(t.content, at.Append(DescendStep()))
	case *Indexed:
		if _, err := NewIndexed(t.index, t.content); err != nil {
			return errors.Wrapf(err, "at %s", at)
		}
		return validate(t.content, at.Append(DescendStep()))
	case *Masked:
		if _, err := NewMasked(t.mask, t.validWhen, t.content); err != nil {
			return errors.Wrapf(err, "at %s", at)
		}
		return validate(t.content, at.Append(DescendStep()))
	case *Record:
		if _, err := NewRecord(t.length, t.fields...); err != nil {
			return errors.Wrapf(err, "at %s", at)
		}
		for _, f := range t.fields {
			if err := validate(f.Content, at.Append(FieldStep(f.Name))); err != nil {
				return err
			}
		}
		return nil
	case *Union:
		if _, err := NewUnion(t.tags, t.index, t.contents...); err != nil {
			return errors.Wrapf(err, "at %s", at)
		}
		for i, c := range t.contents {
			if err := validate(c, at.Append(AltStep(i))); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidStructure, "layout: unknown node at %s", at)
}
