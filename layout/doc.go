// SPDX-License-Identifier: MIT

// Package layout defines the Layout Tree: an immutable, tagged-variant
// description of a nested columnar array, and the Path type used to address
// one node inside it.
//
// What:
//
//   - Node kinds form a closed set: List, Record, Union, Indexed, Masked, Leaf.
//   - List holds ragged groups as (start, stop) pairs over one content node.
//   - Record is an ordered struct-of-arrays; fields keep declaration order.
//   - Union selects one alternative per element through tags and an index.
//   - Indexed and Masked wrap a single content node (redirection / validity).
//   - Leaf is a numeric column stored as raw bytes in a declared byte order.
//
// Every node owns its children exclusively and is never mutated after
// construction. Methods named With* return shallow copies with exactly one
// child slot replaced; every other child is shared by pointer. This is what
// makes copy-on-path rebuilds cheap and lossless.
//
// Paths:
//
//	Path{FieldStep("event"), DescendStep()}   // printed as ["event", None]
//	Path{AltStep(0), DescendStep()}           // printed as [0, None]
//
// A located path always ends with a Descend step that marks the group axis of
// the unit addressed by the preceding steps; Path.Target drops that marker.
//
// Complexity:
//
//   - Constructors validate their own level in O(len(buffers)).
//   - Validate walks the whole tree: O(total buffer length).
//   - Equal decodes leaves and is O(total buffer length) as well.
//
// Errors:
//
//   - errors.ErrInvalidStructure  malformed offsets, tags, indexes or leaf bytes.
//   - errors.ErrStructuralDesync  Resolve was given a path that does not fit.
package layout
