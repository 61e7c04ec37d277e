// SPDX-License-Identifier: MIT

// Package locate discovers the regions of a layout.Tree that hold particle
// four-momenta.
//
// Two locators share one depth-first walker:
//
//   - Locate(root, opts...)      the primary form. A clusterable subtree is a
//     List whose content, after stripping Indexed/Masked wrappers, is a Record
//     exposing px, py, pz and E. The List itself is remembered.
//   - LocateQuery(root, opts...) the query form. A bare Record exposing the four
//     fields is already a unit; a List of such records is accepted as well.
//
// Walk rules (both forms):
//
//   - Union   alternatives in declared order, path + Alt(i).
//   - Record  fields in declared order, path + Field(name).
//   - List / Indexed / Masked  single content, path + None.
//   - Leaf    ends the branch.
//
// The search stops in a branch at its first match, but sibling fields and
// sibling alternatives are searched independently, so a tree with k
// independent regions yields k matches in declared order. A branch holding
// clusterable subtrees at two different depths is not supported: only the
// outermost one is reported.
//
// Every recorded path ends with a None step; Path.Target addresses the unit.
// A tree without any match yields an empty slice and a nil error; callers
// decide whether that is fatal.
//
// Options:
//
//   - WithContext(ctx)     cancellation between node visits.
//   - WithMaxDepth(limit)  do not descend more than limit steps (-1 = no limit).
//   - WithLogger(l)        debug log of every match; defaults to logger.Logger.
//
// Complexity: O(number of nodes) time, O(depth) stack.
package locate
