// SPDX-License-Identifier: MIT

// Package rebuild splices result subtrees into a layout tree at recorded paths.
//
// The input tree is never modified. Replace copies only the nodes on the
// root-to-target chain, one child slot per level:
//
//	List / Indexed / Masked  WithContent       (step None)
//	Record                   WithField(name)   (step "name")
//	Union                    WithContent(i)    (step i)
//
// Every other child is shared by pointer with the input, so untouched branches
// are not only equal but identical. Rebuild folds Replace over a list of
// located paths, each step using the previous output as its base.
//
// A step that does not fit the node it meets means the locator and the
// rebuilder disagree about the tree; that is reported as
// errors.ErrStructuralDesync (an assertion failure) and must never be retried.
//
// Complexity: O(depth) allocations per path.
package rebuild
