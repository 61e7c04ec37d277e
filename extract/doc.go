// SPDX-License-Identifier: MIT

// Package extract turns a clusterable subtree into the flat buffers a
// clustering service consumes.
//
// Canonicalize rewrites a List of (possibly wrapped) particle records into
// contiguous form: offsets start at 0, every group starts where the previous
// one stops, and masked-out or missing particles are dropped. The content of
// the canonical List is the stripped particle Record itself when no gather is
// needed, or an Indexed layer over it, so every original field survives.
//
// Read decodes px, py, pz and E of a canonical List into native float64
// buffers, whatever byte order the leaves were declared in, and copies the
// group boundaries. Extract is Canonicalize followed by Read.
//
// Momenta reads a query unit: one group per unit element.
//
// Errors:
//
//   - errors.ErrInvalidStructure  a momentum field is absent or not numeric,
//     a particle has a missing momentum component, or the node kinds under
//     the List are not wrappers around one Record.
package extract
