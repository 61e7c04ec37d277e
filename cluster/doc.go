// SPDX-License-Identifier: MIT

// Package cluster is the numeric side of lvjet: the Service contract the
// engine calls with flat momentum buffers, and a reference sequential
// recombination implementation of it.
//
// Contract:
//
//	Service.Cluster(ctx, buffers, def) -> Sequences   // one Sequence per group
//
// A Sequence answers every per-group query the engine issues: inclusive and
// exclusive jets, merging scales, the merge history, subjet and ancestry
// queries for a caller-supplied jet, and the composite observables (SoftDrop
// grooming, Lund declusterings, energy correlators, N-subjettiness).
// Implementations that only support part of it embed Unsupported.
//
// Reference implementation (NewSequential):
//
//   - O(N^3) pairwise recombination per group with a full merge history
//     (parent1, parent2, child, jet index, dij, max dij so far).
//   - pp algorithms Kt, CambridgeAachen, AntiKt, GenKt use the rapidity-phi
//     distance; EEKt and EEGenKt use the opening angle.
//   - Recombination: E scheme or winner-takes-all pt scheme.
//
// Sentinels:
//
//   - UnsetFloat (999.0) and UnsetInt (999) mark numeric parameters the
//     caller left unset; SoftDrop MuCut defaults to +Inf.
//
// Errors:
//
//   - ErrTooManyJets   more jets requested than the group holds particles.
//   - ErrJetNotFound   a query jet is not an inclusive jet of its group.
//   - ErrUnsupported   the implementation does not answer this query.
//   - errors.ErrInvalidArgument for rejected definitions and parameters.
package cluster
