// SPDX-License-Identifier: MIT

// Package jets is the operation layer of lvjet: an Engine that finds every
// clusterable subtree of a layout tree once, clusters each of them through a
// cluster.Service, and answers per-group questions by splicing result
// subtrees back at the same places.
//
// Lifecycle:
//
//	eng, err := jets.NewEngine(ctx, tree, cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4})
//	out, err := eng.InclusiveJets(5.0)        // same tree, each subtree -> List[Momentum4D]
//	out, err  = eng.ExclusiveJets(jets.ByCount(2))
//	out, err  = eng.Parents(queryTree)       // rebuilds queryTree, not tree
//
// NewEngine locates, canonicalises and extracts every subtree, then calls
// the service once per subtree. Paths, canonical lists and service handles
// are cached and never modified afterwards, so operations may run
// concurrently on one Engine.
//
// Every operation:
//
//  1. validates its arguments (errors.ErrInvalidArgument before any service call);
//  2. asks each cached handle for the per-group answers;
//  3. wraps them into one result subtree per discovered subtree;
//  4. rebuilds the tree once, leaving everything off the located paths shared.
//
// Query operations take a second tree holding one momentum record per group
// at the same paths (a bare record or a List of records). They locate it on
// every call, pair its units with the cached paths and rebuild the query
// tree. Query units whose path has no primary counterpart are skipped.
//
// Result shapes, per located subtree of G groups:
//
//   - scalar per group            Leaf[G] (float64, int64 or bool)
//   - momenta per group           List[G] of Momentum4D{px, py, pz, E}
//   - indices per group           List[G] of int64
//   - per jet per group           List[G] of List of ...
//   - constituents                List[G] of List of the caller's own records
//
// Concurrency: per-subtree work fans out on an errgroup bounded by
// WithWorkers (default 1). The first error cancels the rest and the call
// returns no partial result.
package jets
