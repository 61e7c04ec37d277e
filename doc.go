// Package lvjet clusters particles into jets wherever they sit inside a
// nested columnar array, and puts the answers back in their place.
//
// 🚀 What is lvjet?
//
//	A locate-and-replace engine over immutable layout trees:
//		• Layout tree: List, Record, Union, Indexed, Masked and Leaf nodes
//		• Locate: every List of four-momentum records, addressed by a Path
//		• Extract: contiguous float64 buffers per located subtree
//		• Cluster: kt, Cambridge/Aachen, anti-kt, genkt, ee_kt and ee_genkt
//		• Rebuild: copy-on-path replacement that shares every untouched child
//
// ✨ Why choose lvjet?
//
//   - Shape-agnostic – particles may hide under records, unions and options
//   - Lossless – constituents come back as the caller's own records
//   - Pluggable – any cluster.Service can stand in for the reference one
//   - Observable – zap logging and Prometheus metrics on every operation
//
// Under the hood, everything is organized in subpackages:
//
//	layout/  - node kinds, paths, formatting and equality
//	locate/  - discovery of clusterable subtrees and query units
//	extract/ - canonicalisation and momentum buffers
//	rebuild/ - copy-on-path replacement
//	cluster/ - Service contract, sequential reference engine, observables
//	jets/    - the Engine and every per-operation method
//	builder/ - particle layouts from plain Go slices
//	config/  - viper-backed settings
//	errors/  - sentinel taxonomy on cockroachdb/errors
//	logger/  - zap setup and field names
//
// Quick example:
//
//	{event: List[Momentum4D]}  --NParticles-->  {event: [3, 1]}
//
// One Engine clusters once and answers many operations:
//
//	e, _ := jets.NewEngine(ctx, tree, cluster.Definition{Algorithm: cluster.AntiKt, R: 0.4})
//	out, _ := e.InclusiveJets(5)
package lvjet
