// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures: paths, cycles,
// stars, complete graphs, disjoint paths, isolated vertices and seeded
// Erdős–Rényi samples.
//
// A single orchestrator, BuildGraph, creates the graph from core options,
// resolves builder options and applies each Constructor in order:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.Path(5),
//	)
//
// Determinism: equal constructors, options and seed always yield the same
// vertex IDs, vertex indices, edge order and weights. Constructors validate
// their parameters before touching the graph and return sentinel errors
// (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource); they never
// panic at runtime. Option constructors panic on meaningless values.
package builder
