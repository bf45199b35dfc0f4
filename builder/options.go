// SPDX-License-Identifier: MIT
// options.go: functional options for BuildGraph.

package builder

import "golang.org/x/exp/rand"

// BuilderOption customises the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator.
// Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("WithIDScheme: fn must not be nil")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithSeed installs a fresh random source seeded with seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator used on weighted graphs.
// Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("WithWeightFn: fn must not be nil")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
