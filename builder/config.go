// SPDX-License-Identifier: MIT
// config.go: resolved builder configuration.
//
// Defaults:
//   • idFn     = DefaultIDFn        ("0","1","2",...)
//   • rng      = nil                (deterministic unless seeded)
//   • weightFn = DefaultWeightFn    (constant 1 on weighted graphs)

package builder

import "golang.org/x/exp/rand"

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig resolves opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight returns the weight for the next edge of g: 0 on unweighted graphs,
// cfg.weightFn otherwise.
func (cfg builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}
