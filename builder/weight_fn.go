// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge of a weighted graph
// when no custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional random source.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// With a nil rng it yields DefaultEdgeWeight.
// Panics if min <= 0 or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
