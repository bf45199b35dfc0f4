// SPDX-License-Identifier: MIT
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach method context via %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// allowed by the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// random source (use WithSeed).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such as
// a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
