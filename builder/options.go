// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil RNG);
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	// Reject nil at option construction time, not deep inside a constructor.
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// The caller keeps ownership; the RNG is shared, not copied.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// A fresh source per option application keeps runs independent.
		c.rng = rand.New(rand.NewSource(seed))
	}
}
