// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n,p) over unordered pairs {i,j} with i<j; no loops,
// no parallel edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Validation happens before the block is appended.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: trials run for i asc, j asc, so a fixed seed gives a fixed edge log.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n,p) block.
// Complexity: O(n²) time for the trials, O(1) extra space.
func RandomSparse(n int, p float64) Constructor {
	// Return a closure capturing (n,p); BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// p ∈ {0,1} is deterministic and needs no RNG
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		// All validation passed; only now reserve ids [base, base+n).
		base, err := appendBlock(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err = addEdge(g, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial performs one Bernoulli(p) draw, short-circuiting the degenerate cases.
// Complexity: O(1) time, O(1) space.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
