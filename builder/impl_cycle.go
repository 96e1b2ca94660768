// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1, offset by base.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends an n-vertex simple cycle C_n.
// Complexity: O(n) time, O(1) extra space.
func Cycle(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, _ builderConfig) error {
		// Fewer than three vertices cannot form a simple cycle.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		// Reserve ids [base, base+n) for this block.
		base, err := appendBlock(g, methodCycle, n)
		if err != nil {
			return err
		}
		// for i==n-1 the step wraps to base to close the ring
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
