// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Each unordered pair {i,j}, i<j, emitted once in (i asc, j asc) order.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
// Complexity: O(n²) time, O(1) extra space.
func Complete(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, _ builderConfig) error {
		// Validate parameter domain early.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		// Reserve ids [base, base+n) for this block.
		base, err := appendBlock(g, methodComplete, n)
		if err != nil {
			return err
		}
		// j starts at i+1 so each unordered pair is emitted once and no loops appear.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
