// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); Path(1) is a single isolated vertex.
//   • Emits edges in stable order (base+i)–(base+i+1) for i=0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that appends an n-vertex path P_n.
// Complexity: O(n) time, O(1) extra space.
func Path(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, _ builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		// Reserve ids [base, base+n) for this block.
		base, err := appendBlock(g, methodPath, n)
		if err != nil {
			return err
		}
		// Emit segments base→base+1→...→base+n-1 in stable order.
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
