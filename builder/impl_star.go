// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one hub plus n-1 leaves.
//   • Hub is the first vertex of the block; edges hub–leaf in ascending leaf order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star S_n (hub + n-1 leaves).
// Complexity: O(n) time, O(1) extra space.
func Star(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, _ builderConfig) error {
		// A star needs a hub and at least one leaf.
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		// The first id of the block is the hub.
		hub, err := appendBlock(g, methodStar, n)
		if err != nil {
			return err
		}
		// Spokes hub–leaf in ascending leaf order.
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err = addEdge(g, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
