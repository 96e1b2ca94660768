// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Each constructor appends a disjoint block; composition is a disjoint union.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(0)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph, appending their blocks
// after the vertices g already has.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	// Resolve options once; every constructor sees the same cfg (and RNG stream).
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		// A nil entry is a programming error surfaced as a sentinel, not a panic.
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// appendBlock grows g by n vertices and returns the id of the first new one.
// Complexity: O(n) amortized.
func appendBlock(g *core.Graph, method string, n int) (int, error) {
	base := g.VertexCount()
	if err := g.Resize(base + n); err != nil {
		return 0, fmt.Errorf("%s: Resize(%d): %w: %w", method, base+n, ErrConstructFailed, err)
	}

	return base, nil
}

// addEdge wraps core.AddEdge failures with method context.
func addEdge(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
