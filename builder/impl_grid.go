// SPDX-License-Identifier: MIT
// Package: hopdist/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) gets id base + r*cols + c (row-major).
//   • 4-connectivity: for each cell in row-major order emit right then down.
//
// Complexity: O(rows·cols) time, O(1) extra space.
// Distances from cell (0,0) equal the Manhattan distance r+c.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols lattice.
// Complexity: O(rows·cols) time, O(1) extra space.
func Grid(rows, cols int) Constructor {
	// Return a closure capturing the dimensions; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, _ builderConfig) error {
		// Both dimensions must be positive.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base, err := appendBlock(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		// Row-major id of cell (r,c) inside this block.
		id := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				// Right neighbor, unless on the last column.
				if c+1 < cols {
					if err = addEdge(g, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				// Down neighbor, unless on the last row.
				if r+1 < rows {
					if err = addEdge(g, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
