// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_grid.go — implementation of Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is idFn(r*cols + c) (row-major, same as board indices).
//   • 4-neighbourhood: right and down edges emitted row-major.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Grid returns a Constructor that builds an R×C 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d < min=%d",
				MethodGrid, rows, cols, MinGridDim)
		}
		if err := addVertices(g, cfg, MethodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, idx, idx+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, idx, idx+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
