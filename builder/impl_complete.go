// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Edges emitted for i<j in lexicographic (i,j) order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodComplete, n, MinCompleteNodes)
		}
		if err := addVertices(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
