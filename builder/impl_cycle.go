// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodCycle, n, MinCycleNodes)
		}
		if err := addVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}
		// for i==n-1, connect to 0 to close the ring
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
