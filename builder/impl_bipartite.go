// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is idFn(0..n1-1), right side idFn(n1..n1+n2-1).
//   • Edges emitted left-major: for each left i, every right j ascending.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return errors.Wrapf(ErrTooFewVertices, "%s: n1=%d, n2=%d < min=%d",
				MethodCompleteBipartite, n1, n2, MinPartition)
		}
		if err := addVertices(g, cfg, MethodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := addEdge(g, cfg, MethodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
