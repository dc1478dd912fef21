// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_star.go — implementation of Star(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is idFn(0); leaves are idFn(1..n-1); spokes emitted in leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodStar, n, MinStarNodes)
		}
		if err := addVertices(g, cfg, MethodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
