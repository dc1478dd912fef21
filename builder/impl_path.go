// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_path.go - implementation of Path(n) and Empty(n) constructors.
//
// Contract:
//   - Path: n ≥ 1 (else ErrTooFewVertices); edges (i-1)-i for i=1..n-1.
//   - Empty: n ≥ 0; n isolated vertices.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodPath, n, MinPathNodes)
		}
		if err := addVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}
		// Emit path edges from 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinEmptyNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodEmpty, n, MinEmptyNodes)
		}

		return addVertices(g, cfg, MethodEmpty, n)
	}
}
