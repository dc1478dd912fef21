// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_wheel.go — implementation of Wheel(n).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim: Cycle over idFn(0..n-2); hub: idFn(n-1) joined to every rim vertex.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodWheel, n, MinWheelNodes)
		}
		// 1) Rim cycle on the first n-1 indices.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return errors.Wrapf(err, "%s: rim", MethodWheel)
		}
		// 2) Hub and spokes.
		hub := n - 1
		if err := g.AddVertex(cfg.idFn(hub)); err != nil {
			return errors.Wrapf(err, "%s: AddVertex(%s)", MethodWheel, cfg.idFn(hub))
		}
		for i := 0; i < hub; i++ {
			if err := addEdge(g, cfg, MethodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
