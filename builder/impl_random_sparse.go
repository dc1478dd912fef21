// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil unless p ∈ {0,1} (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i).

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d",
				MethodRandomSparse, n, minRandomSparseVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
				MethodRandomSparse, p, MinProbability, MaxProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return errors.Wrapf(ErrNeedRandSource, "%s", MethodRandomSparse)
		}
		if err := addVertices(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var take bool
				switch {
				case p == MaxProbability:
					take = true
				case p == MinProbability:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
