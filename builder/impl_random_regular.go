// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d).
//
// Canonical model:
//   • Stub matching: each vertex contributes d stubs; a uniform shuffle pairs them.
//   • A pairing with a loop or a duplicate pair is rejected and reshuffled.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • After maxStubMatchingAttempts failures → ErrConstructFailed.
//
// Complexity:
//   • Per attempt ~O(n·d) time and space; attempts are bounded.
//
// Determinism:
//   • Fixed attempt limit and fixed trial order → identical outcomes for same seed.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

const (
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor that builds a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation: n≥1, 0≤d<n, parity (n*d) even.
		if n < minRRVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", MethodRandomRegular, n, minRRVertices)
		}
		if d < 0 || d >= n {
			return errors.Wrapf(ErrTooFewVertices, "%s: degree must be in [0,%d), got %d", MethodRandomRegular, n, d)
		}
		if (n*d)%2 != 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: n*d must be even (n=%d, d=%d)", MethodRandomRegular, n, d)
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s", MethodRandomRegular)
		}
		if err := addVertices(g, cfg, MethodRandomRegular, n); err != nil {
			return err
		}

		// 2) Stub list: vertex i repeated d times.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		// 3) Bounded reshuffles until the pairing is simple.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(g, cfg, MethodRandomRegular, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return errors.Wrapf(ErrConstructFailed, "%s: no simple pairing after %d attempts",
			MethodRandomRegular, maxStubMatchingAttempts)
	}
}

// simplePairing reports whether consecutive stub pairs contain no loop and no
// repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
