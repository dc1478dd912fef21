// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, AdjacencyList) and the structural Validate check.
// Determinism:
//   - Neighbors() and every AdjacencyList() row are sorted by Vertex.Less.

package core

import (
	"slices"

	"github.com/pkg/errors"
)

// Neighbors returns N(v) sorted by Vertex.Less.
//
// Errors:
//   - ErrVertexNotFound: v is absent.
//
// Complexity: O(d·log d).
func (g *Graph) Neighbors(v Vertex) ([]Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Vertex, 0, len(nbrs))
	for w := range nbrs {
		out = append(out, w)
	}
	slices.SortFunc(out, Compare)

	return out, nil
}

// AdjacencyList returns an independent snapshot: vertex → sorted neighbors.
// Isolated vertices map to an empty, non-nil slice.
// Complexity: O(V + E·log Δ).
func (g *Graph) AdjacencyList() map[Vertex][]Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[Vertex][]Vertex, len(g.adj))
	for v, nbrs := range g.adj {
		row := make([]Vertex, 0, len(nbrs))
		for w := range nbrs {
			row = append(row, w)
		}
		slices.SortFunc(row, Compare)
		out[v] = row
	}

	return out
}

// Validate checks the structural invariants: no self-loops, symmetric
// adjacency, consistent edge count, non-negative Original IDs.
// Solvers do not call it; builders and tests do.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	half := 0
	for v, nbrs := range g.adj {
		if v.Kind == OriginalKind && v.ID < 0 {
			return errors.Wrapf(ErrBadVertex, "vertex %s", v)
		}
		for w := range nbrs {
			if w == v {
				return errors.Wrapf(ErrLoopNotAllowed, "vertex %s", v)
			}
			if _, ok := g.adj[w][v]; !ok {
				return errors.Wrapf(ErrAsymmetric, "%s→%s has no mirror", v, w)
			}
			half++
		}
	}
	if half != 2*g.edges {
		return errors.Wrapf(ErrAsymmetric, "edge count %d disagrees with %d adjacency entries", g.edges, half)
	}

	return nil
}
