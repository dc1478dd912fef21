// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices sorted by Vertex.Less.
//
// Concurrency:
//   - All methods take g.mu; unexported helpers assume the lock is held.
package core

import (
	"slices"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Reject Original vertices with a negative ID (ErrBadVertex).
//   - Stage 2: Under the write lock, allocate an empty neighbor set if v is new.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) error {
	if v.Kind == OriginalKind && v.ID < 0 {
		return ErrBadVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(v)

	return nil
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Graph) HasVertex(v Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v and every incident edge.
//
// Errors:
//   - ErrVertexNotFound: v is absent.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(v Vertex) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.detach(v) {
		return ErrVertexNotFound
	}

	return nil
}

// RemoveVertices deletes every listed vertex that exists and returns how many were removed.
// Missing vertices are skipped silently.
//
// Complexity: O(Σ deg(v)).
func (g *Graph) RemoveVertices(vs ...Vertex) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for _, v := range vs {
		if g.detach(v) {
			removed++
		}
	}

	return removed
}

// RemoveClosedNeighborhood deletes v together with all of its neighbors and
// returns the removed vertices in sorted order (v included).
//
// Errors:
//   - ErrVertexNotFound: v is absent.
//
// Complexity: O(Σ deg(w)) over w ∈ N[v].
func (g *Graph) RemoveClosedNeighborhood(v Vertex) ([]Vertex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	removed := make([]Vertex, 0, len(nbrs)+1)
	removed = append(removed, v)
	for w := range nbrs {
		removed = append(removed, w)
	}
	for _, w := range removed {
		g.detach(w)
	}
	slices.SortFunc(removed, Compare)

	return removed, nil
}

// Degree returns |N(v)|.
//
// Errors:
//   - ErrVertexNotFound: v is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(v Vertex) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// Vertices returns all vertices sorted by Vertex.Less.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedVertices()
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Empty reports whether the graph has no vertices.
func (g *Graph) Empty() bool {
	return g.VertexCount() == 0
}

// ensureVertex allocates an empty neighbor set for v if missing. Lock must be held.
func (g *Graph) ensureVertex(v Vertex) map[Vertex]struct{} {
	nbrs, ok := g.adj[v]
	if !ok {
		nbrs = make(map[Vertex]struct{})
		g.adj[v] = nbrs
	}

	return nbrs
}

// detach unlinks v from its neighbors and deletes it. Lock must be held.
// Returns false if v was absent.
func (g *Graph) detach(v Vertex) bool {
	nbrs, ok := g.adj[v]
	if !ok {
		return false
	}
	for w := range nbrs {
		delete(g.adj[w], v)
	}
	g.edges -= len(nbrs)
	delete(g.adj, v)

	return true
}

// sortedVertices snapshots the vertex set in order. Lock must be held.
func (g *Graph) sortedVertices() []Vertex {
	out := make([]Vertex, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	slices.SortFunc(out, Compare)

	return out
}
