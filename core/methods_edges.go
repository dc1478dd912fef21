// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddEdge links u and v, creating missing endpoints.
//
// Steps:
//  1. Reject u == v (ErrLoopNotAllowed) and negative Original IDs (ErrBadVertex).
//  2. Lock, ensure both endpoints exist.
//  3. If the edge is new, store it in both directions and bump the edge count.
//
// Adding an existing edge is a no-op: the graph stays simple.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Vertex) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	if (u.Kind == OriginalKind && u.ID < 0) || (v.Kind == OriginalKind && v.ID < 0) {
		return ErrBadVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.link(u, v)

	return nil
}

// RemoveEdge deletes the edge u-v (both directions).
//
// Errors:
//   - ErrEdgeNotFound: no such edge.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v Vertex) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edges--

	return nil
}

// HasEdge reports whether u-v exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// EdgeCount returns |E| (each undirected edge counted once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// link stores u-v if missing. Lock must be held; u != v.
func (g *Graph) link(u, v Vertex) {
	un := g.ensureVertex(u)
	if _, ok := un[v]; ok {
		return
	}
	un[v] = struct{}{}
	g.ensureVertex(v)[u] = struct{}{}
	g.edges++
}
