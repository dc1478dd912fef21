// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning, clearing and induced-subgraph views.
// Concurrency:
//   - Read lock on the source; results are fresh, unshared instances.

package core

// Clone returns a deep copy of the Graph.
//
// Mutating the clone never affects g and vice versa; solvers rely on this for
// copy-on-branch search.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.adj)))
	for v, nbrs := range g.adj {
		row := make(map[Vertex]struct{}, len(nbrs))
		for w := range nbrs {
			row[w] = struct{}{}
		}
		clone.adj[v] = row
	}
	clone.edges = g.edges

	return clone
}

// Clear removes every vertex and edge.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adj = make(map[Vertex]map[Vertex]struct{})
	g.edges = 0
	g.mu.Unlock()
}

// InducedSubgraph returns a new Graph holding the listed vertices that exist
// in g and every edge of g with both endpoints among them. The input graph is
// not mutated.
//
// Complexity: O(Σ deg(v)) over keep.
func (g *Graph) InducedSubgraph(keep []Vertex) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	in := make(map[Vertex]struct{}, len(keep))
	for _, v := range keep {
		if _, ok := g.adj[v]; ok {
			in[v] = struct{}{}
		}
	}

	out := NewGraph(WithCapacity(len(in)))
	for v := range in {
		out.ensureVertex(v)
		for w := range g.adj[v] {
			if _, ok := in[w]; ok {
				out.link(v, w)
			}
		}
	}

	return out
}
