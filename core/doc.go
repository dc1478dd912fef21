// Package core provides the mutable, thread-safe undirected graph that every
// other isolator package reads and rewrites.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Simple and undirected: no self-loops, no parallel edges, adjacency is
//     symmetric (w ∈ N(v) ⇔ v ∈ N(w)) whenever a method returns.
//   - Constant-time membership via nested sets: adj[v][w] = struct{}{}.
//   - Tagged vertex identifiers: a Vertex is either Original(id), a board
//     cell, or Folded(id), a synthetic vertex introduced by a solver. Kinds
//     never collide, so no numeric range is reserved for either of them.
//   - Deterministic iteration: Vertices() and Neighbors() return sorted
//     results (all Original vertices before all Folded ones, then by ID).
//   - Clone support: Clone() is a deep copy; solvers take one before every
//     destructive branch so that sibling branches never share state.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v Vertex) error                          // O(1)
//	HasVertex(v Vertex) bool                           // O(1)
//	RemoveVertex(v Vertex) error                       // O(deg(v))
//	RemoveVertices(vs ...Vertex) int                   // O(Σ deg)
//	RemoveClosedNeighborhood(v Vertex) ([]Vertex, error) // O(Σ deg over N[v])
//
//	// Edge lifecycle
//	AddEdge(u, v Vertex) error                         // O(1), idempotent
//	RemoveEdge(u, v Vertex) error                      // O(1)
//	HasEdge(u, v Vertex) bool                          // O(1)
//
//	// Queries
//	Degree(v Vertex) (int, error)                      // O(1)
//	Neighbors(v Vertex) ([]Vertex, error)              // O(d·log d)
//	Vertices() []Vertex                                // O(V·log V)
//	AdjacencyList() map[Vertex][]Vertex                // O(V+E)
//	VertexCount(), EdgeCount(), Empty()                // O(1)
//
//	// Copies and views
//	Clone() *Graph                                     // O(V+E)
//	InducedSubgraph(keep []Vertex) *Graph              // O(V+E)
//	Validate() error                                   // O(V+E)
//
// Errors:
//
//	ErrBadVertex       - Original vertex with a negative ID.
//	ErrVertexNotFound  - operation referenced a missing vertex.
//	ErrEdgeNotFound    - RemoveEdge on a missing edge.
//	ErrLoopNotAllowed  - AddEdge(v, v).
//	ErrAsymmetric      - Validate found w ∈ N(v) but v ∉ N(w).
package core
