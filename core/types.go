// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Vertex types and the thread-safe
// primitives for building, querying, cloning and validating graphs.
//
// This file declares Vertex, Kind, Graph, GraphOption, sentinel errors and the
// NewGraph constructor.
package core

import (
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertex indicates an Original vertex with a negative ID.
	ErrBadVertex = errors.New("core: original vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted or found.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAsymmetric indicates an adjacency entry without its mirror.
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")
)

// Kind tags the namespace a Vertex ID lives in.
type Kind uint8

const (
	// OriginalKind marks vertices supplied by the caller (board cells).
	OriginalKind Kind = iota
	// FoldedKind marks synthetic vertices created by a solver fold.
	FoldedKind
)

// String returns "original" or "folded".
func (k Kind) String() string {
	if k == FoldedKind {
		return "folded"
	}

	return "original"
}

// Vertex identifies a graph vertex. It is comparable and can be used as a map key.
//
// The zero value is Original(0).
type Vertex struct {
	// Kind selects the ID namespace.
	Kind Kind

	// ID is unique within its Kind.
	ID int
}

// Original returns the vertex naming caller-supplied id.
func Original(id int) Vertex { return Vertex{Kind: OriginalKind, ID: id} }

// Folded returns the n-th synthetic vertex of a solver run.
func Folded(n int) Vertex { return Vertex{Kind: FoldedKind, ID: n} }

// IsFolded reports whether v is synthetic.
func (v Vertex) IsFolded() bool { return v.Kind == FoldedKind }

// Less orders vertices: every Original before every Folded, then by ID.
func (v Vertex) Less(w Vertex) bool {
	if v.Kind != w.Kind {
		return v.Kind < w.Kind
	}

	return v.ID < w.ID
}

// Compare returns -1, 0 or +1 following Less. Suitable for slices.SortFunc.
func Compare(a, b Vertex) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// String renders Original vertices as their decimal ID and Folded ones as "z<ID>".
func (v Vertex) String() string {
	if v.Kind == FoldedKind {
		return "z" + strconv.Itoa(v.ID)
	}

	return strconv.Itoa(v.ID)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex table for n vertices. Non-positive n is ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory graph data structure: simple, undirected and
// unweighted.
//
// mu guards adj and edges. Every exported method leaves adj symmetric.
type Graph struct {
	mu sync.RWMutex

	capacity int // size hint applied by NewGraph

	// adj[v][w] = struct{}{} for every edge v-w, stored in both directions.
	adj map[Vertex]map[Vertex]struct{}

	// edges counts undirected edges (each stored twice in adj).
	edges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus the optional capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adj = make(map[Vertex]map[Vertex]struct{}, g.capacity)

	return g
}
