// Package bfs walks a core.Graph breadth-first and splits it into connected
// components.
//
// Two callers drive the design. The board connector graph needs every cell
// within L moves of a start cell, which is BFS with WithMaxDepth(L). The
// independent-set planner solves each connected component on its own, which
// is Components.
//
// Walks are deterministic: core.Graph.Neighbors returns neighbors in
// core.Compare order and they are enqueued in that order. Components are
// returned by ascending smallest vertex. The queue is a gods
// linkedlistqueue.
//
//	res, err := bfs.BFS(g, core.Original(0), bfs.WithMaxDepth(3))
//	comps, err := bfs.Components(g)
//
// A walk costs O(V + E) time and O(V) memory; a depth-limited walk only
// touches the ball it reaches.
package bfs
