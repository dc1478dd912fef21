// Package isolator places K mutually distant cells on a connector board.
//
// A board is a grid of connector cells ('+' junctions, '-' and '|' runs)
// and empty cells ('.'). Two cells conflict when one can reach the other in
// at most L legal moves. A valid placement is K cells with no conflict
// between any two of them, which is an independent set of size K in the
// conflict graph.
//
// Packages:
//
//	core/       Graph and the tagged Vertex (original cell or folded vertex)
//	bfs/        breadth-first walks and connected components
//	gridgraph/  board parsing, move graph, conflict graph, rendering
//	mis/        reductions, branch-and-reduce decision and size solvers,
//	            Reduce/Lift kernelization
//	isolation/  per-component planning of K cells
//	builder/    deterministic graph fixtures for tests and benchmarks
//	metrics/    Prometheus collector for solver and plan events
//	config/     YAML configuration for the command
//	cmd/isolator  the command-line tool
//
// Quick start:
//
//	board, _ := gridgraph.ParseString("ring", "3 3 1 2\nring\n+-+\n|.|\n+-+\n")
//	g, _ := board.Graph(ctx)
//	p, _ := isolation.Plan(g, board.Target)
//	points, _ := board.Points(p.Set) // [(0,0) (2,0)]
package isolator
