// SPDX-License-Identifier: MIT
package gridgraph

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/bfs"
	"github.com/katalvlaran/isolator/core"
)

// ConnectorGraph builds the conflict graph for run limit l: every non-empty
// cell is a vertex and p-q is an edge when q ≠ p is reachable from p in at most
// l legal moves. l == 0 yields an edgeless graph.
//
// Implementation:
//   - Stage 1: Build the move graph.
//   - Stage 2: From every cell run bfs.BFS with WithMaxDepth(l).
//   - Stage 3: Link the start to every other visited cell (AddEdge deduplicates).
//
// Errors: ErrNegativeParameter for l < 0, context cancellation from ctx.
// Complexity: O(V × B) where B is the size of an l-ball in the move graph.
func (b *Board) ConnectorGraph(ctx context.Context, l int) (*core.Graph, error) {
	if l < 0 {
		return nil, errors.Wrapf(ErrNegativeParameter, "run limit %d", l)
	}
	move := b.MoveGraph()
	g := core.NewGraph(core.WithCapacity(move.VertexCount()))
	for _, v := range move.Vertices() {
		_ = g.AddVertex(v)
	}
	if l == 0 {
		return g, nil
	}

	for _, p := range move.Vertices() {
		res, err := bfs.BFS(move, p, bfs.WithMaxDepth(l), bfs.WithContext(ctx))
		if err != nil {
			return nil, errors.Wrapf(err, "gridgraph: reach from %s", p)
		}
		for _, q := range res.Order[1:] {
			_ = g.AddEdge(p, q)
		}
	}

	return g, nil
}

// Graph returns ConnectorGraph(ctx, b.Run).
func (b *Board) Graph(ctx context.Context) (*core.Graph, error) {
	return b.ConnectorGraph(ctx, b.Run)
}
