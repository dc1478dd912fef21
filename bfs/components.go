// SPDX-License-Identifier: MIT
package bfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Components splits g into connected components and returns one
// vertex-induced subgraph per component, ordered by each component's smallest
// vertex. g is not mutated.
//
// Implementation:
//   - Stage 1: Walk Vertices() in ascending order; every unseen vertex seeds a BFS.
//   - Stage 2: The BFS visit order is the component's vertex set.
//   - Stage 3: Materialize the component with core.Graph.InducedSubgraph.
//
// Complexity: O(V·log V + E) plus the cost of building the subgraphs.
func Components(g *core.Graph, opts ...Option) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[core.Vertex]bool, g.VertexCount())
	var out []*core.Graph
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "component at %s", v)
		}
		for _, w := range res.Order {
			seen[w] = true
		}
		out = append(out, g.InducedSubgraph(res.Order))
	}

	return out, nil
}
