package mis_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/isolator/builder"
	"github.com/katalvlaran/isolator/core"
)

func o(i int) core.Vertex { return core.Original(i) }

func build(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func edges(t testing.TB, pairs ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(o(p[0]), o(p[1])))
	}

	return g
}

// requireIndependent checks that set lies in g, has no duplicates and spans
// no edge of g.
func requireIndependent(t testing.TB, g *core.Graph, set []core.Vertex) {
	t.Helper()
	seen := make(map[core.Vertex]bool, len(set))
	for _, v := range set {
		require.True(t, g.HasVertex(v), "vertex %s not in graph", v)
		require.False(t, seen[v], "duplicate vertex %s", v)
		seen[v] = true
	}
	for i, u := range set {
		for _, v := range set[i+1:] {
			require.False(t, g.HasEdge(u, v), "edge %s-%s inside the set", u, v)
		}
	}
}

// oracleAlpha computes α(g) as the clique number of the complement graph
// using gonum's Bron–Kerbosch enumeration.
func oracleAlpha(g *core.Graph) int {
	vs := g.Vertices()
	if len(vs) == 0 {
		return 0
	}
	comp := simple.NewUndirectedGraph()
	for i := range vs {
		comp.AddNode(simple.Node(i))
	}
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if !g.HasEdge(vs[i], vs[j]) {
				comp.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	best := 0
	for _, clique := range topo.BronKerbosch(comp) {
		best = max(best, len(clique))
	}

	return best
}
