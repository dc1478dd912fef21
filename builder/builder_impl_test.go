// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// idempotence and parameter validation.
package builder_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isolator/builder"
	"github.com/katalvlaran/isolator/core"
)

func o(i int) core.Vertex { return core.Original(i) }

// degrees returns the degree of every vertex in Vertices() order.
func degrees(t *testing.T, g *core.Graph) []int {
	t.Helper()
	var out []int
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out = append(out, d)
	}

	return out
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Empty(4)",
			ctor:  builder.Empty(4),
			wantV: 4, wantE: 0,
		},
		{
			name:  "Path(1)",
			ctor:  builder.Path(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					assert.True(t, g.HasEdge(o(i), o(i+1)), "edge %d-%d", i, i+1)
				}
				assert.False(t, g.HasEdge(o(0), o(3)))
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(o(i), o((i+1)%5)))
				}
			},
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{4, 1, 1, 1, 1}, degrees(t, g))
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{3, 3, 3, 3, 4}, degrees(t, g))
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(o(0), o(1)), "left side is independent")
				assert.False(t, g.HasEdge(o(2), o(4)), "right side is independent")
				assert.True(t, g.HasEdge(o(1), o(4)))
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(o(0), o(3)), "down edge")
				assert.True(t, g.HasEdge(o(4), o(5)), "right edge")
				assert.False(t, g.HasEdge(o(2), o(3)), "no wrap-around")
			},
		},
		{
			name:  "PlatonicSolid(Cube)",
			ctor:  builder.PlatonicSolid(builder.Cube, false),
			wantV: 8, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{3, 3, 3, 3, 3, 3, 3, 3}, degrees(t, g))
			},
		},
		{
			name:  "PlatonicSolid(Octahedron,center)",
			ctor:  builder.PlatonicSolid(builder.Octahedron, true),
			wantV: 7, wantE: 18,
		},
		{
			name:  "PlatonicSolid(Dodecahedron)",
			ctor:  builder.PlatonicSolid(builder.Dodecahedron, false),
			wantV: 20, wantE: 30,
		},
		{
			name:  "PlatonicSolid(Icosahedron)",
			ctor:  builder.PlatonicSolid(builder.Icosahedron, false),
			wantV: 12, wantE: 30,
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount(), "vertices")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edges")
			require.NoError(t, g.Validate())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}

			// Idempotence: applying the constructor twice adds nothing.
			twice, err := builder.BuildGraph(nil, nil, tc.ctor, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, twice.VertexCount(), "vertices after re-apply")
			assert.Equal(t, tc.wantE, twice.EdgeCount(), "edges after re-apply")
		})
	}
}

// TestBuilders_Errors checks parameter validation sentinels.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Empty(-1)", builder.Empty(-1), nil, builder.ErrTooFewVertices},
		{"Path(0)", builder.Path(0), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(4, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomRegular(odd)", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(d>=n)", builder.RandomRegular(4, 4), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", builder.RandomRegular(4, 2), nil, builder.ErrNeedRandSource},
		{"PlatonicSolid(unknown)", builder.PlatonicSolid(builder.PlatonicName(99), false), nil, builder.ErrOptionViolation},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestRandomBuilders_Deterministic checks seed reproducibility and regularity.
func TestRandomBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64, c builder.Constructor) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, c)
		require.NoError(t, err)

		return g
	}

	a := build(7, builder.RandomSparse(30, 0.2))
	b := build(7, builder.RandomSparse(30, 0.2))
	assert.Equal(t, a.AdjacencyList(), b.AdjacencyList())

	r := build(3, builder.RandomRegular(12, 3))
	assert.Equal(t, 18, r.EdgeCount())
	for _, d := range degrees(t, r) {
		assert.Equal(t, 3, d)
	}
	require.NoError(t, r.Validate())
}

// TestDisjoint checks that parts land on fresh vertex IDs.
func TestDisjoint(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Disjoint(builder.Complete(3), builder.Empty(1), builder.Path(2)))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{o(0), o(1), o(2), o(3), o(4), o(5)}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(o(4), o(5)))
	d, err := g.Degree(o(3))
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	_, err = builder.BuildGraph(nil, nil, builder.Disjoint(builder.Path(2), nil))
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
}

// TestOptions_Offset checks WithOffset and the folded ID scheme.
func TestOptions_Offset(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithOffset(10)}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{o(10), o(11)}, g.Vertices())

	f, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.FoldedIDFn)}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{core.Folded(0), core.Folded(1)}, f.Vertices())

	assert.Panics(t, func() { builder.WithOffset(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
