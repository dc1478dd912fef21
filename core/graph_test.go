// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph lifecycle, query and cloning contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/isolator/core"
)

var (
	v0 = core.Original(0)
	v1 = core.Original(1)
	v2 = core.Original(2)
	v3 = core.Original(3)
	z0 = core.Folded(0)
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.True(s.g.Empty())

	require.NoError(s.g.AddVertex(v0))
	require.NoError(s.g.AddVertex(v0))
	require.Equal(1, s.g.VertexCount())
	require.True(s.g.HasVertex(v0))
	require.False(s.g.HasVertex(z0), "folded namespace is separate from original")
}

func (s *GraphSuite) TestAddVertexRejectsNegativeOriginal() {
	err := s.g.AddVertex(core.Original(-1))
	s.Require().True(errors.Is(err, core.ErrBadVertex))

	// Folded IDs carry no sign restriction.
	s.Require().NoError(s.g.AddVertex(core.Folded(-1)))
}

func (s *GraphSuite) TestAddEdgeAutoAddsAndDeduplicates() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(v0, v1))
	require.NoError(s.g.AddEdge(v1, v0))

	require.True(s.g.HasVertex(v0))
	require.True(s.g.HasVertex(v1))
	require.True(s.g.HasEdge(v0, v1))
	require.True(s.g.HasEdge(v1, v0))
	require.Equal(1, s.g.EdgeCount())
	require.NoError(s.g.Validate())
}

func (s *GraphSuite) TestAddEdgeRejectsLoop() {
	err := s.g.AddEdge(v2, v2)
	s.Require().True(errors.Is(err, core.ErrLoopNotAllowed))
	s.Require().True(s.g.Empty())
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(v0, v1))
	require.NoError(s.g.RemoveEdge(v1, v0))
	require.False(s.g.HasEdge(v0, v1))
	require.Equal(0, s.g.EdgeCount())
	require.Equal(2, s.g.VertexCount(), "endpoints survive edge removal")

	err := s.g.RemoveEdge(v0, v1)
	require.True(errors.Is(err, core.ErrEdgeNotFound))
}

func (s *GraphSuite) TestRemoveVertexDropsIncidentEdges() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(v0, v1))
	require.NoError(s.g.AddEdge(v0, v2))
	require.NoError(s.g.AddEdge(v1, v2))

	require.NoError(s.g.RemoveVertex(v0))
	require.Equal(1, s.g.EdgeCount())
	d, err := s.g.Degree(v1)
	require.NoError(err)
	require.Equal(1, d)
	require.NoError(s.g.Validate())

	require.True(errors.Is(s.g.RemoveVertex(v0), core.ErrVertexNotFound))
}

func (s *GraphSuite) TestRemoveVerticesSkipsMissing() {
	require.NoError(s.T(), s.g.AddEdge(v0, v1))
	n := s.g.RemoveVertices(v0, v3, z0)
	s.Equal(1, n)
	s.Equal([]core.Vertex{v1}, s.g.Vertices())
}

func (s *GraphSuite) TestRemoveClosedNeighborhood() {
	require := require.New(s.T())
	// star centred on v1 plus a pendant edge v2-v3
	require.NoError(s.g.AddEdge(v1, v0))
	require.NoError(s.g.AddEdge(v1, v2))
	require.NoError(s.g.AddEdge(v2, v3))

	removed, err := s.g.RemoveClosedNeighborhood(v1)
	require.NoError(err)
	require.Equal([]core.Vertex{v0, v1, v2}, removed)
	require.Equal([]core.Vertex{v3}, s.g.Vertices())
	require.Equal(0, s.g.EdgeCount())

	_, err = s.g.RemoveClosedNeighborhood(v1)
	require.True(errors.Is(err, core.ErrVertexNotFound))
}

func (s *GraphSuite) TestNeighborsSorted() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(v1, z0))
	require.NoError(s.g.AddEdge(v1, v3))
	require.NoError(s.g.AddEdge(v1, v0))

	nbrs, err := s.g.Neighbors(v1)
	require.NoError(err)
	require.Equal([]core.Vertex{v0, v3, z0}, nbrs)

	_, err = s.g.Neighbors(v2)
	require.True(errors.Is(err, core.ErrVertexNotFound))
}

func (s *GraphSuite) TestAdjacencyListSnapshot() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(v0, v1))
	require.NoError(s.g.AddVertex(v2))

	adj := s.g.AdjacencyList()
	require.Equal([]core.Vertex{v1}, adj[v0])
	require.NotNil(adj[v2])
	require.Empty(adj[v2])

	// mutating the snapshot leaves the graph intact
	adj[v0] = nil
	require.True(s.g.HasEdge(v0, v1))
}

func (s *GraphSuite) TestCloneIsDeep() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(v0, v1))
	require.NoError(s.g.AddEdge(v1, v2))

	c := s.g.Clone()
	require.NoError(c.RemoveVertex(v1))
	require.NoError(c.AddEdge(v0, v2))

	require.Equal(2, s.g.EdgeCount())
	require.True(s.g.HasVertex(v1))
	require.False(s.g.HasEdge(v0, v2))
	require.Equal(1, c.EdgeCount())
	require.NoError(c.Validate())
}

func (s *GraphSuite) TestInducedSubgraph() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(v0, v1))
	require.NoError(s.g.AddEdge(v1, v2))
	require.NoError(s.g.AddEdge(v2, v3))

	sub := s.g.InducedSubgraph([]core.Vertex{v1, v2, v3, z0})
	require.Equal([]core.Vertex{v1, v2, v3}, sub.Vertices())
	require.Equal(2, sub.EdgeCount())
	require.False(sub.HasVertex(v0))
	require.Equal(3, s.g.EdgeCount(), "source must not change")
}

func (s *GraphSuite) TestClear() {
	require.NoError(s.T(), s.g.AddEdge(v0, v1))
	s.g.Clear()
	s.True(s.g.Empty())
	s.Equal(0, s.g.EdgeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestVertexOrderingAndString(t *testing.T) {
	vs := []struct {
		a, b core.Vertex
		less bool
	}{
		{core.Original(1), core.Original(2), true},
		{core.Original(2), core.Original(1), false},
		{core.Original(100), core.Folded(0), true},
		{core.Folded(0), core.Original(100), false},
		{core.Folded(1), core.Folded(3), true},
		{core.Folded(3), core.Folded(3), false},
	}
	for _, tc := range vs {
		assert.Equal(t, tc.less, tc.a.Less(tc.b), "%s < %s", tc.a, tc.b)
	}

	assert.Equal(t, 0, core.Compare(z0, core.Folded(0)))
	assert.Equal(t, -1, core.Compare(v0, z0))
	assert.Equal(t, 1, core.Compare(z0, v3))
	assert.Equal(t, "7", core.Original(7).String())
	assert.Equal(t, "z4", core.Folded(4).String())
	assert.True(t, z0.IsFolded())
	assert.False(t, v0.IsFolded())
	assert.Equal(t, "folded", core.FoldedKind.String())
	assert.Equal(t, "original", core.OriginalKind.String())
}

func TestValidateAcceptsMixedKinds(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	require.NoError(t, g.AddEdge(v0, z0))
	require.NoError(t, g.Validate())
}

// TestConcurrentReaders exercises the read lock while a clone is mutated.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(core.Original(i), core.Original(i+1)))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := g.Clone()
			for _, v := range c.Vertices() {
				_, _ = c.RemoveClosedNeighborhood(v)
			}
			_ = g.AdjacencyList()
		}()
	}
	wg.Wait()

	assert.Equal(t, 51, g.VertexCount())
	assert.Equal(t, 50, g.EdgeCount())
}
