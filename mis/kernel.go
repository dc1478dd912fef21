// SPDX-License-Identifier: MIT
package mis

import (
	"github.com/pkg/errors"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/isolator/core"
)

// engine is the per-call state shared by every frame of one search:
// options, counters and the source of fresh folded vertices.
type engine struct {
	opts     Options
	stats    Stats
	nextFold int
}

// newEngine starts the fold counter above every folded vertex of g, so a
// residual graph from Reduce can be searched again.
func newEngine(opts Options, g *core.Graph) *engine {
	e := &engine{opts: opts}
	for _, v := range g.Vertices() {
		if v.IsFolded() && v.ID >= e.nextFold {
			e.nextFold = v.ID + 1
		}
	}

	return e
}

// tick counts one search node and polls the context every PollInterval nodes.
func (e *engine) tick(s Solver) error {
	e.stats.Nodes++
	e.opts.Observer.OnNode(s)
	if e.stats.Nodes%int64(e.opts.PollInterval) != 0 {
		return nil
	}
	if err := e.opts.Ctx.Err(); err != nil {
		return errors.Wrapf(ErrCanceled, "after %d nodes: %v", e.stats.Nodes, err)
	}

	return nil
}

func (e *engine) branch(s Solver) {
	e.stats.Branches++
	e.opts.Observer.OnBranch(s)
}

// step describes one rule application. Take is the vertex entering the
// independent set; for RuleFold it is unset and Fold carries the record.
type step struct {
	Rule Rule
	Take core.Vertex
	Fold FoldRecord
}

// reduceOnce applies the rule of the smallest vertex that has one, or reports
// false when no rule applies.
//
// work must hold every vertex of g to which a rule of profile applies (it may
// hold others too). Popping the minimum and discarding vertices with no rule
// therefore finds the same vertex as a fresh ascending scan of g, without
// rescanning vertices whose degree has not changed. Every vertex whose degree
// drops is pushed back.
func (e *engine) reduceOnce(s Solver, g *core.Graph, work *btree.BTreeG[core.Vertex], profile KernelProfile) (step, bool) {
	for {
		v, ok := work.PopMin()
		if !ok {
			return step{}, false
		}
		nbrs, err := g.Neighbors(v)
		if err != nil {
			// removed since it was queued
			continue
		}

		var st step
		switch len(nbrs) {
		case 0:
			_ = g.RemoveVertex(v)
			st = step{Rule: RuleDegree0, Take: v}
		case 1:
			touchNeighbors(g, work, nbrs[0])
			g.RemoveVertices(v, nbrs[0])
			st = step{Rule: RuleDegree1, Take: v}
		case 2:
			if !profile.allowsDegree2() {
				continue
			}
			u, w := nbrs[0], nbrs[1]
			if g.HasEdge(u, w) {
				touchNeighbors(g, work, u)
				touchNeighbors(g, work, w)
				g.RemoveVertices(v, u, w)
				st = step{Rule: RuleTriangle, Take: v}
			} else {
				st = step{Rule: RuleFold, Fold: e.fold(g, work, v, u, w)}
			}
		default:
			continue
		}

		e.stats.Reductions[st.Rule]++
		e.opts.Observer.OnReduction(s, st.Rule)

		return st, true
	}
}

// fold replaces v, u, w by a fresh vertex z adjacent to (N(u) ∪ N(w)) \ {v}.
func (e *engine) fold(g *core.Graph, work *btree.BTreeG[core.Vertex], v, u, w core.Vertex) FoldRecord {
	z := core.Folded(e.nextFold)
	e.nextFold++

	nu, _ := g.Neighbors(u)
	nw, _ := g.Neighbors(w)
	g.RemoveVertices(v, u, w)
	_ = g.AddVertex(z)
	for _, x := range nu {
		if x != v {
			_ = g.AddEdge(z, x)
			work.Set(x)
		}
	}
	for _, x := range nw {
		if x != v {
			_ = g.AddEdge(z, x)
			work.Set(x)
		}
	}
	work.Set(z)

	return FoldRecord{Folded: z, Center: v, U: u, W: w}
}

// touchNeighbors queues N(v); call it before v is removed.
func touchNeighbors(g *core.Graph, work *btree.BTreeG[core.Vertex], v core.Vertex) {
	nbrs, _ := g.Neighbors(v)
	for _, x := range nbrs {
		work.Set(x)
	}
}

// allVertices returns a worklist holding every vertex of g.
func allVertices(g *core.Graph) *btree.BTreeG[core.Vertex] {
	work := newVertexSet()
	for _, v := range g.Vertices() {
		work.Set(v)
	}

	return work
}

// removeClosed deletes N[u] from g and returns a worklist of the surviving
// vertices that lost a neighbor.
func removeClosed(g *core.Graph, u core.Vertex) *btree.BTreeG[core.Vertex] {
	nbrs, _ := g.Neighbors(u)
	work := newVertexSet()
	for _, x := range nbrs {
		touchNeighbors(g, work, x)
	}
	_, _ = g.RemoveClosedNeighborhood(u)
	work.Delete(u)
	for _, x := range nbrs {
		work.Delete(x)
	}

	return work
}

// removeOne deletes u from g and returns a worklist of its former neighbors.
func removeOne(g *core.Graph, u core.Vertex) *btree.BTreeG[core.Vertex] {
	work := newVertexSet()
	touchNeighbors(g, work, u)
	_ = g.RemoveVertex(u)

	return work
}

// pickVertex returns the vertex of minimum (or maximum) degree, ties broken
// by the smallest vertex. g must not be empty.
func pickVertex(g *core.Graph, maxDegree bool) core.Vertex {
	var (
		best    core.Vertex
		bestDeg = -1
	)
	for _, v := range g.Vertices() {
		d, _ := g.Degree(v)
		switch {
		case bestDeg < 0,
			maxDegree && d > bestDeg,
			!maxDegree && d < bestDeg:
			best, bestDeg = v, d
		}
	}

	return best
}
