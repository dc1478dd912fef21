// SPDX-License-Identifier: MIT
package mis

import (
	"github.com/pkg/errors"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/isolator/core"
)

// frame is one level of the decision search. It owns g, set and work;
// folds is shared structurally with the parent.
type frame struct {
	g     *core.Graph
	k     int
	set   *btree.BTreeG[core.Vertex]
	folds FoldMemory
	work  *btree.BTreeG[core.Vertex]
}

// Solve decides whether g has an independent set of k vertices and, if so,
// returns one. g is not modified.
//
// Each search node first exhausts the full kernel (degree 0, degree 1,
// triangle, fold). If the budget is then unmet, it branches on a vertex u of
// minimum degree, smallest on ties:
//   - left: take u, drop N[u], recurse with k-1; a success ends the search;
//   - right: drop u and continue in the same frame with k.
//
// The returned set is expanded through every fold on the successful path and
// contains only vertices of g.
//
// Errors:
//   - ErrGraphNil, ErrNegativeBudget, ErrOptionViolation;
//   - ErrCanceled once the context is done.
//
// An unreachable k is Result.Feasible == false, not an error.
// Complexity: exponential in k in the worst case.
func Solve(g *core.Graph, k int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 0 {
		return nil, errors.Wrapf(ErrNegativeBudget, "k=%d", k)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	e := newEngine(o, g)
	root := frame{
		g:    g.Clone(),
		k:    k,
		set:  newVertexSet(),
		work: allVertices(g),
	}
	set, err := e.decide(root)
	if err != nil {
		return nil, err
	}
	res := &Result{Stats: e.stats}
	if set != nil {
		res.Feasible = true
		res.Set = set.Items()
	}

	return res, nil
}

// decide runs the search from f and returns the expanded witness, or nil when
// f admits no independent set of f.k vertices.
func (e *engine) decide(f frame) (*btree.BTreeG[core.Vertex], error) {
	for {
		if err := e.tick(SolverDecide); err != nil {
			return nil, err
		}

		for f.k > 0 {
			st, ok := e.reduceOnce(SolverDecide, f.g, f.work, KernelFull)
			if !ok {
				break
			}
			f.k--
			if st.Rule == RuleFold {
				f.folds = f.folds.Push(st.Fold)
			} else {
				f.set.Set(st.Take)
			}
		}
		if f.k == 0 {
			f.folds.expandInto(f.set)

			return f.set, nil
		}
		// k vertices cannot fit into fewer; this also covers the empty graph
		if f.g.VertexCount() < f.k {
			return nil, nil
		}

		u := pickVertex(f.g, false)

		e.branch(SolverDecide)
		left := frame{
			g:     f.g.Clone(),
			k:     f.k - 1,
			set:   f.set.Copy(),
			folds: f.folds,
		}
		left.work = removeClosed(left.g, u)
		left.set.Set(u)
		set, err := e.decide(left)
		if err != nil || set != nil {
			return set, err
		}

		f.work = removeOne(f.g, u)
	}
}
