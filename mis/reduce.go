// SPDX-License-Identifier: MIT
package mis

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Reduction is the fixed point of the kernel on a graph:
//
//	α(original) = Gain + α(Graph)
//
// and Lift turns any independent set of Graph into one of the original with
// Gain more vertices.
type Reduction struct {
	// Graph is the residual graph; no rule of the profile applies to it.
	Graph *core.Graph
	// Forced holds the vertices taken by degree-0, degree-1 and triangle
	// rules, in application order. Folded vertices may appear here.
	Forced []core.Vertex
	// Folds holds the fold records.
	Folds FoldMemory
	// Gain is the number of rule applications.
	Gain int
	// Stats counts the rule applications by rule.
	Stats Stats
}

// Reduce applies the kernel to a clone of g until no rule fires.
// The profile defaults to KernelFull; WithKernel(KernelBasic) restricts it to
// the degree-0 and degree-1 rules.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrCanceled.
// Complexity: O((V + E) · log V) rule scans plus the cost of the rules.
func Reduce(g *core.Graph, opts ...Option) (*Reduction, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.Kernel == KernelDefault {
		o.Kernel = KernelFull
	}

	e := newEngine(o, g)
	r := &Reduction{Graph: g.Clone()}
	work := allVertices(g)
	for {
		if err = e.tick(SolverReduce); err != nil {
			return nil, err
		}
		st, ok := e.reduceOnce(SolverReduce, r.Graph, work, o.Kernel)
		if !ok {
			break
		}
		r.Gain++
		if st.Rule == RuleFold {
			r.Folds = r.Folds.Push(st.Fold)
		} else {
			r.Forced = append(r.Forced, st.Take)
		}
	}
	r.Stats = e.stats

	return r, nil
}

// Lift maps an independent set of r.Graph to an independent set of the
// reduced graph with Gain more vertices. Independence of residual is not
// checked; membership is.
//
// Errors: ErrNotInResidual for a vertex missing from r.Graph.
func (r *Reduction) Lift(residual []core.Vertex) ([]core.Vertex, error) {
	acc := newVertexSet()
	for _, v := range residual {
		if !r.Graph.HasVertex(v) {
			return nil, errors.Wrapf(ErrNotInResidual, "vertex %s", v)
		}
		acc.Set(v)
	}
	for _, v := range r.Forced {
		acc.Set(v)
	}
	r.Folds.expandInto(acc)

	return acc.Items(), nil
}
