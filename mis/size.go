// SPDX-License-Identifier: MIT
package mis

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/isolator/core"
)

// Size returns α(g), the cardinality of a maximum independent set of g.
// g is not modified.
//
// Each node exhausts the kernel profile (KernelBasic unless WithKernel says
// otherwise), counting one vertex per rule. On a non-empty remainder it
// branches on a vertex u of maximum degree, smallest on ties:
//
//	Size(G) = bonus + max(1 + Size(G − N[u]), Size(G − u))
//
// Both subtrees are explored in full; no bound prunes them.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrCanceled.
func Size(g *core.Graph, opts ...Option) (int, error) {
	n, _, err := SizeWithStats(g, opts...)

	return n, err
}

// SizeWithStats is Size that also returns the search counters.
func SizeWithStats(g *core.Graph, opts ...Option) (int, Stats, error) {
	if g == nil {
		return 0, Stats{}, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, Stats{}, err
	}
	if o.Kernel == KernelDefault {
		o.Kernel = KernelBasic
	}

	e := newEngine(o, g)
	n, err := e.size(g.Clone(), allVertices(g))

	return n, e.stats, err
}

// size owns g and may destroy it.
func (e *engine) size(g *core.Graph, work *btree.BTreeG[core.Vertex]) (int, error) {
	if err := e.tick(SolverSize); err != nil {
		return 0, err
	}

	bonus := 0
	for {
		if _, ok := e.reduceOnce(SolverSize, g, work, e.opts.Kernel); !ok {
			break
		}
		bonus++
	}
	if g.Empty() {
		return bonus, nil
	}

	u := pickVertex(g, true)

	e.branch(SolverSize)
	left := g.Clone()
	with, err := e.size(left, removeClosed(left, u))
	if err != nil {
		return 0, err
	}
	without, err := e.size(g, removeOne(g, u))
	if err != nil {
		return 0, err
	}

	return bonus + max(1+with, without), nil
}
