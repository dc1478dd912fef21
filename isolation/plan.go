// SPDX-License-Identifier: MIT
package isolation

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/isolator/bfs"
	"github.com/katalvlaran/isolator/core"
	"github.com/katalvlaran/isolator/mis"
)

// Plan places k pairwise non-adjacent vertices of g, one connected component
// at a time. g is not modified.
//
// Steps:
//  1. Isolated vertices are taken first, ascending, until k is met.
//  2. The other components are sorted by Order (stable; ties keep the order
//     of their smallest vertex).
//  3. Every component but the last gets α = mis.Size. If α covers what is
//     still missing, mis.Solve places exactly that and Plan stops; otherwise
//     the component contributes a full set of α vertices.
//  4. The last component is asked directly for the remainder.
//
// k == 0 returns an empty Placement without looking at g.
//
// Errors:
//   - ErrGraphNil, ErrNegativeTarget, ErrOptionViolation;
//   - ErrInsufficientCapacity when g cannot host k vertices;
//   - solver errors (mis.ErrCanceled, mis.ErrOptionViolation), wrapped.
func Plan(g *core.Graph, k int, opts ...Option) (*Placement, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 0 {
		return nil, errors.Wrapf(ErrNegativeTarget, "k=%d", k)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.RunID == uuid.Nil {
		o.RunID = uuid.New()
	}

	p := &Placement{RunID: o.RunID, Target: k}
	if k == 0 {
		klog.V(1).Infof("isolation[%s]: nothing to place", p.RunID)

		return p, nil
	}

	comps, err := bfs.Components(g, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "isolation[%s]: components", p.RunID)
	}
	o.Recorder.Planned(len(comps))

	remaining := k
	chosen := make([]core.Vertex, 0, k)
	var rest []*core.Graph
	for _, c := range comps {
		if c.VertexCount() > 1 {
			rest = append(rest, c)
			continue
		}
		if remaining > 0 {
			chosen = append(chosen, c.Vertices()...)
			remaining--
			p.Isolated++
		}
	}
	klog.V(1).Infof("isolation[%s]: k=%d, %d components, %d isolated taken",
		p.RunID, k, len(comps), p.Isolated)

	slices.SortStableFunc(rest, func(a, b *core.Graph) int {
		return cmp.Compare(o.Order.weight(a), o.Order.weight(b))
	})

	s := solver{opts: o, runID: p.RunID}
	for i, c := range rest {
		if remaining == 0 {
			break
		}
		rep, set, err := s.component(c, remaining, i == len(rest)-1)
		if err != nil {
			return nil, err
		}
		p.Components = append(p.Components, rep)
		p.Stats.Add(rep.Stats)
		chosen = append(chosen, set...)
		remaining -= rep.Taken
	}
	if remaining > 0 {
		return nil, errors.Wrapf(ErrInsufficientCapacity, "run %s: placed %d of %d", p.RunID, k-remaining, k)
	}

	slices.SortFunc(chosen, core.Compare)
	p.Set = chosen
	klog.V(1).Infof("isolation[%s]: placed %d vertices over %d components", p.RunID, len(chosen), len(p.Components))

	return p, nil
}

// weight is the sort key of a component under o.
func (o Order) weight(g *core.Graph) int {
	if o == OrderVertices {
		return g.VertexCount()
	}

	return g.EdgeCount()
}

// solver handles one component at a time for a Plan run.
type solver struct {
	opts  Options
	runID uuid.UUID
}

func (s solver) misOptions() []mis.Option {
	out := []mis.Option{mis.WithContext(s.opts.Ctx), mis.WithObserver(s.opts.Recorder)}

	return append(out, s.opts.SolverOpts...)
}

// component places up to need vertices in c. Unless c is last it first
// computes α(c) and asks for min(α, need); the last component is asked for
// need directly and contributes nothing when it cannot host that many.
func (s solver) component(c *core.Graph, need int, last bool) (ComponentReport, []core.Vertex, error) {
	start := time.Now()
	rep := ComponentReport{
		Smallest: c.Vertices()[0],
		Vertices: c.VertexCount(),
		Edges:    c.EdgeCount(),
		Alpha:    -1,
	}
	opts := s.misOptions()

	target := need
	if !last {
		alpha, st, err := mis.SizeWithStats(c, opts...)
		if err != nil {
			return rep, nil, errors.Wrapf(err, "isolation[%s]: size of component %s", s.runID, rep.Smallest)
		}
		rep.Alpha = alpha
		rep.Stats.Add(st)
		target = min(alpha, need)
	}

	res, err := mis.Solve(c, target, opts...)
	if err != nil {
		return rep, nil, errors.Wrapf(err, "isolation[%s]: solve component %s", s.runID, rep.Smallest)
	}
	rep.Stats.Add(res.Stats)
	if res.Feasible {
		rep.Taken = target
	}
	rep.Elapsed = time.Since(start)
	s.opts.Recorder.ComponentSolved(rep.Vertices, rep.Elapsed)

	klog.V(1).Infof("isolation[%s]: component %s |V|=%d |E|=%d alpha=%d need=%d took=%d",
		s.runID, rep.Smallest, rep.Vertices, rep.Edges, rep.Alpha, need, rep.Taken)
	klog.V(2).Infof("isolation[%s]: component %s nodes=%d branches=%d reductions=%d in %s",
		s.runID, rep.Smallest, rep.Stats.Nodes, rep.Stats.Branches, rep.Stats.TotalReductions(), rep.Elapsed)

	if !res.Feasible {
		return rep, nil, nil
	}

	return rep, res.Set, nil
}
