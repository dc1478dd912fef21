// SPDX-License-Identifier: MIT
package bfs

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// frontier is one queued vertex and its distance from the start.
type frontier struct {
	v     core.Vertex
	depth int
}

// BFS walks g outward from start. Neighbors are expanded in core.Compare
// order, so Order is deterministic for a given graph.
func BFS(g *core.Graph, start core.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "%s", start)
	}

	res := &Result{
		Depth:  map[core.Vertex]int{},
		Parent: map[core.Vertex]core.Vertex{},
	}
	q := linkedlistqueue.New()
	push := func(v core.Vertex, depth int) {
		res.Depth[v] = depth
		if o.OnEnqueue != nil {
			o.OnEnqueue(v, depth)
		}
		q.Enqueue(frontier{v, depth})
	}
	push(start, 0)

	for !q.Empty() {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		raw, _ := q.Dequeue()
		cur := raw.(frontier)
		if o.OnDequeue != nil {
			o.OnDequeue(cur.v, cur.depth)
		}
		res.Order = append(res.Order, cur.v)
		if o.OnVisit != nil {
			if err := o.OnVisit(cur.v, cur.depth); err != nil {
				return res, errors.Wrapf(err, "bfs: visit %s", cur.v)
			}
		}
		if o.MaxDepth > 0 && cur.depth == o.MaxDepth {
			continue
		}

		nbrs, err := g.Neighbors(cur.v)
		if err != nil {
			return res, errors.Wrapf(ErrNeighbors, "%s: %v", cur.v, err)
		}
		for _, w := range nbrs {
			if _, seen := res.Depth[w]; seen {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(cur.v, w) {
				continue
			}
			res.Parent[w] = cur.v
			push(w, cur.depth+1)
		}
	}

	return res, nil
}
