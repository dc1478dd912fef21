// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Constructor adds one family of vertices and edges to g. It returns an error
// instead of panicking, and the same cfg always produces the same graph.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph runs cons in order on a fresh core.NewGraph(gopts...). The first
// failing constructor aborts the build.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: constructor %d is nil", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// Disjoint places every part on fresh Original IDs above those already in g,
// so the parts share no vertex and no edge.
func Disjoint(parts ...Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, part := range parts {
			if part == nil {
				return errors.Wrapf(ErrConstructFailed, "%s: part %d is nil", MethodDisjoint, i)
			}
			shifted := cfg
			shifted.idFn = OffsetIDFn(nextFreeID(g))
			if err := part(g, shifted); err != nil {
				return errors.Wrapf(err, "%s: part %d", MethodDisjoint, i)
			}
		}

		return nil
	}
}

// nextFreeID returns one past the largest Original ID in g (0 when none).
func nextFreeID(g *core.Graph) int {
	next := 0
	for _, v := range g.Vertices() {
		if !v.IsFolded() && v.ID >= next {
			next = v.ID + 1
		}
	}

	return next
}

// addVertices inserts idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		v := cfg.idFn(i)
		if err := g.AddVertex(v); err != nil {
			return errors.Wrapf(err, "%s: AddVertex(%s)", method, v)
		}
	}

	return nil
}

// addEdge links idFn(i)-idFn(j) with method context on failure.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdge(u, v); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%s, %s)", method, u, v)
	}

	return nil
}
