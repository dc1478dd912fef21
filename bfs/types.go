// SPDX-License-Identifier: MIT
package bfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

var (
	ErrGraphNil            = errors.New("bfs: graph is nil")
	ErrStartVertexNotFound = errors.New("bfs: start vertex not in graph")
	ErrOptionViolation     = errors.New("bfs: option violation")
	ErrNeighbors           = errors.New("bfs: cannot list neighbors")

	// ErrNoPath is returned by Result.PathTo for a vertex the walk never reached.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option mutates Options. Invalid values are remembered and reported by the
// walk that consumes them.
type Option func(*Options)

// Options tunes a single walk. The zero value of every hook is a no-op.
type Options struct {
	Ctx context.Context

	// MaxDepth bounds the walk to vertices at most MaxDepth edges from the
	// start. Zero means unbounded.
	MaxDepth int

	OnEnqueue func(v core.Vertex, depth int)
	OnDequeue func(v core.Vertex, depth int)

	// OnVisit may stop the walk by returning an error.
	OnVisit func(v core.Vertex, depth int) error

	// FilterNeighbor drops the edge from→to when it returns false.
	FilterNeighbor func(from, to core.Vertex) bool

	err error
}

// DefaultOptions is an unbounded walk with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the radius of the walk. Negative depths are rejected
// with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "max depth %d", d)

			return
		}
		o.MaxDepth = d
	}
}

func WithOnEnqueue(fn func(v core.Vertex, depth int)) Option {
	return func(o *Options) { o.OnEnqueue = fn }
}

func WithOnDequeue(fn func(v core.Vertex, depth int)) Option {
	return func(o *Options) { o.OnDequeue = fn }
}

func WithOnVisit(fn func(v core.Vertex, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

func WithFilterNeighbor(fn func(from, to core.Vertex) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is what one walk discovered.
type Result struct {
	// Order lists reached vertices by non-decreasing depth; the start is first.
	Order []core.Vertex

	Depth  map[core.Vertex]int
	Parent map[core.Vertex]core.Vertex
}

// PathTo returns the tree path start..dest, both ends included.
func (r *Result) PathTo(dest core.Vertex) ([]core.Vertex, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, errors.Wrapf(ErrNoPath, "%s", dest)
	}
	path := make([]core.Vertex, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
