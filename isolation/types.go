// SPDX-License-Identifier: MIT
package isolation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
	"github.com/katalvlaran/isolator/mis"
)

// Sentinel errors for Plan.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("isolation: graph is nil")

	// ErrNegativeTarget is returned for k < 0.
	ErrNegativeTarget = errors.New("isolation: negative target")

	// ErrInsufficientCapacity is returned when the graph has no independent
	// set of the requested size.
	ErrInsufficientCapacity = errors.New("isolation: insufficient capacity")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("isolation: invalid option supplied")
)

// Order selects how non-trivial components are sequenced. Small components
// go first so that large ones, where the search is expensive, are only
// asked for what is still missing.
type Order uint8

const (
	// OrderEdges sorts components by ascending edge count.
	OrderEdges Order = iota
	// OrderVertices sorts components by ascending vertex count.
	OrderVertices
)

func (o Order) String() string {
	switch o {
	case OrderEdges:
		return "edges"
	case OrderVertices:
		return "vertices"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

// ParseOrder maps "edges" or "vertices" to an Order; "" means OrderEdges.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "edges":
		return OrderEdges, nil
	case "vertices":
		return OrderVertices, nil
	}

	return OrderEdges, errors.Wrapf(ErrOptionViolation, "unknown order %q", s)
}

// Recorder receives search events and per-component timings.
// metrics.Collector implements it.
type Recorder interface {
	mis.Observer
	// ComponentSolved fires after a component has been handled.
	ComponentSolved(vertices int, elapsed time.Duration)
	// Planned fires once per Plan with the number of components.
	Planned(components int)
}

// NopRecorder ignores every event.
type NopRecorder struct{ mis.NopObserver }

func (NopRecorder) ComponentSolved(int, time.Duration) {}
func (NopRecorder) Planned(int)                        {}

// Option configures Plan via functional arguments.
type Option func(*Options)

// Options holds the Plan tunables.
type Options struct {
	// Ctx is passed to the component walk and to every solver call.
	Ctx context.Context
	// Order sequences the non-trivial components.
	Order Order
	// Recorder receives events; it is also installed as the solvers' observer.
	Recorder Recorder
	// SolverOpts are appended to every mis call.
	SolverOpts []mis.Option
	// RunID tags log lines and the Placement; zero means a fresh uuid.
	RunID uuid.UUID

	err error
}

// DefaultOptions returns Options with context.Background(), OrderEdges and a
// NopRecorder.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Order:    OrderEdges,
		Recorder: NopRecorder{},
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the component order.
func WithOrder(ord Order) Option {
	return func(o *Options) {
		if ord > OrderVertices {
			o.err = errors.Wrapf(ErrOptionViolation, "unknown order %d", ord)

			return
		}
		o.Order = ord
	}
}

// WithRecorder registers a Recorder. nil is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithSolverOptions appends options for every mis.Size and mis.Solve call.
func WithSolverOptions(opts ...mis.Option) Option {
	return func(o *Options) {
		o.SolverOpts = append(o.SolverOpts, opts...)
	}
}

// WithRunID fixes the run id instead of drawing a random one.
func WithRunID(id uuid.UUID) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// ComponentReport describes how Plan handled one non-trivial component.
type ComponentReport struct {
	// Smallest is the component's smallest vertex.
	Smallest core.Vertex
	Vertices int
	Edges    int
	// Alpha is the component's independence number, or -1 when the
	// component was solved directly without computing it.
	Alpha int
	// Taken is the number of vertices placed in the component.
	Taken   int
	Stats   mis.Stats
	Elapsed time.Duration
}

// Placement is the outcome of Plan.
type Placement struct {
	RunID uuid.UUID
	// Target is the requested k.
	Target int
	// Set is an independent set of Target vertices, ascending.
	Set []core.Vertex
	// Isolated is the number of isolated vertices taken.
	Isolated int
	// Components lists the non-trivial components that were visited, in
	// visiting order.
	Components []ComponentReport
	// Stats sums the solver statistics over all components.
	Stats mis.Stats
}
