// SPDX-License-Identifier: MIT
package mis

import (
	"context"

	"github.com/pkg/errors"
)

// DefaultPollInterval is the number of search nodes between context polls.
const DefaultPollInterval = 1024

// Option configures a solver call via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// solver is invoked.
type Option func(*Options)

// Options holds the tunables shared by Solve, Size and Reduce.
type Options struct {
	// Ctx is polled every PollInterval search nodes.
	Ctx context.Context

	// Kernel selects the rule set for Size and Reduce. Solve ignores it.
	Kernel KernelProfile

	// Observer receives rule, branch and node events.
	Observer Observer

	// PollInterval is the number of nodes between context polls (> 0).
	PollInterval int

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - KernelDefault
//   - a no-op Observer
//   - DefaultPollInterval
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Kernel:       KernelDefault,
		Observer:     NopObserver{},
		PollInterval: DefaultPollInterval,
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

// WithKernel selects the kernel profile of Size and Reduce.
func WithKernel(p KernelProfile) Option {
	return func(o *Options) {
		if p > KernelFull {
			o.err = errors.Wrapf(ErrOptionViolation, "unknown kernel profile %d", p)

			return
		}
		o.Kernel = p
	}
}

// WithObserver registers hooks for search events. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithPollInterval sets how many nodes pass between context polls.
// n <= 0 is an ErrOptionViolation.
func WithPollInterval(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "poll interval must be positive (%d)", n)

			return
		}
		o.PollInterval = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
