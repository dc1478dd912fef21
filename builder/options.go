// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption adjusts the builderConfig shared by every constructor of one
// BuildGraph call. Later options override earlier ones.
//
// Option constructors panic on arguments that can only be programmer errors;
// the constructors themselves report problems as errors.
type BuilderOption func(*builderConfig)

// WithIDScheme maps constructor indices to vertices with fn.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: nil IDFn")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithOffset shifts indices so that index i becomes core.Original(base+i).
func WithOffset(base int) BuilderOption {
	if base < 0 {
		panic("builder: negative offset")
	}

	return func(c *builderConfig) { c.idFn = OffsetIDFn(base) }
}

func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: nil *rand.Rand")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand on a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
