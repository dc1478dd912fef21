// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is the resolved form of a []BuilderOption. Constructors
// receive it by value.
type builderConfig struct {
	idFn IDFn
	// rng stays nil unless WithSeed or WithRand is given; stochastic
	// constructors refuse to run without it.
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
