// SPDX-License-Identifier: MIT

package builder

import "github.com/pkg/errors"

// Sentinels. Constructors wrap them with the constructor name; match with
// errors.Is.
var (
	// ErrTooFewVertices: a size argument is below the family's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability: p is outside [MinProbability, MaxProbability].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource: a random family was built without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed: nil constructor, or RandomRegular ran out of retries.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrOptionViolation: an enumerated argument is out of range.
	ErrOptionViolation = errors.New("builder: invalid option value")
)
