// Package builder provides vertex-ID schemes for graph constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/isolator/core"
)

// IDFn generates a vertex from its zero‐based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) core.Vertex

// DefaultIDFn returns core.Original(idx).
// Complexity: O(1). Never panics.
func DefaultIDFn(idx int) core.Vertex {
	return core.Original(idx)
}

// OffsetIDFn returns a scheme mapping idx to core.Original(base+idx).
// Panics if base < 0.
func OffsetIDFn(base int) IDFn {
	if base < 0 {
		panic(fmt.Sprintf("OffsetIDFn: base must be ≥ 0, got %d", base))
	}

	return func(idx int) core.Vertex {
		return core.Original(base + idx)
	}
}

// FoldedIDFn returns core.Folded(idx). Useful for fixtures that mix the two
// vertex namespaces.
func FoldedIDFn(idx int) core.Vertex {
	return core.Folded(idx)
}
