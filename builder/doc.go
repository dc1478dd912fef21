// Package builder provides deterministic graph fixtures in the
// “functional‐options” style: path, cycle, star, wheel, complete, complete
// bipartite, grid, Platonic shells, random sparse and random regular graphs.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the vertex-ID scheme.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       core.Original(i).
//     – OffsetIDFn(base):  core.Original(base+i).
//     – FoldedIDFn:        core.Folded(i), for exercising the synthetic namespace.
//   - Composition:
//     – BuildGraph runs constructors in order on one graph.
//     – Disjoint places each constructor on fresh vertex IDs.
//   - Shared constants:
//     – Min*Nodes, MinProbability, MaxProbability, Method* tokens.
//
// Guarantees:
//
//   - Idempotent construction: re-running the same builder on g will not
//     duplicate vertices or edges (core.Graph is simple).
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability, ...)
//     wrapped with the constructor name; branch with errors.Is.
//   - Same inputs, options and seed ⇒ identical graphs.
//
// The fixtures double as known-answer inputs for the independent-set solvers:
// α(P_n)=⌈n/2⌉, α(C_n)=⌊n/2⌋, α(K_n)=1, α(K_{a,b})=max(a,b), α(Star_n)=n-1.
package builder
