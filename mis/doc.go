// Package mis finds maximum independent sets by exact branch-and-reduce search.
//
// What:
//
//   - Size(g) returns α(g), the size of a maximum independent set.
//   - Solve(g, k) decides whether an independent set of k vertices exists and
//     returns one.
//   - Reduce(g) exposes the kernel: the residual graph plus what it takes to
//     lift a residual solution back.
//
// Kernel rules, applied to the smallest vertex that has one until none fires:
//
//   - degree 0: take v.
//   - degree 1: take v, drop its neighbor.
//   - triangle: v has degree 2 and adjacent neighbors; take v, drop both.
//   - fold: v has degree 2 and non-adjacent neighbors u, w; replace v, u, w
//     by a fresh core.Folded vertex z adjacent to (N(u) ∪ N(w)) \ {v}.
//     Every maximum independent set of the folded graph maps back to one of
//     the original that is one larger (FoldMemory.Expand).
//
// Every rule raises α by exactly one, which is what both solvers count on.
//
// Search:
//
//   - Solve branches on a minimum-degree vertex: take it (recursion, budget
//     k-1) or drop it (loop in the same frame). The first success wins.
//   - Size branches on a maximum-degree vertex and explores both sides.
//
// Branches copy what they mutate: core.Graph.Clone, a tidwall/btree
// copy-on-write accumulator, and a persistent FoldMemory. The caller's graph
// is never touched.
//
// Options:
//
//   - WithContext: polled every WithPollInterval nodes (default 1024);
//     a done context ends the search with ErrCanceled.
//   - WithKernel: rule set for Size (default KernelBasic) and Reduce
//     (default KernelFull). Solve always uses KernelFull.
//   - WithObserver: hooks for rule, branch and node events.
//
// Complexity: exponential in the worst case for both solvers.
package mis
