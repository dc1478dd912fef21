// Package isolation places a requested number of pairwise non-adjacent
// vertices on a conflict graph, solving each connected component separately.
//
// The independence number of a disjoint union is the sum over its components,
// so Plan splits the graph with bfs.Components, takes isolated vertices for
// free, and spends the exact mis searches on small components before large
// ones. Only the component that finishes the budget is asked for less than
// its maximum.
//
// Every Plan run carries a uuid that tags its klog lines (V(1) per component,
// V(2) search statistics) and the returned Placement.
package isolation
