// SPDX-License-Identifier: MIT
package mis

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/isolator/core"
)

// FoldRecord remembers one application of RuleFold: Center had degree 2 with
// non-adjacent neighbors U and W, and the three were replaced by Folded,
// adjacent to (N(U) ∪ N(W)) \ {Center}.
type FoldRecord struct {
	Folded core.Vertex
	Center core.Vertex
	U, W   core.Vertex
}

// FoldMemory is an immutable list of fold records. Push returns a new memory
// that shares its tail with the receiver, so sibling branches can extend the
// same parent without seeing each other's records. The zero value is empty.
type FoldMemory struct {
	head *foldNode
	n    int
}

type foldNode struct {
	rec  FoldRecord
	next *foldNode
}

// Push returns m with r added as the newest record.
// Complexity: O(1).
func (m FoldMemory) Push(r FoldRecord) FoldMemory {
	return FoldMemory{head: &foldNode{rec: r, next: m.head}, n: m.n + 1}
}

// Len returns the number of records.
func (m FoldMemory) Len() int { return m.n }

// Records returns the records oldest first.
// Complexity: O(Len).
func (m FoldMemory) Records() []FoldRecord {
	out := make([]FoldRecord, m.n)
	i := m.n - 1
	for node := m.head; node != nil; node = node.next {
		out[i] = node.rec
		i--
	}

	return out
}

// Expand maps an independent set of the folded graph back through every
// record, newest first: a set containing Folded gets U and W instead,
// otherwise it gets Center. The input is not modified; the result is sorted.
//
// Newest first matters because a later fold may consume the Folded vertex of
// an earlier one as its Center, U or W; that vertex must be settled before the
// earlier record looks for it.
//
// Complexity: O((|set| + Len) · log(|set| + Len)).
func (m FoldMemory) Expand(set []core.Vertex) []core.Vertex {
	acc := newVertexSet()
	for _, v := range set {
		acc.Set(v)
	}
	m.expandInto(acc)

	return acc.Items()
}

func (m FoldMemory) expandInto(acc *btree.BTreeG[core.Vertex]) {
	for node := m.head; node != nil; node = node.next {
		r := node.rec
		if _, ok := acc.Delete(r.Folded); ok {
			acc.Set(r.U)
			acc.Set(r.W)
		} else {
			acc.Set(r.Center)
		}
	}
}

// newVertexSet returns an empty ordered vertex set. Sets never leave the
// solving goroutine, so the tree runs without its mutex.
func newVertexSet() *btree.BTreeG[core.Vertex] {
	return btree.NewBTreeGOptions[core.Vertex](vertexLess, btree.Options{NoLocks: true})
}

func vertexLess(a, b core.Vertex) bool { return a.Less(b) }
