// SPDX-License-Identifier: MIT
// Package: isolator/builder
//
// variants_platonic.go — the five Platonic shells, generated from their
// classical combinatorial descriptions instead of literal edge tables.
//
//   Tetrahedron   K4
//   Cube          hypercube Q3 (labels differ in exactly one bit)
//   Octahedron    K6 minus the perfect matching {i, i+3}
//   Dodecahedron  generalized Petersen graph GP(10,2)
//   Icosahedron   pentagonal antiprism capped by two poles
//
// Independence numbers: 1, 4, 2, 8, 3 in the order above.

package builder

import (
	"cmp"
	"math/bits"
	"slices"
)

// chord is an unordered index pair {U,V} with U < V.
type chord struct {
	U, V int
}

func mkChord(a, b int) chord {
	if a > b {
		a, b = b, a
	}

	return chord{U: a, V: b}
}

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron PlatonicName = iota
	Cube
	Octahedron
	Dodecahedron
	Icosahedron
)

var platonicNames = [...]string{"Tetrahedron", "Cube", "Octahedron", "Dodecahedron", "Icosahedron"}

func (p PlatonicName) String() string {
	if p < 0 || int(p) >= len(platonicNames) {
		return "Unknown"
	}

	return platonicNames[p]
}

// platonicShell describes one solid: its order and an edge generator.
type platonicShell struct {
	order int
	edges func() []chord
}

var platonicShells = map[PlatonicName]platonicShell{
	Tetrahedron: {4, func() []chord {
		return pairsWhere(4, func(int, int) bool { return true })
	}},
	Cube: {8, func() []chord {
		return pairsWhere(8, func(i, j int) bool { return bits.OnesCount(uint(i^j)) == 1 })
	}},
	Octahedron: {6, func() []chord {
		return pairsWhere(6, func(i, j int) bool { return j-i != 3 })
	}},
	Dodecahedron: {20, dodecahedronEdges},
	Icosahedron:  {12, icosahedronEdges},
}

// pairsWhere lists every pair i<j<n accepted by keep, in lexicographic order.
func pairsWhere(n int, keep func(i, j int) bool) []chord {
	var out []chord
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if keep(i, j) {
				out = append(out, chord{U: i, V: j})
			}
		}
	}

	return out
}

// dodecahedronEdges builds GP(10,2): outer ring 0..9, inner star 10..19
// joining every second vertex, one spoke per ring vertex.
func dodecahedronEdges() []chord {
	const n = 10
	out := make([]chord, 0, 3*n)
	for i := 0; i < n; i++ {
		out = append(out,
			mkChord(i, (i+1)%n),
			mkChord(i, n+i),
			mkChord(n+i, n+(i+2)%n),
		)
	}

	return sortedChords(out)
}

// icosahedronEdges caps the antiprism on rings 1..5 and 6..10 with pole 0
// above and pole 11 below.
func icosahedronEdges() []chord {
	const r = 5
	upper := func(i int) int { return 1 + i%r }
	lower := func(i int) int { return 1 + r + i%r }
	out := make([]chord, 0, 6*r)
	for i := 0; i < r; i++ {
		out = append(out,
			mkChord(0, upper(i)),
			mkChord(11, lower(i)),
			mkChord(upper(i), upper(i+1)),
			mkChord(lower(i), lower(i+1)),
			mkChord(upper(i), lower(i)),
			mkChord(upper(i), lower(i+1)),
		)
	}

	return sortedChords(out)
}

func sortedChords(cs []chord) []chord {
	slices.SortFunc(cs, func(a, b chord) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}

		return cmp.Compare(a.V, b.V)
	})

	return cs
}
