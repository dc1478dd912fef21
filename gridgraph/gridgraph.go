// SPDX-License-Identifier: MIT
// Package gridgraph turns a rectangular board of connector cells into graphs:
//
//   - the move graph, whose edges are single legal steps between adjacent cells;
//   - the connector graph, whose edges join cells at most L moves apart.
//
// Cell i of the board is vertex core.Original(i) with i = y*Width + x.
package gridgraph

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// NewBoard constructs a Board from non-empty rows of equal length.
// The rows are copied, so later mutation of the input has no effect.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCell for a byte outside
// ". + | -" and ErrNegativeParameter for a negative Run or Target.
// Algorithmic complexity: O(W×H) time and memory.
func NewBoard(rows []string, opts BoardOptions) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Run < 0 || opts.Target < 0 {
		return nil, ErrNegativeParameter
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d cells, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			c := Cell(row[x])
			if !c.Valid() {
				return nil, errors.Wrapf(ErrBadCell, "%q at (%d,%d)", row[x], x, y)
			}
			cells = append(cells, c)
		}
	}

	return &Board{
		Name:   opts.Name,
		Width:  w,
		Height: h,
		Run:    opts.Run,
		Target: opts.Target,
		cells:  cells,
	}, nil
}

// InBounds reports whether (x,y) lies within the board.
// Complexity: O(1).
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (b *Board) Index(x, y int) int {
	return y*b.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (b *Board) Coordinate(idx int) (x, y int) {
	return idx % b.Width, idx / b.Width
}

// At returns the cell at (x,y). The caller must check InBounds.
func (b *Board) At(x, y int) Cell {
	return b.cells[b.Index(x, y)]
}

// CellCount returns the number of non-empty cells, i.e. the vertex count of
// every graph built from b.
func (b *Board) CellCount() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}

	return n
}

// Points maps vertices back to board coordinates, preserving order.
// Returns ErrNotOnBoard for folded vertices, out-of-range IDs and empty cells.
func (b *Board) Points(vs []core.Vertex) ([]Point, error) {
	out := make([]Point, 0, len(vs))
	for _, v := range vs {
		if v.IsFolded() || v.ID < 0 || v.ID >= len(b.cells) || b.cells[v.ID] == Empty {
			return nil, errors.Wrapf(ErrNotOnBoard, "vertex %s", v)
		}
		x, y := b.Coordinate(v.ID)
		out = append(out, Point{X: x, Y: y})
	}

	return out, nil
}

// Render draws the board with every marked cell replaced by '*'.
// Vertices that name no cell are ignored.
func (b *Board) Render(marked []core.Vertex) string {
	buf := make([]byte, len(b.cells))
	for i, c := range b.cells {
		buf[i] = byte(c)
	}
	for _, v := range marked {
		if !v.IsFolded() && v.ID >= 0 && v.ID < len(buf) {
			buf[v.ID] = '*'
		}
	}

	var sb strings.Builder
	sb.Grow(len(buf) + b.Height)
	for y := 0; y < b.Height; y++ {
		sb.Write(buf[y*b.Width : (y+1)*b.Width])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// moveOffsets lists the four orthogonal steps with the axis each one uses.
var moveOffsets = []struct {
	dx, dy   int
	vertical bool
}{
	{0, -1, true}, {1, 0, false}, {0, 1, true}, {-1, 0, false},
}

// canMove reports whether a single step between two adjacent cells is legal:
// both cells must allow the step's axis.
func canMove(from, to Cell, vertical bool) bool {
	if vertical {
		return from.AllowsVertical() && to.AllowsVertical()
	}

	return from.AllowsHorizontal() && to.AllowsHorizontal()
}

// MoveGraph returns the graph of legal single steps. Every non-empty cell is
// a vertex, isolated or not.
// Complexity: O(W×H) time and memory.
func (b *Board) MoveGraph() *core.Graph {
	g := core.NewGraph(core.WithCapacity(b.CellCount()))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			from := b.At(x, y)
			if from == Empty {
				continue
			}
			u := core.Original(b.Index(x, y))
			_ = g.AddVertex(u)
			for _, d := range moveOffsets {
				nx, ny := x+d.dx, y+d.dy
				if !b.InBounds(nx, ny) || !canMove(from, b.At(nx, ny), d.vertical) {
					continue
				}
				_ = g.AddEdge(u, core.Original(b.Index(nx, ny)))
			}
		}
	}

	return g
}
