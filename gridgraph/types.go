// SPDX-License-Identifier: MIT
// Package gridgraph defines the board model, sentinel errors and the
// connector-graph construction for rectangular connector boards.
package gridgraph

import (
	"github.com/pkg/errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the board has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: board must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a byte outside the cell alphabet ". + | -".
	ErrBadCell = errors.New("gridgraph: invalid cell")
	// ErrDimensionMismatch indicates the header W/H disagree with the rows.
	ErrDimensionMismatch = errors.New("gridgraph: header dimensions disagree with board rows")
	// ErrNegativeParameter indicates a negative run limit or target.
	ErrNegativeParameter = errors.New("gridgraph: run limit and target must be non-negative")
	// ErrNotOnBoard indicates a vertex that names no non-empty cell.
	ErrNotOnBoard = errors.New("gridgraph: vertex is not a board cell")
)

// Cell is a single board byte.
type Cell byte

const (
	// Empty cells never become vertices.
	Empty Cell = '.'
	// Junction cells allow moves along both axes.
	Junction Cell = '+'
	// Vertical cells allow moves up and down.
	Vertical Cell = '|'
	// Horizontal cells allow moves left and right.
	Horizontal Cell = '-'
)

// Valid reports whether c belongs to the cell alphabet.
func (c Cell) Valid() bool {
	switch c {
	case Empty, Junction, Vertical, Horizontal:
		return true
	}

	return false
}

// AllowsVertical reports whether a move may leave or enter c along the y axis.
func (c Cell) AllowsVertical() bool { return c == Junction || c == Vertical }

// AllowsHorizontal reports whether a move may leave or enter c along the x axis.
func (c Cell) AllowsHorizontal() bool { return c == Junction || c == Horizontal }

// Point is a board coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// BoardOptions carries the header values that accompany a board.
type BoardOptions struct {
	// Name labels the board; informational only.
	Name string
	// Run is the connector run limit L: cells within Run moves conflict.
	Run int
	// Target is the requested number of placements K.
	Target int
}

// DefaultBoardOptions returns Run=1, Target=0 and an empty name.
func DefaultBoardOptions() BoardOptions {
	return BoardOptions{Run: 1}
}

// Board is an immutable rectangular grid of connector cells.
// cells holds Width*Height bytes in row-major order (index = y*Width + x).
type Board struct {
	Name          string
	Width, Height int
	Run           int
	Target        int
	cells         []Cell
}
