// SPDX-License-Identifier: MIT
package gridgraph

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// boardFile is the grammar of a board file:
//
//	W H L K
//	name
//	row_1
//	...
//	row_H
//
// Tokens are whitespace separated. Rows are captured verbatim and validated by
// NewBoard, so a stray byte surfaces as ErrBadCell rather than a syntax error.
type boardFile struct {
	Width  int      `parser:"@Int"`
	Height int      `parser:"@Int"`
	Run    int      `parser:"@Int"`
	Target int      `parser:"@Int"`
	Name   string   `parser:"@(Word | Int | Row)"`
	Rows   []string `parser:"@(Word | Int | Row)*"`
}

// Word must contain a byte that is neither a digit nor a cell byte; it is
// tried first so that "3rd" or "x.y" stay one token.
var boardLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^\s]*[^\s.+|\-0-9][^\s]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Row", Pattern: `[.+|\-]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var boardParser = participle.MustBuild[boardFile](
	participle.Lexer(boardLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a board file from r. filename only labels parse errors.
//
// Errors:
//   - syntax errors from the grammar, wrapped;
//   - ErrDimensionMismatch when the row count or width disagrees with W and H;
//   - any NewBoard error (ErrEmptyGrid, ErrNonRectangular, ErrBadCell).
func Parse(filename string, r io.Reader) (*Board, error) {
	ast, err := boardParser.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrap(err, "gridgraph: parse board")
	}

	return ast.board()
}

// ParseString is Parse over an in-memory board.
func ParseString(filename, src string) (*Board, error) {
	ast, err := boardParser.ParseString(filename, src)
	if err != nil {
		return nil, errors.Wrap(err, "gridgraph: parse board")
	}

	return ast.board()
}

func (f *boardFile) board() (*Board, error) {
	if f.Width == 0 || f.Height == 0 {
		return nil, ErrEmptyGrid
	}
	if len(f.Rows) != f.Height {
		return nil, errors.Wrapf(ErrDimensionMismatch, "header says %d rows, found %d", f.Height, len(f.Rows))
	}
	b, err := NewBoard(f.Rows, BoardOptions{Name: f.Name, Run: f.Run, Target: f.Target})
	if err != nil {
		return nil, err
	}
	if b.Width != f.Width {
		return nil, errors.Wrapf(ErrDimensionMismatch, "header says %d columns, found %d", f.Width, b.Width)
	}

	return b, nil
}
