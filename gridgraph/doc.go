// Package gridgraph treats a rectangular board of connector cells as a graph.
//
// What:
//
//   - Board wraps a grid of cells: '.' empty, '+' junction, '|' vertical run,
//     '-' horizontal run.
//   - A single move joins orthogonal neighbours when both cells allow that
//     axis ('+' and '|' vertically, '+' and '-' horizontally).
//   - MoveGraph exposes the single-move graph; ConnectorGraph(L) joins every
//     pair of cells at most L moves apart (depth-limited bfs.BFS).
//   - Parse reads the board-file format "W H L K", a name, then H rows.
//
// Why:
//
//   - Two placements conflict when one is reachable from the other within the
//     run limit, so a valid placement is an independent set of the connector graph.
//
// Complexity:
//
//   - NewBoard, MoveGraph:  O(W×H).
//   - ConnectorGraph(L):    O(V × B), B = cells within L moves.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a byte outside the alphabet.
//   - ErrDimensionMismatch: the header disagrees with the rows.
//   - ErrNegativeParameter: negative run limit or target.
//   - ErrNotOnBoard: Points received a vertex that names no cell.
package gridgraph
