// Package pipemaze treats a 2D grid of pipe tiles as a graph, discovers the
// single closed loop passing through the start tile, and classifies every
// other cell as enclosed by that loop or lying outside it.
//
// What:
//
//   - Grid wraps a rectangular [][]Tile; it is immutable once built.
//   - Tiles connect two of {North, East, South, West}; Ground connects none.
//     The Start tile's shape is inferred from the neighbors that open back
//     toward it (ResolveStart).
//   - FindLoop runs a breadth-first search from the start over mutual
//     connections and records the distance of every loop cell.
//   - Loop.Classify scans each row left to right with an even-odd parity
//     rule and counts the cells enclosed by the loop.
//   - Loop.EnclosedByArea recomputes the same count with the shoelace formula
//     and Pick's theorem; both methods must agree.
//
// Why:
//
//   - Pipe mazes are a compact model of polygon containment on a lattice.
//   - The scanline rule is the grid form of ray casting through a polygon.
//
// Complexity:
//
//   - ParseGrid, NewGrid:  O(W×H) time and memory.
//   - FindLoop:            O(W×H), Memory: O(W×H) for the cell-state arena.
//   - Classify:            O(W×H), no extra memory beyond the arena.
//   - EnclosedByArea:      O(L) where L is the loop length.
//
// Options:
//
//   - WithOnEnqueue(fn): called when a loop cell is scheduled.
//   - WithOnVisit(fn):   called when a loop cell is visited; an error aborts.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed grid dimensions.
//   - ErrInvalidTile (wrapped by *ParseError): unknown glyph in the input.
//   - ErrNoStart, ErrMultipleStarts: start tile missing or repeated.
//   - ErrAmbiguousStart: start does not have exactly two mutual connections.
//   - ErrOpenLoop: traversal reached a cell that does not continue the loop.
//   - ErrUnexpectedTile: the scanline met a shape its rules do not allow.
//
// Verbose tracing is emitted through klog at verbosity 4 and above.
package pipemaze
