package pipemaze

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipemaze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipemaze: all rows must have the same length")
	// ErrInvalidTile indicates a glyph that is not one of | - L J 7 F . S.
	ErrInvalidTile = errors.New("pipemaze: invalid tile")
	// ErrNoStart indicates the grid holds no Start tile.
	ErrNoStart = errors.New("pipemaze: no start tile")
	// ErrMultipleStarts indicates the grid holds more than one Start tile.
	ErrMultipleStarts = errors.New("pipemaze: more than one start tile")
	// ErrAmbiguousStart indicates the start does not have exactly two mutual connections.
	ErrAmbiguousStart = errors.New("pipemaze: start tile must connect to exactly two neighbors")
	// ErrOpenLoop indicates the traversal reached a cell that does not continue the loop.
	ErrOpenLoop = errors.New("pipemaze: loop is not closed")
	// ErrUnexpectedTile indicates the scanline met a shape it cannot account for.
	ErrUnexpectedTile = errors.New("pipemaze: unexpected tile on loop")
)

// ParseError reports the position of an unrecognized glyph.
// Line and Column are 1-based.
type ParseError struct {
	Line, Column int
	Glyph        rune
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("pipemaze: line %d, column %d: invalid tile %q", e.Line, e.Column, e.Glyph)
}

// Unwrap lets errors.Is match ErrInvalidTile.
func (e *ParseError) Unwrap() error {
	return ErrInvalidTile
}
