package world

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("world: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("world: all rows must have the same length")
	// ErrEmptyColor indicates a cell with no color label.
	ErrEmptyColor = errors.New("world: cell color must not be empty")
	// ErrOutOfRange indicates a (row, col) outside the grid.
	ErrOutOfRange = errors.New("world: cell index out of range")
)
