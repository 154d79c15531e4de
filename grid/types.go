// Package grid defines core types and sentinel errors for the grid accessor.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a (row, col) query outside the grid bounds.
	ErrOutOfRange = errors.New("grid: cell index out of range")
)

// Neighbors holds the four orthogonal neighbor values of a cell.
// A neighbor outside the grid reads as 0.
type Neighbors struct {
	North, South, East, West int
}

// Grid is an immutable rectangular 2D integer grid.
// cells[row][col] holds the original input value.
type Grid struct {
	rows, cols int
	cells      [][]int
}
