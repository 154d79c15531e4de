package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", r, len(row), cols, ErrNonRectangular)
		}
	}
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells, Rows()*Cols().
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsCorner reports whether (row, col) is one of the four corner cells.
func (g *Grid) IsCorner(row, col int) bool {
	return (row == 0 || row == g.rows-1) && (col == 0 || col == g.cols-1)
}

// At returns the value stored at (row, col).
// Returns ErrOutOfRange if the cell is outside the grid.
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("at (%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfRange)
	}

	return g.cells[row][col], nil
}

// Neighbors returns the orthogonal neighbor values of (row, col).
// Neighbors outside the grid read as 0; only an out-of-range (row, col)
// itself yields ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) Neighbors(row, col int) (Neighbors, error) {
	if !g.InBounds(row, col) {
		return Neighbors{}, fmt.Errorf("neighbors of (%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfRange)
	}

	return Neighbors{
		North: g.valueOrZero(row-1, col),
		South: g.valueOrZero(row+1, col),
		East:  g.valueOrZero(row, col+1),
		West:  g.valueOrZero(row, col-1),
	}, nil
}

// Values returns a deep copy of the grid cells in row-major layout.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = append([]int(nil), g.cells[r]...)
	}

	return out
}

// valueOrZero reads (row, col), treating cells outside the grid as 0.
func (g *Grid) valueOrZero(row, col int) int {
	if !g.InBounds(row, col) {
		return 0
	}

	return g.cells[row][col]
}
