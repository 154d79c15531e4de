// Package grid provides a read-only view over a rectangular 2D grid of
// integer cell values and answers orthogonal neighbor queries.
//
// What:
//
//   - Grid wraps a non-empty, rectangular [][]int and is immutable once built.
//   - Neighbors(row, col) returns the North/South/East/West values around a
//     cell, substituting 0 for neighbors that fall outside the grid.
//   - At(row, col) reads a single cell; InBounds and IsCorner classify cells.
//
// Why:
//
//   - Sensor placement: score a cell by the values its legs can reach.
//   - Boundary handling lives in one place, so callers never index out of range.
//
// Complexity:
//
//   - New:       O(R×C) time and memory (deep copy).
//   - At, Neighbors, InBounds, IsCorner: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: the queried (row, col) itself lies outside the grid.
//
// A neighbor that is missing because the cell sits on the boundary is not an
// error; it simply reads as 0.
package grid
