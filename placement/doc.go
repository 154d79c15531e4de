// Package placement selects the best N tripod placements on a grid.
//
// Select is the glue between the grid accessor, candidate generation and
// ranking: it validates the requested count against the grid's capacity,
// generates one candidate per non-corner cell, ranks them ascending, reverses
// to best-first and keeps the first count entries.
//
// Capacity is Rows*Cols-4, the cell count minus the four corners. Asking for
// more yields ErrCapacityExceeded before any candidate is generated. Grids
// with fewer than four cells have a negative capacity and accept no count.
package placement
