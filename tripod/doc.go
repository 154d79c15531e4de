// Package tripod generates and ranks tripod sensor placements on a grid.
//
// A tripod occupies one grid cell and rests three legs on three of the cell's
// four orthogonal neighbors. Its Direction selects which three:
//
//	NORTH: west + north + east   (no south leg)
//	SOUTH: west + south + east   (no north leg)
//	EAST:  north + east + south  (no west leg)
//	WEST:  north + west + south  (no east leg)
//
// The reading of a placement (its Score) is the sum of those three neighbor
// values, with neighbors outside the grid reading as 0.
//
// Candidate generation:
//
//   - The four grid corners never produce a candidate.
//   - Edge cells have exactly one legal direction, chosen in priority order:
//     row 0 → SOUTH, last row → NORTH, column 0 → EAST, last column → WEST.
//   - Interior cells try NORTH, EAST, SOUTH, WEST in that order and keep the
//     first maximum; a later direction only wins on a strictly higher score.
//   - Candidates are emitted in row-major scan order.
//
// Ranking:
//
//   - Rank orders candidates ascending by Score with the combisort hybrid
//     sort, keeping equal-score candidates in generation order.
//   - Descending reverses a ranked slice for "best first" reporting.
//
// Complexity: Generate O(R×C), Rank O(n log n).
package tripod
