// Package tripods finds the best placements of "tripod" sensors on a grid of
// integers.
//
// A tripod sits on one cell and rests three legs on three of the cell's four
// orthogonal neighbors; which three depends on the direction it faces. Its
// reading is the sum of the cells under its legs. Given a grid and a count N,
// tripods reports the N placements with the highest readings, best first.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/      — immutable rectangular grid, boundary-safe neighbor queries
//	tripod/    — Direction, Candidate, per-cell best-direction generation, ranking
//	combisort/ — hybrid insertion/merge sort used for ranking
//	placement/ — capacity check and top-N selection with score summary
//	gridfile/  — text grid format: read, write, render, random generation
//	report/    — human and JSON output, ranking chart
//	cmd/tripods — command-line front end
//
// Quick ASCII example (tripod facing NORTH on the centre cell):
//
//	    . N .
//	    W * E
//	    . . .
//
// reads west + north + east and leaves the southern neighbor untouched.
//
//	go install github.com/katalvlaran/tripods/cmd/tripods@latest
package tripods
