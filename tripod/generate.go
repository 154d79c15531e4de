package tripod

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tripods/combisort"
	"github.com/katalvlaran/tripods/grid"
)

// ErrNilGrid is returned when a nil *grid.Grid is passed to Generate or Best.
var ErrNilGrid = errors.New("tripod: grid is nil")

// ForcedDirection returns the single legal direction of an edge cell and
// true, or false for a strict interior cell. Rules are checked in order and
// the first match wins: row 0, last row, column 0, last column.
// Corners are not special-cased here; callers skip them before asking.
func ForcedDirection(g *grid.Grid, row, col int) (Direction, bool) {
	switch {
	case row == 0:
		return South, true
	case row == g.Rows()-1:
		return North, true
	case col == 0:
		return East, true
	case col == g.Cols()-1:
		return West, true
	default:
		return 0, false
	}
}

// Best computes the candidate for a single cell. The boolean is false for a
// corner cell, which never hosts a tripod.
// Returns grid.ErrOutOfRange (wrapped) if (row, col) is outside the grid.
func Best(g *grid.Grid, row, col int) (Candidate, bool, error) {
	if g == nil {
		return Candidate{}, false, ErrNilGrid
	}
	n, err := g.Neighbors(row, col)
	if err != nil {
		return Candidate{}, false, fmt.Errorf("tripod: best at (%d,%d): %w", row, col, err)
	}
	if g.IsCorner(row, col) {
		return Candidate{}, false, nil
	}

	if d, ok := ForcedDirection(g, row, col); ok {
		return Candidate{Row: row, Col: col, Direction: d, Score: Score(n, d)}, true, nil
	}

	best := Candidate{Row: row, Col: col, Direction: Directions[0], Score: Score(n, Directions[0])}
	for _, d := range Directions[1:] {
		// strict improvement only: ties keep the earlier direction
		if s := Score(n, d); s > best.Score {
			best.Direction, best.Score = d, s
		}
	}

	return best, true, nil
}

// Generate returns one Candidate per non-corner cell of g in row-major
// order. The result is not sorted; see Rank.
// Complexity: O(R×C) time and memory.
func Generate(g *grid.Grid) ([]Candidate, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	out := make([]Candidate, 0, Eligible(g))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cand, ok, err := Best(g, r, c)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, cand)
			}
		}
	}

	return out, nil
}

// Eligible returns the number of non-corner cells of g, i.e. the number of
// candidates Generate produces. It equals Rows*Cols-4 whenever both
// dimensions are at least 2.
func Eligible(g *grid.Grid) int {
	rows, cols := g.Rows(), g.Cols()
	corners := 4
	switch {
	case rows == 1 && cols == 1:
		corners = 1
	case rows == 1 || cols == 1:
		corners = 2
	}

	return rows*cols - corners
}

// Rank sorts candidates ascending by Score. Candidates with equal scores keep
// their input order. The returned slice may share storage with cs.
func Rank(cs []Candidate) []Candidate {
	return combisort.Sort(cs, func(c Candidate) int { return c.Score })
}

// Descending returns a new slice with the elements of a ranked slice in
// reverse, highest score first.
func Descending(ranked []Candidate) []Candidate {
	out := make([]Candidate, len(ranked))
	for i, c := range ranked {
		out[len(ranked)-1-i] = c
	}

	return out
}
