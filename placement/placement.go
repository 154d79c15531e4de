package placement

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tripods/grid"
	"github.com/katalvlaran/tripods/tripod"
)

// Sentinel errors for placement selection.
var (
	// ErrCapacityExceeded indicates more tripods were requested than the grid has eligible cells.
	ErrCapacityExceeded = errors.New("placement: too many tripods")
	// ErrNegativeCount indicates a negative tripod count.
	ErrNegativeCount = errors.New("placement: tripod count must be non-negative")
)

// Result holds the selected placements, best first, and their combined reading.
// Ranked keeps every candidate of the grid, best first; Placements is its prefix.
type Result struct {
	Placements []tripod.Candidate `json:"placements"`
	Total      int                `json:"total"`
	Ranked     []tripod.Candidate `json:"-"`
}

// Summary describes the distribution of the selected scores.
type Summary struct {
	Count  int     `json:"count"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Capacity returns how many tripods g may be asked for: Rows*Cols-4.
// The value is negative for grids with fewer than four cells, so no count,
// not even 0, is accepted there. For single-row or single-column grids it is
// below tripod.Eligible, the number of candidates actually generated.
func Capacity(g *grid.Grid) int {
	return g.Size() - 4
}

// Validate checks count against the capacity of g.
func Validate(g *grid.Grid, count int) error {
	if g == nil {
		return tripod.ErrNilGrid
	}
	if count < 0 {
		return fmt.Errorf("count %d: %w", count, ErrNegativeCount)
	}
	if capacity := Capacity(g); count > capacity {
		return fmt.Errorf("requested %d, grid %dx%d holds %d: %w",
			count, g.Rows(), g.Cols(), capacity, ErrCapacityExceeded)
	}

	return nil
}

// Select returns the count highest-scoring placements on g, best first.
// Equal scores are ordered by reverse generation order, since the ranking is
// stable ascending and then reversed.
func Select(g *grid.Grid, count int) (*Result, error) {
	if err := Validate(g, count); err != nil {
		return nil, err
	}
	cs, err := tripod.Generate(g)
	if err != nil {
		return nil, err
	}
	ranked := tripod.Descending(tripod.Rank(cs))
	best := ranked[:count]

	res := &Result{Placements: best, Ranked: ranked}
	for _, c := range best {
		res.Total += c.Score
	}

	return res, nil
}

// Summary computes count, extremes, mean and population standard deviation
// of the selected scores. An empty result yields the zero Summary.
func (r *Result) Summary() Summary {
	if r == nil || len(r.Placements) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(r.Placements))
	for i, c := range r.Placements {
		xs[i] = float64(c.Score)
	}
	mean, std := stat.PopMeanStdDev(xs, nil)

	return Summary{
		Count:  len(xs),
		Min:    int(floats.Min(xs)),
		Max:    int(floats.Max(xs)),
		Mean:   mean,
		StdDev: std,
	}
}
