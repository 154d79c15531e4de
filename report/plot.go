package report

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/tripods/tripod"
)

// ErrNothingToPlot is returned when Plot receives no candidates.
var ErrNothingToPlot = errors.New("report: no candidates to plot")

// Plot draws the score of every candidate against its rank (best first) and
// marks the first selected entries. The image type follows the file
// extension of path (.png, .svg, .pdf, ...).
func Plot(path string, best []tripod.Candidate, selected int) error {
	if len(best) == 0 {
		return ErrNothingToPlot
	}
	if selected > len(best) {
		selected = len(best)
	}

	all := make(plotter.XYs, len(best))
	for i, c := range best {
		all[i] = plotter.XY{X: float64(i + 1), Y: float64(c.Score)}
	}

	p := plot.New()
	p.Title.Text = "Tripod placements by rank"
	p.X.Label.Text = "rank"
	p.Y.Label.Text = "sum"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(all)
	if err != nil {
		return fmt.Errorf("ranking line: %w", err)
	}
	line.Width = vg.Points(1)
	line.Color = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	p.Add(line)
	p.Legend.Add("all placements", line)

	if selected > 0 {
		pts, err := plotter.NewScatter(all[:selected])
		if err != nil {
			return fmt.Errorf("selected points: %w", err)
		}
		pts.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		pts.GlyphStyle.Radius = vg.Points(3)
		p.Add(pts)
		p.Legend.Add(fmt.Sprintf("selected (%d)", selected), pts)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
