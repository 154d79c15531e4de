package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tripods/grid"
	"github.com/katalvlaran/tripods/placement"
	"github.com/katalvlaran/tripods/report"
	"github.com/katalvlaran/tripods/tripod"
)

func sampleResult(t *testing.T, count int) *placement.Result {
	t.Helper()
	g, err := grid.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	res, err := placement.Select(g, count)
	require.NoError(t, err)
	return res
}

// TestParseFormat covers accepted and rejected names.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{"": report.FormatHuman, "Human": report.FormatHuman, " json ": report.FormatJSON} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := report.ParseFormat("yaml")
	require.ErrorIs(t, err, report.ErrUnsupportedFormat)

	require.ErrorIs(t, report.Write(&bytes.Buffer{}, sampleResult(t, 1), report.Format("xml")), report.ErrUnsupportedFormat)
}

// TestWrite_Human checks the line-oriented listing.
func TestWrite_Human(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleResult(t, 2), report.FormatHuman))
	require.Equal(t, "Optimal placement:\n"+
		"location: (2,1), orientation: NORTH, sum: 21\n"+
		"location: (1,1), orientation: SOUTH, sum: 18\n"+
		"Total sum: 39\n", buf.String())
}

// TestWrite_JSON decodes the JSON document and checks its fields.
func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, sampleResult(t, 2), report.FormatJSON))

	var doc struct {
		Placements []struct {
			Row         int    `json:"row"`
			Col         int    `json:"col"`
			Orientation string `json:"orientation"`
			Sum         int    `json:"sum"`
		} `json:"placements"`
		Total   int               `json:"total"`
		Summary placement.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Placements, 2)
	require.Equal(t, "NORTH", doc.Placements[0].Orientation)
	require.Equal(t, 21, doc.Placements[0].Sum)
	require.Equal(t, 39, doc.Total)
	require.Equal(t, 2, doc.Summary.Count)

	var cands struct {
		Placements []tripod.Candidate `json:"placements"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &cands))
	require.Equal(t, tripod.South, cands.Placements[1].Direction)
}

// TestPlot writes a PNG and rejects empty input.
func TestPlot(t *testing.T) {
	g, err := grid.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	cs, err := tripod.Generate(g)
	require.NoError(t, err)
	best := tripod.Descending(tripod.Rank(cs))

	path := filepath.Join(t.TempDir(), "rank.png")
	require.NoError(t, report.Plot(path, best, 2))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	require.ErrorIs(t, report.Plot(path, nil, 0), report.ErrNothingToPlot)
}
