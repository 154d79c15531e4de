// Package report renders placement results for people and for tools.
//
// Two text formats are supported: the human listing
//
//	Optimal placement:
//	location: (2,1), orientation: NORTH, sum: 21
//	Total sum: 21
//
// and an indented JSON document carrying the same placements plus a score
// summary. Plot draws the full ranking as a PNG/SVG chart.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tripods/placement"
)

// ErrUnsupportedFormat is returned for an unknown output format name.
var ErrUnsupportedFormat = errors.New("report: unsupported format")

// Format selects the output rendering.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
)

// ParseFormat accepts "human" or "json" (case-insensitive); empty means human.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatHuman:
		return FormatHuman, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
	}
}

// document is the JSON shape of a report.
type document struct {
	*placement.Result
	Summary placement.Summary `json:"summary"`
}

// Write renders res to w in the given format.
func Write(w io.Writer, res *placement.Result, format Format) error {
	switch format {
	case FormatHuman:
		return writeHuman(w, res)
	case FormatJSON:
		return writeJSON(w, res)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

func writeHuman(w io.Writer, res *placement.Result) error {
	var b strings.Builder
	b.WriteString("Optimal placement:\n")
	for _, c := range res.Placements {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Total sum: %d\n", res.Total)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, res *placement.Result) error {
	data, err := json.MarshalIndent(document{Result: res, Summary: res.Summary()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
