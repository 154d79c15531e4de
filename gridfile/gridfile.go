package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tripods/grid"
)

// Sentinel errors for grid file parsing.
var (
	// ErrBadHeader indicates a missing or malformed "rows [cols]" header line.
	ErrBadHeader = errors.New("gridfile: bad header")
	// ErrBadValue indicates a cell that is not an integer, or a row of the wrong width.
	ErrBadValue = errors.New("gridfile: bad value")
	// ErrShortGrid indicates fewer data rows than the header announced.
	ErrShortGrid = errors.New("gridfile: fewer rows than declared")
)

// Render limits: larger grids print a placeholder instead of their cells.
const (
	MaxRows = 50
	MaxCols = 30
)

// defaultSeed is used by Random when seed == 0.
const defaultSeed int64 = 1

// Limits bounds the grid size Render prints in full.
type Limits struct {
	MaxRows, MaxCols int
}

// DefaultLimits returns Limits{MaxRows: 50, MaxCols: 30}.
func DefaultLimits() Limits {
	return Limits{MaxRows: MaxRows, MaxCols: MaxCols}
}

// Load opens path and parses it with Read.
func Load(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid file: %w", err)
	}
	defer f.Close()

	values, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Read parses a grid from r. Blank lines are skipped; lines past the
// declared row count are ignored.
func Read(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			lineNo++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, true
			}
		}
		return nil, false
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty input: %w", ErrBadHeader)
	}
	if len(header) > 2 {
		return nil, fmt.Errorf("line %d: want \"rows [cols]\", got %d fields: %w", lineNo, len(header), ErrBadHeader)
	}
	rows, err := strconv.Atoi(header[0])
	if err != nil || rows < 1 {
		return nil, fmt.Errorf("line %d: rows %q: %w", lineNo, header[0], ErrBadHeader)
	}
	cols := -1
	if len(header) == 2 {
		if cols, err = strconv.Atoi(header[1]); err != nil || cols < 1 {
			return nil, fmt.Errorf("line %d: cols %q: %w", lineNo, header[1], ErrBadHeader)
		}
	}

	values := make([][]int, 0, rows)
	for len(values) < rows {
		fields, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("got %d of %d rows: %w", len(values), rows, ErrShortGrid)
		}
		if cols < 0 {
			cols = len(fields)
		}
		if len(fields) != cols {
			return nil, fmt.Errorf("line %d: %d values, want %d: %w", lineNo, len(fields), cols, ErrBadValue)
		}
		row := make([]int, cols)
		for i, f := range fields {
			if row[i], err = strconv.Atoi(f); err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, f, ErrBadValue)
			}
		}
		values = append(values, row)
	}

	return values, nil
}

// Write emits values in the format Read accepts, header included.
func Write(w io.Writer, values [][]int) error {
	bw := bufio.NewWriter(w)
	cols := 0
	if len(values) > 0 {
		cols = len(values[0])
	}
	fmt.Fprintf(bw, "%d %d\n", len(values), cols)
	for _, row := range values {
		for i, v := range row {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Render prints the grid dimensions followed by its rows, or a placeholder
// line when the grid exceeds lim. Each value is followed by one space.
func Render(w io.Writer, g *grid.Grid, lim Limits) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Rows: %d Columns: %d\n", g.Rows(), g.Cols())
	if g.Rows() > lim.MaxRows || g.Cols() > lim.MaxCols {
		bw.WriteString("Too large to print!\n")
		return bw.Flush()
	}
	for _, row := range g.Values() {
		for _, v := range row {
			bw.WriteString(strconv.Itoa(v))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Random builds a rows×cols grid of values in [0, maxValue] from a
// deterministic source. seed == 0 selects a fixed default seed.
func Random(rows, cols, maxValue int, seed int64) ([][]int, error) {
	if rows < 1 || cols < 1 {
		return nil, grid.ErrEmptyGrid
	}
	if maxValue < 0 {
		return nil, fmt.Errorf("max value %d: %w", maxValue, ErrBadValue)
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = rng.Intn(maxValue + 1)
		}
	}

	return values, nil
}
