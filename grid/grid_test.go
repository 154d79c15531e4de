package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tripods/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"LongerLaterRow", [][]int{{1}, {2, 3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy checks that mutating the input after New leaves the grid intact.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(values)
	require.NoError(t, err)

	values[0][0] = 99
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	out := g.Values()
	out[1][1] = 42
	v, err = g.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

// TestDimensions checks Rows, Cols and Size on a 2×3 grid.
func TestDimensions(t *testing.T) {
	g, err := grid.New([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 6, g.Size())
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {1, 2}, {1, 1}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestIsCorner checks the four corners of a 3×4 grid and a few non-corners.
func TestIsCorner(t *testing.T) {
	g, err := grid.New([][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {0, 3}, {2, 0}, {2, 3}} {
		require.Truef(t, g.IsCorner(rc[0], rc[1]), "(%d,%d) should be a corner", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {1, 1}, {2, 2}, {1, 3}} {
		require.Falsef(t, g.IsCorner(rc[0], rc[1]), "(%d,%d) should not be a corner", rc[0], rc[1])
	}
}

//----------------------------------------------------------------------------//
// At and Neighbors Tests
//----------------------------------------------------------------------------//

// TestAt_OutOfRange verifies that At fails only for cells outside the grid.
func TestAt_OutOfRange(t *testing.T) {
	g, err := grid.New([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	v, err := g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = g.At(2, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.At(0, -1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestNeighbors covers interior, edge and corner cells of a 3×3 grid.
func TestNeighbors(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	cases := []struct {
		name     string
		row, col int
		want     grid.Neighbors
	}{
		{"Interior", 1, 1, grid.Neighbors{North: 2, South: 8, East: 6, West: 4}},
		{"TopEdge", 0, 1, grid.Neighbors{North: 0, South: 5, East: 3, West: 1}},
		{"BottomEdge", 2, 1, grid.Neighbors{North: 5, South: 0, East: 9, West: 7}},
		{"LeftEdge", 1, 0, grid.Neighbors{North: 1, South: 7, East: 5, West: 0}},
		{"RightEdge", 1, 2, grid.Neighbors{North: 3, South: 9, East: 0, West: 5}},
		{"TopLeftCorner", 0, 0, grid.Neighbors{North: 0, South: 4, East: 2, West: 0}},
		{"BottomRightCorner", 2, 2, grid.Neighbors{North: 6, South: 0, East: 0, West: 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Neighbors(tc.row, tc.col)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestNeighbors_SingleCell verifies every neighbor of a 1×1 grid reads as zero.
func TestNeighbors_SingleCell(t *testing.T) {
	g, err := grid.New([][]int{{7}})
	require.NoError(t, err)

	got, err := g.Neighbors(0, 0)
	require.NoError(t, err)
	require.Equal(t, grid.Neighbors{}, got)
}

// TestNeighbors_OutOfRange verifies that querying a cell outside the grid fails.
func TestNeighbors_OutOfRange(t *testing.T) {
	g, err := grid.New([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, 2}, {2, 2}, {5, -5}} {
		_, err := g.Neighbors(rc[0], rc[1])
		require.ErrorIsf(t, err, grid.ErrOutOfRange, "Neighbors(%d,%d)", rc[0], rc[1])
	}
}
