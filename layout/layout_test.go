package layout

import (
	"errors"
	"fmt"
	"testing"
)

var placeTests = []struct {
	grid Grid
	n    int
	want []Cell
}{
	{Grid{1, 1}, 1, []Cell{{0, 0, 0, 2}}},
	{Grid{2, 2}, 0, []Cell{}},
	{Grid{2, 3}, 3, []Cell{{0, 0, 0, 2}, {1, 0, 2, 4}, {2, 0, 4, 6}}},
	{Grid{2, 3}, 5, []Cell{
		{0, 0, 0, 2}, {1, 0, 2, 4}, {2, 0, 4, 6},
		{3, 1, 1, 3}, {4, 1, 3, 5},
	}},
	{Grid{2, 3}, 4, []Cell{
		{0, 0, 0, 2}, {1, 0, 2, 4}, {2, 0, 4, 6},
		{3, 1, 2, 4},
	}},
	{Grid{3, 2}, 3, []Cell{{0, 0, 0, 2}, {1, 0, 2, 4}, {2, 1, 1, 3}}},
	{Grid{1, 4}, 2, []Cell{{0, 0, 2, 4}, {1, 0, 4, 6}}},
	{Grid{2, 4}, 7, []Cell{
		{0, 0, 0, 2}, {1, 0, 2, 4}, {2, 0, 4, 6}, {3, 0, 6, 8},
		{4, 1, 1, 3}, {5, 1, 3, 5}, {6, 1, 5, 7},
	}},
}

func TestPlace(t *testing.T) {
	for i, tc := range placeTests {
		t.Run(fmt.Sprintf("%s/%d/%d", tc.grid, tc.n, i), func(t *testing.T) {
			got, err := tc.grid.Place(tc.n)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d cells, want %d", len(got), len(tc.want))
			}
			for j := range got {
				if got[j] != tc.want[j] {
					t.Errorf("cell %d = %+v, want %+v", j, got[j], tc.want[j])
				}
			}
		})
	}
}

func TestPlaceErrors(t *testing.T) {
	for _, tc := range []struct {
		grid Grid
		n    int
		want error
	}{
		{Grid{2, 2}, 5, ErrCapacity},
		{Grid{0, 2}, 0, ErrDimension},
		{Grid{2, 0}, 1, ErrDimension},
		{Grid{2, 2}, -1, ErrDimension},
	} {
		_, err := tc.grid.Place(tc.n)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s.Place(%d) error = %v, want %v", tc.grid, tc.n, err, tc.want)
		}
	}
}

// All cells must lie inside the grid, be two half columns wide, not
// overlap and rows which are not full must be centered.
func TestPlaceInvariants(t *testing.T) {
	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 5; cols++ {
			g := Grid{rows, cols}
			for n := 0; n <= g.Capacity(); n++ {
				cells, err := g.Place(n)
				if err != nil {
					t.Fatalf("%s.Place(%d): %v", g, n, err)
				}
				if len(cells) != n {
					t.Fatalf("%s.Place(%d): %d cells", g, n, len(cells))
				}
				perRow := map[int][]Cell{}
				for _, c := range cells {
					if c.Width() != 2 || c.Start < 0 || c.End > g.HalfCols() {
						t.Errorf("%s.Place(%d): bad cell %+v", g, n, c)
					}
					perRow[c.Row] = append(perRow[c.Row], c)
				}
				if len(perRow) != g.RowsFor(n) {
					t.Errorf("%s.Place(%d): %d rows used, RowsFor says %d",
						g, n, len(perRow), g.RowsFor(n))
				}
				for row, cs := range perRow {
					left := cs[0].Start
					right := g.HalfCols() - cs[len(cs)-1].End
					if left != right {
						t.Errorf("%s.Place(%d): row %d not centered (%d, %d)",
							g, n, row, left, right)
					}
					for j := 1; j < len(cs); j++ {
						if cs[j].Start != cs[j-1].End {
							t.Errorf("%s.Place(%d): gap in row %d", g, n, row)
						}
					}
				}
			}
		}
	}
}
