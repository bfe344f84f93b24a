// Package layout computes where subplots go in a rows×cols grid.
//
// The grid is addressed in half-column units: a grid with Cols columns
// has 2*Cols half columns and every subplot spans two of them. A row
// which is not completely filled is centered by shifting it right by
// half of the unused half columns.
//
// Example: Grid{Rows: 2, Cols: 3}.Place(5) yields
//
//	row 0:  [0,2) [2,4) [4,6)
//	row 1:     [1,3) [3,5)
package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned if more cells are requested than the grid holds.
	ErrCapacity = errors.New("layout: grid too small")

	// ErrDimension is returned for non-positive grid dimensions or a
	// negative number of cells.
	ErrDimension = errors.New("layout: bad dimension")
)

// Grid is a rows×cols arrangement of subplots.
type Grid struct {
	Rows, Cols int
}

// Cell is the location of one subplot in a Grid.
type Cell struct {
	Index int // Index is the running number of the cell, row-major.
	Row   int

	// Start and End are the half-open range [Start,End) of half columns
	// covered by this cell.
	Start, End int
}

// Width returns the width of c in half columns which is always 2.
func (c Cell) Width() int { return c.End - c.Start }

func (g Grid) String() string { return fmt.Sprintf("%dx%d", g.Rows, g.Cols) }

// Capacity is the maximal number of cells g can hold.
func (g Grid) Capacity() int { return g.Rows * g.Cols }

// HalfCols is the number of half columns in g.
func (g Grid) HalfCols() int { return 2 * g.Cols }

func (g Grid) check(n int) error {
	if g.Rows < 1 || g.Cols < 1 {
		return fmt.Errorf("%w: grid %s", ErrDimension, g)
	}
	if n < 0 {
		return fmt.Errorf("%w: %d cells", ErrDimension, n)
	}
	if n > g.Capacity() {
		return fmt.Errorf("%w: %d cells exceed the capacity of grid %s (%d)",
			ErrCapacity, n, g, g.Capacity())
	}
	return nil
}

// RowsFor returns how many rows of g are used by n cells.
func (g Grid) RowsFor(n int) int {
	if g.Cols < 1 || n <= 0 {
		return 0
	}
	return (n + g.Cols - 1) / g.Cols
}

// Place allocates n cells in g, filling rows from the top. The last row
// is centered if it is incomplete.
func (g Grid) Place(n int) ([]Cell, error) {
	if err := g.check(n); err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, n)
	remaining := n
	for row := 0; row < g.Rows && remaining > 0; row++ {
		k := remaining
		if k > g.Cols {
			k = g.Cols
		}
		empty := g.HalfCols() - 2*k
		offset := empty / 2
		for c := 0; c < k; c++ {
			start := offset + 2*c
			cells = append(cells, Cell{
				Index: len(cells),
				Row:   row,
				Start: start,
				End:   start + 2,
			})
		}
		remaining -= k
	}
	return cells, nil
}
