package asteroidfield

import (
	"errors"
	"strings"
)

// Cell is one square of the puzzle grid.
type Cell int

// Grid cell encoding.
const (
	Empty    Cell = 0 // open space
	Wall     Cell = 1 // immovable, impassable
	Asteroid Cell = 2 // pushable in contiguous lines
	Probe    Cell = 3 // the player
	Dock     Cell = 4 // the goal
)

var (
	errEmptyGrid   = errors.New("grid has no rows or no columns")
	errRaggedGrid  = errors.New("grid rows have inconsistent lengths")
	errUnknownCell = errors.New("grid contains an unknown cell code")
)

// Grid is a rectangular field of cells, indexed [row][col].
type Grid [][]Cell

// Clone returns an independent value copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

// Validate checks that the grid is non-empty, rectangular, and uses only the
// five defined cell codes.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return errEmptyGrid
	}
	cols := len(g[0])
	for _, row := range g {
		if len(row) != cols {
			return errRaggedGrid
		}
		for _, c := range row {
			if c < Empty || c > Dock {
				return errUnknownCell
			}
		}
	}
	return nil
}

// Key flattens the grid into a hashable, order-sensitive string. Two grids
// produce equal keys iff they are cell-wise equal, so the key serves as the
// sole identity for visited-set membership.
func (g Grid) Key() string {
	if len(g) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(g) * (len(g[0]) + 1))
	for i, row := range g {
		if i > 0 {
			b.WriteByte('|')
		}
		for _, c := range row {
			b.WriteByte('0' + byte(c))
		}
	}
	return b.String()
}
