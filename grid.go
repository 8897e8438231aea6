package boggle

import (
	"cmp"
	"fmt"
	"slices"
)

// Cell is a grid position.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func compareCells(a, b Cell) int {
	if a.Row != b.Row {
		return cmp.Compare(a.Row, b.Row)
	}
	return cmp.Compare(a.Col, b.Col)
}

// Grid maps occupied cells to the letter face printed on them.
//
// A face is usually a single letter. Boards with multi-letter dice (e.g. "Qu")
// are supported, such a face contributes all of its letters when a path
// crosses its cell.
type Grid map[Cell]string

// Cells returns the occupied cells in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g))
	for c := range g {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}

// Face returns the letter face of cell c.
func (g Grid) Face(c Cell) (string, bool) {
	face, ok := g[c]
	return face, ok && face != ""
}

// neighborOffsets enumerates the 8 neighbor offsets row-major over
// (drow, dcol).
var neighborOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// AdjacencyMap maps every occupied cell to the occupied cells touching it,
// diagonals included.
type AdjacencyMap map[Cell][]Cell

// NewAdjacencyMap computes the neighbors of every cell of grid.
//
// Neighbor lists are ordered by the fixed offset enumeration (row-major).
// Adjacency depends on positions only, never on letters, therefore the
// relation is symmetric.
func NewAdjacencyMap(grid Grid) AdjacencyMap {
	adj := make(AdjacencyMap, len(grid))
	for c := range grid {
		adj[c] = neighborsOf(grid, c)
	}
	return adj
}

func neighborsOf(grid Grid, c Cell) []Cell {
	neighbors := make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Cell{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if _, ok := grid[n]; ok {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
