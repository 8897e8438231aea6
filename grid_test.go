package boggle

import (
	"reflect"
	"testing"
)

func teamGrid() Grid {
	return Grid{
		{0, 0}: "T",
		{0, 1}: "E",
		{1, 0}: "A",
		{1, 1}: "M",
	}
}

func squareGrid(rows ...string) Grid {
	grid := make(Grid)
	for r, row := range rows {
		for c, ch := range row {
			grid[Cell{r, c}] = string(ch)
		}
	}
	return grid
}

func TestAdjacencyMapSmallGrid(t *testing.T) {
	adj := NewAdjacencyMap(teamGrid())
	tests := []struct {
		cell Cell
		want []Cell
	}{
		{cell: Cell{0, 0}, want: []Cell{{0, 1}, {1, 0}, {1, 1}}},
		{cell: Cell{0, 1}, want: []Cell{{0, 0}, {1, 0}, {1, 1}}},
		{cell: Cell{1, 0}, want: []Cell{{0, 0}, {0, 1}, {1, 1}}},
		{cell: Cell{1, 1}, want: []Cell{{0, 0}, {0, 1}, {1, 0}}},
	}
	if len(adj) != 4 {
		t.Fatalf("expected adjacency for 4 cells, got %d", len(adj))
	}
	for _, tt := range tests {
		if got := adj[tt.cell]; !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("neighbors of %v: got %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestAdjacencyMapCenterCell(t *testing.T) {
	adj := NewAdjacencyMap(squareGrid("abc", "def", "ghi"))
	want := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	if got := adj[Cell{1, 1}]; !reflect.DeepEqual(got, want) {
		t.Fatalf("center neighbors: got %v, want %v", got, want)
	}
	if got := adj[Cell{2, 2}]; len(got) != 3 {
		t.Fatalf("corner should have 3 neighbors, has %v", got)
	}
}

func TestAdjacencyMapInvariants(t *testing.T) {
	grids := map[string]Grid{
		"4x4":    squareGrid("abcd", "efgh", "ijkl", "mnop"),
		"5x3":    squareGrid("abc", "def", "ghi", "jkl", "mno"),
		"sparse": {{0, 0}: "a", {0, 2}: "b", {1, 1}: "c", {3, 3}: "d", {-1, -1}: "e"},
		"single": {{7, 7}: "x"},
	}
	for name, grid := range grids {
		adj := NewAdjacencyMap(grid)
		if len(adj) != len(grid) {
			t.Fatalf("%s: adjacency covers %d cells, grid has %d", name, len(adj), len(grid))
		}
		for c, neighbors := range adj {
			if _, ok := grid[c]; !ok {
				t.Fatalf("%s: adjacency key %v not in grid", name, c)
			}
			if len(neighbors) > 8 {
				t.Fatalf("%s: %v has %d neighbors", name, c, len(neighbors))
			}
			for _, n := range neighbors {
				if n == c {
					t.Fatalf("%s: %v is adjacent to itself", name, c)
				}
				if _, ok := grid[n]; !ok {
					t.Fatalf("%s: neighbor %v of %v not in grid", name, n, c)
				}
				if !containsCell(adj[n], c) {
					t.Fatalf("%s: %v lists %v but not vice versa", name, c, n)
				}
			}
		}
	}
}

func TestAdjacencyMapSparseGrid(t *testing.T) {
	grid := Grid{{0, 0}: "a", {0, 2}: "b", {1, 1}: "c", {3, 3}: "d"}
	adj := NewAdjacencyMap(grid)
	if got := adj[Cell{3, 3}]; len(got) != 0 {
		t.Fatalf("isolated cell should have no neighbors, has %v", got)
	}
	if got, want := adj[Cell{1, 1}], []Cell{{0, 0}, {0, 2}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("neighbors of (1,1): got %v, want %v", got, want)
	}
}

func TestGridCellsRowMajor(t *testing.T) {
	cells := squareGrid("ab", "cd").Cells()
	want := []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if !reflect.DeepEqual(cells, want) {
		t.Fatalf("cells not in row-major order: %v", cells)
	}
	if len(Grid{}.Cells()) != 0 {
		t.Fatalf("empty grid should have no cells")
	}
}

func containsCell(cells []Cell, c Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
