package boggle

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Board is a grid prepared for searching.
//
// Cells are indexed densely in row-major order and neighbor lists are
// translated to these indices, so a traversal needs nothing but a visited
// vector and a letter buffer. A Board is immutable and may be searched by
// several goroutines at once.
type Board struct {
	grid      Grid
	adjacency AdjacencyMap
	cells     []Cell
	faces     []string // lowercased; "" means the cell has no face
	neighbors [][]int  // -1 marks a neighbor outside of the grid
}

// NewBoard prepares grid for searching.
func NewBoard(grid Grid) *Board {
	return newBoard(grid, NewAdjacencyMap(grid))
}

func newBoard(grid Grid, adjacency AdjacencyMap) *Board {
	b := &Board{
		grid:      grid,
		adjacency: adjacency,
		cells:     grid.Cells(),
	}
	index := make(map[Cell]int, len(b.cells))
	b.faces = make([]string, len(b.cells))
	for i, c := range b.cells {
		index[c] = i
		if face, ok := grid.Face(c); ok {
			b.faces[i] = strings.ToLower(face)
		}
	}
	b.neighbors = make([][]int, len(b.cells))
	for i, c := range b.cells {
		adj := adjacency[c]
		b.neighbors[i] = make([]int, len(adj))
		for j, n := range adj {
			if k, ok := index[n]; ok {
				b.neighbors[i][j] = k
			} else {
				b.neighbors[i][j] = -1
			}
		}
	}
	return b
}

// Grid returns the grid of the board.
func (b *Board) Grid() Grid {
	return b.grid
}

// Adjacency returns the adjacency map of the board.
func (b *Board) Adjacency() AdjacencyMap {
	return b.adjacency
}

// FindWords returns every word of dict which can be spelled along a simple
// path of adjacent cells of grid.
//
// Starting cells are visited in row-major order. The search never fails:
// an empty grid or an empty dictionary yield an empty set.
func FindWords(grid Grid, adjacency AdjacencyMap, dict WordIndex) FoundWords {
	return newBoard(grid, adjacency).Solve(dict)
}

// Solve searches the board sequentially and returns all words of dict found.
func (b *Board) Solve(dict WordIndex) FoundWords {
	found := make(FoundWords)
	if dict == nil || len(b.cells) == 0 {
		return found
	}
	w := b.newWalker(dict, found)
	for start := range b.cells {
		w.walk(start)
	}
	tracer().Debugf("search of %d cells: %d paths visited, %d pruned, %d words found",
		len(b.cells), w.visits, w.prunes, found.Len())
	return found
}

// SolveParallel searches the board with one task per starting cell, running
// at most workers tasks at a time. workers <= 0 selects GOMAXPROCS.
//
// Each task collects its words in a set of its own; the sets are merged after
// all tasks have finished. The result equals the result of Solve. The only
// error returned is the context's, if ctx is done before the search ends.
// Running tasks notice cancellation within cancelCheckInterval path steps.
func (b *Board) SolveParallel(ctx context.Context, dict WordIndex, workers int) (FoundWords, error) {
	found := make(FoundWords)
	if dict == nil || len(b.cells) == 0 {
		return found, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]FoundWords, len(b.cells))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := range b.cells {
		start := start
		g.Go(func() error {
			local := make(FoundWords)
			w := b.newWalker(dict, local)
			w.ctx = ctx
			w.walk(start)
			if w.err != nil {
				return w.err
			}
			results[start] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, local := range results {
		found.Merge(local)
	}
	tracer().Debugf("parallel search of %d cells with %d workers: %d words found",
		len(b.cells), workers, found.Len())
	return found, nil
}

// cancelCheckInterval is the number of path steps between two looks at the
// context of a cancellable walk. Must be a power of 2.
const cancelCheckInterval = 1024

// walker holds the state of one depth-first traversal. The current path is
// the recursion stack; visited marks its cells and buf holds its letters.
type walker struct {
	board   *Board
	dict    WordIndex
	found   FoundWords
	visited []bool
	buf     []byte
	visits  int
	prunes  int
	ctx     context.Context // nil for a walk which cannot be cancelled
	err     error           // set once ctx is done, unwinds the walk
}

func (b *Board) newWalker(dict WordIndex, found FoundWords) *walker {
	return &walker{
		board:   b,
		dict:    dict,
		found:   found,
		visited: make([]bool, len(b.cells)),
		buf:     make([]byte, 0, 4*len(b.cells)),
	}
}

// walk extends the current path by cell i.
func (w *walker) walk(i int) {
	if w.ctx != nil && w.visits&(cancelCheckInterval-1) == 0 {
		w.err = w.ctx.Err()
	}
	if w.err != nil {
		return
	}
	face := w.board.faces[i]
	if face == "" {
		return // no letters here, drop the branch
	}
	mark := len(w.buf)
	w.buf = append(w.buf, face...)
	w.visited[i] = true
	w.visits++
	s := string(w.buf)
	if w.dict.Contains(s) {
		w.found.Add(s)
	}
	if w.dict.HasPrefix(s) {
		for _, n := range w.board.neighbors[i] {
			if n >= 0 && !w.visited[n] {
				w.walk(n)
			}
		}
	} else {
		w.prunes++
	}
	w.visited[i] = false
	w.buf = w.buf[:mark]
}
