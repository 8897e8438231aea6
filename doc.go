/*
Package boggle finds all dictionary words hidden in a grid of letters.

A word is hidden if it can be spelled by walking from cell to adjacent cell
(horizontally, vertically or diagonally), using every cell at most once.
The search is a depth-first traversal of all simple paths of the grid's
adjacency graph. Branches are pruned as soon as the letters collected so far
are not the prefix of any word in the dictionary, which keeps the otherwise
exponential search small for real word lists.

Dictionaries are loaded from a streaming source into a Lexicon. A Lexicon is
frozen after loading and answers two kinds of queries: "is this a word" and
"does any word start with this prefix". The default backend is a compact
double-array trie (package dat); a node trie backend is available as well.

Reading board files and dictionary files from disk is done by package setup,
which also writes solution files. Package wordlist adapts line-oriented word
lists to the streaming reader interface of this package.

Typical usage:

	lex, err := wordlist.LoadLexicon("en", f, boggle.BackendDAT)
	...
	board := boggle.NewBoard(grid)
	words := board.Solve(lex)
	for _, w := range words.Sorted() {
		fmt.Println(w)
	}

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package boggle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'boggle'
func tracer() tracing.Trace {
	return tracing.Select("boggle")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
