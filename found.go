package boggle

import (
	"slices"

	"github.com/samber/lo"
)

// FoundWords is a set of lowercase words found on a board.
type FoundWords map[string]struct{}

// NewFoundWords creates a set holding words.
func NewFoundWords(words ...string) FoundWords {
	fw := make(FoundWords, len(words))
	for _, w := range words {
		fw.Add(w)
	}
	return fw
}

// Add inserts word. Adding a word twice is a no-op.
func (fw FoundWords) Add(word string) {
	fw[word] = struct{}{}
}

// Contains reports whether word has been found.
func (fw FoundWords) Contains(word string) bool {
	_, ok := fw[word]
	return ok
}

// Len returns the number of distinct words.
func (fw FoundWords) Len() int {
	return len(fw)
}

// Merge adds all words of other to fw.
func (fw FoundWords) Merge(other FoundWords) {
	for w := range other {
		fw[w] = struct{}{}
	}
}

// Sorted returns the words in ascending order.
func (fw FoundWords) Sorted() []string {
	words := lo.Keys(map[string]struct{}(fw))
	slices.Sort(words)
	return words
}
