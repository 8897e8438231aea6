package boggle

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MinWordLength is the minimum number of letters of a word eligible for a
// Lexicon. Shorter words are dropped while loading.
const MinWordLength = 3

// WordReader yields dictionary words one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (word string, err error)
}

// WordIndex is the dictionary capability a board search needs: exact
// membership and the test whether any word starts with a given prefix.
//
// Both methods are called with lowercase strings.
type WordIndex interface {
	Contains(word string) bool
	HasPrefix(prefix string) bool
}

// Lexicon is a frozen set of lowercase words supporting prefix queries.
//
// A Lexicon is built once by LoadLexicon and read-only afterwards. It is safe
// for concurrent use by multiple searches.
type Lexicon struct {
	words      wordTrie
	size       int
	Identifier string // Identifies the lexicon
}

var _ WordIndex = (*Lexicon)(nil)

// LoadLexicon compiles a lexicon from a streaming, format-agnostic source.
//
// Words are trimmed and lowercased. Words with fewer than MinWordLength
// letters and words the backend cannot encode are skipped. Duplicates are
// stored once.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package wordlist to parse concrete formats and feed this API.
func LoadLexicon(name string, reader WordReader, backend Backend) (*Lexicon, error) {
	words, err := newWordTrie(backend)
	if err != nil {
		return nil, err
	}
	lex := &Lexicon{
		words:      words,
		Identifier: fmt.Sprintf("lexicon: %s", name),
	}
	skipped := 0
	for {
		word, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading lexicon %s: %w", name, err)
		}
		word = normalizeWord(word)
		if utf8.RuneCountInString(word) < MinWordLength {
			skipped++
			continue
		}
		if lex.words.Contains(word) {
			continue
		}
		if !lex.words.Insert(word) {
			skipped++ // simply skip words the backend cannot encode
			continue
		}
		lex.size++
	}
	lex.words.Freeze()
	stats := lex.words.Stats()
	assert(stats.Words == lex.size, "trie must hold every word of the lexicon")
	tracer().Infof("%s: %d words (%d skipped), trie backend=%s alphabet=%d used=%d total=%d fill=%.2f",
		lex.Identifier, lex.size, skipped, stats.Backend, stats.Alphabet,
		stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return lex, nil
}

// NewLexicon builds a lexicon from an in-memory word list.
func NewLexicon(name string, words []string, backend Backend) (*Lexicon, error) {
	return LoadLexicon(name, &sliceWordReader{words: words}, backend)
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Contains reports whether word is in the lexicon.
func (lex *Lexicon) Contains(word string) bool {
	if lex == nil || lex.words == nil || word == "" {
		return false
	}
	return lex.words.Contains(word)
}

// HasPrefix reports whether at least one word of the lexicon starts with
// prefix. A word is a prefix of itself.
func (lex *Lexicon) HasPrefix(prefix string) bool {
	if lex == nil || lex.words == nil {
		return false
	}
	if prefix == "" {
		return lex.size > 0
	}
	return lex.words.HasPrefix(prefix)
}

// Size returns the number of distinct words.
func (lex *Lexicon) Size() int {
	if lex == nil {
		return 0
	}
	return lex.size
}

// TrieStats reports density metrics for the underlying trie.
func (lex *Lexicon) TrieStats() (backend string, usedSlots, totalSlots int, fillRatio float64) {
	if lex == nil || lex.words == nil {
		return "", 0, 0, 0
	}
	stats := lex.words.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.FillRatio()
}

type sliceWordReader struct {
	words []string
	index int
}

func (r *sliceWordReader) Next() (string, error) {
	if r.index >= len(r.words) {
		return "", io.EOF
	}
	w := r.words[r.index]
	r.index++
	return w, nil
}
