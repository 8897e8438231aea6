package boggle

import "fmt"

// Backend selects the trie implementation a Lexicon is built on.
type Backend string

const (
	// BackendDAT is a frozen double-array trie. It is compact and fast and is
	// the default.
	BackendDAT Backend = "dat"
	// BackendTrie is a pointer-based node trie.
	BackendTrie Backend = "trie"
)

// ParseBackend converts a backend name to a Backend. The empty string selects
// the default backend.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case "", BackendDAT:
		return BackendDAT, nil
	case BackendTrie:
		return BackendTrie, nil
	}
	return "", fmt.Errorf("unknown lexicon backend %q (want %q or %q)", name, BackendDAT, BackendTrie)
}

type wordTrieStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	Words      int // word-final states
	Alphabet   int // distinct runes, 0 if the backend does not track them
}

func (s wordTrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// wordTrie is the internal backend abstraction for word storage.
//
// Insert may only be called before Freeze. Lookups are valid in both phases;
// after Freeze the trie is read-only and safe for concurrent readers.
type wordTrie interface {
	Insert(word string) bool
	Freeze()
	Contains(word string) bool
	HasPrefix(prefix string) bool
	Stats() wordTrieStats
}

func newWordTrie(backend Backend) (wordTrie, error) {
	switch backend {
	case "", BackendDAT:
		return newDATBackend(), nil
	case BackendTrie:
		return newNodeTrieBackend(), nil
	}
	return nil, fmt.Errorf("unknown lexicon backend %q", backend)
}
