package boggle

import (
	"github.com/derekparker/trie"
)

// nodeTrieBackend stores words in a pointer-based rune trie.
type nodeTrieBackend struct {
	frozen bool
	words  int
	t      *trie.Trie
}

func newNodeTrieBackend() *nodeTrieBackend {
	return &nodeTrieBackend{t: trie.New()}
}

func (nt *nodeTrieBackend) Insert(word string) bool {
	if nt.frozen || word == "" {
		return false
	}
	if _, found := nt.t.Find(word); !found {
		nt.t.Add(word, nil)
		nt.words++
	}
	return true
}

func (nt *nodeTrieBackend) Freeze() {
	nt.frozen = true
}

func (nt *nodeTrieBackend) Contains(word string) bool {
	_, found := nt.t.Find(word)
	return found
}

func (nt *nodeTrieBackend) HasPrefix(prefix string) bool {
	return nt.t.HasKeysWithPrefix(prefix)
}

// Stats reports stored words as slots; a node trie has no unused slots.
func (nt *nodeTrieBackend) Stats() wordTrieStats {
	return wordTrieStats{
		Backend:    "trie",
		UsedSlots:  nt.words,
		TotalSlots: nt.words,
		Words:      nt.words,
	}
}
