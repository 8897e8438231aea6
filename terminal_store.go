package boggle

import "fmt"

// terminalStore marks the trie states which complete a word.
// It is a bitset directly indexed by trie state.
type terminalStore struct {
	bits  []uint64 // will grow with demand
	count int
}

func newTerminalStore(states int) *terminalStore {
	return &terminalStore{
		bits: make([]uint64, (max(states, 1)+63)/64),
	}
}

func (s *terminalStore) ensure(pos int) {
	need := pos/64 + 1
	if need <= len(s.bits) {
		return
	}
	s.bits = append(s.bits, make([]uint64, need-len(s.bits))...)
}

// Mark flags trie position pos as the end of a word.
func (s *terminalStore) Mark(pos int) error {
	if pos < 0 {
		return fmt.Errorf("negative trie position: %d", pos)
	}
	s.ensure(pos)
	w, b := pos/64, uint(pos%64)
	if s.bits[w]&(1<<b) == 0 {
		s.bits[w] |= 1 << b
		s.count++
	}
	return nil
}

// Has reports whether pos is the end of a word.
func (s *terminalStore) Has(pos int) bool {
	if pos < 0 || pos/64 >= len(s.bits) {
		return false
	}
	return s.bits[pos/64]&(1<<uint(pos%64)) != 0
}

// Len returns the number of marked positions.
func (s *terminalStore) Len() int {
	return s.count
}
