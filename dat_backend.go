package boggle

import (
	"fmt"
	"slices"

	"github.com/npillmayer/boggle/dat"
)

type datBuildNode struct {
	tmpID    int
	state    uint32
	terminal bool
	children map[uint16]*datBuildNode
}

// datBackend collects words in a pointer trie and compiles it into a
// double-array trie on Freeze. Word ends are kept in a terminalStore indexed
// by compiled state.
type datBackend struct {
	frozen      bool
	root        *datBuildNode
	nextNodeID  int
	runeToDense map[rune]uint16
	nextDenseID uint16
	compiled    *dat.DAT
	terminals   *terminalStore
	freeHint    int // all slots below are taken
}

func newDATBackend() *datBackend {
	return &datBackend{
		root:        &datBuildNode{tmpID: 1, children: make(map[uint16]*datBuildNode)},
		nextNodeID:  2,
		runeToDense: make(map[rune]uint16),
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

// encodeKey maps s to dense alphabet IDs, extending the alphabet as needed.
// Only valid before Freeze.
func (db *datBackend) encodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	for _, r := range s {
		if r < 0 || r > 0xFFFF {
			return nil, false
		}
		dense, ok := db.runeToDense[r]
		if !ok {
			if db.nextDenseID == ^uint16(0) {
				return nil, false
			}
			db.nextDenseID++
			dense = db.nextDenseID
			db.runeToDense[r] = dense
			db.compiled.MapPaged.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, true
}

func (db *datBackend) Insert(word string) bool {
	if db.frozen || word == "" {
		return false
	}
	key, ok := db.encodeKey(word)
	if !ok {
		return false
	}
	n := db.root
	for _, c := range key {
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{
				tmpID:    db.nextNodeID,
				children: make(map[uint16]*datBuildNode),
			}
			db.nextNodeID++
			n.children[c] = child
		}
		n = child
	}
	n.terminal = true
	return true
}

// lookup walks s through the trie. It returns whether s is a path of the trie
// and whether that path ends a word.
func (db *datBackend) lookup(s string) (reached, terminal bool) {
	if db.frozen {
		state, ok := db.compiled.Walk(db.compiled.Root, s)
		if !ok {
			return false, false
		}
		return true, db.terminals.Has(int(state))
	}
	n := db.root
	for _, r := range s {
		dense, ok := db.runeToDense[r]
		if !ok {
			return false, false
		}
		if n = n.children[dense]; n == nil {
			return false, false
		}
	}
	return true, n.terminal
}

func (db *datBackend) Contains(word string) bool {
	_, terminal := db.lookup(word)
	return terminal
}

func (db *datBackend) HasPrefix(prefix string) bool {
	reached, _ := db.lookup(prefix)
	return reached
}

func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = db.nextDenseID
	d.Grow(int(d.Root))
	db.terminals = newTerminalStore(db.nextNodeID)
	db.freeHint = int(d.Root) + 1
	db.root.state = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if n.terminal {
			err := db.terminals.Mark(int(n.state))
			assert(err == nil, "DAT state must be non-negative")
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := db.findBase(labels)
		d.Grow(base + int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			assert(d.Check[t] == 0, "DAT slot already taken")
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
		db.advanceFreeHint()
	}
	db.root = nil
	db.runeToDense = nil
	db.frozen = true
}

// findBase finds the smallest base at which all labels land on free slots.
func (db *datBackend) findBase(labels []uint16) int {
	check := db.compiled.Check
	for base := max(1, db.freeHint-int(labels[0])); ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && (check[t] != 0 || t == int(db.compiled.Root)) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func (db *datBackend) advanceFreeHint() {
	check := db.compiled.Check
	for db.freeHint < len(check) && check[db.freeHint] != 0 {
		db.freeHint++
	}
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() wordTrieStats {
	stats := wordTrieStats{
		Backend:    "dat",
		TotalSlots: db.compiled.NStates(),
		Alphabet:   db.compiled.MapPaged.Len(),
	}
	if db.terminals != nil {
		stats.Words = db.terminals.Len()
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			used++
		}
	}
	stats.UsedSlots = used
	return stats
}
