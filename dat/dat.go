package dat

// DAT is a frozen double-array trie over the letters of a word list.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// The DAT itself does not know which states end a word. Clients keep that
// information in a separate store indexed by state.
//
// Mapping:
//   - MapPaged maps BMP code points to dense alphabet IDs.
//     0 means "not part of the alphabet".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	// Values are non-negative; int32 keeps the arrays compact.
	Base  []int32 // len == N
	Check []int32 // len == N

	// MapPaged maps BMP code points to dense IDs [0..Sigma].
	MapPaged PagedMapBMP
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet or outside the BMP.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.MapPaged.Dense(uint16(r))
}

// Walk follows s starting at state and returns the state reached.
// ok is false as soon as a letter has no transition.
func (d *DAT) Walk(state uint32, s string) (uint32, bool) {
	for _, r := range s {
		next, ok := d.Transition(state, d.Dense(r))
		if !ok {
			return 0, false
		}
		state = next
	}
	return state, true
}

// Grow extends Base and Check so that idx is a valid index.
func (d *DAT) Grow(idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}
