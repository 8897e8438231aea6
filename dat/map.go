package dat

// PagedMapBMP maps BMP code points (0..65535) to dense alphabet IDs (uint16).
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Word lists for a single language touch very few high-byte blocks, so a
// latin alphabet costs a single 512 byte page.
type PagedMapBMP struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
	size  int
}

// Dense returns the dense alphabet ID for a BMP code point.
// Returns 0 if absent.
func (m *PagedMapBMP) Dense(bmp uint16) uint16 {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMapBMP) NumPages() int { return len(m.Pages) >> 8 }

// Len returns the number of code points with a non-zero dense ID.
func (m *PagedMapBMP) Len() int { return m.size }

// EnsurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *PagedMapBMP) EnsurePage(hi uint16) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	pi = uint16(len(m.Pages) >> 8)
	m.Top[hi] = pi
	return pi
}

// Set sets mapping bmp -> dense (dense may be 0 to clear).
func (m *PagedMapBMP) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		pi = m.EnsurePage(hi)
	}
	slot := (int(pi-1) << 8) + int(bmp&0xFF)
	old := m.Pages[slot]
	switch {
	case old == 0 && dense != 0:
		m.size++
	case old != 0 && dense == 0:
		m.size--
	}
	m.Pages[slot] = dense
}
