package boggle

import "testing"

func TestTerminalStoreMark(t *testing.T) {
	s := newTerminalStore(8)
	for _, pos := range []int{0, 7, 63, 64, 1000} {
		if err := s.Mark(pos); err != nil {
			t.Fatalf("Mark(%d) failed: %v", pos, err)
		}
	}
	for _, pos := range []int{0, 7, 63, 64, 1000} {
		if !s.Has(pos) {
			t.Fatalf("expected position %d to be marked", pos)
		}
	}
	for _, pos := range []int{1, 62, 65, 999, 5000, -1} {
		if s.Has(pos) {
			t.Fatalf("position %d should not be marked", pos)
		}
	}
	if s.Len() != 5 {
		t.Fatalf("expected 5 marked positions, got %d", s.Len())
	}
}

func TestTerminalStoreMarkTwice(t *testing.T) {
	s := newTerminalStore(0)
	if err := s.Mark(42); err != nil {
		t.Fatal(err)
	}
	if err := s.Mark(42); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("marking twice should count once, got %d", s.Len())
	}
}

func TestTerminalStoreRejectsNegativePosition(t *testing.T) {
	s := newTerminalStore(8)
	if err := s.Mark(-3); err == nil {
		t.Fatalf("expected error for negative position")
	}
}
