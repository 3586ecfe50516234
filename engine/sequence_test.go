package engine

import "testing"

func TestSequencer(t *testing.T) {
	s := NewSequencer(1000)
	if got := s.Next(); got != 1001 {
		t.Errorf("first Next() = %d, want 1001", got)
	}
	if got := s.Next(); got != 1002 {
		t.Errorf("second Next() = %d, want 1002", got)
	}
}

func TestNewPaymentID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewPaymentID()
		if id == "" {
			t.Fatal("empty payment id")
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate payment id %s", id)
		}
		seen[id] = struct{}{}
	}
}
