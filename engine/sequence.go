package engine

import "sync"

// Sequencer issues monotonically increasing order identifiers. It replaces a
// process-wide counter so tests control ids deterministically.
type Sequencer struct {
	mu   sync.Mutex
	last int64
}

// NewSequencer seeds the sequence. The first Next returns seed+1.
func NewSequencer(seed int64) *Sequencer {
	return &Sequencer{last: seed}
}

func (s *Sequencer) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}
