package pkguid

import "sync/atomic"

// Sequence hands out strictly increasing numeric IDs starting at 1.
//
// It mirrors the behavior of an auto-increment primary key: IDs are never
// reused, even after the row that owned one is removed.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first generated ID is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Generate returns the next ID in the sequence.
func (s *Sequence) Generate() int64 {
	return s.last.Add(1)
}
