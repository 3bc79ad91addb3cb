// service/allocation_set.go
package service

import (
	"fmt"

	"github.com/google/uuid"
)

// Entry is one client's share of a course's seats.
type Entry struct {
	ClientID uuid.UUID
	Seats    int
}

// CapacityError is returned when an Add would push the running total past
// the course capacity. The message carries the remaining seat count so the
// console can surface it on the seats field.
type CapacityError struct {
	Remaining int
}

func (e *CapacityError) Error() string {
	if e.Remaining == 1 {
		return "only 1 seat remaining"
	}
	return fmt.Sprintf("only %d seats remaining", e.Remaining)
}

// AllocationSet is the in-memory allocation editor: entries are added and
// removed against a fixed capacity, then persisted as one replace-save.
type AllocationSet struct {
	capacity int
	entries  []Entry
}

// NewAllocationSet seeds the editor with the stored allocations. Entries
// for the same client are merged; capacity is not re-validated here so an
// over-allocated historical set still loads (it can only shrink).
func NewAllocationSet(capacity int, initial []Entry) *AllocationSet {
	s := &AllocationSet{capacity: capacity}
	for _, e := range initial {
		if e.Seats <= 0 {
			continue
		}
		if i := s.indexOf(e.ClientID); i >= 0 {
			s.entries[i].Seats += e.Seats
		} else {
			s.entries = append(s.entries, e)
		}
	}
	return s
}

func (s *AllocationSet) indexOf(clientID uuid.UUID) int {
	for i := range s.entries {
		if s.entries[i].ClientID == clientID {
			return i
		}
	}
	return -1
}

// Total is the sum of allocated seats.
func (s *AllocationSet) Total() int {
	total := 0
	for _, e := range s.entries {
		total += e.Seats
	}
	return total
}

// Remaining is the unallocated seat count (never negative).
func (s *AllocationSet) Remaining() int {
	r := s.capacity - s.Total()
	if r < 0 {
		return 0
	}
	return r
}

// Add allocates seats to a client, merging with an existing entry for the
// same client. It is rejected — not clamped — when the result would exceed
// capacity, leaving the set unchanged.
func (s *AllocationSet) Add(clientID uuid.UUID, seats int) error {
	if seats <= 0 {
		return fmt.Errorf("seats must be positive")
	}
	if s.Total()+seats > s.capacity {
		return &CapacityError{Remaining: s.Remaining()}
	}
	if i := s.indexOf(clientID); i >= 0 {
		s.entries[i].Seats += seats
		return nil
	}
	s.entries = append(s.entries, Entry{ClientID: clientID, Seats: seats})
	return nil
}

// Remove drops a client's entry. Removing an absent client is a no-op.
func (s *AllocationSet) Remove(clientID uuid.UUID) {
	if i := s.indexOf(clientID); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
}

// Entries returns a copy of the current allocation list in insertion order.
func (s *AllocationSet) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
