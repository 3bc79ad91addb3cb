// service/enrollment.go
package service

import "fmt"

// Attendee statuses. Cancelled rows stay in the table and are reactivated on
// re-enrollment.
const (
	AttendeePending   = "pending"
	AttendeeCancelled = "cancelled"
)

// SeatLimitError is returned when a client's allocated seats for a course are
// already fully taken by pending enrollments.
type SeatLimitError struct {
	SeatsAllocated int
}

func (e *SeatLimitError) Error() string {
	if e.SeatsAllocated == 1 {
		return "the client's 1 allocated seat is already taken"
	}
	return fmt.Sprintf("all %d allocated seats for this client are taken", e.SeatsAllocated)
}

// CheckSeat gates a new enrollment against the client's allocation:
// enrolledCount counts the client's pending attendees on the course. Zero
// allocated seats means the client was never allocated into the course at all.
func CheckSeat(enrolledCount, seatsAllocated int) error {
	if seatsAllocated <= 0 {
		return fmt.Errorf("the client has no seats allocated for this course")
	}
	if enrolledCount >= seatsAllocated {
		return &SeatLimitError{SeatsAllocated: seatsAllocated}
	}
	return nil
}
