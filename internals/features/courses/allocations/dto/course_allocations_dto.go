// dto/course_allocations_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/courses/allocations/model"
	"apexdrive_backend/internals/features/courses/allocations/service"
)

/* ========== REQUEST DTOs ========== */

type AllocationEntryRequest struct {
	ClientID uuid.UUID `json:"client_id" form:"client_id" validate:"required"`
	Seats    int       `json:"seats" form:"seats" validate:"required,min=1"`
}

// SaveAllocationsRequest carries the full allocation list for a course;
// the save replaces whatever is stored.
type SaveAllocationsRequest struct {
	Allocations []AllocationEntryRequest `json:"allocations" form:"allocations" validate:"required,dive"`
}

func (r *SaveAllocationsRequest) Entries() []service.Entry {
	out := make([]service.Entry, 0, len(r.Allocations))
	for _, a := range r.Allocations {
		out = append(out, service.Entry{ClientID: a.ClientID, Seats: a.Seats})
	}
	return out
}

/* ========== RESPONSE DTOs ========== */

type AllocationResponse struct {
	AllocationID       uuid.UUID `json:"allocation_id"`
	AllocationCourseID uuid.UUID `json:"allocation_course_id"`
	AllocationClientID uuid.UUID `json:"allocation_client_id"`
	AllocationSeats    int       `json:"allocation_seats"`

	AllocationCreatedAt time.Time `json:"allocation_created_at"`
}

type AllocationListResponse struct {
	CourseID    uuid.UUID            `json:"course_id"`
	Capacity    int                  `json:"capacity"`
	TotalSeats  int                  `json:"total_seats"`
	Remaining   int                  `json:"remaining"`
	Allocations []AllocationResponse `json:"allocations"`
}

func NewAllocationResponse(m *model.CourseAllocationModel) AllocationResponse {
	return AllocationResponse{
		AllocationID:        m.AllocationID,
		AllocationCourseID:  m.AllocationCourseID,
		AllocationClientID:  m.AllocationClientID,
		AllocationSeats:     m.AllocationSeats,
		AllocationCreatedAt: m.AllocationCreatedAt,
	}
}

func NewAllocationListResponse(courseID uuid.UUID, capacity int, rows []model.CourseAllocationModel) *AllocationListResponse {
	items := make([]AllocationResponse, 0, len(rows))
	total := 0
	for i := range rows {
		items = append(items, NewAllocationResponse(&rows[i]))
		total += rows[i].AllocationSeats
	}
	remaining := capacity - total
	if remaining < 0 {
		remaining = 0
	}
	return &AllocationListResponse{
		CourseID:    courseID,
		Capacity:    capacity,
		TotalSeats:  total,
		Remaining:   remaining,
		Allocations: items,
	}
}
