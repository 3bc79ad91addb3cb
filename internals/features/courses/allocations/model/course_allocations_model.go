// model/course_allocations_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseAllocationModel represents the `course_allocations` table: seats in
// a course instance reserved for one client. Saving replaces the whole set
// for the course.
type CourseAllocationModel struct {
	AllocationID       uuid.UUID `json:"allocation_id" gorm:"column:allocation_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AllocationCourseID uuid.UUID `json:"allocation_course_id" gorm:"column:allocation_course_id;type:uuid;not null"` // FK -> course_instances(course_id)
	AllocationClientID uuid.UUID `json:"allocation_client_id" gorm:"column:allocation_client_id;type:uuid;not null"` // FK -> clients(client_id)

	AllocationSeats int `json:"allocation_seats" gorm:"column:allocation_seats;not null"`

	AllocationCreatedAt time.Time `json:"allocation_created_at" gorm:"column:allocation_created_at;not null;autoCreateTime"`
}

func (CourseAllocationModel) TableName() string {
	return "course_allocations"
}
