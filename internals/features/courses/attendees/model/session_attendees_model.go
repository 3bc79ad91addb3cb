// model/session_attendees_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionAttendeeModel represents the `session_attendees` table: one row per
// (student, course) pair. Cancellation flips the status, the row is never
// deleted, so re-enrolling reactivates the same row.
type SessionAttendeeModel struct {
	AttendeeID        uuid.UUID `json:"attendee_id" gorm:"column:attendee_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendeeCourseID  uuid.UUID `json:"attendee_course_id" gorm:"column:attendee_course_id;type:uuid;not null"`   // FK -> course_instances(course_id)
	AttendeeStudentID uuid.UUID `json:"attendee_student_id" gorm:"column:attendee_student_id;type:uuid;not null"` // FK -> students(student_id)

	AttendeeStatus string `json:"attendee_status" gorm:"column:attendee_status;type:varchar(20);not null;default:'pending'"`

	AttendeeCreatedAt time.Time  `json:"attendee_created_at" gorm:"column:attendee_created_at;not null;autoCreateTime"`
	AttendeeUpdatedAt *time.Time `json:"attendee_updated_at,omitempty" gorm:"column:attendee_updated_at"`
}

func (SessionAttendeeModel) TableName() string {
	return "session_attendees"
}
