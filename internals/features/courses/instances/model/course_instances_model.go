// model/course_instances_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgramModel represents the `programs` table: a course curriculum with a
// nominal student cap.
type ProgramModel struct {
	ProgramID          uuid.UUID `json:"program_id" gorm:"column:program_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProgramName        string    `json:"program_name" gorm:"column:program_name;type:varchar(120);not null"`
	ProgramMaxStudents int       `json:"program_max_students" gorm:"column:program_max_students;not null"`

	ProgramCreatedAt time.Time `json:"program_created_at" gorm:"column:program_created_at;not null;autoCreateTime"`
}

func (ProgramModel) TableName() string {
	return "programs"
}

// VenueModel represents the `venues` table.
type VenueModel struct {
	VenueID   uuid.UUID `json:"venue_id" gorm:"column:venue_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VenueName string    `json:"venue_name" gorm:"column:venue_name;type:varchar(120);not null"`
	VenueCity string    `json:"venue_city" gorm:"column:venue_city;type:varchar(120);not null"`

	VenueCreatedAt time.Time `json:"venue_created_at" gorm:"column:venue_created_at;not null;autoCreateTime"`
}

func (VenueModel) TableName() string {
	return "venues"
}

// CourseInstanceModel represents the `course_instances` table: a scheduled
// offering of a program at a venue. A private course is pinned to a host
// client with its own seat count; an open-enrollment course takes students
// from any client up to the program cap.
type CourseInstanceModel struct {
	CourseID        uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CourseProgramID uuid.UUID `json:"course_program_id" gorm:"column:course_program_id;type:uuid;not null"` // FK -> programs(program_id)
	CourseVenueID   uuid.UUID `json:"course_venue_id" gorm:"column:course_venue_id;type:uuid;not null"`     // FK -> venues(venue_id)

	CourseStartDate time.Time `json:"course_start_date" gorm:"column:course_start_date;type:date;not null"`
	CourseEndDate   time.Time `json:"course_end_date" gorm:"column:course_end_date;type:date;not null"`

	CourseOpenEnrollment bool       `json:"course_open_enrollment" gorm:"column:course_open_enrollment;not null;default:true"`
	CourseHostClientID   *uuid.UUID `json:"course_host_client_id,omitempty" gorm:"column:course_host_client_id;type:uuid"`
	CoursePrivateSeats   *int       `json:"course_private_seats,omitempty" gorm:"column:course_private_seats"`

	CourseCreatedAt time.Time  `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt *time.Time `json:"course_updated_at,omitempty" gorm:"column:course_updated_at"`
	CourseDeletedAt *time.Time `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at"`
}

func (CourseInstanceModel) TableName() string {
	return "course_instances"
}
