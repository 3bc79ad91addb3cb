// dto/course_instances_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/courses/instances/model"
)

/* ========== REQUEST DTOs ========== */

type CreateCourseInstanceRequest struct {
	CourseProgramID uuid.UUID `json:"course_program_id" form:"course_program_id" validate:"required"`
	CourseVenueID   uuid.UUID `json:"course_venue_id" form:"course_venue_id" validate:"required"`
	CourseStartDate time.Time `json:"course_start_date" form:"course_start_date" validate:"required"`
	CourseEndDate   time.Time `json:"course_end_date" form:"course_end_date" validate:"required"`

	CourseOpenEnrollment *bool      `json:"course_open_enrollment" form:"course_open_enrollment"`
	CourseHostClientID   *uuid.UUID `json:"course_host_client_id" form:"course_host_client_id"`
	CoursePrivateSeats   *int       `json:"course_private_seats" form:"course_private_seats" validate:"omitempty,min=1"`
}

type UpdateCourseInstanceRequest struct {
	CourseVenueID   *uuid.UUID `json:"course_venue_id" form:"course_venue_id"`
	CourseStartDate *time.Time `json:"course_start_date" form:"course_start_date"`
	CourseEndDate   *time.Time `json:"course_end_date" form:"course_end_date"`

	CourseOpenEnrollment *bool      `json:"course_open_enrollment" form:"course_open_enrollment"`
	CourseHostClientID   *uuid.UUID `json:"course_host_client_id" form:"course_host_client_id"`
	CoursePrivateSeats   *int       `json:"course_private_seats" form:"course_private_seats" validate:"omitempty,min=1"`
}

/* ========== RESPONSE DTO ========== */

type CourseInstanceResponse struct {
	CourseID        uuid.UUID `json:"course_id"`
	CourseProgramID uuid.UUID `json:"course_program_id"`
	CourseVenueID   uuid.UUID `json:"course_venue_id"`

	CourseStartDate time.Time `json:"course_start_date"`
	CourseEndDate   time.Time `json:"course_end_date"`

	CourseOpenEnrollment bool       `json:"course_open_enrollment"`
	CourseHostClientID   *uuid.UUID `json:"course_host_client_id,omitempty"`
	CoursePrivateSeats   *int       `json:"course_private_seats,omitempty"`
	CourseCapacity       int        `json:"course_capacity"`

	CourseCreatedAt time.Time  `json:"course_created_at"`
	CourseUpdatedAt *time.Time `json:"course_updated_at,omitempty"`
}

func NewCourseInstanceResponse(m *model.CourseInstanceModel, capacity int) *CourseInstanceResponse {
	if m == nil {
		return nil
	}
	return &CourseInstanceResponse{
		CourseID:             m.CourseID,
		CourseProgramID:      m.CourseProgramID,
		CourseVenueID:        m.CourseVenueID,
		CourseStartDate:      m.CourseStartDate,
		CourseEndDate:        m.CourseEndDate,
		CourseOpenEnrollment: m.CourseOpenEnrollment,
		CourseHostClientID:   m.CourseHostClientID,
		CoursePrivateSeats:   m.CoursePrivateSeats,
		CourseCapacity:       capacity,
		CourseCreatedAt:      m.CourseCreatedAt,
		CourseUpdatedAt:      m.CourseUpdatedAt,
	}
}

func (r *CreateCourseInstanceRequest) ToModel() *model.CourseInstanceModel {
	m := &model.CourseInstanceModel{
		CourseProgramID:      r.CourseProgramID,
		CourseVenueID:        r.CourseVenueID,
		CourseStartDate:      r.CourseStartDate,
		CourseEndDate:        r.CourseEndDate,
		CourseOpenEnrollment: true,
		CourseHostClientID:   r.CourseHostClientID,
		CoursePrivateSeats:   r.CoursePrivateSeats,
	}
	if r.CourseOpenEnrollment != nil {
		m.CourseOpenEnrollment = *r.CourseOpenEnrollment
	}
	return m
}

func (r *UpdateCourseInstanceRequest) ApplyToModel(m *model.CourseInstanceModel) {
	if r.CourseVenueID != nil {
		m.CourseVenueID = *r.CourseVenueID
	}
	if r.CourseStartDate != nil {
		m.CourseStartDate = *r.CourseStartDate
	}
	if r.CourseEndDate != nil {
		m.CourseEndDate = *r.CourseEndDate
	}
	if r.CourseOpenEnrollment != nil {
		m.CourseOpenEnrollment = *r.CourseOpenEnrollment
	}
	if r.CourseHostClientID != nil {
		m.CourseHostClientID = r.CourseHostClientID
	}
	if r.CoursePrivateSeats != nil {
		m.CoursePrivateSeats = r.CoursePrivateSeats
	}
	now := time.Now()
	m.CourseUpdatedAt = &now
}
