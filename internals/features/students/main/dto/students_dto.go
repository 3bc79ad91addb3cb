// dto/students_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/students/main/model"
)

/* ========== REQUEST DTOs ========== */

type CreateStudentRequest struct {
	StudentTeamID         uuid.UUID `json:"student_team_id" form:"student_team_id" validate:"required"`
	StudentFirstName      string    `json:"student_first_name" form:"student_first_name" validate:"required,min=1,max=80"`
	StudentLastName       string    `json:"student_last_name" form:"student_last_name" validate:"required,min=1,max=80"`
	StudentEmail          string    `json:"student_email" form:"student_email" validate:"required,email"`
	StudentPhone          *string   `json:"student_phone" form:"student_phone" validate:"omitempty,max=40"`
	StudentEmployeeNumber *string   `json:"student_employee_number" form:"student_employee_number" validate:"omitempty,max=60"`
}

type UpdateStudentRequest struct {
	StudentTeamID         *uuid.UUID `json:"student_team_id" form:"student_team_id"`
	StudentFirstName      *string    `json:"student_first_name" form:"student_first_name" validate:"omitempty,min=1,max=80"`
	StudentLastName       *string    `json:"student_last_name" form:"student_last_name" validate:"omitempty,min=1,max=80"`
	StudentPhone          *string    `json:"student_phone" form:"student_phone" validate:"omitempty,max=40"`
	StudentEmployeeNumber *string    `json:"student_employee_number" form:"student_employee_number" validate:"omitempty,max=60"`
	StudentStatus         *string    `json:"student_status" form:"student_status" validate:"omitempty,oneof=active inactive"`
}

/* ========== RESPONSE DTO ========== */

type StudentResponse struct {
	StudentID     uuid.UUID `json:"student_id"`
	StudentTeamID uuid.UUID `json:"student_team_id"`

	StudentFirstName      string  `json:"student_first_name"`
	StudentLastName       string  `json:"student_last_name"`
	StudentEmail          string  `json:"student_email"`
	StudentPhone          *string `json:"student_phone,omitempty"`
	StudentEmployeeNumber *string `json:"student_employee_number,omitempty"`
	StudentStatus         string  `json:"student_status"`

	StudentCreatedAt time.Time  `json:"student_created_at"`
	StudentUpdatedAt *time.Time `json:"student_updated_at,omitempty"`
}

/* ========== MODEL <-> DTO ========== */

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		StudentID:             m.StudentID,
		StudentTeamID:         m.StudentTeamID,
		StudentFirstName:      m.StudentFirstName,
		StudentLastName:       m.StudentLastName,
		StudentEmail:          m.StudentEmail,
		StudentPhone:          m.StudentPhone,
		StudentEmployeeNumber: m.StudentEmployeeNumber,
		StudentStatus:         m.StudentStatus,
		StudentCreatedAt:      m.StudentCreatedAt,
		StudentUpdatedAt:      m.StudentUpdatedAt,
	}
}

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentTeamID:         r.StudentTeamID,
		StudentFirstName:      r.StudentFirstName,
		StudentLastName:       r.StudentLastName,
		StudentEmail:          r.StudentEmail,
		StudentPhone:          r.StudentPhone,
		StudentEmployeeNumber: r.StudentEmployeeNumber,
		StudentStatus:         "active",
	}
}

func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentTeamID != nil {
		m.StudentTeamID = *r.StudentTeamID
	}
	if r.StudentFirstName != nil {
		m.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		m.StudentLastName = *r.StudentLastName
	}
	if r.StudentPhone != nil {
		m.StudentPhone = r.StudentPhone
	}
	if r.StudentEmployeeNumber != nil {
		m.StudentEmployeeNumber = r.StudentEmployeeNumber
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
	now := time.Now()
	m.StudentUpdatedAt = &now
}
