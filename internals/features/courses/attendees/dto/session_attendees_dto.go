// dto/session_attendees_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/courses/attendees/model"
	"apexdrive_backend/internals/features/courses/attendees/service"
	studentModel "apexdrive_backend/internals/features/students/main/model"
)

/* ========== REQUEST DTOs ========== */

type EnrollRequest struct {
	StudentID uuid.UUID `json:"student_id" form:"student_id" validate:"required"`
}

/* ========== RESPONSE DTOs ========== */

type AttendeeResponse struct {
	AttendeeID        uuid.UUID `json:"attendee_id"`
	AttendeeCourseID  uuid.UUID `json:"attendee_course_id"`
	AttendeeStudentID uuid.UUID `json:"attendee_student_id"`
	AttendeeStatus    string    `json:"attendee_status"`

	StudentFirstName      string  `json:"student_first_name"`
	StudentLastName       string  `json:"student_last_name"`
	StudentEmail          string  `json:"student_email"`
	StudentEmployeeNumber *string `json:"student_employee_number,omitempty"`

	AttendeeCreatedAt time.Time `json:"attendee_created_at"`
}

func NewAttendeeResponse(a *model.SessionAttendeeModel, s *studentModel.StudentModel) AttendeeResponse {
	resp := AttendeeResponse{
		AttendeeID:        a.AttendeeID,
		AttendeeCourseID:  a.AttendeeCourseID,
		AttendeeStudentID: a.AttendeeStudentID,
		AttendeeStatus:    a.AttendeeStatus,
		AttendeeCreatedAt: a.AttendeeCreatedAt,
	}
	if s != nil {
		resp.StudentFirstName = s.StudentFirstName
		resp.StudentLastName = s.StudentLastName
		resp.StudentEmail = s.StudentEmail
		resp.StudentEmployeeNumber = s.StudentEmployeeNumber
	}
	return resp
}

// RosterStudentResponse is a candidate row for the enrollment picker.
type RosterStudentResponse struct {
	StudentID             uuid.UUID `json:"student_id"`
	StudentTeamID         uuid.UUID `json:"student_team_id"`
	StudentFirstName      string    `json:"student_first_name"`
	StudentLastName       string    `json:"student_last_name"`
	StudentEmail          string    `json:"student_email"`
	StudentEmployeeNumber *string   `json:"student_employee_number,omitempty"`
}

func NewRosterStudentResponse(s *studentModel.StudentModel) RosterStudentResponse {
	return RosterStudentResponse{
		StudentID:             s.StudentID,
		StudentTeamID:         s.StudentTeamID,
		StudentFirstName:      s.StudentFirstName,
		StudentLastName:       s.StudentLastName,
		StudentEmail:          s.StudentEmail,
		StudentEmployeeNumber: s.StudentEmployeeNumber,
	}
}

// ImportReportResponse is the aggregate result of a CSV import. The batch is
// never rolled back: succeeded rows stay enrolled next to the failed ones.
type ImportReportResponse struct {
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Errors    []service.RowError `json:"errors"`
}
