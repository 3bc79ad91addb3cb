// model/students_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel represents the `students` table: a trainee, attached to a
// home team (and through it a client).
type StudentModel struct {
	StudentID     uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentTeamID uuid.UUID `json:"student_team_id" gorm:"column:student_team_id;type:uuid;not null"` // FK -> teams(team_id)

	StudentFirstName      string  `json:"student_first_name" gorm:"column:student_first_name;type:varchar(80);not null"`
	StudentLastName       string  `json:"student_last_name" gorm:"column:student_last_name;type:varchar(80);not null"`
	StudentEmail          string  `json:"student_email" gorm:"column:student_email;type:varchar(160);not null"`
	StudentPhone          *string `json:"student_phone,omitempty" gorm:"column:student_phone;type:varchar(40)"`
	StudentEmployeeNumber *string `json:"student_employee_number,omitempty" gorm:"column:student_employee_number;type:varchar(60)"`

	StudentStatus string `json:"student_status" gorm:"column:student_status;type:varchar(20);not null;default:'active'"`

	StudentCreatedAt time.Time  `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt *time.Time `json:"student_updated_at,omitempty" gorm:"column:student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
