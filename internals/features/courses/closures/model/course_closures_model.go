// model/course_closures_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseClosureModel represents the `course_closures` table: one row per
// course instance (by convention, not constraint) holding the wizard output.
// The full document lives in closure_data as JSONB; units, country and the
// file URL are lifted into columns for listing without unpacking the blob.
type CourseClosureModel struct {
	ClosureID       uuid.UUID `json:"closure_id" gorm:"column:closure_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClosureCourseID uuid.UUID `json:"closure_course_id" gorm:"column:closure_course_id;type:uuid;not null"` // FK -> course_instances(course_id)

	ClosureUnits   string  `json:"closure_units" gorm:"column:closure_units;type:varchar(8);not null"`
	ClosureCountry string  `json:"closure_country" gorm:"column:closure_country;type:varchar(80);not null"`
	ClosureFileURL *string `json:"closure_file_url,omitempty" gorm:"column:closure_file_url;type:text"`

	ClosureData   datatypes.JSON `json:"closure_data" gorm:"column:closure_data;type:jsonb;not null"`
	ClosureStatus string         `json:"closure_status" gorm:"column:closure_status;type:varchar(20);not null;default:'draft'"`

	ClosureClosedBy uuid.UUID `json:"closure_closed_by" gorm:"column:closure_closed_by;type:uuid;not null"`

	ClosureCreatedAt time.Time  `json:"closure_created_at" gorm:"column:closure_created_at;not null;autoCreateTime"`
	ClosureUpdatedAt *time.Time `json:"closure_updated_at,omitempty" gorm:"column:closure_updated_at"`
}

func (CourseClosureModel) TableName() string {
	return "course_closures"
}
