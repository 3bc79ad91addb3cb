// dto/course_closures_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/courses/closures/model"
	"apexdrive_backend/internals/features/courses/closures/service"
)

/* ========== REQUEST DTOs ========== */

type ClosureVehicleRequest struct {
	SourceID *uuid.UUID `json:"source_id,omitempty" form:"source_id"`
	Car      int        `json:"car" form:"car" validate:"required,min=1"`
	Make     string     `json:"make" form:"make" validate:"required,min=1,max=80"`
	Model    *string    `json:"model,omitempty" form:"model" validate:"omitempty,max=80"`
	Year     *int       `json:"year,omitempty" form:"year" validate:"omitempty,min=1950,max=2100"`
	LatAcc   float64    `json:"lat_acc" form:"lat_acc" validate:"required,gt=0"`
}

// SubmitClosureRequest carries the full wizard output, grouped by the step
// that produced each section.
type SubmitClosureRequest struct {
	Units   string  `json:"units" validate:"required"`
	Country string  `json:"country" validate:"required,min=1,max=80"`
	Notes   *string `json:"notes,omitempty"`
	FileURL *string `json:"file_url,omitempty"`

	Vehicles []ClosureVehicleRequest `json:"vehicles" validate:"required,dive"`

	CourseLayout        service.CourseLayout         `json:"course_layout"`
	AdditionalExercises []service.AdditionalExercise `json:"additional_exercises,omitempty"`

	IsEditing bool `json:"is_editing"`
}

func (r *SubmitClosureRequest) DocumentVehicles() []service.Vehicle {
	out := make([]service.Vehicle, 0, len(r.Vehicles))
	for _, v := range r.Vehicles {
		out = append(out, service.Vehicle{
			Car:    v.Car,
			Make:   v.Make,
			Model:  v.Model,
			Year:   v.Year,
			LatAcc: v.LatAcc,
		})
	}
	return out
}

/* ========== RESPONSE DTOs ========== */

// ClosureStateResponse is what the wizard loads with: the current step plus
// the stored closure when one exists.
type ClosureStateResponse struct {
	Step    service.Step     `json:"step"`
	Closure *ClosureResponse `json:"closure,omitempty"`
}

type ClosureResponse struct {
	ClosureID       uuid.UUID `json:"closure_id"`
	ClosureCourseID uuid.UUID `json:"closure_course_id"`
	ClosureUnits    string    `json:"closure_units"`
	ClosureCountry  string    `json:"closure_country"`
	ClosureFileURL  *string   `json:"closure_file_url,omitempty"`
	ClosureStatus   string    `json:"closure_status"`
	ClosureClosedBy uuid.UUID `json:"closure_closed_by"`

	ClosureData any `json:"closure_data"`

	ClosureCreatedAt time.Time  `json:"closure_created_at"`
	ClosureUpdatedAt *time.Time `json:"closure_updated_at,omitempty"`
}

func NewClosureResponse(m *model.CourseClosureModel, doc any) *ClosureResponse {
	return &ClosureResponse{
		ClosureID:        m.ClosureID,
		ClosureCourseID:  m.ClosureCourseID,
		ClosureUnits:     m.ClosureUnits,
		ClosureCountry:   m.ClosureCountry,
		ClosureFileURL:   m.ClosureFileURL,
		ClosureStatus:    m.ClosureStatus,
		ClosureClosedBy:  m.ClosureClosedBy,
		ClosureData:      doc,
		ClosureCreatedAt: m.ClosureCreatedAt,
		ClosureUpdatedAt: m.ClosureUpdatedAt,
	}
}

type UploadFileResponse struct {
	FileURL string `json:"file_url"`
}
