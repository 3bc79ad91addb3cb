// dto/vehicles_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"apexdrive_backend/internals/features/courses/vehicles/model"
)

/* ========== CATALOG REQUEST DTOs ========== */

type CreateVehicleRequest struct {
	VehicleMake   string  `json:"vehicle_make" form:"vehicle_make" validate:"required,min=1,max=80"`
	VehicleModel  *string `json:"vehicle_model,omitempty" form:"vehicle_model" validate:"omitempty,max=80"`
	VehicleYear   *int    `json:"vehicle_year,omitempty" form:"vehicle_year" validate:"omitempty,min=1950,max=2100"`
	VehicleLatAcc float64 `json:"vehicle_lat_acc" form:"vehicle_lat_acc" validate:"required,gt=0"`
}

func (r *CreateVehicleRequest) ToModel() *model.VehicleModel {
	return &model.VehicleModel{
		VehicleMake:   r.VehicleMake,
		VehicleModel:  r.VehicleModel,
		VehicleYear:   r.VehicleYear,
		VehicleLatAcc: r.VehicleLatAcc,
	}
}

type UpdateVehicleRequest struct {
	VehicleMake   *string  `json:"vehicle_make,omitempty" form:"vehicle_make" validate:"omitempty,min=1,max=80"`
	VehicleModel  *string  `json:"vehicle_model,omitempty" form:"vehicle_model" validate:"omitempty,max=80"`
	VehicleYear   *int     `json:"vehicle_year,omitempty" form:"vehicle_year" validate:"omitempty,min=1950,max=2100"`
	VehicleLatAcc *float64 `json:"vehicle_lat_acc,omitempty" form:"vehicle_lat_acc" validate:"omitempty,gt=0"`
}

func (r *UpdateVehicleRequest) ApplyToModel(m *model.VehicleModel) {
	if r.VehicleMake != nil {
		m.VehicleMake = *r.VehicleMake
	}
	if r.VehicleModel != nil {
		m.VehicleModel = r.VehicleModel
	}
	if r.VehicleYear != nil {
		m.VehicleYear = r.VehicleYear
	}
	if r.VehicleLatAcc != nil {
		m.VehicleLatAcc = *r.VehicleLatAcc
	}
}

/* ========== COURSE VEHICLE REQUEST DTOs ========== */

// CourseVehicleRequest is one numbered car in the replace-save payload. A
// non-nil SourceID marks it catalog-sourced, which puts year and latAcc
// under the sensitive-field lock.
type CourseVehicleRequest struct {
	SourceID  *uuid.UUID `json:"source_id,omitempty" form:"source_id"`
	CarNumber int        `json:"car_number" form:"car_number" validate:"required,min=1"`
	Make      string     `json:"make" form:"make" validate:"required,min=1,max=80"`
	Model     *string    `json:"model,omitempty" form:"model" validate:"omitempty,max=80"`
	Year      *int       `json:"year,omitempty" form:"year" validate:"omitempty,min=1950,max=2100"`
	LatAcc    float64    `json:"lat_acc" form:"lat_acc" validate:"required,gt=0"`
}

type SaveCourseVehiclesRequest struct {
	Vehicles []CourseVehicleRequest `json:"vehicles" form:"vehicles" validate:"required,dive"`
}

/* ========== RESPONSE DTOs ========== */

type VehicleResponse struct {
	VehicleID     uuid.UUID `json:"vehicle_id"`
	VehicleMake   string    `json:"vehicle_make"`
	VehicleModel  *string   `json:"vehicle_model,omitempty"`
	VehicleYear   *int      `json:"vehicle_year,omitempty"`
	VehicleLatAcc float64   `json:"vehicle_lat_acc"`

	VehicleCreatedAt time.Time `json:"vehicle_created_at"`
}

func NewVehicleResponse(m *model.VehicleModel) VehicleResponse {
	return VehicleResponse{
		VehicleID:        m.VehicleID,
		VehicleMake:      m.VehicleMake,
		VehicleModel:     m.VehicleModel,
		VehicleYear:      m.VehicleYear,
		VehicleLatAcc:    m.VehicleLatAcc,
		VehicleCreatedAt: m.VehicleCreatedAt,
	}
}

type CourseVehicleResponse struct {
	CourseVehicleID uuid.UUID  `json:"course_vehicle_id"`
	CourseID        uuid.UUID  `json:"course_id"`
	SourceID        *uuid.UUID `json:"source_id,omitempty"`
	CarNumber       int        `json:"car_number"`
	Make            string     `json:"make"`
	Model           *string    `json:"model,omitempty"`
	Year            *int       `json:"year,omitempty"`
	LatAcc          float64    `json:"lat_acc"`
}

func NewCourseVehicleResponse(m *model.CourseVehicleModel) CourseVehicleResponse {
	return CourseVehicleResponse{
		CourseVehicleID: m.CourseVehicleID,
		CourseID:        m.CourseVehicleCourseID,
		SourceID:        m.CourseVehicleSourceID,
		CarNumber:       m.CourseVehicleCarNumber,
		Make:            m.CourseVehicleMake,
		Model:           m.CourseVehicleModel,
		Year:            m.CourseVehicleYear,
		LatAcc:          m.CourseVehicleLatAcc,
	}
}

func NewCourseVehicleResponses(rows []model.CourseVehicleModel) []CourseVehicleResponse {
	out := make([]CourseVehicleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewCourseVehicleResponse(&rows[i]))
	}
	return out
}
