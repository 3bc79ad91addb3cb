// model/vehicles_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel represents the `vehicles` table: the shared catalog the
// closure wizard's search affordance draws from.
type VehicleModel struct {
	VehicleID    uuid.UUID `json:"vehicle_id" gorm:"column:vehicle_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VehicleMake  string    `json:"vehicle_make" gorm:"column:vehicle_make;type:varchar(80);not null"`
	VehicleModel *string   `json:"vehicle_model,omitempty" gorm:"column:vehicle_model;type:varchar(80)"`
	VehicleYear  *int      `json:"vehicle_year,omitempty" gorm:"column:vehicle_year"`

	// lateral-acceleration rating, g
	VehicleLatAcc float64 `json:"vehicle_lat_acc" gorm:"column:vehicle_lat_acc;not null"`

	VehicleCreatedAt time.Time  `json:"vehicle_created_at" gorm:"column:vehicle_created_at;not null;autoCreateTime"`
	VehicleUpdatedAt *time.Time `json:"vehicle_updated_at,omitempty" gorm:"column:vehicle_updated_at"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}

// CourseVehicleModel represents the `course_vehicles` table: the numbered
// cars actually used on a course instance. A catalog-sourced row keeps its
// origin in CourseVehicleSourceID; free-text entries leave it nil.
type CourseVehicleModel struct {
	CourseVehicleID       uuid.UUID  `json:"course_vehicle_id" gorm:"column:course_vehicle_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CourseVehicleCourseID uuid.UUID  `json:"course_vehicle_course_id" gorm:"column:course_vehicle_course_id;type:uuid;not null"` // FK -> course_instances(course_id)
	CourseVehicleSourceID *uuid.UUID `json:"course_vehicle_source_id,omitempty" gorm:"column:course_vehicle_source_id;type:uuid"` // FK -> vehicles(vehicle_id)

	CourseVehicleCarNumber int     `json:"course_vehicle_car_number" gorm:"column:course_vehicle_car_number;not null"`
	CourseVehicleMake      string  `json:"course_vehicle_make" gorm:"column:course_vehicle_make;type:varchar(80);not null"`
	CourseVehicleModel     *string `json:"course_vehicle_model,omitempty" gorm:"column:course_vehicle_model;type:varchar(80)"`
	CourseVehicleYear      *int    `json:"course_vehicle_year,omitempty" gorm:"column:course_vehicle_year"`
	CourseVehicleLatAcc    float64 `json:"course_vehicle_lat_acc" gorm:"column:course_vehicle_lat_acc;not null"`

	CourseVehicleCreatedAt time.Time `json:"course_vehicle_created_at" gorm:"column:course_vehicle_created_at;not null;autoCreateTime"`
}

func (CourseVehicleModel) TableName() string {
	return "course_vehicles"
}
