// service/document.go
package service

import (
	"fmt"

	"github.com/google/uuid"
)

// Closure measurement units.
const (
	UnitsMPH = "MPH"
	UnitsKPH = "KPH"
)

// Measurement types for additional exercises.
const (
	MeasureLatAcc = "latacc"
	MeasureTime   = "time"
)

// The closure document is the single canonical representation of the wizard
// output: snake_case throughout, serialized exactly once at the storage
// boundary.

type CourseInfo struct {
	Units   string `json:"units"`
	Country string `json:"country"`
	Program string `json:"program"`
	Date    string `json:"date"`
	Client  string `json:"client"`
}

type Vehicle struct {
	Car    int     `json:"car"`
	Make   string  `json:"make"`
	Model  *string `json:"model,omitempty"`
	Year   *int    `json:"year,omitempty"`
	LatAcc float64 `json:"lat_acc"`
}

// LatAccParams describe a slalom or lane-change layout: chord length and
// middle ordinate.
type LatAccParams struct {
	Chord float64 `json:"chord"`
	MO    float64 `json:"mo"`
}

type FinalExercise struct {
	IdealTimeSec   float64      `json:"ideal_time_sec"`
	ConePenaltySec float64      `json:"cone_penalty_sec"`
	DoorPenaltySec float64      `json:"door_penalty_sec"`
	Slalom         LatAccParams `json:"slalom"`
	LaneChange     LatAccParams `json:"lane_change"`
	ReverseTimeSec *float64     `json:"reverse_time_sec,omitempty"`
}

type CourseLayout struct {
	Slalom        LatAccParams  `json:"slalom"`
	LaneChange    LatAccParams  `json:"lane_change"`
	FinalExercise FinalExercise `json:"final_exercise"`
}

// TimeParams describe a time-measured additional exercise. The penalty is
// either a fixed duration or an annulled run, never both.
type TimeParams struct {
	IdealTimeSec     float64  `json:"ideal_time_sec"`
	PenaltySec       *float64 `json:"penalty_sec,omitempty"`
	PenaltyAnnulsRun bool     `json:"penalty_annuls_run"`
}

type AdditionalExercise struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	IsMeasured      bool          `json:"is_measured"`
	MeasurementType string        `json:"measurement_type,omitempty"`
	LatAcc          *LatAccParams `json:"latacc_parameters,omitempty"`
	Time            *TimeParams   `json:"time_parameters,omitempty"`
}

type Student struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Document struct {
	CourseInfo          CourseInfo           `json:"course_info"`
	Vehicles            []Vehicle            `json:"vehicles"`
	CourseLayout        CourseLayout         `json:"course_layout"`
	AdditionalExercises []AdditionalExercise `json:"additional_exercises,omitempty"`
	Notes               *string              `json:"notes,omitempty"`
	Students            []Student            `json:"students,omitempty"`
}

// ValidUnits reports whether u is a supported unit system.
func ValidUnits(u string) bool {
	return u == UnitsMPH || u == UnitsKPH
}

// ValidateAdditionalExercise enforces the measurement rules: an unmeasured
// exercise carries no parameters; a measured one carries exactly one of the
// latacc or time parameter blocks, matching its measurement type.
func ValidateAdditionalExercise(ex *AdditionalExercise) error {
	if ex.Name == "" {
		return fmt.Errorf("exercise name is required")
	}
	if !ex.IsMeasured {
		if ex.MeasurementType != "" || ex.LatAcc != nil || ex.Time != nil {
			return fmt.Errorf("exercise %q: unmeasured exercises cannot carry measurement data", ex.Name)
		}
		return nil
	}
	switch ex.MeasurementType {
	case MeasureLatAcc:
		if ex.LatAcc == nil || ex.Time != nil {
			return fmt.Errorf("exercise %q: latacc measurement requires exactly the latacc parameters", ex.Name)
		}
	case MeasureTime:
		if ex.Time == nil || ex.LatAcc != nil {
			return fmt.Errorf("exercise %q: time measurement requires exactly the time parameters", ex.Name)
		}
		if ex.Time.PenaltySec != nil && ex.Time.PenaltyAnnulsRun {
			return fmt.Errorf("exercise %q: penalty is either a duration or an annulled run, not both", ex.Name)
		}
	default:
		return fmt.Errorf("exercise %q: unknown measurement type %q", ex.Name, ex.MeasurementType)
	}
	return nil
}

// RenumberCars reassigns sequential car numbers from 1, preserving order.
// Called whenever a vehicle is removed so the numbering never gaps.
func RenumberCars(vehicles []Vehicle) {
	for i := range vehicles {
		vehicles[i].Car = i + 1
	}
}
