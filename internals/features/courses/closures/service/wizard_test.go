package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func validVehicles() []Vehicle {
	return []Vehicle{
		{Car: 1, Make: "Volvo", LatAcc: 0.82},
		{Car: 2, Make: "BMW", LatAcc: 0.91},
	}
}

func TestWizard_LinearForwardAndBack(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepBasic, w.Step)

	w.Apply(Patch{Units: strptr(UnitsMPH)})
	require.NoError(t, w.Next())
	assert.Equal(t, StepVehicles, w.Step)

	require.NoError(t, w.Back())
	assert.Equal(t, StepBasic, w.Step)

	require.Error(t, w.Back(), "basic is the first step")
}

func TestWizard_NextValidatesStepBeingLeft(t *testing.T) {
	w := NewWizard()
	err := w.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "units")

	w.Apply(Patch{Units: strptr(UnitsKPH)})
	require.NoError(t, w.Next())

	// vehicles step refuses to advance while empty
	require.Error(t, w.Next())
	vs := validVehicles()
	w.Apply(Patch{Vehicles: &vs})
	require.NoError(t, w.Next())
	assert.Equal(t, StepExercises, w.Step)
}

func TestWizard_AccumulatesAcrossStepsWithoutLoss(t *testing.T) {
	w := NewWizard()
	w.Apply(Patch{Units: strptr(UnitsMPH), Country: strptr("Sweden"), Notes: strptr("wet track")})
	require.NoError(t, w.Next())

	vs := validVehicles()
	w.Apply(Patch{Vehicles: &vs})
	require.NoError(t, w.Next())

	layout := CourseLayout{
		Slalom:     LatAccParams{Chord: 30, MO: 2.5},
		LaneChange: LatAccParams{Chord: 25, MO: 1.8},
		FinalExercise: FinalExercise{
			IdealTimeSec:   95,
			ConePenaltySec: 2,
			DoorPenaltySec: 5,
			Slalom:         LatAccParams{Chord: 30, MO: 2.5},
			LaneChange:     LatAccParams{Chord: 25, MO: 1.8},
		},
	}
	w.Apply(Patch{Layout: &layout})
	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step)

	// everything entered in prior steps is present at review
	assert.Equal(t, UnitsMPH, w.Doc.CourseInfo.Units)
	assert.Equal(t, "Sweden", w.Doc.CourseInfo.Country)
	assert.Equal(t, "wet track", *w.Doc.Notes)
	assert.Len(t, w.Doc.Vehicles, 2)
	assert.Equal(t, 2.5, w.Doc.CourseLayout.Slalom.MO)
}

func TestWizard_ReviewBlocksSubmissionWithoutFile(t *testing.T) {
	w := wizardAtReview(t)
	err := w.Submit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file is required")
	assert.Equal(t, StepReview, w.Step)
}

func TestWizard_FileGateRelaxedWhenEditing(t *testing.T) {
	w := wizardAtReview(t)
	w.IsEditing = true
	require.NoError(t, w.Submit())
	assert.Equal(t, StepCompleted, w.Step)
}

func TestWizard_SubmitWithFile(t *testing.T) {
	w := wizardAtReview(t)
	w.Apply(Patch{FileURL: strptr("https://bucket.example.com/closures/track.zip")})
	require.NoError(t, w.Submit())
	assert.Equal(t, StepCompleted, w.Step)
}

func TestWizard_SubmitOnlyFromReview(t *testing.T) {
	w := NewWizard()
	require.Error(t, w.Submit())
}

func TestWizard_ResumeEntersAtReviewEditing(t *testing.T) {
	w := Resume(Document{CourseInfo: CourseInfo{Units: UnitsKPH}}, nil)
	assert.Equal(t, StepReview, w.Step)
	assert.True(t, w.IsEditing)
	require.NoError(t, w.Submit())
}

func TestWizard_RemoveVehicleRenumbersSequentially(t *testing.T) {
	w := NewWizard()
	vs := []Vehicle{
		{Car: 1, Make: "Volvo", LatAcc: 0.8},
		{Car: 2, Make: "BMW", LatAcc: 0.9},
		{Car: 3, Make: "Audi", LatAcc: 0.85},
	}
	w.Apply(Patch{Vehicles: &vs})

	w.RemoveVehicle(2)
	require.Len(t, w.Doc.Vehicles, 2)
	assert.Equal(t, 1, w.Doc.Vehicles[0].Car)
	assert.Equal(t, "Volvo", w.Doc.Vehicles[0].Make)
	assert.Equal(t, 2, w.Doc.Vehicles[1].Car)
	assert.Equal(t, "Audi", w.Doc.Vehicles[1].Make)
}

func TestWizard_ApplyVehiclesRenumbers(t *testing.T) {
	w := NewWizard()
	vs := []Vehicle{
		{Car: 7, Make: "Volvo", LatAcc: 0.8},
		{Car: 9, Make: "BMW", LatAcc: 0.9},
	}
	w.Apply(Patch{Vehicles: &vs})
	assert.Equal(t, 1, w.Doc.Vehicles[0].Car)
	assert.Equal(t, 2, w.Doc.Vehicles[1].Car)
}

func TestValidateAdditionalExercise(t *testing.T) {
	lat := &LatAccParams{Chord: 20, MO: 1.5}
	tm := &TimeParams{IdealTimeSec: 40}
	pen := 3.0

	cases := []struct {
		name string
		ex   AdditionalExercise
		ok   bool
	}{
		{"unmeasured", AdditionalExercise{ID: "x", Name: "Braking"}, true},
		{"unmeasured with params", AdditionalExercise{ID: "x", Name: "Braking", LatAcc: lat}, false},
		{"latacc", AdditionalExercise{ID: "x", Name: "Skidpad", IsMeasured: true, MeasurementType: MeasureLatAcc, LatAcc: lat}, true},
		{"latacc missing params", AdditionalExercise{ID: "x", Name: "Skidpad", IsMeasured: true, MeasurementType: MeasureLatAcc}, false},
		{"latacc with both blocks", AdditionalExercise{ID: "x", Name: "Skidpad", IsMeasured: true, MeasurementType: MeasureLatAcc, LatAcc: lat, Time: tm}, false},
		{"time with duration penalty", AdditionalExercise{ID: "x", Name: "Gymkhana", IsMeasured: true, MeasurementType: MeasureTime, Time: &TimeParams{IdealTimeSec: 40, PenaltySec: &pen}}, true},
		{"time with annulled run", AdditionalExercise{ID: "x", Name: "Gymkhana", IsMeasured: true, MeasurementType: MeasureTime, Time: &TimeParams{IdealTimeSec: 40, PenaltyAnnulsRun: true}}, true},
		{"time with both penalties", AdditionalExercise{ID: "x", Name: "Gymkhana", IsMeasured: true, MeasurementType: MeasureTime, Time: &TimeParams{IdealTimeSec: 40, PenaltySec: &pen, PenaltyAnnulsRun: true}}, false},
		{"unknown measurement", AdditionalExercise{ID: "x", Name: "Odd", IsMeasured: true, MeasurementType: "distance"}, false},
		{"nameless", AdditionalExercise{ID: "x"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAdditionalExercise(&tc.ex)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func wizardAtReview(t *testing.T) *Wizard {
	t.Helper()
	w := NewWizard()
	w.Apply(Patch{Units: strptr(UnitsMPH)})
	require.NoError(t, w.Next())
	vs := validVehicles()
	w.Apply(Patch{Vehicles: &vs})
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	return w
}
