// service/wizard.go
package service

import "fmt"

// Wizard steps, in order. Navigation is strictly linear, by index.
type Step string

const (
	StepBasic     Step = "basic"
	StepVehicles  Step = "vehicles"
	StepExercises Step = "exercises"
	StepReview    Step = "review"
	StepCompleted Step = "completed"
)

var Steps = []Step{StepBasic, StepVehicles, StepExercises, StepReview, StepCompleted}

// StepIndex returns the step's position, or -1 for an unknown step.
func StepIndex(s Step) int {
	for i, v := range Steps {
		if v == s {
			return i
		}
	}
	return -1
}

// Patch is a partial update to the wizard state; nil fields are left alone.
// Setting Vehicles renumbers the cars sequentially.
type Patch struct {
	Units    *string
	Country  *string
	Notes    *string
	FileURL  *string
	Vehicles *[]Vehicle
	Layout   *CourseLayout
	Extras   *[]AdditionalExercise
}

// Wizard accumulates the closure document across the step sequence.
type Wizard struct {
	Step      Step
	Doc       Document
	FileURL   *string
	IsEditing bool
}

// NewWizard starts at basic. Editing an existing closure re-enters at review
// with the stored document loaded.
func NewWizard() *Wizard {
	return &Wizard{Step: StepBasic}
}

// Resume rebuilds a wizard over an existing closure, entering at review with
// the edit flag set (the file gate is relaxed for edits).
func Resume(doc Document, fileURL *string) *Wizard {
	return &Wizard{Step: StepReview, Doc: doc, FileURL: fileURL, IsEditing: true}
}

// Apply merges a partial patch into the accumulated document. Patches are
// accepted at any step; the step gates live in Next.
func (w *Wizard) Apply(p Patch) {
	if p.Units != nil {
		w.Doc.CourseInfo.Units = *p.Units
	}
	if p.Country != nil {
		w.Doc.CourseInfo.Country = *p.Country
	}
	if p.Notes != nil {
		w.Doc.Notes = p.Notes
	}
	if p.FileURL != nil {
		w.FileURL = p.FileURL
	}
	if p.Vehicles != nil {
		w.Doc.Vehicles = *p.Vehicles
		RenumberCars(w.Doc.Vehicles)
	}
	if p.Layout != nil {
		w.Doc.CourseLayout = *p.Layout
	}
	if p.Extras != nil {
		w.Doc.AdditionalExercises = *p.Extras
	}
}

// RemoveVehicle drops the car with the given number and renumbers the rest.
func (w *Wizard) RemoveVehicle(carNumber int) {
	kept := w.Doc.Vehicles[:0]
	for _, v := range w.Doc.Vehicles {
		if v.Car != carNumber {
			kept = append(kept, v)
		}
	}
	w.Doc.Vehicles = kept
	RenumberCars(w.Doc.Vehicles)
}

// Next advances one step, validating what the step being left must have
// produced. Leaving review is the submission gate.
func (w *Wizard) Next() error {
	i := StepIndex(w.Step)
	if i < 0 || i == len(Steps)-1 {
		return fmt.Errorf("cannot advance from step %q", w.Step)
	}
	if err := w.checkLeave(w.Step); err != nil {
		return err
	}
	w.Step = Steps[i+1]
	return nil
}

// Back rewinds one step. Going back never validates.
func (w *Wizard) Back() error {
	i := StepIndex(w.Step)
	if i <= 0 {
		return fmt.Errorf("cannot go back from step %q", w.Step)
	}
	w.Step = Steps[i-1]
	return nil
}

func (w *Wizard) checkLeave(s Step) error {
	switch s {
	case StepBasic:
		if !ValidUnits(w.Doc.CourseInfo.Units) {
			return fmt.Errorf("units must be %s or %s", UnitsMPH, UnitsKPH)
		}
	case StepVehicles:
		if len(w.Doc.Vehicles) == 0 {
			return fmt.Errorf("at least one vehicle is required")
		}
		for _, v := range w.Doc.Vehicles {
			if v.Make == "" {
				return fmt.Errorf("car %d: make is required", v.Car)
			}
			if v.LatAcc <= 0 {
				return fmt.Errorf("car %d: lateral acceleration must be positive", v.Car)
			}
		}
	case StepExercises:
		for i := range w.Doc.AdditionalExercises {
			if err := ValidateAdditionalExercise(&w.Doc.AdditionalExercises[i]); err != nil {
				return err
			}
		}
	case StepReview:
		if w.FileURL == nil && !w.IsEditing {
			return fmt.Errorf("a course file is required before submission")
		}
	}
	return nil
}

// Submit runs the review gate and lands on completed.
func (w *Wizard) Submit() error {
	if w.Step != StepReview {
		return fmt.Errorf("submission is only allowed at the review step, not %q", w.Step)
	}
	return w.Next()
}
