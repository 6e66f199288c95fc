package wizard

import (
	"errors"
	"testing"

	"github.com/Amankrah/green-means-go-sub001/internal/types"
)

func TestController_NextBlockedByValidation(t *testing.T) {
	ctrl := NewController()

	outcome, err := ctrl.Next(&types.Draft{})
	if err != nil {
		t.Fatalf("Next() = %v, want nil", err)
	}
	if outcome.Valid {
		t.Error("outcome valid on empty draft")
	}
	if ctrl.Current() != StepFarmProfile {
		t.Errorf("Current() = %v, want farm_profile after failed validation", ctrl.Current())
	}
}

func TestController_NextAdvancesThroughAllSteps(t *testing.T) {
	ctrl := NewController()
	draft := validDraft()

	want := []Step{
		StepCropDetails, StepManagement, StepPestManagement,
		StepEquipmentEnergy, StepReview,
	}
	for _, step := range want {
		outcome, err := ctrl.Next(draft)
		if err != nil {
			t.Fatalf("Next() = %v, want nil", err)
		}
		if !outcome.Valid {
			t.Fatalf("step %v invalid: %v", ctrl.Current(), outcome.Errors)
		}
		if ctrl.Current() != step {
			t.Fatalf("Current() = %v, want %v", ctrl.Current(), step)
		}
	}

	// Next never leaves review.
	outcome, err := ctrl.Next(draft)
	if err != nil {
		t.Fatalf("Next() at review = %v, want nil", err)
	}
	if !outcome.Valid {
		t.Fatalf("review validation failed: %v", outcome.Errors)
	}
	if ctrl.Current() != StepReview {
		t.Errorf("Current() = %v, want review", ctrl.Current())
	}
}

func TestController_PreviousSkipsValidation(t *testing.T) {
	ctrl := Restore(StepManagement, false)

	// The draft is empty, so forward validation would fail; backward
	// navigation must still succeed.
	step, err := ctrl.Previous()
	if err != nil {
		t.Fatalf("Previous() = %v, want nil", err)
	}
	if step != StepCropDetails {
		t.Errorf("Previous() = %v, want crop_details", step)
	}
}

func TestController_PreviousNoOpAtFirstStep(t *testing.T) {
	ctrl := NewController()

	step, err := ctrl.Previous()
	if err != nil {
		t.Fatalf("Previous() = %v, want nil", err)
	}
	if step != StepFarmProfile {
		t.Errorf("Previous() at first step = %v, want farm_profile", step)
	}
}

func TestController_SubmitOnlyFromReview(t *testing.T) {
	ctrl := Restore(StepManagement, false)

	_, err := ctrl.Submit(validDraft())
	if !errors.Is(err, ErrNotAtReview) {
		t.Errorf("Submit() from management = %v, want ErrNotAtReview", err)
	}
}

func TestController_SubmitValidatesFullDraft(t *testing.T) {
	ctrl := Restore(StepReview, false)

	outcome, err := ctrl.Submit(&types.Draft{FarmProfile: validFarmProfile()})
	if err != nil {
		t.Fatalf("Submit() = %v, want nil", err)
	}
	if outcome.Valid {
		t.Error("outcome valid despite incomplete draft")
	}
	if ctrl.IsComplete() {
		t.Error("controller completed after failed submit")
	}
}

func TestController_SubmitCompletes(t *testing.T) {
	ctrl := Restore(StepReview, false)

	outcome, err := ctrl.Submit(validDraft())
	if err != nil {
		t.Fatalf("Submit() = %v, want nil", err)
	}
	if !outcome.Valid {
		t.Fatalf("outcome invalid: %v", outcome.Errors)
	}
	if !ctrl.IsComplete() {
		t.Error("controller not complete after successful submit")
	}

	// Every mutation is rejected once complete.
	if _, err := ctrl.Next(validDraft()); !errors.Is(err, ErrComplete) {
		t.Errorf("Next() after completion = %v, want ErrComplete", err)
	}
	if _, err := ctrl.Previous(); !errors.Is(err, ErrComplete) {
		t.Errorf("Previous() after completion = %v, want ErrComplete", err)
	}
	if _, err := ctrl.Submit(validDraft()); !errors.Is(err, ErrComplete) {
		t.Errorf("Submit() after completion = %v, want ErrComplete", err)
	}
}

func TestStep_Order(t *testing.T) {
	if got := StepFarmProfile.Index(); got != 0 {
		t.Errorf("farm_profile index = %d, want 0", got)
	}
	if got := StepReview.Index(); got != len(StepOrder)-1 {
		t.Errorf("review index = %d, want %d", got, len(StepOrder)-1)
	}
	if Step("unknown").Index() != -1 {
		t.Error("unknown step index should be -1")
	}
	if Step("unknown").IsValid() {
		t.Error("unknown step reported valid")
	}
}
