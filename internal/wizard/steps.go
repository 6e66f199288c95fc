// Package wizard implements the assessment wizard: the fixed step sequence,
// step-scoped draft validation, and the controller state machine that gates
// navigation on validation outcomes.
package wizard

// Step identifies one stage of the wizard. Steps have a strict linear order
// and each owns a disjoint subset of draft fields; the terminal review step
// owns nothing but re-validates everything.
type Step string

const (
	StepFarmProfile     Step = "farm_profile"
	StepCropDetails     Step = "crop_details"
	StepManagement      Step = "management_practices"
	StepPestManagement  Step = "pest_management"
	StepEquipmentEnergy Step = "equipment_energy"
	StepReview          Step = "review"
)

// StepOrder is the fixed linear sequence of wizard steps.
var StepOrder = []Step{
	StepFarmProfile,
	StepCropDetails,
	StepManagement,
	StepPestManagement,
	StepEquipmentEnergy,
	StepReview,
}

// String returns the step identifier.
func (s Step) String() string {
	return string(s)
}

// IsValid reports whether the step is one of the six fixed identifiers.
func (s Step) IsValid() bool {
	for _, step := range StepOrder {
		if s == step {
			return true
		}
	}
	return false
}

// Index returns the position of the step in the fixed order, or -1 for an
// unknown step.
func (s Step) Index() int {
	for i, step := range StepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// next returns the step after s, or s itself at the terminal step.
func (s Step) next() Step {
	i := s.Index()
	if i < 0 || i >= len(StepOrder)-1 {
		return s
	}
	return StepOrder[i+1]
}

// previous returns the step before s, or s itself at the first step.
func (s Step) previous() Step {
	i := s.Index()
	if i <= 0 {
		return s
	}
	return StepOrder[i-1]
}
