package wizard

import (
	"errors"

	"github.com/Amankrah/green-means-go-sub001/internal/types"
)

var (
	// ErrNotAtReview is returned when Submit is invoked from any step other
	// than the terminal review step.
	ErrNotAtReview = errors.New("submit is only allowed from the review step")
	// ErrComplete is returned when a navigation action is attempted after
	// the wizard has reached its terminal state.
	ErrComplete = errors.New("wizard is already complete")
)

// Controller is the wizard state machine. States are the six steps plus a
// virtual Complete marker reached only through a successful Submit. One
// controller belongs to exactly one session and is not safe for concurrent
// use; the session layer serializes access.
type Controller struct {
	current  Step
	complete bool
}

// NewController returns a controller positioned at the first step.
func NewController() *Controller {
	return &Controller{current: StepOrder[0]}
}

// Restore rebuilds a controller at a persisted position. An unknown step
// falls back to the first step.
func Restore(step Step, complete bool) *Controller {
	if !step.IsValid() {
		step = StepOrder[0]
	}
	return &Controller{current: step, complete: complete}
}

// Current returns the active step.
func (c *Controller) Current() Step {
	return c.current
}

// IsComplete reports whether the wizard has reached its terminal state.
func (c *Controller) IsComplete() bool {
	return c.complete
}

// Next validates the active step and advances to the following step when
// validation passes. On failure the controller stays put and the outcome
// carries the field errors. Next from the review step validates but never
// advances; only Submit leaves review.
func (c *Controller) Next(draft *types.Draft) (Outcome, error) {
	if c.complete {
		return Outcome{}, ErrComplete
	}

	outcome := ValidateStep(c.current, draft)
	if !outcome.Valid {
		return outcome, nil
	}
	if c.current != StepReview {
		c.current = c.current.next()
	}
	return outcome, nil
}

// Previous steps back unconditionally, with no validation. At the first
// step it is a no-op.
func (c *Controller) Previous() (Step, error) {
	if c.complete {
		return c.current, ErrComplete
	}
	c.current = c.current.previous()
	return c.current, nil
}

// Submit runs full validation across every step and, when it passes,
// transitions the wizard to Complete. It is only legal from the review
// step.
func (c *Controller) Submit(draft *types.Draft) (Outcome, error) {
	if c.complete {
		return Outcome{}, ErrComplete
	}
	if c.current != StepReview {
		return Outcome{}, ErrNotAtReview
	}

	outcome := ValidateStep(StepReview, draft)
	if outcome.Valid {
		c.complete = true
	}
	return outcome, nil
}
