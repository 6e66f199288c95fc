// Package submit coordinates sending canonical requests to the LCA engine.
// It enforces one in-flight submission per session and converts engine
// failures into messages a farmer can act on. No automatic retry: a failed
// submission is reported and the caller resubmits explicitly.
package submit

import (
	"context"
	"errors"
	"sync"

	"github.com/Amankrah/green-means-go-sub001/internal/lca"
	"github.com/Amankrah/green-means-go-sub001/internal/types"
)

// ErrInFlight is returned when a session already has a submission pending.
var ErrInFlight = errors.New("a submission is already in flight for this session")

// genericMessage covers failures with no classifiable engine payload
// (network errors, malformed responses).
const genericMessage = "Assessment submission failed. Please try again."

// Engine is the submission half of the LCA client.
type Engine interface {
	SubmitAssessment(ctx context.Context, req types.AssessmentRequest) (*types.AssessmentResult, error)
}

// SubmissionError is a user-presentable submission failure. The session
// stays resubmittable after one of these.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// Orchestrator guards submissions with a per-session in-flight flag.
type Orchestrator struct {
	engine Engine

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewOrchestrator creates an orchestrator backed by the given engine.
func NewOrchestrator(engine Engine) *Orchestrator {
	return &Orchestrator{
		engine:   engine,
		inFlight: make(map[string]struct{}),
	}
}

// Submit sends the canonical request for the session. While one submission
// is pending for the session, further attempts fail with ErrInFlight. On
// engine failure the error is a *SubmissionError carrying the joined
// engine messages.
func (o *Orchestrator) Submit(ctx context.Context, sessionID string, req types.AssessmentRequest) (*types.AssessmentResult, error) {
	if err := o.acquire(sessionID); err != nil {
		return nil, err
	}
	defer o.release(sessionID)

	result, err := o.engine.SubmitAssessment(ctx, req)
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}

// Pending reports whether the session currently has a submission in
// flight.
func (o *Orchestrator) Pending(sessionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, pending := o.inFlight[sessionID]
	return pending
}

func (o *Orchestrator) acquire(sessionID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, pending := o.inFlight[sessionID]; pending {
		return ErrInFlight
	}
	o.inFlight[sessionID] = struct{}{}
	return nil
}

func (o *Orchestrator) release(sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inFlight, sessionID)
}

// classify maps any submission failure to a user-presentable error.
// Structured engine payloads keep their message; everything else gets the
// generic fallback.
func classify(err error) error {
	var engineErr *lca.EngineError
	if errors.As(err, &engineErr) {
		return &SubmissionError{Message: engineErr.Message}
	}
	return &SubmissionError{Message: genericMessage}
}
