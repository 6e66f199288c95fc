package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/Amankrah/green-means-go-sub001/internal/archive"
	"github.com/Amankrah/green-means-go-sub001/internal/report"
	"github.com/Amankrah/green-means-go-sub001/internal/results"
	"github.com/Amankrah/green-means-go-sub001/internal/store"
	"github.com/Amankrah/green-means-go-sub001/internal/submit"
	"github.com/Amankrah/green-means-go-sub001/internal/transform"
	"github.com/Amankrah/green-means-go-sub001/internal/types"
	"github.com/Amankrah/green-means-go-sub001/internal/validation"
	"github.com/Amankrah/green-means-go-sub001/internal/wizard"
)

// Submitter forwards a canonical request to the assessment engine,
// allowing at most one submission in flight per session.
type Submitter interface {
	Submit(ctx context.Context, sessionID string, req types.AssessmentRequest) (*types.AssessmentResult, error)
}

// Engine is the subset of the LCA engine client used to fetch results.
type Engine interface {
	GetAssessment(ctx context.Context, id string) (*types.AssessmentResult, error)
}

// Handler implements the API handlers
type Handler struct {
	store     store.Store
	submitter Submitter
	engine    Engine
	archive   archive.Uploader
	reports   report.Generator
	locks     *sessionLocks
	version   string
}

// NewHandler creates a new Handler.
func NewHandler(s store.Store, sub Submitter, e Engine, a archive.Uploader, g report.Generator, version string) *Handler {
	return &Handler{
		store:     s,
		submitter: sub,
		engine:    e,
		archive:   a,
		reports:   g,
		locks:     newSessionLocks(),
		version:   version,
	}
}

// sessionState is the wire representation of a wizard session.
type sessionState struct {
	ID         string      `json:"id"`
	Step       wizard.Step `json:"current_step"`
	StepIndex  int         `json:"step_index"`
	TotalSteps int         `json:"total_steps"`
	Complete   bool        `json:"complete"`
	Draft      types.Draft `json:"draft"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func stateFrom(sess *store.Session) sessionState {
	return sessionState{
		ID:         sess.ID,
		Step:       sess.Step,
		StepIndex:  sess.Step.Index(),
		TotalSteps: len(wizard.StepOrder),
		Complete:   sess.Complete,
		Draft:      sess.Draft,
		CreatedAt:  sess.CreatedAt,
		UpdatedAt:  sess.UpdatedAt,
	}
}

// sessionID extracts the {id} path parameter. Session ids are ULIDs;
// anything else cannot name a session, so the format check short-circuits
// the store lookup.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if err := validation.ValidateULID("id", id); err != nil {
		WriteProblem(w, r, http.StatusNotFound, "Session not found")
		return "", false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Health returns the health status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_, disabled := h.reports.(report.Disabled)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"version":         h.version,
		"reports_enabled": !disabled,
	})
}

// CreateSession handles POST /api/v1/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	sess := &store.Session{
		ID:        ulid.Make().String(),
		Step:      wizard.StepFarmProfile,
		Draft:     types.Draft{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.store.CreateSession(r.Context(), sess); err != nil {
		slog.Error("session create failed", "error", err)
		MapDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, stateFrom(sess))
}

// GetSession handles GET /api/v1/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	sess, err := h.store.GetSession(r.Context(), id)
	if err != nil {
		MapDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stateFrom(sess))
}

// UpdateDraft handles PUT /api/v1/sessions/{id}/draft. Sections present
// in the body replace the corresponding draft sections; absent sections
// keep their stored values.
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	unlock := h.locks.lock(id)
	defer unlock()

	sess, err := h.store.GetSession(r.Context(), id)
	if err != nil {
		MapDomainError(w, r, err)
		return
	}
	if sess.Complete {
		WriteProblem(w, r, http.StatusConflict, "Session already submitted")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&sess.Draft); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}

	if err := h.store.UpdateSession(r.Context(), sess); err != nil {
		slog.Error("draft update failed", "error", err, "session_id", id)
		MapDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stateFrom(sess))
}

// Next handles POST /api/v1/sessions/{id}/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	unlock := h.locks.lock(id)
	defer unlock()

	sess, err := h.store.GetSession(r.Context(), id)
	if err != nil {
		MapDomainError(w, r, err)
		return
	}

	ctrl := wizard.Restore(sess.Step, sess.Complete)
	outcome, err := ctrl.Next(&sess.Draft)
	if err != nil {
		WriteProblem(w, r, http.StatusConflict, "Session already submitted")
		return
	}
	if !outcome.Valid {
		WriteProblemWithErrors(w, r, "Current step contains invalid fields", outcome.Errors)
		return
	}

	sess.Step = ctrl.Current()
	if err := h.store.UpdateSession(r.Context(), sess); err != nil {
		slog.Error("session update failed", "error", err, "session_id", id)
		MapDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stateFrom(sess))
}

// Previous handles POST /api/v1/sessions/{id}/previous
func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	unlock := h.locks.lock(id)
	defer unlock()

	sess, err := h.store.GetSession(r.Context(), id)
	if err != nil {
		MapDomainError(w, r, err)
		return
	}

	ctrl := wizard.Restore(sess.Step, sess.Complete)
	step, err := ctrl.Previous()
	if err != nil {
		WriteProblem(w, r, http.StatusConflict, "Session already submitted")
		return
	}

	sess.Step = step
	if err := h.store.UpdateSession(r.Context(), sess); err != nil {
		slog.Error("session update failed", "error", err, "session_id", id)
		MapDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stateFrom(sess))
}

// submitResponse is the wire representation of an accepted submission.
type submitResponse struct {
	AssessmentID    string                     `json:"assessment_id"`
	DefaultsVersion string                     `json:"defaults_version"`
	AppliedDefaults []transform.AppliedDefault `json:"applied_defaults"`
	Results         *results.Normalized        `json:"results"`
}

// Submit handles POST /api/v1/sessions/{id}/submit. The session lock is
// held only while reading and validating; the engine round trip runs
// outside it so that concurrent submits for the same session fail fast
// on the in-flight guard instead of queueing.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	unlock := h.locks.lock(id)
	sess, err := h.store.GetSession(r.Context(), id)
	if err != nil {
		unlock()
		MapDomainError(w, r, err)
		return
	}

	ctrl := wizard.Restore(sess.Step, sess.Complete)
	outcome, err := ctrl.Submit(&sess.Draft)
	if err != nil {
		unlock()
		switch {
		case errors.Is(err, wizard.ErrComplete):
			WriteProblem(w, r, http.StatusConflict, "Session already submitted")
		case errors.Is(err, wizard.ErrNotAtReview):
			WriteProblem(w, r, http.StatusConflict, "Submission is only allowed from the review step")
		default:
			WriteProblem(w, r, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}
	if !outcome.Valid {
		unlock()
		WriteProblemWithErrors(w, r, "Draft contains invalid fields", outcome.Errors)
		return
	}

	transformed := transform.Transform(&sess.Draft)
	unlock()

	result, err := h.submitter.Submit(r.Context(), id, transformed.Request)
	if err != nil {
		var subErr *submit.SubmissionError
		switch {
		case errors.Is(err, submit.ErrInFlight):
			WriteProblem(w, r, http.StatusConflict, "A submission for this session is already in progress")
		case errors.As(err, &subErr):
			WriteProblem(w, r, http.StatusBadGateway, subErr.Message)
		default:
			WriteProblem(w, r, http.StatusBadGateway, "Assessment submission failed. Please try again.")
		}
		return
	}

	unlock = h.locks.lock(id)
	defer unlock()

	sess, err = h.store.GetSession(r.Context(), id)
	if err != nil {
		MapDomainError(w, r, err)
		return
	}
	sess.Complete = true
	if err := h.store.UpdateSession(r.Context(), sess); err != nil {
		slog.Error("session update failed", "error", err, "session_id", id)
		MapDomainError(w, r, err)
		return
	}

	submission := &store.Submission{
		AssessmentID:    result.ID,
		SessionID:       id,
		Request:         transformed.Request,
		AppliedDefaults: transformed.AppliedDefaults,
		DefaultsVersion: transformed.DefaultsVersion,
		SubmittedAt:     time.Now().UTC(),
	}
	if err := h.store.RecordSubmission(r.Context(), submission); err != nil {
		slog.Error("submission record failed", "error", err, "assessment_id", result.ID)
		MapDomainError(w, r, err)
		return
	}

	h.archiveSubmission(r.Context(), result.ID, transformed.Request, result)

	writeJSON(w, http.StatusOK, submitResponse{
		AssessmentID:    result.ID,
		DefaultsVersion: transformed.DefaultsVersion,
		AppliedDefaults: transformed.AppliedDefaults,
		Results:         results.Normalize(result),
	})
}

// archiveSubmission uploads the request/result pair. Archive failures
// are logged, never surfaced; the submission already succeeded.
func (h *Handler) archiveSubmission(ctx context.Context, assessmentID string, req types.AssessmentRequest, result *types.AssessmentResult) {
	payload, err := json.Marshal(map[string]any{
		"request": req,
		"result":  result,
	})
	if err != nil {
		slog.Error("archive payload encode failed", "error", err, "assessment_id", assessmentID)
		return
	}
	if err := h.archive.Upload(ctx, assessmentID, payload); err != nil {
		slog.Error("archive upload failed", "error", err, "assessment_id", assessmentID)
	}
}

// GetAssessment handles GET /api/v1/assessments/{id}
func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.engine.GetAssessment(r.Context(), id)
	if err != nil {
		MapDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, results.Normalize(result))
}

// GetReport handles GET /api/v1/assessments/{id}/report
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.engine.GetAssessment(r.Context(), id)
	if err != nil {
		MapDomainError(w, r, err)
		return
	}

	text, err := h.reports.Generate(r.Context(), results.Normalize(result))
	if err != nil {
		if errors.Is(err, report.ErrUnavailable) {
			WriteProblem(w, r, http.StatusServiceUnavailable, "Report generation is not configured")
			return
		}
		slog.Error("report generation failed", "error", err, "assessment_id", id)
		WriteProblem(w, r, http.StatusBadGateway, "Report generation failed. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"assessment_id": id,
		"report":        text,
	})
}
