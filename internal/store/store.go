package store

import (
	"context"
	"time"

	"github.com/Amankrah/green-means-go-sub001/internal/transform"
	"github.com/Amankrah/green-means-go-sub001/internal/types"
	"github.com/Amankrah/green-means-go-sub001/internal/wizard"
)

// Session is the persisted state of one wizard session: its position in
// the step sequence and the draft accumulated so far.
type Session struct {
	ID        string      `json:"id"`
	Step      wizard.Step `json:"step"`
	Complete  bool        `json:"complete"`
	Draft     types.Draft `json:"draft"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Submission records one accepted engine submission: the exact canonical
// request that was sent and the defaults that were substituted into it, so
// the payload stays auditable after the fact.
type Submission struct {
	AssessmentID    string                     `json:"assessment_id"`
	SessionID       string                     `json:"session_id"`
	Request         types.AssessmentRequest    `json:"request"`
	AppliedDefaults []transform.AppliedDefault `json:"applied_defaults"`
	DefaultsVersion string                     `json:"defaults_version"`
	SubmittedAt     time.Time                  `json:"submitted_at"`
}

// Store defines the persistence contract for wizard sessions and
// submission records.
type Store interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	UpdateSession(ctx context.Context, session *Session) error
	ListSessions(ctx context.Context, limit int) ([]Session, error)
	RecordSubmission(ctx context.Context, submission *Submission) error
	GetSubmission(ctx context.Context, assessmentID string) (*Submission, error)
	Close() error
}
