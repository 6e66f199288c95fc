package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Amankrah/green-means-go-sub001/internal/transform"
	"github.com/Amankrah/green-means-go-sub001/internal/wizard"
	_ "modernc.org/sqlite"
)

// Compile-time interface check
var _ Store = (*SQLiteStore)(nil)

// timeFormat is RFC 3339 with a fixed nine-digit fraction. RFC3339Nano
// trims trailing zeros, which breaks lexicographic ordering of the TEXT
// timestamp columns for sub-second ties.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore is the SQLite-backed session database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the session database at dbPath, applies
// pragmas, and runs pending migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := enablePragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable pragmas: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// enablePragmas sets SQLite pragmas for performance and safety.
func enablePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSession inserts a new wizard session.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *Session) error {
	draft, err := json.Marshal(session.Draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, current_step, complete, draft, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.Step.String(),
		boolToInt(session.Complete),
		string(draft),
		session.CreatedAt.UTC().Format(timeFormat),
		session.UpdatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateSession
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSession loads a session by id.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, current_step, complete, draft, created_at, updated_at
		FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

// UpdateSession persists the session's current step, completion flag, and
// draft.
func (s *SQLiteStore) UpdateSession(ctx context.Context, session *Session) error {
	draft, err := json.Marshal(session.Draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE sessions SET current_step = ?, complete = ?, draft = ?, updated_at = ?
		WHERE id = ?`,
		session.Step.String(),
		boolToInt(session.Complete),
		string(draft),
		time.Now().UTC().Format(timeFormat),
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ListSessions returns the most recently updated sessions, newest first.
func (s *SQLiteStore) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, current_step, complete, draft, created_at, updated_at
		FROM sessions ORDER BY updated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	return sessions, rows.Err()
}

// RecordSubmission inserts a submission audit record.
func (s *SQLiteStore) RecordSubmission(ctx context.Context, submission *Submission) error {
	request, err := json.Marshal(submission.Request)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	defaults, err := json.Marshal(submission.AppliedDefaults)
	if err != nil {
		return fmt.Errorf("encode applied defaults: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submissions (assessment_id, session_id, request, applied_defaults, defaults_version, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		submission.AssessmentID,
		submission.SessionID,
		string(request),
		string(defaults),
		submission.DefaultsVersion,
		submission.SubmittedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// GetSubmission loads a submission record by assessment id.
func (s *SQLiteStore) GetSubmission(ctx context.Context, assessmentID string) (*Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT assessment_id, session_id, request, applied_defaults, defaults_version, submitted_at
		FROM submissions WHERE assessment_id = ?`, assessmentID)

	var sub Submission
	var request, defaults, submittedAt string
	err := row.Scan(&sub.AssessmentID, &sub.SessionID, &request, &defaults, &sub.DefaultsVersion, &submittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan submission: %w", err)
	}

	if err := json.Unmarshal([]byte(request), &sub.Request); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	if err := json.Unmarshal([]byte(defaults), &sub.AppliedDefaults); err != nil {
		return nil, fmt.Errorf("decode applied defaults: %w", err)
	}
	if sub.AppliedDefaults == nil {
		sub.AppliedDefaults = []transform.AppliedDefault{}
	}
	if sub.SubmittedAt, err = time.Parse(time.RFC3339Nano, submittedAt); err != nil {
		return nil, fmt.Errorf("parse submitted_at: %w", err)
	}
	return &sub, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var session Session
	var step, draft, createdAt, updatedAt string
	var complete int

	err := row.Scan(&session.ID, &step, &complete, &draft, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	session.Step = wizard.Step(step)
	session.Complete = complete != 0
	if err := json.Unmarshal([]byte(draft), &session.Draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	if session.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if session.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &session, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
