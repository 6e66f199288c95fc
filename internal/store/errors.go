package store

import "errors"

var (
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrSubmissionNotFound = errors.New("submission record not found")
	ErrDuplicateSession   = errors.New("duplicate wizard session")
)
