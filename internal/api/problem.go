package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Amankrah/green-means-go-sub001/internal/lca"
	"github.com/Amankrah/green-means-go-sub001/internal/store"
	"github.com/Amankrah/green-means-go-sub001/internal/validation"
)

// Problem represents an RFC 7807 Problem Details response.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
}

// problemTypes maps HTTP status codes to RFC 7807 type URIs and titles.
var problemTypes = map[int]struct {
	typeURI string
	title   string
}{
	http.StatusBadRequest: {
		typeURI: "https://greenmeans.dev/errors/bad-request",
		title:   "Bad Request",
	},
	http.StatusNotFound: {
		typeURI: "https://greenmeans.dev/errors/not-found",
		title:   "Not Found",
	},
	http.StatusConflict: {
		typeURI: "https://greenmeans.dev/errors/conflict",
		title:   "Conflict",
	},
	http.StatusUnprocessableEntity: {
		typeURI: "https://greenmeans.dev/errors/validation-error",
		title:   "Validation Error",
	},
	http.StatusBadGateway: {
		typeURI: "https://greenmeans.dev/errors/engine-error",
		title:   "Assessment Engine Error",
	},
	http.StatusServiceUnavailable: {
		typeURI: "https://greenmeans.dev/errors/service-unavailable",
		title:   "Service Unavailable",
	},
	http.StatusInternalServerError: {
		typeURI: "https://greenmeans.dev/errors/internal-error",
		title:   "Internal Server Error",
	},
}

// WriteProblem writes an RFC 7807 Problem Details response.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	pt, ok := problemTypes[status]
	if !ok {
		pt = struct {
			typeURI string
			title   string
		}{
			typeURI: "https://greenmeans.dev/errors/unknown",
			title:   http.StatusText(status),
		}
	}

	p := Problem{
		Type:     pt.typeURI,
		Title:    pt.title,
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode problem response", "error", err)
	}
}

// ProblemWithErrors extends Problem with field-level validation errors.
type ProblemWithErrors struct {
	Problem
	Errors []validation.ValidationError `json:"errors,omitempty"`
}

// WriteProblemWithErrors writes a 422 Problem Details response with field errors.
func WriteProblemWithErrors(w http.ResponseWriter, r *http.Request, detail string, errs []validation.ValidationError) {
	pt := problemTypes[http.StatusUnprocessableEntity]

	p := ProblemWithErrors{
		Problem: Problem{
			Type:     pt.typeURI,
			Title:    pt.title,
			Status:   http.StatusUnprocessableEntity,
			Detail:   detail,
			Instance: r.URL.Path,
		},
		Errors: errs,
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode problem response", "error", err)
	}
}

// MapDomainError converts storage and engine errors to Problem Details
// responses.
func MapDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		WriteProblem(w, r, http.StatusNotFound, "Session not found")
	case errors.Is(err, store.ErrSubmissionNotFound):
		WriteProblem(w, r, http.StatusNotFound, "Submission not found")
	case errors.Is(err, store.ErrDuplicateSession):
		WriteProblem(w, r, http.StatusConflict, "Session already exists")
	case errors.Is(err, lca.ErrNotFound):
		WriteProblem(w, r, http.StatusNotFound, "Assessment not found")
	case isEngineError(err):
		WriteProblem(w, r, http.StatusBadGateway, engineDetail(err))
	default:
		// Never expose internal error details to client
		WriteProblem(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
}

func isEngineError(err error) bool {
	var engErr *lca.EngineError
	return errors.As(err, &engErr)
}

func engineDetail(err error) string {
	var engErr *lca.EngineError
	if errors.As(err, &engErr) {
		return engErr.Message
	}
	return "Assessment engine request failed"
}
