// Package surveyclient is a small Go client for the GreenMeans survey
// service. It drives the wizard session lifecycle and fetches normalized
// assessment results.
package surveyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Session mirrors the service's wire representation of a wizard session.
// The draft is kept raw; callers shape their own step payloads.
type Session struct {
	ID         string          `json:"id"`
	Step       string          `json:"current_step"`
	StepIndex  int             `json:"step_index"`
	TotalSteps int             `json:"total_steps"`
	Complete   bool            `json:"complete"`
	Draft      json.RawMessage `json:"draft"`
}

// Metric is one display-ready impact reading.
type Metric struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

// CropBreakdown carries per-crop totals and per-kg intensities.
type CropBreakdown struct {
	Name          string            `json:"name"`
	QuantityKg    float64           `json:"quantity_kg"`
	QuantityKnown bool              `json:"quantity_known"`
	Totals        map[string]Metric `json:"totals"`
	PerKg         map[string]Metric `json:"per_kg"`
}

// Assessment is the normalized result shape returned by the service.
type Assessment struct {
	ID              string            `json:"id"`
	CompanyName     string            `json:"company_name"`
	Country         string            `json:"country"`
	Currency        string            `json:"currency"`
	CurrencySymbol  string            `json:"currency_symbol"`
	AssessmentDate  time.Time         `json:"assessment_date"`
	SingleScore     float64           `json:"single_score"`
	ScoreUnit       string            `json:"score_unit"`
	Interpretation  Interpretation    `json:"interpretation"`
	Midpoints       map[string]Metric `json:"midpoint_impacts"`
	Endpoints       map[string]Metric `json:"endpoint_impacts"`
	Crops           []CropBreakdown   `json:"crops"`
	TotalQuantityKg float64           `json:"total_quantity_kg"`
	Warnings        []string          `json:"warnings,omitempty"`
}

// Interpretation is the five-band score classification.
type Interpretation struct {
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Color           string   `json:"color"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// SubmitResult is the response to a successful submission.
type SubmitResult struct {
	AssessmentID    string      `json:"assessment_id"`
	DefaultsVersion string      `json:"defaults_version"`
	Results         *Assessment `json:"results"`
}

// APIError carries a problem+json response from the service.
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		fields := make([]string, len(e.Errors))
		for i, fe := range e.Errors {
			fields[i] = fe.Field
		}
		return fmt.Sprintf("%s: %s (fields: %s)", e.Title, e.Detail, strings.Join(fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// Client talks to a GreenMeans service instance.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: 90 * time.Second},
	}
}

// CreateSession starts a new wizard session.
func (c *Client) CreateSession(ctx context.Context) (*Session, error) {
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions", nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// GetSession fetches current session state.
func (c *Client) GetSession(ctx context.Context, id string) (*Session, error) {
	var sess Session
	if err := c.do(ctx, http.MethodGet, "/api/v1/sessions/"+id, nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// UpdateDraft merges the given draft sections into the session draft.
// The draft may be any JSON-marshalable value matching the draft schema.
func (c *Client) UpdateDraft(ctx context.Context, id string, draft any) (*Session, error) {
	var sess Session
	if err := c.do(ctx, http.MethodPut, "/api/v1/sessions/"+id+"/draft", draft, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Next validates the current step and advances.
func (c *Client) Next(ctx context.Context, id string) (*Session, error) {
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions/"+id+"/next", nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Previous steps back without validation.
func (c *Client) Previous(ctx context.Context, id string) (*Session, error) {
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions/"+id+"/previous", nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Submit runs full validation and forwards the assessment to the engine.
func (c *Client) Submit(ctx context.Context, id string) (*SubmitResult, error) {
	var res SubmitResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions/"+id+"/submit", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetAssessment fetches normalized results for a completed assessment.
func (c *Client) GetAssessment(ctx context.Context, id string) (*Assessment, error) {
	var a Assessment
	if err := c.do(ctx, http.MethodGet, "/api/v1/assessments/"+id, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
		// Problem bodies carry title/detail; fall back to status text.
		_ = json.Unmarshal(raw, apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
