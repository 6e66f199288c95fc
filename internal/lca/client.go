// Package lca is the HTTP client for the external LCA engine: one
// submission endpoint and one retrieval endpoint. Transport timeouts and
// retries are the transport's concern; this client only distinguishes
// success, failure-with-message, and not-found.
package lca

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Amankrah/green-means-go-sub001/internal/types"
)

// ErrNotFound is returned when the engine has no assessment for the id.
var ErrNotFound = errors.New("assessment not found")

// genericFailure is shown when the engine's error payload has no usable
// message in any known shape.
const genericFailure = "assessment request failed"

// Client talks to the LCA engine over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the engine at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SubmitAssessment posts a canonical request and returns the computed
// assessment. Engine-reported failures come back as *EngineError with a
// human-readable message.
func (c *Client) SubmitAssessment(ctx context.Context, req types.AssessmentRequest) (*types.AssessmentResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode assessment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assess", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build assessment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit assessment: %w", err)
	}
	defer resp.Body.Close()

	return decodeResult(resp)
}

// GetAssessment retrieves a previously computed assessment by id.
func (c *Client) GetAssessment(ctx context.Context, id string) (*types.AssessmentResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/assess/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("build retrieval request: %w", err)
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("retrieve assessment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	return decodeResult(resp)
}

func decodeResult(resp *http.Response) (*types.AssessmentResult, error) {
	payload, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("read engine response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &EngineError{
			StatusCode: resp.StatusCode,
			Message:    classifyErrorBody(payload),
		}
	}

	var result types.AssessmentResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode assessment result: %w", err)
	}
	return &result, nil
}

// EngineError is a failure the engine reported in its error payload.
type EngineError struct {
	StatusCode int
	Message    string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("lca engine: %s (status %d)", e.Message, e.StatusCode)
}

// errorEnvelope is the engine's error payload. detail is either a plain
// string or an array of per-field objects exposing msg or message.
type errorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

type fieldError struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

// classifyErrorBody turns the engine's error payload into one
// human-readable string, joining per-field messages when the payload is an
// array. Anything unrecognizable falls back to a generic message.
func classifyErrorBody(body []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return genericFailure
	}

	var single string
	if err := json.Unmarshal(envelope.Detail, &single); err == nil && single != "" {
		return single
	}

	var fields []fieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil {
		messages := make([]string, 0, len(fields))
		for _, f := range fields {
			switch {
			case f.Msg != "":
				messages = append(messages, f.Msg)
			case f.Message != "":
				messages = append(messages, f.Message)
			}
		}
		if len(messages) > 0 {
			return strings.Join(messages, "; ")
		}
	}

	return genericFailure
}
