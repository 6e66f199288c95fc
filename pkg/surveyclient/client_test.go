package surveyclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// normalizedBody is the exact shape the service emits for
// GET /api/v1/assessments/{id}.
const normalizedBody = `{
	"id": "assess-1",
	"company_name": "Ashanti Agro Ltd",
	"country": "Ghana",
	"currency": "GHS",
	"currency_symbol": "GH₵",
	"assessment_date": "2025-03-14T00:00:00Z",
	"single_score": 0.45,
	"score_unit": "pts",
	"interpretation": {
		"category": "moderate",
		"title": "Moderate Impact",
		"description": "Impact is in the middle of the range."
	},
	"midpoint_impacts": {
		"climate_change": {"value": 96000, "unit": "kg CO2-eq", "display": "96,000.00"},
		"water_use": {"value": 4.8, "display": "4.80"}
	},
	"endpoint_impacts": {
		"human_health": {"value": 0.004, "display": "4.00e-03"}
	},
	"crops": [
		{
			"name": "Cassava",
			"quantity_kg": 48000,
			"quantity_known": true,
			"totals": {"climate_change": {"value": 96000, "unit": "kg CO2-eq", "display": "96,000.00"}},
			"per_kg": {"climate_change": {"value": 2, "unit": "kg CO2-eq", "display": "2.00"}}
		}
	],
	"total_quantity_kg": 48000,
	"warnings": ["regional proxy factors in use"]
}`

func TestAssessmentDecode(t *testing.T) {
	var a Assessment
	if err := json.Unmarshal([]byte(normalizedBody), &a); err != nil {
		t.Fatalf("decode assessment: %v", err)
	}

	if len(a.Midpoints) != 2 {
		t.Fatalf("Midpoints = %v, want 2 entries", a.Midpoints)
	}
	if got := a.Midpoints["climate_change"]; got.Value != 96000 || got.Unit != "kg CO2-eq" {
		t.Errorf("climate_change = %+v", got)
	}
	if len(a.Endpoints) != 1 {
		t.Fatalf("Endpoints = %v, want 1 entry", a.Endpoints)
	}
	if got := a.Endpoints["human_health"]; got.Value != 0.004 {
		t.Errorf("human_health = %+v", got)
	}
	if a.Currency != "GHS" || a.CurrencySymbol != "GH₵" {
		t.Errorf("currency = %q %q", a.Currency, a.CurrencySymbol)
	}
	if a.Interpretation.Category != "moderate" {
		t.Errorf("Interpretation.Category = %q", a.Interpretation.Category)
	}
	if len(a.Crops) != 1 || a.Crops[0].PerKg["climate_change"].Value != 2 {
		t.Errorf("Crops = %+v", a.Crops)
	}
}

func TestGetAssessment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/assessments/assess-1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(normalizedBody))
	}))
	defer srv.Close()

	a, err := New(srv.URL).GetAssessment(context.Background(), "assess-1")
	if err != nil {
		t.Fatalf("GetAssessment() = %v", err)
	}
	if a.SingleScore != 0.45 {
		t.Errorf("SingleScore = %v, want 0.45", a.SingleScore)
	}
	if len(a.Midpoints) == 0 || len(a.Endpoints) == 0 {
		t.Errorf("impact maps lost in decode: midpoints %v, endpoints %v", a.Midpoints, a.Endpoints)
	}
}

func TestCreateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/sessions" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"id": "01HQZX3J9MNBV8K2T4R6W7Y0AB",
			"current_step": "farm_profile",
			"step_index": 0,
			"total_steps": 6,
			"complete": false,
			"draft": {}
		}`))
	}))
	defer srv.Close()

	sess, err := New(srv.URL).CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession() = %v", err)
	}
	if sess.ID != "01HQZX3J9MNBV8K2T4R6W7Y0AB" {
		t.Errorf("ID = %q", sess.ID)
	}
	if sess.Step != "farm_profile" || sess.TotalSteps != 6 {
		t.Errorf("session = %+v", sess)
	}
}

func TestProblemResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{
			"type": "https://greenmeans.dev/errors/validation-error",
			"title": "Validation Error",
			"status": 422,
			"detail": "Current step contains invalid fields",
			"errors": [
				{"field": "farm_profile.company_name", "message": "is required"},
				{"field": "crops", "message": "at least one crop is required"}
			]
		}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Next(context.Background(), "01HQZX3J9MNBV8K2T4R6W7Y0AB")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Status != 422 || apiErr.Title != "Validation Error" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if len(apiErr.Errors) != 2 {
		t.Fatalf("Errors = %+v, want 2", apiErr.Errors)
	}
	if !strings.Contains(apiErr.Error(), "farm_profile.company_name") {
		t.Errorf("Error() = %q, want field names listed", apiErr.Error())
	}
}

func TestNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetAssessment(context.Background(), "x")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Status != 502 || apiErr.Title != "Bad Gateway" {
		t.Errorf("apiErr = %+v, want status-text fallback", apiErr)
	}
}
