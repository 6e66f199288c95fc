package results

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Amankrah/green-means-go-sub001/internal/types"
)

// --- ExtractScalar ---

func TestExtractScalar(t *testing.T) {
	tests := []struct {
		name string
		data string
		want float64
	}{
		{"bare number", `5`, 5},
		{"record", `{"value": 3.2}`, 3.2},
		{"malformed string", `"bad"`, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v types.ImpactValue
			if err := json.Unmarshal([]byte(tt.data), &v); err != nil {
				t.Fatal(err)
			}
			if got := ExtractScalar(v); got != tt.want {
				t.Errorf("ExtractScalar(%s) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

// --- PerUnit ---

func TestPerUnit(t *testing.T) {
	tests := []struct {
		name       string
		total, qty float64
		want       float64
	}{
		{"simple division", 100, 50, 2},
		{"zero quantity", 100, 0, 0},
		{"zero total", 0, 50, 0},
		{"fractional", 1, 48000, 1.0 / 48000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PerUnit(tt.total, tt.qty); got != tt.want {
				t.Errorf("PerUnit(%v, %v) = %v, want %v", tt.total, tt.qty, got, tt.want)
			}
		})
	}
}

// --- ParseQuantityFromLabel ---

func TestParseQuantityFromLabel(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		want   float64
		wantOK bool
	}{
		{"grouped thousands", "Cassava (48,000kg)", 48000, true},
		{"plain digits", "Maize (500kg)", 500, true},
		{"millions", "Rice (1,250,000kg)", 1250000, true},
		{"no annotation", "Cassava", 0, false},
		{"empty label", "", 0, false},
		{"unit mismatch", "Cassava (48 tons)", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantityFromLabel(tt.label)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseQuantityFromLabel(%q) = (%v, %v), want (%v, %v)",
					tt.label, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCropName(t *testing.T) {
	if got := cropName("Cassava (48,000kg)"); got != "Cassava" {
		t.Errorf("cropName = %q, want Cassava", got)
	}
	if got := cropName("Cassava"); got != "Cassava" {
		t.Errorf("cropName without annotation = %q, want Cassava", got)
	}
}

// --- Normalize ---

func impact(t *testing.T, data string) types.ImpactValue {
	t.Helper()
	var v types.ImpactValue
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func sampleResult(t *testing.T) *types.AssessmentResult {
	t.Helper()
	return &types.AssessmentResult{
		ID:          "01HQZX3J9MNBV8K2T4R6W7Y0AB",
		CompanyName: "Ashanti Agro Ltd",
		Country:     "Ghana",
		MidpointImpacts: map[string]types.ImpactValue{
			"climate_change": impact(t, `{"value": 96000, "unit": "kg CO2-eq"}`),
			"water_use":      impact(t, `4.8`),
			"land_use":       impact(t, `"corrupt"`),
		},
		EndpointImpacts: map[string]types.ImpactValue{
			"human_health": impact(t, `0.004`),
		},
		SingleScore: impact(t, `{"value": 0.45, "unit": "pts"}`),
		BreakdownByFood: map[string]map[string]types.ImpactValue{
			"Cassava (48,000kg)": {
				"climate_change": impact(t, `96000`),
			},
			"Backyard greens": {
				"climate_change": impact(t, `120`),
			},
		},
		DataQuality: types.DataQuality{
			OverallConfidence: "Medium",
			Warnings:          []string{"regional proxy factors in use"},
		},
	}
}

func TestNormalize_Scalars(t *testing.T) {
	n := Normalize(sampleResult(t))

	if n.ID != "01HQZX3J9MNBV8K2T4R6W7Y0AB" {
		t.Errorf("ID = %q", n.ID)
	}
	if n.SingleScore != 0.45 {
		t.Errorf("SingleScore = %v, want 0.45", n.SingleScore)
	}
	if n.ScoreUnit != "pts" {
		t.Errorf("ScoreUnit = %q, want pts", n.ScoreUnit)
	}
	if n.Interpretation.Category != "moderate" {
		t.Errorf("Interpretation.Category = %q, want moderate", n.Interpretation.Category)
	}
	if got := n.Midpoints["climate_change"].Value; got != 96000 {
		t.Errorf("climate_change = %v, want 96000", got)
	}
	if got := n.Midpoints["water_use"].Value; got != 4.8 {
		t.Errorf("water_use = %v, want 4.8", got)
	}
}

func TestNormalize_CurrencyFromCountry(t *testing.T) {
	result := sampleResult(t)

	n := Normalize(result)
	if n.Currency != "GHS" || n.CurrencySymbol != "GH₵" {
		t.Errorf("currency = %q %q, want GHS GH₵", n.Currency, n.CurrencySymbol)
	}

	result.Country = "Nigeria"
	n = Normalize(result)
	if n.Currency != "NGN" || n.CurrencySymbol != "₦" {
		t.Errorf("currency = %q %q, want NGN ₦", n.Currency, n.CurrencySymbol)
	}

	// Unknown or Global countries fall back to USD.
	result.Country = "Global"
	n = Normalize(result)
	if n.Currency != "USD" || n.CurrencySymbol != "$" {
		t.Errorf("currency = %q %q, want USD $", n.Currency, n.CurrencySymbol)
	}
}

func TestNormalize_MalformedCountedAndWarned(t *testing.T) {
	n := Normalize(sampleResult(t))

	if n.MalformedReadings != 1 {
		t.Errorf("MalformedReadings = %d, want 1", n.MalformedReadings)
	}
	if got := n.Midpoints["land_use"].Display; got != "N/A" {
		t.Errorf("malformed display = %q, want N/A", got)
	}

	found := false
	for _, w := range n.Warnings {
		if strings.Contains(w, "unrecognized shape") {
			found = true
		}
	}
	if !found {
		t.Errorf("no malformed-shape warning in %v", n.Warnings)
	}
}

func TestNormalize_PerKgFromLabelQuantity(t *testing.T) {
	n := Normalize(sampleResult(t))

	var cassava *CropBreakdown
	for i := range n.Crops {
		if n.Crops[i].Name == "Cassava" {
			cassava = &n.Crops[i]
		}
	}
	if cassava == nil {
		t.Fatalf("no Cassava breakdown in %+v", n.Crops)
	}

	if !cassava.QuantityKnown {
		t.Error("QuantityKnown = false, want true")
	}
	if cassava.QuantityKg != 48000 {
		t.Errorf("QuantityKg = %v, want 48000", cassava.QuantityKg)
	}
	if got := cassava.PerKg["climate_change"].Value; got != 2 {
		t.Errorf("per-kg climate_change = %v, want 2", got)
	}
	if n.TotalQuantityKg != 48000 {
		t.Errorf("TotalQuantityKg = %v, want 48000", n.TotalQuantityKg)
	}
}

func TestNormalize_UnknownQuantityFlagged(t *testing.T) {
	n := Normalize(sampleResult(t))

	var greens *CropBreakdown
	for i := range n.Crops {
		if n.Crops[i].Name == "Backyard greens" {
			greens = &n.Crops[i]
		}
	}
	if greens == nil {
		t.Fatalf("no Backyard greens breakdown in %+v", n.Crops)
	}

	if greens.QuantityKnown {
		t.Error("QuantityKnown = true for label without quantity")
	}
	// Denominator 1 fallback: per-kg equals total.
	if got := greens.PerKg["climate_change"].Value; got != 120 {
		t.Errorf("per-kg with unknown quantity = %v, want total 120", got)
	}

	found := false
	for _, w := range n.Warnings {
		if strings.Contains(w, "quantity unknown") && strings.Contains(w, "Backyard greens") {
			found = true
		}
	}
	if !found {
		t.Errorf("no quantity-unknown warning in %v", n.Warnings)
	}
}

func TestNormalize_DeterministicCropOrder(t *testing.T) {
	n := Normalize(sampleResult(t))
	if len(n.Crops) != 2 {
		t.Fatalf("len(Crops) = %d, want 2", len(n.Crops))
	}
	// Sorted by label: "Backyard greens" before "Cassava (48,000kg)".
	if n.Crops[0].Name != "Backyard greens" || n.Crops[1].Name != "Cassava" {
		t.Errorf("crop order = %q, %q", n.Crops[0].Name, n.Crops[1].Name)
	}
}

func TestNormalize_CarriesEngineWarnings(t *testing.T) {
	n := Normalize(sampleResult(t))
	found := false
	for _, w := range n.Warnings {
		if w == "regional proxy factors in use" {
			found = true
		}
	}
	if !found {
		t.Errorf("engine warning not carried: %v", n.Warnings)
	}
}

func TestNormalize_PerKgUnitSuffix(t *testing.T) {
	n := Normalize(sampleResult(t))
	for _, crop := range n.Crops {
		if crop.Name != "Cassava" {
			continue
		}
		if got := crop.Totals["climate_change"].Unit; got != "" {
			// Bare-number totals carry no unit.
			t.Errorf("total unit = %q, want empty", got)
		}
	}

	if got := n.Midpoints["climate_change"].Unit; got != "kg CO2-eq" {
		t.Errorf("midpoint unit = %q, want kg CO2-eq", got)
	}
}
