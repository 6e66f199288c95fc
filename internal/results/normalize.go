// Package results normalizes raw LCA engine output into comparable
// per-unit metrics and a discrete score interpretation. All functions are
// pure; the fetched result is treated as an immutable snapshot.
package results

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Amankrah/green-means-go-sub001/internal/types"
)

// quantityPattern matches the quantity embedded in a crop breakdown label,
// e.g. "Cassava (48,000kg)". The engine encodes the produced quantity only
// in this display label, so it is parsed back out as the per-unit
// denominator.
var quantityPattern = regexp.MustCompile(`\((\d{1,3}(?:,\d{3})*|\d+)kg\)`)

// ExtractScalar returns the single numeric reading of an impact value
// regardless of which wire shape it arrived in. Malformed readings yield 0;
// callers that care distinguish them through the value's Shape.
func ExtractScalar(v types.ImpactValue) float64 {
	return v.Value
}

// PerUnit divides an aggregate total by a quantity in kilograms. A zero
// quantity yields 0 rather than an error: a missing denominator means the
// per-unit figure is unknown, not that the result is broken.
func PerUnit(total, quantityKg float64) float64 {
	if quantityKg == 0 {
		return 0
	}
	return total / quantityKg
}

// ParseQuantityFromLabel extracts the kilogram quantity embedded in a crop
// breakdown label. The second return is false when the label carries no
// parseable quantity; callers fall back to a denominator of 1 and must flag
// that fallback rather than present it as a real 1 kg harvest.
func ParseQuantityFromLabel(label string) (float64, bool) {
	m := quantityPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	digits := strings.ReplaceAll(m[1], ",", "")
	qty, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return qty, true
}

// cropName strips the trailing quantity annotation from a breakdown label.
func cropName(label string) string {
	name := quantityPattern.ReplaceAllString(label, "")
	return strings.TrimSpace(name)
}

// Metric is one normalized impact reading ready for display.
type Metric struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit,omitempty"`
	Display string  `json:"display"`
}

// CropBreakdown holds per-crop totals and derived per-kilogram metrics.
// QuantityKnown is false when the quantity could not be parsed from the
// breakdown label and the per-kg figures therefore equal the totals.
type CropBreakdown struct {
	Name          string            `json:"name"`
	QuantityKg    float64           `json:"quantity_kg"`
	QuantityKnown bool              `json:"quantity_known"`
	Totals        map[string]Metric `json:"totals"`
	PerKg         map[string]Metric `json:"per_kg"`
}

// Normalized is the fully processed view of an assessment result.
type Normalized struct {
	ID                string            `json:"id"`
	CompanyName       string            `json:"company_name"`
	Country           string            `json:"country"`
	Currency          string            `json:"currency"`
	CurrencySymbol    string            `json:"currency_symbol"`
	AssessmentDate    time.Time         `json:"assessment_date"`
	SingleScore       float64           `json:"single_score"`
	ScoreUnit         string            `json:"score_unit,omitempty"`
	Interpretation    Interpretation    `json:"interpretation"`
	Midpoints         map[string]Metric `json:"midpoint_impacts"`
	Endpoints         map[string]Metric `json:"endpoint_impacts"`
	Crops             []CropBreakdown   `json:"crops"`
	TotalQuantityKg   float64           `json:"total_quantity_kg"`
	MalformedReadings int               `json:"malformed_readings"`
	Warnings          []string          `json:"warnings"`
	DataQuality       types.DataQuality `json:"data_quality"`
}

// Normalize converts a raw engine result into comparable metrics: scalars
// extracted from mixed shapes, per-kilogram figures derived from label
// quantities, malformed readings counted, and the aggregate score
// classified. The input is not mutated.
func Normalize(result *types.AssessmentResult) *Normalized {
	country := types.Country(result.Country)
	n := &Normalized{
		ID:             result.ID,
		CompanyName:    result.CompanyName,
		Country:        result.Country,
		Currency:       country.CurrencyCode(),
		CurrencySymbol: country.CurrencySymbol(),
		AssessmentDate: result.AssessmentDate,
		Midpoints:      make(map[string]Metric, len(result.MidpointImpacts)),
		Endpoints:      make(map[string]Metric, len(result.EndpointImpacts)),
		Warnings:       append([]string{}, result.DataQuality.Warnings...),
		DataQuality:    result.DataQuality,
	}

	malformed := 0
	read := func(v types.ImpactValue) float64 {
		if v.Shape == types.ShapeMalformed {
			malformed++
		}
		return ExtractScalar(v)
	}

	for name, v := range result.MidpointImpacts {
		n.Midpoints[name] = metric(read(v), v.Unit)
	}
	for name, v := range result.EndpointImpacts {
		n.Endpoints[name] = metric(read(v), v.Unit)
	}

	n.SingleScore = read(result.SingleScore)
	n.ScoreUnit = result.SingleScore.Unit
	n.Interpretation = ClassifyScore(n.SingleScore)

	// Iterate labels in sorted order so the breakdown is deterministic.
	for _, label := range sortedKeys(result.BreakdownByFood) {
		impacts := result.BreakdownByFood[label]
		crop := CropBreakdown{
			Name:   cropName(label),
			Totals: make(map[string]Metric, len(impacts)),
			PerKg:  make(map[string]Metric, len(impacts)),
		}

		qty, known := ParseQuantityFromLabel(label)
		crop.QuantityKnown = known
		denominator := qty
		if !known {
			// Documented approximation: without a quantity the totals are
			// reported as-is and flagged, not divided by a guess.
			denominator = 1
			n.Warnings = append(n.Warnings, fmt.Sprintf(
				"quantity unknown for crop %q; per-kg figures equal totals", crop.Name))
		} else {
			crop.QuantityKg = qty
			n.TotalQuantityKg += qty
		}

		for name, v := range impacts {
			value := read(v)
			crop.Totals[name] = metric(value, v.Unit)
			crop.PerKg[name] = metric(PerUnit(value, denominator), perKgUnit(v.Unit))
		}
		n.Crops = append(n.Crops, crop)
	}

	n.MalformedReadings = malformed
	if malformed > 0 {
		n.Warnings = append(n.Warnings, fmt.Sprintf(
			"%d impact reading(s) had an unrecognized shape and display as N/A", malformed))
	}

	return n
}

func metric(value float64, unit string) Metric {
	return Metric{
		Value:   value,
		Unit:    unit,
		Display: FormatDisplayValue(value, 2),
	}
}

func perKgUnit(unit string) string {
	if unit == "" {
		return ""
	}
	return unit + "/kg"
}

func sortedKeys(m map[string]map[string]types.ImpactValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
