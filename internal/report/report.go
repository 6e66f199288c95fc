// Package report generates narrative sustainability reports from
// normalized assessment results using an LLM. Generation is optional: when
// no API key is configured the service reports itself unavailable instead
// of failing requests.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Amankrah/green-means-go-sub001/internal/results"
)

// ErrUnavailable is returned when report generation is not configured.
var ErrUnavailable = errors.New("report generation not configured")

// Generator produces a narrative report for a normalized assessment.
type Generator interface {
	Generate(ctx context.Context, n *results.Normalized) (string, error)
}

// Disabled is the Generator used when no API key is configured.
type Disabled struct{}

// Generate always returns ErrUnavailable.
func (Disabled) Generate(ctx context.Context, n *results.Normalized) (string, error) {
	return "", ErrUnavailable
}

// buildPrompt flattens the normalized result into the analysis prompt. The
// report covers the aggregate interpretation, the dominant impact
// categories, and per-crop intensity.
func buildPrompt(n *results.Normalized) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a professional environmental sustainability report for %s, a farm operation in %s, assessed on %s.\n\n",
		n.CompanyName, n.Country, n.AssessmentDate.Format("2 January 2006"))

	fmt.Fprintf(&b, "Overall score: %s (%s). %s\n\n",
		results.FormatDisplayValue(n.SingleScore, 2), n.Interpretation.Title, n.Interpretation.Description)

	b.WriteString("Midpoint impacts:\n")
	for name, m := range n.Midpoints {
		fmt.Fprintf(&b, "- %s: %s %s\n", name, m.Display, m.Unit)
	}

	if len(n.Crops) > 0 {
		b.WriteString("\nPer-crop impact intensity:\n")
		for _, crop := range n.Crops {
			if crop.QuantityKnown {
				fmt.Fprintf(&b, "- %s (%.0f kg produced)\n", crop.Name, crop.QuantityKg)
			} else {
				fmt.Fprintf(&b, "- %s (production quantity unknown)\n", crop.Name)
			}
			for name, m := range crop.PerKg {
				fmt.Fprintf(&b, "  - %s: %s %s\n", name, m.Display, m.Unit)
			}
		}
	}

	if len(n.Warnings) > 0 {
		b.WriteString("\nData quality caveats:\n")
		for _, w := range n.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	b.WriteString("\nStructure the report as: executive summary, key findings, ")
	b.WriteString("improvement recommendations, and data quality notes. ")
	b.WriteString("Readings shown as N/A were not measurable and must not be described as zero impact.")

	return b.String()
}
