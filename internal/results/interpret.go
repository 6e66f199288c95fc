package results

// Interpretation is the discrete guidance derived from the aggregate
// normalized score. It is computed once per result view and read-only
// afterwards.
type Interpretation struct {
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Color           string   `json:"color"`
	Recommendations []string `json:"recommendations"`
}

// scoreBand couples an upper bound with its interpretation. Bands are a
// fixed configuration table, ordered ascending and covering [0, 1] without
// gaps; upperBound is exclusive except for the final band.
type scoreBand struct {
	upperBound     float64
	interpretation Interpretation
}

var scoreBands = []scoreBand{
	{
		upperBound: 0.2,
		interpretation: Interpretation{
			Category:    "excellent",
			Title:       "Very Low Impact",
			Description: "Environmental performance is well ahead of regional benchmarks for comparable farms.",
			Color:       "#2e7d32",
			Recommendations: []string{
				"Maintain current soil conservation and input practices",
				"Consider certification to document your performance",
			},
		},
	},
	{
		upperBound: 0.4,
		interpretation: Interpretation{
			Category:    "good",
			Title:       "Low Impact",
			Description: "Impacts are below average for the region with a few areas that could still improve.",
			Color:       "#689f38",
			Recommendations: []string{
				"Review fertilizer timing against crop uptake periods",
				"Expand water conservation practices where feasible",
			},
		},
	},
	{
		upperBound: 0.6,
		interpretation: Interpretation{
			Category:    "moderate",
			Title:       "Moderate Impact",
			Description: "Impacts are typical for the region; targeted changes would yield measurable reductions.",
			Color:       "#f9a825",
			Recommendations: []string{
				"Adopt soil-test-based fertilization to cut excess applications",
				"Introduce cover cropping or residue retention",
				"Track fuel use per operation to find inefficiencies",
			},
		},
	},
	{
		upperBound: 0.8,
		interpretation: Interpretation{
			Category:    "high",
			Title:       "High Impact",
			Description: "Impacts are above regional averages; the largest contributors warrant prompt attention.",
			Color:       "#ef6c00",
			Recommendations: []string{
				"Reduce or split fertilizer applications to lower field losses",
				"Shift toward integrated pest management to cut pesticide load",
				"Service equipment regularly to reduce fuel consumption",
			},
		},
	},
	{
		upperBound: 1.0,
		interpretation: Interpretation{
			Category:    "critical",
			Title:       "Very High Impact",
			Description: "Impacts are far above comparable farms; structural changes to practices are needed.",
			Color:       "#c62828",
			Recommendations: []string{
				"Commission a soil test before the next season's fertilization",
				"Replace routine calendar spraying with threshold-based control",
				"Evaluate switching high-use equipment to efficient alternatives",
				"Seek agronomic extension support for a remediation plan",
			},
		},
	},
}

// ClassifyScore maps a normalized score in [0, 1] to exactly one band.
// Values outside the range clamp to the nearest boundary band instead of
// erroring.
func ClassifyScore(score float64) Interpretation {
	if score < 0 {
		return scoreBands[0].interpretation
	}
	for _, band := range scoreBands {
		if score < band.upperBound {
			return band.interpretation
		}
	}
	return scoreBands[len(scoreBands)-1].interpretation
}
