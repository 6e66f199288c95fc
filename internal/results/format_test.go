package results

import "testing"

func TestFormatDisplayValue(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{"zero is not available", 0, 2, "N/A"},
		{"tiny uses scientific", 0.004, 2, "4.00e-03"},
		{"sub-one gains a decimal", 0.25, 2, "0.250"},
		{"plain", 42.5, 2, "42.50"},
		{"under grouping threshold", 999.4, 2, "999.40"},
		{"grouped thousands", 1500, 2, "1,500.00"},
		{"grouped millions", 1250000, 0, "1,250,000.00"},
		{"negative grouped", -48000, 2, "-48,000.00"},
		{"negative tiny", -0.002, 2, "-2.00e-03"},
		{"precision fallback", 7, -1, "7.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDisplayValue(tt.value, tt.precision); got != tt.want {
				t.Errorf("FormatDisplayValue(%v, %d) = %q, want %q",
					tt.value, tt.precision, got, tt.want)
			}
		})
	}
}
