package results

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// notAvailable marks a reading of exactly zero. The engine never produces a
// true zero impact; zero always means a missing or malformed reading, so it
// must not display as "0".
const notAvailable = "N/A"

var groupedPrinter = message.NewPrinter(language.English)

// FormatDisplayValue renders an impact value for display. Impact magnitudes
// span many orders of magnitude, so formatting tiers by size: zero is the
// not-available marker, sub-0.01 magnitudes use scientific notation, values
// under 1 get one extra decimal, and values from 1000 up get thousands
// grouping. precision is the base decimal count; non-positive falls back
// to 2.
func FormatDisplayValue(value float64, precision int) string {
	if value == 0 {
		return notAvailable
	}
	if precision <= 0 {
		precision = 2
	}

	abs := math.Abs(value)
	switch {
	case abs < 0.01:
		return fmt.Sprintf("%.*e", precision, value)
	case abs < 1:
		return fmt.Sprintf("%.*f", precision+1, value)
	case abs >= 1000:
		return groupedPrinter.Sprintf("%.*f", precision, value)
	default:
		return fmt.Sprintf("%.*f", precision, value)
	}
}
