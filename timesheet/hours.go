package timesheet

import "github.com/shopspring/decimal"

// =============================================================================
// HOURS - Half-hour granular quantities
// =============================================================================

var (
	two  = decimal.NewFromInt(2)
	half = decimal.RequireFromString("0.5")

	// totalTolerance is the largest gap between allocated and requested
	// hours that is not reported.
	totalTolerance = decimal.RequireFromString("0.01")
)

// roundHalf rounds to the nearest 0.5. Ties on the doubled value go to the
// even integer, so 0.25 becomes 0.0 and 0.75 becomes 1.0.
func roundHalf(h decimal.Decimal) decimal.Decimal {
	return h.Mul(two).RoundBank(0).Mul(half)
}

// RoundHalf rounds hours to the nearest half hour (2.3 -> 2.5, 2.7 -> 2.5).
func RoundHalf(hours float64) float64 {
	return roundHalf(decimal.NewFromFloat(hours)).InexactFloat64()
}

// IsHalfHourMultiple reports whether h is a whole number of half hours.
func IsHalfHourMultiple(h decimal.Decimal) bool {
	return h.Mul(two).IsInteger()
}

// SumHours adds up the hours of every entry.
func SumHours(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Hours)
	}
	return total
}
