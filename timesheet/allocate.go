package timesheet

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one line of a time sheet.
type Entry struct {
	Date  string // YYYY-MM-DD
	Hours decimal.Decimal
}

// Allocate spreads hours over workingDays, one entry per day in order.
//
// Each day but the last gets the even share of what is left, capped at
// maxPerDay and rounded to the half hour. The last day absorbs the rounded
// remainder. workingDays must be non-empty and the request must already have
// passed ValidateCapacity; maxPerDay must already be rounded.
func Allocate(year int, month time.Month, workingDays []int, hours, maxPerDay decimal.Decimal, notifier Notifier) []Entry {
	if notifier == nil {
		notifier = Discard
	}

	entries := make([]Entry, 0, len(workingDays))
	remaining := hours
	daysLeft := len(workingDays)

	for _, day := range workingDays {
		if daysLeft <= 0 {
			break
		}
		date := FormatDate(year, month, day)

		var dayHours decimal.Decimal
		if daysLeft == 1 {
			dayHours = roundHalf(remaining)
			if !dayHours.Equal(remaining) {
				discrepancy := remaining.Sub(dayHours)
				notifier.Notify(Notice{
					Kind:     NoticeFinalDayAdjusted,
					Severity: SeverityNote,
					Message: fmt.Sprintf("Adjusted final day by %.1f hours to maintain 0.5-hour increments.",
						discrepancy.InexactFloat64()),
					Date:        date,
					Discrepancy: discrepancy,
				})
			}
		} else {
			target := remaining.Div(decimal.NewFromInt(int64(daysLeft)))
			dayHours = roundHalf(decimal.Min(target, maxPerDay))
		}

		remaining = remaining.Sub(dayHours)
		daysLeft--

		// Rounding up can overshoot what is left; give the overshoot back.
		if remaining.IsNegative() {
			dayHours = dayHours.Add(remaining)
			remaining = decimal.Zero
		}

		entries = append(entries, Entry{Date: date, Hours: dayHours})
	}

	total := SumHours(entries)
	if total.Sub(hours).Abs().GreaterThan(totalTolerance) {
		notifier.Notify(Notice{
			Kind:     NoticeTotalMismatch,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Due to 0.5-hour increment constraint, allocated %.1f hours instead of requested %.1f hours.",
				total.InexactFloat64(), hours.InexactFloat64()),
			Allocated: total,
			Requested: hours,
		})
	}

	return entries
}
