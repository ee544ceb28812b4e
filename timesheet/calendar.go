package timesheet

import "time"

// BusinessDays returns the day-of-month numbers of every Monday to Friday in
// the month, ascending. It is the only place that decides what a business day
// is; leave validation and allocation both go through it.
func BusinessDays(year int, month time.Month) []int {
	last := EndOfMonth(year, month)
	days := make([]int, 0, 23)

	for d := StartOfMonth(year, month); !last.Before(d); d = d.AddDays(1) {
		if d.IsWorkday() {
			days = append(days, d.Number())
		}
	}
	return days
}

// IsBusinessDay reports whether day is a weekday inside the month.
func IsBusinessDay(year int, month time.Month, day int) bool {
	if day < 1 || day > DaysInMonth(year, month) {
		return false
	}
	return NewDay(year, month, day).IsWorkday()
}
