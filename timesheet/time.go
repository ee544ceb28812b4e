package timesheet

import (
	"fmt"
	"time"
)

// =============================================================================
// DAY - Calendar day within a month (no time of day, no zone)
// =============================================================================

// Day is a single calendar day. Time is always midnight UTC so weekday
// arithmetic is independent of the local zone.
type Day struct {
	Time time.Time
}

// NewDay builds a Day; out-of-range day numbers normalize like time.Date.
func NewDay(year int, month time.Month, day int) Day {
	return Day{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Properties
func (d Day) Year() int              { return d.Time.Year() }
func (d Day) Month() time.Month      { return d.Time.Month() }
func (d Day) Number() int            { return d.Time.Day() }
func (d Day) Weekday() time.Weekday  { return d.Time.Weekday() }
func (d Day) IsWeekend() bool        { wd := d.Weekday(); return wd == time.Saturday || wd == time.Sunday }
func (d Day) IsWorkday() bool        { return !d.IsWeekend() }
func (d Day) AddDays(n int) Day      { return Day{Time: d.Time.AddDate(0, 0, n)} }
func (d Day) Before(other Day) bool  { return d.Time.Before(other.Time) }

// String renders the day as YYYY-MM-DD with zero-padded month and day.
func (d Day) String() string {
	return FormatDate(d.Year(), d.Month(), d.Number())
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, int(month), day)
}

// =============================================================================
// MONTH UTILITIES
// =============================================================================

func StartOfMonth(year int, month time.Month) Day { return NewDay(year, month, 1) }

func EndOfMonth(year int, month time.Month) Day {
	return Day{Time: time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)}
}

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year int, month time.Month) int {
	return EndOfMonth(year, month).Number()
}
