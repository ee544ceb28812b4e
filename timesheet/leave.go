package timesheet

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// LEAVE SPECIFICATION
// =============================================================================

// ParseLeaveDays parses comma separated day numbers such as "1, 15,30".
// Whitespace around tokens is ignored, duplicates are dropped keeping the
// first occurrence, and an empty string yields an empty, non-nil set.
func ParseLeaveDays(s string) ([]int, error) {
	days := []int{}
	if strings.TrimSpace(s) == "" {
		return days, nil
	}

	seen := make(map[int]bool)
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		day, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &LeaveDaysFormatError{Input: s, Token: tok}
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days, nil
}

// ResolveWorkingDays removes leave from the month's business days.
//
// leaveDays == nil means no explicit days were given; a non-nil empty slice is
// an explicit empty set. With explicit days every day must be a business day
// of the month and leaveCount, when given, must equal the number of distinct
// days. With only a count, the last leaveCount business days are dropped.
//
// The returned count is the effective number of leave days. The working-day
// list is not checked for emptiness here; see ValidateWorkingDays.
func ResolveWorkingDays(business []int, year int, month time.Month, leaveCount *int, leaveDays []int) ([]int, int, error) {
	if leaveCount != nil && *leaveCount < 0 {
		return nil, 0, fmt.Errorf("%w: %d leave days", ErrInvalidLeaveCount, *leaveCount)
	}

	if leaveDays == nil {
		if leaveCount == nil {
			return nil, 0, ErrMissingLeave
		}
		n := *leaveCount
		if n >= len(business) {
			return []int{}, n, nil
		}
		return slices.Clone(business[:len(business)-n]), n, nil
	}

	leave, err := validateLeaveDays(business, year, month, leaveDays)
	if err != nil {
		return nil, 0, err
	}
	if leaveCount != nil && *leaveCount != len(leave) {
		return nil, 0, &CountMismatchError{Count: *leaveCount, Days: len(leave)}
	}

	working := make([]int, 0, len(business))
	for _, day := range business {
		if !leave[day] {
			working = append(working, day)
		}
	}
	return working, len(leave), nil
}

// validateLeaveDays checks every explicit day and returns them as a set.
func validateLeaveDays(business []int, year int, month time.Month, leaveDays []int) (map[int]bool, error) {
	last := DaysInMonth(year, month)
	set := make(map[int]bool, len(leaveDays))

	for _, day := range leaveDays {
		if day < 1 || day > last {
			return nil, &LeaveDayError{Day: day, Year: year, Month: month, err: ErrOutOfRange}
		}
		if _, found := slices.BinarySearch(business, day); !found {
			return nil, &LeaveDayError{
				Day:     day,
				Year:    year,
				Month:   month,
				Weekend: NewDay(year, month, day).IsWeekend(),
				err:     ErrNotBusinessDay,
			}
		}
		set[day] = true
	}
	return set, nil
}
