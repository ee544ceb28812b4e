/*
errors.go - Error types for time sheet generation

PURPOSE:
  Every failure in this package is a local validation failure. Each has a
  sentinel for errors.Is() and, where there is context worth carrying, a
  structured error that unwraps to the sentinel.

ERROR CATEGORIES:
  1. Input errors   - malformed month, hours or leave-day text
  2. Leave errors   - leave days that cannot be taken, count mismatches
  3. Capacity errors - no working days left, too many hours for the month

USAGE:
  entries, err := timesheet.Distribute(req)
  var capErr *timesheet.CapacityError
  if errors.As(err, &capErr) {
      // capErr.Excess hours could not be placed
  }

SEE ALSO:
  - leave.go: Raises leave errors
  - validate.go: Raises capacity errors
*/
package timesheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidLeaveDaysFormat is returned when leave-day text holds a token
	// that is not an integer.
	ErrInvalidLeaveDaysFormat = errors.New("invalid leave days format")

	// ErrCountMismatch is returned when a leave count and an explicit leave
	// day set disagree.
	ErrCountMismatch = errors.New("leave count does not match leave days")

	// ErrMissingLeave is returned when neither a leave count nor leave
	// days were supplied.
	ErrMissingLeave = errors.New("either a leave count or leave days must be provided")

	// ErrOutOfRange is returned for a leave day outside 1..days-in-month.
	ErrOutOfRange = errors.New("leave day out of range")

	// ErrNotBusinessDay is returned for a leave day that is not a business day.
	ErrNotBusinessDay = errors.New("leave day is not a business day")

	// ErrNoWorkingDays is returned when leave consumes every business day.
	ErrNoWorkingDays = errors.New("no working days available")

	// ErrHoursExceedCapacity is returned when the hours do not fit in the
	// working days at the per-day maximum.
	ErrHoursExceedCapacity = errors.New("hours exceed capacity")

	ErrInvalidMonth      = errors.New("invalid month")
	ErrInvalidHours      = errors.New("invalid hours")
	ErrInvalidLeaveCount = errors.New("invalid leave count")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// LeaveDaysFormatError names the token that failed to parse.
type LeaveDaysFormatError struct {
	Input string
	Token string
}

func (e *LeaveDaysFormatError) Error() string {
	return fmt.Sprintf("invalid leave days format: %q is not a whole number in %q", e.Token, e.Input)
}

func (e *LeaveDaysFormatError) Unwrap() error { return ErrInvalidLeaveDaysFormat }

// CountMismatchError reports a leave count that disagrees with the leave days.
type CountMismatchError struct {
	Count int // leave count supplied by the caller
	Days  int // distinct leave days supplied
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("leave count (%d) does not match the number of leave days provided (%d); expected %d days",
		e.Count, e.Days, e.Count)
}

func (e *CountMismatchError) Unwrap() error { return ErrCountMismatch }

// LeaveDayError reports a single explicit leave day that cannot be taken.
type LeaveDayError struct {
	Day     int
	Year    int
	Month   time.Month
	Weekend bool
	err     error
}

func (e *LeaveDayError) Error() string {
	switch {
	case errors.Is(e.err, ErrOutOfRange):
		return fmt.Sprintf("leave day %d is not valid for %s %d", e.Day, e.Month, e.Year)
	case e.Weekend:
		return fmt.Sprintf("leave day %d falls on a weekend (%s)", e.Day, FormatDate(e.Year, e.Month, e.Day))
	default:
		return fmt.Sprintf("leave day %d is not a business day in %s %d", e.Day, e.Month, e.Year)
	}
}

func (e *LeaveDayError) Unwrap() error { return e.err }

// NoWorkingDaysError reports leave that leaves nothing to work on.
type NoWorkingDaysError struct {
	LeaveCount   int
	BusinessDays int
}

func (e *NoWorkingDaysError) Error() string {
	return fmt.Sprintf("no working days available after subtracting %d annual leave days from %d business days",
		e.LeaveCount, e.BusinessDays)
}

func (e *NoWorkingDaysError) Unwrap() error { return ErrNoWorkingDays }

// CapacityError reports hours that do not fit in the month.
type CapacityError struct {
	Requested decimal.Decimal
	Ceiling   decimal.Decimal // working days x rounded max hours per day
	Excess    decimal.Decimal
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cannot distribute %s hours: exceeds maximum possible hours (%s) by %s hours",
		e.Requested, e.Ceiling.StringFixed(2), e.Excess.StringFixed(2))
}

func (e *CapacityError) Unwrap() error { return ErrHoursExceedCapacity }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error was caused by the caller's input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidLeaveDaysFormat) ||
		errors.Is(err, ErrCountMismatch) ||
		errors.Is(err, ErrMissingLeave) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrNotBusinessDay) ||
		errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrInvalidHours) ||
		errors.Is(err, ErrInvalidLeaveCount) ||
		IsInfeasible(err)
}

// IsInfeasible returns true if the input was well formed but the hours cannot
// be placed in the month.
func IsInfeasible(err error) bool {
	return errors.Is(err, ErrNoWorkingDays) || errors.Is(err, ErrHoursExceedCapacity)
}
