/*
Package timesheet distributes a month's worked hours across its business days.

PURPOSE:
  Given the hours worked in a month, a per-day maximum and the leave taken,
  produce one entry per working day so that the entries add up to the hours
  worked, every entry is a whole number of half hours and no day but the
  last goes over the maximum.

PIPELINE:
  1. BusinessDays:        Monday to Friday days of the month
  2. ResolveWorkingDays:  business days minus leave (count or explicit days)
  3. ValidateWorkingDays: at least one day left to work
  4. ValidateCapacity:    hours fit at the (half-hour rounded) daily maximum
  5. Allocate:            day-by-day fold with last-day remainder

LEAVE:
  Leave is either a count (the last N business days are dropped, leave is
  assumed to fall at month end) or explicit day numbers. When both are
  given they must agree.

NOTICES:
  Rounding the last day and missing the total by more than 0.01 hours are
  reported to a Notifier. Notices never change the returned entries.

USAGE:
  leave := 2
  entries, err := timesheet.Distribute(timesheet.Request{
      HoursWorked:    40,
      MaxHoursPerDay: 8,
      LeaveCount:     &leave,
      Month:          12,
      Year:           2024,
  })

SEE ALSO:
  - allocate.go: The allocation fold
  - leave.go: Leave resolution and leave-day parsing
  - errors.go: Error kinds
*/
package timesheet

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Request holds the inputs of a single distribution.
type Request struct {
	HoursWorked    float64
	MaxHoursPerDay float64

	// LeaveCount is nil when no count was supplied.
	LeaveCount *int

	Month int // 1..12
	Year  int // 0 means the current year

	// LeaveDays is nil when no explicit days were supplied. A non-nil empty
	// slice is an explicit empty set.
	LeaveDays []int
}

// Generator produces time sheets. The zero value is not usable; use
// NewGenerator. A Generator holds no per-call state and may be shared.
type Generator struct {
	notifier Notifier
	now      func() time.Time
}

type Option func(*Generator)

// WithNotifier sends notices to n instead of dropping them.
func WithNotifier(n Notifier) Option {
	return func(g *Generator) {
		if n != nil {
			g.notifier = n
		}
	}
}

// WithClock sets the clock used to default the year.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		notifier: Discard,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Distribute runs req with a generator that drops notices.
func Distribute(req Request) ([]Entry, error) {
	return defaultGenerator.Distribute(req)
}

// Year returns the year a request resolves to.
func (g *Generator) Year(req Request) int {
	if req.Year == 0 {
		return g.now().Year()
	}
	return req.Year
}

// Distribute returns one entry per working day, in date order. On error no
// entries are returned.
func (g *Generator) Distribute(req Request) ([]Entry, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: %d is not between 1 and 12", ErrInvalidMonth, req.Month)
	}
	if err := checkHours("hours worked", req.HoursWorked); err != nil {
		return nil, err
	}
	if err := checkHours("max hours per day", req.MaxHoursPerDay); err != nil {
		return nil, err
	}

	year := g.Year(req)
	month := time.Month(req.Month)
	hours := decimal.NewFromFloat(req.HoursWorked)
	maxPerDay := roundHalf(decimal.NewFromFloat(req.MaxHoursPerDay))

	business := BusinessDays(year, month)
	working, leaveCount, err := ResolveWorkingDays(business, year, month, req.LeaveCount, req.LeaveDays)
	if err != nil {
		return nil, err
	}

	workingCount, err := ValidateWorkingDays(len(business), leaveCount)
	if err != nil {
		return nil, err
	}
	if err := ValidateCapacity(hours, maxPerDay, workingCount); err != nil {
		return nil, err
	}

	return Allocate(year, month, working, hours, maxPerDay, g.notifier), nil
}

func checkHours(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidHours, name)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s cannot be negative (%g)", ErrInvalidHours, name, v)
	}
	return nil
}
