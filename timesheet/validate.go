package timesheet

import "github.com/shopspring/decimal"

// ValidateWorkingDays returns the number of days left to work once leave is
// taken out, failing when none are left.
func ValidateWorkingDays(businessDays, leaveCount int) (int, error) {
	working := businessDays - leaveCount
	if working <= 0 {
		return 0, &NoWorkingDaysError{LeaveCount: leaveCount, BusinessDays: businessDays}
	}
	return working, nil
}

// ValidateCapacity fails when hours cannot fit in workingDays at maxPerDay.
// maxPerDay must already be rounded to the half hour.
func ValidateCapacity(hours, maxPerDay decimal.Decimal, workingDays int) error {
	ceiling := maxPerDay.Mul(decimal.NewFromInt(int64(workingDays)))
	if hours.GreaterThan(ceiling) {
		return &CapacityError{
			Requested: hours,
			Ceiling:   ceiling,
			Excess:    hours.Sub(ceiling),
		}
	}
	return nil
}
