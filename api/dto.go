/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupled from the
  timesheet package types (decimal hours become JSON numbers here).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Request shape is checked with go-playground/validator struct tags.
  Business rules (weekends, capacity, leave count agreement) are left to
  the timesheet package so the CLI and API report them identically.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/warp/timesheet/timesheet"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// DistributeRequest is the body of POST /api/timesheets.
//
// Leave is given as leave (a count), leave_days (explicit day numbers),
// leave_days_text (comma separated, as typed on the command line) or a
// combination; leave_days and leave_days_text are mutually exclusive.
type DistributeRequest struct {
	Hours         *float64 `json:"hours" validate:"required,gte=0"`
	MaxHours      *float64 `json:"max_hours" validate:"required,gte=0"`
	Leave         *int     `json:"leave,omitempty" validate:"omitempty,gte=0"`
	LeaveDays     []int    `json:"leave_days,omitempty" validate:"excluded_with=LeaveDaysText"`
	LeaveDaysText *string  `json:"leave_days_text,omitempty"`
	Month         int      `json:"month" validate:"required,min=1,max=12"`
	Year          int      `json:"year,omitempty" validate:"omitempty,min=1"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// EntryDTO is one time sheet line.
type EntryDTO struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// NoticeDTO is a non-fatal diagnostic raised during allocation.
type NoticeDTO struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// TimeSheetDTO is the response of POST /api/timesheets.
type TimeSheetDTO struct {
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	WorkingDays int         `json:"working_days"`
	Entries     []EntryDTO  `json:"entries"`
	Total       float64     `json:"total"`
	Notices     []NoticeDTO `json:"notices"`
}

// CalendarDTO lists a month's business days.
type CalendarDTO struct {
	Year         int   `json:"year"`
	Month        int   `json:"month"`
	DaysInMonth  int   `json:"days_in_month"`
	BusinessDays []int `json:"business_days"`
	Count        int   `json:"count"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toTimeSheetDTO(year, month int, entries []timesheet.Entry, notices []timesheet.Notice) TimeSheetDTO {
	dto := TimeSheetDTO{
		Year:        year,
		Month:       month,
		WorkingDays: len(entries),
		Entries:     make([]EntryDTO, len(entries)),
		Total:       timesheet.SumHours(entries).InexactFloat64(),
		Notices:     make([]NoticeDTO, len(notices)),
	}
	for i, e := range entries {
		dto.Entries[i] = EntryDTO{Date: e.Date, Hours: e.Hours.InexactFloat64()}
	}
	for i, n := range notices {
		dto.Notices[i] = NoticeDTO{Kind: string(n.Kind), Severity: string(n.Severity), Message: n.Message}
	}
	return dto
}
