/*
handlers.go - HTTP API handlers for time sheet generation

PURPOSE:
  Exposes the timesheet package over HTTP. Handles request decoding and
  validation, runs the distribution and serializes the result.

ENDPOINTS:
  POST   /api/timesheets                 Distribute hours over a month
  GET    /api/calendar/{year}/{month}    Business days of a month
  GET    /api/health                     Liveness probe

REQUEST FLOW:
  1. Decode JSON body
  2. Validate shape (validator struct tags)
  3. Resolve leave-day text, run timesheet.Generator.Distribute
  4. Serialize entries, total and notices

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, validation errors, invalid leave days
  - 422: Well formed but infeasible (no working days, too many hours)
  - 500: Anything else

STATE:
  None. Every request builds its own generator and notice log, so
  handlers are safe for concurrent use.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warp/timesheet/logging"
	"github.com/warp/timesheet/timesheet"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewHandler creates a handler logging to logger. A nil logger discards.
func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON field names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		Logger:   logger,
		validate: v,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to default the year.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// =============================================================================
// TIME SHEET HANDLERS
// =============================================================================

// CreateTimeSheet distributes hours over the working days of a month.
func (h *Handler) CreateTimeSheet(w http.ResponseWriter, r *http.Request) {
	var req DistributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", validationDetails(err))
		return
	}

	leaveDays := req.LeaveDays
	if req.LeaveDaysText != nil {
		parsed, err := timesheet.ParseLeaveDays(*req.LeaveDaysText)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid leave days", err)
			return
		}
		leaveDays = parsed
	}

	notices := &timesheet.NoticeLog{}
	gen := timesheet.NewGenerator(
		timesheet.WithNotifier(timesheet.MultiNotifier(notices, logging.NoticeLogger(h.Logger))),
		timesheet.WithClock(h.now),
	)

	tsReq := timesheet.Request{
		HoursWorked:    *req.Hours,
		MaxHoursPerDay: *req.MaxHours,
		LeaveCount:     req.Leave,
		Month:          req.Month,
		Year:           req.Year,
		LeaveDays:      leaveDays,
	}

	entries, err := gen.Distribute(tsReq)
	if err != nil {
		h.writeDistributeError(w, err)
		return
	}

	year := gen.Year(tsReq)
	h.Logger.Debug("time sheet generated",
		zap.Int("year", year),
		zap.Int("month", req.Month),
		zap.Int("working_days", len(entries)),
		zap.Int("notices", len(notices.Notices)))

	writeJSON(w, http.StatusOK, toTimeSheetDTO(year, req.Month, entries, notices.Notices))
}

func (h *Handler) writeDistributeError(w http.ResponseWriter, err error) {
	switch {
	case timesheet.IsInfeasible(err):
		writeError(w, http.StatusUnprocessableEntity, "Hours cannot be distributed", err)
	case timesheet.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Invalid time sheet request", err)
	default:
		h.Logger.Error("distribution failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate time sheet", err)
	}
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// GetCalendar lists the business days of a month.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month", fmt.Errorf("%w: %q", timesheet.ErrInvalidMonth, chi.URLParam(r, "month")))
		return
	}

	days := timesheet.BusinessDays(year, time.Month(month))
	writeJSON(w, http.StatusOK, CalendarDTO{
		Year:         year,
		Month:        month,
		DaysInMonth:  timesheet.DaysInMonth(year, time.Month(month)),
		BusinessDays: days,
		Count:        len(days),
	})
}

// Health reports that the server is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// validationDetails turns the first validator failure into a readable error.
func validationDetails(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Errorf("%s failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%s failed on '%s'", fe.Field(), fe.Tag())
}
