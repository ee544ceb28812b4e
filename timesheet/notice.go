package timesheet

import "github.com/shopspring/decimal"

// =============================================================================
// NOTICES - Informational output that never changes a result
// =============================================================================

type NoticeKind string

const (
	// NoticeFinalDayAdjusted: the last day's remainder was rounded.
	NoticeFinalDayAdjusted NoticeKind = "final_day_adjusted"
	// NoticeTotalMismatch: the allocation misses the request by more than 0.01.
	NoticeTotalMismatch NoticeKind = "total_mismatch"
)

type Severity string

const (
	SeverityNote    Severity = "note"
	SeverityWarning Severity = "warning"
)

// Notice is a diagnostic raised while allocating.
type Notice struct {
	Kind     NoticeKind
	Severity Severity
	Message  string

	// Set for NoticeFinalDayAdjusted.
	Date        string
	Discrepancy decimal.Decimal

	// Set for NoticeTotalMismatch.
	Allocated decimal.Decimal
	Requested decimal.Decimal
}

// Notifier receives notices. Implementations must not fail.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Discard drops every notice.
var Discard Notifier = NotifierFunc(func(Notice) {})

// NoticeLog collects notices in order. Not safe for concurrent use; give
// each call its own log.
type NoticeLog struct {
	Notices []Notice
}

func (l *NoticeLog) Notify(n Notice) { l.Notices = append(l.Notices, n) }

// Messages returns the notice messages in the order they were raised.
func (l *NoticeLog) Messages() []string {
	msgs := make([]string, len(l.Notices))
	for i, n := range l.Notices {
		msgs[i] = n.Message
	}
	return msgs
}

// MultiNotifier fans a notice out to every non-nil notifier.
func MultiNotifier(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notice) {
		for _, nt := range notifiers {
			if nt != nil {
				nt.Notify(n)
			}
		}
	})
}
