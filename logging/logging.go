// Package logging builds the zap loggers used by the server and CLI and
// adapts them to time sheet notices and HTTP request logging.
package logging

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/warp/timesheet/timesheet"
)

// New returns a logger at level ("debug", "info", "warn", "error") writing
// format ("json" or "console") to stderr.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "json", "":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q: want json or console", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// NoticeLogger logs notes at info and warnings at warn.
func NoticeLogger(l *zap.Logger) timesheet.Notifier {
	return timesheet.NotifierFunc(func(n timesheet.Notice) {
		fields := []zap.Field{zap.String("kind", string(n.Kind))}
		switch n.Kind {
		case timesheet.NoticeFinalDayAdjusted:
			fields = append(fields,
				zap.String("date", n.Date),
				zap.String("discrepancy", n.Discrepancy.String()))
		case timesheet.NoticeTotalMismatch:
			fields = append(fields,
				zap.String("allocated", n.Allocated.String()),
				zap.String("requested", n.Requested.String()))
		}

		if n.Severity == timesheet.SeverityWarning {
			l.Warn(n.Message, fields...)
			return
		}
		l.Info(n.Message, fields...)
	})
}

// RequestLogger logs one line per request, in place of chi's middleware.Logger.
func RequestLogger(l *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				l.Info("request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
