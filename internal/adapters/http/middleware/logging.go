package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
)

// Logging returns middleware that logs each request twice, on arrival and on
// completion. The logger it hands down through logging.WithLogger carries the
// request ID, so transfer and invoker logs for the request share it. Headers
// are logged at debug level with credentials redacted. Completions with a 5xx
// status are logged at warn.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With(slog.String("request_id", RequestIDFromContext(r.Context())))
			ctx := logging.WithLogger(r.Context(), reqLogger)

			reqLogger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			reqLogger.DebugContext(ctx, "request headers", headerGroup(r.Header))

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			level := slog.LevelInfo
			if sr.status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			reqLogger.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sr.status),
				slog.Int64("bytes", sr.size),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
