package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/platform/telemetry"
)

// Stack returns the ledger middleware, outermost first. A nil metrics skips
// metric recording; a non-positive timeout disables the request deadline.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}
