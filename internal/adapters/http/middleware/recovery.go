package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/dto"
)

// errInternalServer is what the client sees for a recovered panic. The panic
// value and stack stay in the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a 500 problem
// document. The panic is logged with its stack and recorded on the request
// span. When the handler has already started its response only the log entry
// is written. http.ErrAbortHandler is re-raised so net/http can abort the
// connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				ctx := r.Context()
				err := panicError(v)

				span := trace.SpanFromContext(ctx)
				span.RecordError(err)
				span.SetStatus(codes.Error, "panic")

				logger.ErrorContext(ctx, "panic recovered",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(ctx)),
					slog.Any("error", err),
					slog.String("stack", string(debug.Stack())),
				)

				if !sr.sent {
					dto.WriteErrorResponse(sr, r, errInternalServer)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}

func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
