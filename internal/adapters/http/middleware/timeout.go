package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
)

// Timeout returns middleware that bounds each request by timeout. The
// handler's context carries the deadline, so every command of a transfer sees
// it. If the handler is still running when the deadline passes the client
// gets a 504 problem document; the transfer service keeps going and records
// the outcome on its own.
//
// A timeout of zero or less returns next unchanged.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			dw := &deadlineWriter{header: make(http.Header)}
			finished := make(chan struct{})

			go func() {
				defer close(finished)
				next.ServeHTTP(dw, r.WithContext(ctx))
			}()

			select {
			case <-finished:
				dw.copyTo(w)
			case <-ctx.Done():
				if dw.expire() {
					logging.FromContext(ctx).WarnContext(ctx, "request deadline exceeded",
						slog.String("path", r.URL.Path),
						slog.Duration("timeout", timeout),
					)
					dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", timeout, ctx.Err()))
				}
			}
		})
	}
}

// deadlineWriter holds the handler's response until it finishes. Once the
// deadline path claims the response, later handler writes are dropped.
type deadlineWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (dw *deadlineWriter) Header() http.Header {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return dw.header
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.status == 0 && !dw.expired {
		dw.status = code
	}
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if dw.status == 0 {
		dw.status = http.StatusOK
	}
	dw.body = append(dw.body, b...)
	return len(b), nil
}

// expire claims the response for the deadline path. It reports false when
// the handler had already written a status, in which case nothing is sent.
func (dw *deadlineWriter) expire() bool {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.expired = true
	return dw.status == 0
}

func (dw *deadlineWriter) copyTo(w http.ResponseWriter) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	maps.Copy(w.Header(), dw.header)
	if dw.status != 0 {
		w.WriteHeader(dw.status)
	}
	if len(dw.body) > 0 {
		_, _ = w.Write(dw.body)
	}
}
