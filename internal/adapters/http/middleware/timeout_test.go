package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
)

func TestTimeout_PassesThroughFinishedResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus   int
		wantBody     string
		wantLocation string
	}{
		{
			name: "explicit status and header",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/transfers/t-1")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"t-1"}`))
			},
			wantStatus:   http.StatusCreated,
			wantBody:     `{"id":"t-1"}`,
			wantLocation: "/api/v1/transfers/t-1",
		},
		{
			name: "implicit status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("alive"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "alive",
		},
		{
			name: "status without body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", http.NoBody)
			middleware.Timeout(time.Second)(tt.handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}

func TestTimeout_WritesGatewayTimeoutProblem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lateWrite := make(chan error, 1)

	handler := middleware.Timeout(30 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(50 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", http.NoBody)
	req = req.WithContext(logging.WithLogger(req.Context(), testLogger(&buf)))
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
	if !strings.Contains(buf.String(), "request deadline exceeded") {
		t.Errorf("log output missing deadline warning: %s", buf.String())
	}

	select {
	case err := <-lateWrite:
		if !errors.Is(err, http.ErrHandlerTimeout) {
			t.Errorf("late Write() error = %v, want %v", err, http.ErrHandlerTimeout)
		}
	case <-time.After(time.Second):
		t.Fatal("handler never attempted its late write")
	}
	if strings.Contains(rec.Body.String(), "too late") {
		t.Error("late handler output leaked into the response")
	}
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	handler := middleware.Timeout(time.Minute)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		deadline, _ = r.Context().Deadline()
	}))

	before := time.Now()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if deadline.IsZero() {
		t.Fatal("request context has no deadline")
	}
	if deadline.Before(before.Add(59 * time.Second)) {
		t.Errorf("deadline = %v, want about a minute after %v", deadline, before)
	}
}

func TestTimeout_DisabledWhenNotPositive(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		var hasDeadline bool
		handler := middleware.Timeout(d)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		}))

		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody).WithContext(context.Background())
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if hasDeadline {
			t.Errorf("Timeout(%s) set a deadline, want none", d)
		}
	}
}
