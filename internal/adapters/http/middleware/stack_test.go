package middleware_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
)

func TestStack_Order(t *testing.T) {
	exporter := setupTracer(t)

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Stack(testLogger(&buf), nil, time.Second)...)
	r.Get("/api/v1/transfers/{id}", func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		if middleware.RequestIDFromContext(ctx) == "" {
			t.Error("request ID not set before the handler")
		}
		if _, ok := ctx.Deadline(); !ok {
			t.Error("deadline not set before the handler")
		}
		logging.FromContext(ctx).InfoContext(ctx, "loading transfer")
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := serve(r, http.MethodGet, "/api/v1/transfers/t-9")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	reqID := rec.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("response missing X-Request-ID header")
	}

	handlerLine := ""
	for line := range strings.SplitSeq(buf.String(), "\n") {
		if strings.Contains(line, "loading transfer") {
			handlerLine = line
		}
	}
	if !strings.Contains(handlerLine, reqID) {
		t.Errorf("handler log %q missing request_id %q", handlerLine, reqID)
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 || spans[0].Name != "HTTP GET /api/v1/transfers/{id}" {
		t.Errorf("spans = %v, want one named after the route", spans)
	}

	if rec := serve(r, http.MethodGet, "/panic"); rec.Code != http.StatusInternalServerError {
		t.Errorf("panic status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
