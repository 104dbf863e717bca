// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	accountHandler *handlers.AccountHandler,
	transferHandler *handlers.TransferHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/accounts", accountHandler.OpenAccount)
		r.Get("/accounts/{id}", accountHandler.GetAccount)

		r.Post("/transfers", transferHandler.CreateTransfer)
		r.Get("/transfers/{id}", transferHandler.GetTransfer)
	})

	return r
}
