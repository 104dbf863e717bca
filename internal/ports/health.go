package ports

import "context"

// HealthChecker reports whether one dependency can serve the ledger.
// The sqlite store pings its database; the webhook client reads its
// circuit breaker.
type HealthChecker interface {
	// Name labels the check in readiness output ("ledger-store",
	// "ledger-webhooks").
	Name() string

	// HealthCheck returns nil when healthy. It must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check and returns the outcome by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
