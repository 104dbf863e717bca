package invoker

import (
	"github.com/jsamuelsen11/go-command-invoker/internal/command"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/telemetry"
)

// Option configures an Invoker instance.
type Option func(*Invoker)

// WithMetrics records step and rollback counts and run duration. A nil
// Metrics disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(inv *Invoker) {
		inv.metrics = m
	}
}

// WithSequence gives the instance its own sequence. New fails with
// ErrSequenceConflict when the definition already declares one.
func WithSequence(steps ...command.Factory) Option {
	return func(inv *Invoker) {
		inv.pending = append(inv.pending, steps)
	}
}
