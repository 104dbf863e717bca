package ports

import (
	"context"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
)

// Notifier defines the client port for transfer notifications.
// Implemented by the webhook adapter; called by the Notify command.
type Notifier interface {
	// Notify delivers one transfer event. Delivery is attempted once.
	// Returns domain.ErrUnavailable when the downstream cannot be reached.
	Notify(ctx context.Context, event ledger.Event) error
}
