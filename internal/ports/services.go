package ports

import (
	"context"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
)

// TransferService defines the service port for the ledger.
// Implemented by the application layer; called by inbound adapters (handlers
// and the CLI).
type TransferService interface {
	// OpenAccount creates an account for owner with an opening balance and
	// returns it with server-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the account fails validation.
	OpenAccount(ctx context.Context, owner string, balance int64) (*ledger.Account, error)

	// GetAccount returns a single account by ID.
	// Returns domain.ErrNotFound if the account does not exist.
	GetAccount(ctx context.Context, id string) (*ledger.Account, error)

	// Transfer moves amount between two accounts as one compensated
	// sequence. The returned record reflects the outcome and is non-nil
	// whenever the sequence ran. A failed run returns a *command.Failure
	// describing which step failed and whether rollback completed.
	// Returns domain.ErrValidation for a malformed request, before anything
	// runs.
	Transfer(ctx context.Context, from, to string, amount int64) (*ledger.Transfer, error)

	// GetTransfer returns a transfer record by ID.
	// Returns domain.ErrNotFound if the transfer does not exist.
	GetTransfer(ctx context.Context, id string) (*ledger.Transfer, error)
}
