package ports

import (
	"context"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
)

// LedgerStore defines the storage port for accounts and transfer records.
// Implemented by the memory and sqlite adapters; called by the transfer
// commands and the application layer.
type LedgerStore interface {
	// CreateAccount inserts a new account.
	// Returns domain.ErrConflict if the ID is already taken.
	CreateAccount(ctx context.Context, account *ledger.Account) error

	// GetAccount returns a single account by ID.
	// Returns domain.ErrNotFound if the account does not exist.
	GetAccount(ctx context.Context, id string) (*ledger.Account, error)

	// Debit subtracts amount from the account balance atomically and returns
	// the updated account. Returns *ledger.InsufficientFundsError when the
	// balance is too low and domain.ErrNotFound for an unknown account.
	Debit(ctx context.Context, id string, amount int64) (*ledger.Account, error)

	// Credit adds amount to the account balance atomically and returns the
	// updated account. Returns domain.ErrNotFound for an unknown account.
	Credit(ctx context.Context, id string, amount int64) (*ledger.Account, error)

	// SaveTransfer inserts or replaces a transfer record.
	SaveTransfer(ctx context.Context, transfer *ledger.Transfer) error

	// GetTransfer returns a single transfer record by ID.
	// Returns domain.ErrNotFound if the transfer does not exist.
	GetTransfer(ctx context.Context, id string) (*ledger.Transfer, error)
}
