// Package memory provides an in-process ledger store for local runs and
// tests. Nothing is persisted.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

// Store is a mutex-guarded in-memory ledger. It is safe for concurrent use.
// Returned entities are copies.
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]ledger.Account
	transfers map[string]ledger.Transfer
	now       func() time.Time
}

var _ ports.LedgerStore = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		accounts:  make(map[string]ledger.Account),
		transfers: make(map[string]ledger.Transfer),
		now:       time.Now,
	}
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "ledger-store" }

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

// CreateAccount inserts a new account.
func (s *Store) CreateAccount(_ context.Context, account *ledger.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; ok {
		return fmt.Errorf("account %s: %w", account.ID, domain.ErrConflict)
	}

	a := *account
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now().UTC()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	s.accounts[a.ID] = a
	*account = a
	return nil
}

// GetAccount returns a single account by ID.
func (s *Store) GetAccount(_ context.Context, id string) (*ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return &a, nil
}

// Debit subtracts amount from the account balance.
func (s *Store) Debit(_ context.Context, id string, amount int64) (*ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	if a.Balance < amount {
		return nil, &ledger.InsufficientFundsError{AccountID: id, Balance: a.Balance, Amount: amount}
	}

	a.Balance -= amount
	a.UpdatedAt = s.now().UTC()
	s.accounts[id] = a
	return &a, nil
}

// Credit adds amount to the account balance. A credit that would overflow
// the balance is refused with *ledger.BalanceOverflowError.
func (s *Store) Credit(_ context.Context, id string, amount int64) (*ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	if !ledger.CanCredit(a.Balance, amount) {
		return nil, &ledger.BalanceOverflowError{AccountID: id, Balance: a.Balance, Amount: amount}
	}

	a.Balance += amount
	a.UpdatedAt = s.now().UTC()
	s.accounts[id] = a
	return &a, nil
}

// SaveTransfer inserts or replaces a transfer record.
func (s *Store) SaveTransfer(_ context.Context, transfer *ledger.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transfers[transfer.ID] = *transfer
	return nil
}

// GetTransfer returns a transfer record by ID.
func (s *Store) GetTransfer(_ context.Context, id string) (*ledger.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transfers[id]
	if !ok {
		return nil, fmt.Errorf("transfer %s: %w", id, domain.ErrNotFound)
	}
	return &t, nil
}
