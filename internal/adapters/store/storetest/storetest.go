// Package storetest holds the behavior every ports.LedgerStore implementation
// must share. Adapter test files call Run with their own constructor.
package storetest

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

// Run exercises newStore against the LedgerStore contract. newStore must
// return an empty store that is independent of every other call.
func Run(t *testing.T, newStore func(t *testing.T) ports.LedgerStore) {
	t.Helper()

	t.Run("CreateAndGetAccount", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		ctx := context.Background()

		created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.CreateAccount(ctx, &ledger.Account{
			ID: "acc-1", Owner: "alice", Balance: 100, CreatedAt: created, UpdatedAt: created,
		}))

		got, err := s.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Owner)
		assert.Equal(t, int64(100), got.Balance)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("CreateAccountConflict", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.CreateAccount(ctx, &ledger.Account{ID: "acc-1", Owner: "alice"}))
		err := s.CreateAccount(ctx, &ledger.Account{ID: "acc-1", Owner: "bob"})

		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("GetAccountNotFound", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)

		_, err := s.GetAccount(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("DebitAndCredit", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateAccount(ctx, &ledger.Account{ID: "acc-1", Owner: "alice", Balance: 100}))

		a, err := s.Debit(ctx, "acc-1", 30)
		require.NoError(t, err)
		assert.Equal(t, int64(70), a.Balance)

		a, err = s.Credit(ctx, "acc-1", 5)
		require.NoError(t, err)
		assert.Equal(t, int64(75), a.Balance)

		got, err := s.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, int64(75), got.Balance)
	})

	t.Run("DebitInsufficientFunds", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateAccount(ctx, &ledger.Account{ID: "acc-1", Owner: "alice", Balance: 10}))

		_, err := s.Debit(ctx, "acc-1", 11)

		var insufficient *ledger.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(10), insufficient.Balance)
		assert.Equal(t, int64(11), insufficient.Amount)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		got, err := s.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.Balance, "failed debit leaves balance unchanged")
	})

	t.Run("DebitCreditUnknownAccount", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		ctx := context.Background()

		_, err := s.Debit(ctx, "missing", 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.Credit(ctx, "missing", 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("CreditOverflowRefused", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateAccount(ctx, &ledger.Account{ID: "acc-1", Owner: "alice", Balance: math.MaxInt64 - 2}))

		a, err := s.Credit(ctx, "acc-1", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), a.Balance)

		_, err = s.Credit(ctx, "acc-1", 5)

		var overflow *ledger.BalanceOverflowError
		require.ErrorAs(t, err, &overflow)
		assert.Equal(t, int64(math.MaxInt64), overflow.Balance)
		assert.Equal(t, int64(5), overflow.Amount)
		assert.ErrorIs(t, err, domain.ErrConflict)

		got, err := s.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), got.Balance, "refused credit leaves balance unchanged")
	})

	t.Run("ConcurrentDebitsNeverOverdraw", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.CreateAccount(ctx, &ledger.Account{ID: "acc-1", Owner: "alice", Balance: 10}))

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = s.Debit(ctx, "acc-1", 1)
			}()
		}
		wg.Wait()

		got, err := s.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Balance)
	})

	t.Run("SaveAndGetTransfer", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)
		ctx := context.Background()

		tr := &ledger.Transfer{
			ID: "tr-1", From: "a", To: "b", Amount: 5, Status: ledger.TransferPending,
			CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
		}
		require.NoError(t, s.SaveTransfer(ctx, tr))

		tr.Status = ledger.TransferRolledBack
		tr.FailureKind = "invoker_failure"
		tr.FailedCommand = "Deposit"
		require.NoError(t, s.SaveTransfer(ctx, tr))

		got, err := s.GetTransfer(ctx, "tr-1")
		require.NoError(t, err)
		assert.Equal(t, ledger.TransferRolledBack, got.Status)
		assert.Equal(t, "invoker_failure", got.FailureKind)
		assert.Equal(t, "Deposit", got.FailedCommand)
		assert.Equal(t, int64(5), got.Amount)
	})

	t.Run("GetTransferNotFound", func(t *testing.T) {
		t.Parallel()
		s := newStore(t)

		_, err := s.GetTransfer(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
