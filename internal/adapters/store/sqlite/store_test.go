package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

func openTempStore(t *testing.T) *sqlite.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")
	s, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore(t *testing.T) {
	t.Parallel()

	storetest.Run(t, func(t *testing.T) ports.LedgerStore {
		return openTempStore(t)
	})
}

func TestOpen_RequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := sqlite.Open(context.Background(), " ")

	assert.Error(t, err)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	s, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.CreateAccount(ctx, &ledger.Account{ID: "acc-1", Owner: "alice", Balance: 42}))
	require.NoError(t, s.Close())

	s, err = sqlite.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Balance)
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s := openTempStore(t)

	assert.Equal(t, "ledger-store", s.Name())
	assert.NoError(t, s.HealthCheck(context.Background()))

	require.NoError(t, s.Close())
	assert.Error(t, s.HealthCheck(context.Background()))
}
