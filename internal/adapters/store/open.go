// Package store selects a ledger store implementation from configuration.
package store

import (
	"context"
	"fmt"
	"io"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/config"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

// Store is a ledger store that reports its health and owns resources that
// must be released on shutdown.
type Store interface {
	ports.LedgerStore
	ports.HealthChecker
	io.Closer
}

var (
	_ Store = (*memory.Store)(nil)
	_ Store = (*sqlite.Store)(nil)
)

// Open returns the store named by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return memory.New(), nil
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
