// Package cli provides the ledgerctl command tree: an inbound adapter that
// runs transfers in-process against a local ledger store.
package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/store"
	"github.com/jsamuelsen11/go-command-invoker/internal/app"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/config"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Driver   string
	DSN      string
	Format   string
	LogLevel string
	Timeout  time.Duration
}

// NewRootCommand creates the ledgerctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Run ledger transfers from the command line",
		Long: `Run ledger transfers from the command line.

Transfers run in-process as a Withdraw, Deposit, Notify sequence. When a step
fails, the completed steps are compensated in reverse order. The memory store
starts empty on every invocation; use --seed to create accounts first, or the
sqlite store to keep state between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Driver, "driver", config.DriverMemory, "ledger store driver (memory|sqlite)")
	flags.StringVar(&opts.DSN, "dsn", "", "sqlite data source name")
	flags.StringVar(&opts.Format, "format", FormatText, "output format (text|json)")
	flags.StringVar(&opts.LogLevel, "log-level", "error", "log level written to stderr")
	flags.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "deadline for one transfer run")

	cmd.AddCommand(NewTransferCommand(opts))
	cmd.AddCommand(NewAccountCommand(opts))

	return cmd
}

// session is one opened store with a service over it.
type session struct {
	store store.Store
	svc   *app.TransferService
}

func (s *session) Close() error {
	return s.store.Close()
}

// openSession opens the configured store. The CLI never sends webhooks, so
// the Notify step is a no-op.
func openSession(ctx context.Context, opts *RootOptions, stderr io.Writer) (*session, error) {
	st, err := store.Open(ctx, config.StoreConfig{Driver: opts.Driver, DSN: opts.DSN})
	if err != nil {
		return nil, err
	}

	logger := logging.New(opts.LogLevel, "text", stderr)
	return &session{
		store: st,
		svc:   app.NewTransferService(st, nil, opts.Timeout, nil, logger),
	}, nil
}
