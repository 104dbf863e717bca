package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
)

// TransferOptions holds flags for the transfer command.
type TransferOptions struct {
	*RootOptions
	From   string
	To     string
	Amount int64
	Seeds  []string
}

// NewTransferCommand creates the transfer command.
func NewTransferCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TransferOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move an amount between two accounts",
		Long: `Move an amount between two accounts.

Example:
  ledgerctl transfer --seed alice=100 --seed bob=0 --from alice --to bob --amount 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTransfer(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "source account ID")
	cmd.Flags().StringVar(&opts.To, "to", "", "destination account ID")
	cmd.Flags().Int64Var(&opts.Amount, "amount", 0, "amount in minor units")
	cmd.Flags().StringArrayVar(&opts.Seeds, "seed", nil, "create an account before the transfer, as id=balance (repeatable)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runTransfer(cmd *cobra.Command, opts *TransferOptions) error {
	seeds, err := parseSeeds(opts.Seeds)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sess, err := openSession(ctx, opts.RootOptions, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	for _, a := range seeds {
		if err := sess.store.CreateAccount(ctx, &a); err != nil {
			return fmt.Errorf("seeding account %s: %w", a.ID, err)
		}
	}

	t, runErr := sess.svc.Transfer(ctx, opts.From, opts.To, opts.Amount)
	if t == nil {
		return runErr
	}

	balances := make(map[string]int64, 2)
	for _, id := range []string{t.From, t.To} {
		if a, err := sess.store.GetAccount(ctx, id); err == nil {
			balances[id] = a.Balance
		}
	}

	if err := writeTransfer(cmd.OutOrStdout(), opts.Format, t, runErr, balances); err != nil {
		return err
	}
	return runErr
}

// parseSeeds turns id=balance pairs into accounts owned by their ID.
func parseSeeds(raw []string) ([]ledger.Account, error) {
	accounts := make([]ledger.Account, 0, len(raw))
	for _, s := range raw {
		id, balance, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("invalid --seed %q: want id=balance", s)
		}
		n, err := strconv.ParseInt(balance, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --seed %q: %w", s, err)
		}
		a := ledger.Account{ID: id, Owner: id, Balance: n}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --seed %q: %w", s, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
