package cli

import (
	"github.com/spf13/cobra"
)

// AccountOptions holds flags for the account commands.
type AccountOptions struct {
	*RootOptions
	Owner   string
	Balance int64
}

// NewAccountCommand creates the account command group.
func NewAccountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AccountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Open and inspect accounts",
	}

	open := &cobra.Command{
		Use:   "open",
		Short: "Open an account with a generated ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return openAccount(cmd, opts)
		},
	}
	open.Flags().StringVar(&opts.Owner, "owner", "", "account owner")
	open.Flags().Int64Var(&opts.Balance, "balance", 0, "opening balance in minor units")
	_ = open.MarkFlagRequired("owner")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print an account and its balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showAccount(cmd, opts, args[0])
		},
	}

	cmd.AddCommand(open, show)
	return cmd
}

func openAccount(cmd *cobra.Command, opts *AccountOptions) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, opts.RootOptions, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	a, err := sess.svc.OpenAccount(ctx, opts.Owner, opts.Balance)
	if err != nil {
		return err
	}
	return writeAccount(cmd.OutOrStdout(), opts.Format, a)
}

func showAccount(cmd *cobra.Command, opts *AccountOptions, id string) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, opts.RootOptions, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	a, err := sess.svc.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	return writeAccount(cmd.OutOrStdout(), opts.Format, a)
}
