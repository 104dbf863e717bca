// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-command-invoker/internal/command"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
	"github.com/jsamuelsen11/go-command-invoker/internal/invoker"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

// Compile-time check that TransferService implements ports.TransferService.
var _ ports.TransferService = (*TransferService)(nil)

// TransferService implements ports.TransferService. Each transfer is one run
// of the Transfer invoker: Withdraw, Deposit, Notify.
type TransferService struct {
	store    ports.LedgerStore
	transfer *invoker.Definition
	timeout  time.Duration
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewTransferService creates a TransferService. notifier may be nil, in which
// case the Notify step does nothing. A positive timeout bounds each transfer
// run; metrics may be nil.
func NewTransferService(
	store ports.LedgerStore,
	notifier ports.Notifier,
	timeout time.Duration,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *TransferService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TransferService{
		store:    store,
		transfer: NewTransferDefinition(store, notifier),
		timeout:  timeout,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// NewTransferDefinition declares the Transfer invoker type over store and
// notifier.
func NewTransferDefinition(store ports.LedgerStore, notifier ports.Notifier) *invoker.Definition {
	return invoker.Define("Transfer",
		NewWithdraw(store),
		NewDeposit(store),
		NewNotify(notifier),
	).Require(AttrTransferID, AttrFrom, AttrTo, AttrAmount)
}

// OpenAccount creates an account with a generated ID.
func (s *TransferService) OpenAccount(ctx context.Context, owner string, balance int64) (*ledger.Account, error) {
	s.logger.InfoContext(ctx, "opening account", slog.String("owner", owner))

	now := s.now().UTC()
	account := &ledger.Account{
		ID:        s.newID(),
		Owner:     owner,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		s.logger.ErrorContext(ctx, "failed to open account",
			slog.String("operation", "OpenAccount"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return account, nil
}

// GetAccount returns an account and its current balance.
func (s *TransferService) GetAccount(ctx context.Context, id string) (*ledger.Account, error) {
	account, err := s.store.GetAccount(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch account",
			slog.String("operation", "GetAccount"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return account, nil
}

// Transfer validates the request, records it as pending, runs the Transfer
// invoker and records the outcome. The final record is saved even when ctx
// has expired so that a rolled back transfer is never left pending.
func (s *TransferService) Transfer(ctx context.Context, from, to string, amount int64) (*ledger.Transfer, error) {
	now := s.now().UTC()
	t := &ledger.Transfer{
		ID:        s.newID(),
		From:      from,
		To:        to,
		Amount:    amount,
		Status:    ledger.TransferPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	logger := s.logger.With(slog.String("transfer_id", t.ID))
	logger.InfoContext(ctx, "starting transfer",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int64("amount", amount),
	)

	if err := s.store.SaveTransfer(ctx, t); err != nil {
		logger.ErrorContext(ctx, "failed to record transfer",
			slog.String("operation", "Transfer"),
			slog.Any("error", err),
		)
		return nil, err
	}

	runErr := s.run(logging.WithLogger(ctx, logger), t)
	applyOutcome(t, runErr)
	t.UpdatedAt = s.now().UTC()

	if err := s.store.SaveTransfer(context.WithoutCancel(ctx), t); err != nil {
		logger.ErrorContext(ctx, "failed to record transfer outcome",
			slog.String("operation", "Transfer"),
			slog.String("status", string(t.Status)),
			slog.Any("error", err),
		)
		return t, errors.Join(runErr, err)
	}

	if runErr != nil {
		logger.ErrorContext(ctx, "transfer failed",
			slog.String("operation", "Transfer"),
			slog.String("status", string(t.Status)),
			slog.Any("error", runErr),
			slog.Group("failure", logging.FailureAttrs(runErr)...),
		)
		return t, runErr
	}

	logger.InfoContext(ctx, "transfer completed")
	return t, nil
}

func (s *TransferService) run(ctx context.Context, t *ledger.Transfer) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	in := command.NewInput().
		With(AttrTransferID, t.ID).
		With(AttrFrom, t.From).
		With(AttrTo, t.To).
		With(AttrAmount, t.Amount)

	_, err := s.transfer.Call(ctx, in, invoker.WithMetrics(s.metrics))
	return err
}

// applyOutcome maps a run result onto the transfer record.
func applyOutcome(t *ledger.Transfer, err error) {
	if err == nil {
		t.Status = ledger.TransferCompleted
		return
	}

	t.Status = ledger.TransferRolledBack
	f, ok := command.AsFailure(err)
	if !ok {
		return
	}
	t.FailureKind = f.Kind.String()
	if f.Command != nil {
		t.FailedCommand = command.NameOf(f.Command)
	}
	if f.Kind == command.KindInvokerRollback {
		t.Status = ledger.TransferRollbackFailed
	}
}

// GetTransfer returns a recorded transfer.
func (s *TransferService) GetTransfer(ctx context.Context, id string) (*ledger.Transfer, error) {
	t, err := s.store.GetTransfer(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch transfer",
			slog.String("operation", "GetTransfer"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}
