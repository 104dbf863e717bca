package app

import (
	"context"
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/command"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
	"github.com/jsamuelsen11/go-command-invoker/internal/validator"
)

// Input attributes shared by the transfer commands.
const (
	AttrTransferID = "transfer_id"
	AttrFrom       = "from"
	AttrTo         = "to"
	AttrAmount     = "amount"
)

var (
	withdrawRules = validator.Require(AttrFrom, AttrAmount)
	depositRules  = validator.Require(AttrTo, AttrAmount)
	notifyRules   = validator.Require(AttrTransferID, AttrFrom, AttrTo, AttrAmount)
)

// Withdraw debits the source account. Unlike the other steps it refuses to
// run with a missing attribute or a value that did not bind.
type Withdraw struct {
	command.Base
	store ports.LedgerStore
	attrs struct {
		From   string `attr:"from"`
		Amount int64  `attr:"amount"`
	}
}

// NewWithdraw returns a factory for Withdraw steps backed by store.
func NewWithdraw(store ports.LedgerStore) command.Factory {
	return func(in command.Input) command.Command {
		w := &Withdraw{store: store}
		w.Base = command.NewBase("Withdraw", in, withdrawRules, &w.attrs)
		return w
	}
}

// Execute debits amount from the source account.
func (w *Withdraw) Execute(ctx context.Context) error {
	res := w.Validation()
	res.Merge(w.BindResult())
	if err := res.Err(); err != nil {
		return err
	}
	_, err := w.store.Debit(ctx, w.attrs.From, w.attrs.Amount)
	return err
}

// Compensate credits the amount back.
func (w *Withdraw) Compensate(ctx context.Context) error {
	_, err := w.store.Credit(ctx, w.attrs.From, w.attrs.Amount)
	return err
}

// Deposit credits the destination account.
type Deposit struct {
	command.Base
	store ports.LedgerStore
	attrs struct {
		To     string `attr:"to"`
		Amount int64  `attr:"amount"`
	}
}

// NewDeposit returns a factory for Deposit steps backed by store.
func NewDeposit(store ports.LedgerStore) command.Factory {
	return func(in command.Input) command.Command {
		d := &Deposit{store: store}
		d.Base = command.NewBase("Deposit", in, depositRules, &d.attrs)
		return d
	}
}

// Execute credits amount to the destination account.
func (d *Deposit) Execute(ctx context.Context) error {
	_, err := d.store.Credit(ctx, d.attrs.To, d.attrs.Amount)
	return err
}

// Compensate debits the amount again.
func (d *Deposit) Compensate(ctx context.Context) error {
	_, err := d.store.Debit(ctx, d.attrs.To, d.attrs.Amount)
	return err
}

// Notify announces a completed transfer. With a nil notifier both Execute
// and Compensate do nothing.
type Notify struct {
	command.Base
	notifier ports.Notifier
	now      func() time.Time
	attrs    struct {
		TransferID string `attr:"transfer_id"`
		From       string `attr:"from"`
		To         string `attr:"to"`
		Amount     int64  `attr:"amount"`
	}
}

// NewNotify returns a factory for Notify steps. notifier may be nil.
func NewNotify(notifier ports.Notifier) command.Factory {
	return func(in command.Input) command.Command {
		n := &Notify{notifier: notifier, now: time.Now}
		n.Base = command.NewBase("Notify", in, notifyRules, &n.attrs)
		return n
	}
}

// Execute posts a transfer.completed event.
func (n *Notify) Execute(ctx context.Context) error {
	return n.send(ctx, ledger.EventTransferCompleted)
}

// Compensate posts a transfer.reversed event.
func (n *Notify) Compensate(ctx context.Context) error {
	return n.send(ctx, ledger.EventTransferReversed)
}

func (n *Notify) send(ctx context.Context, typ ledger.EventType) error {
	if n.notifier == nil {
		return nil
	}
	return n.notifier.Notify(ctx, ledger.Event{
		Type:       typ,
		TransferID: n.attrs.TransferID,
		From:       n.attrs.From,
		To:         n.attrs.To,
		Amount:     n.attrs.Amount,
		OccurredAt: n.now().UTC(),
	})
}
