// Package invoker runs an ordered sequence of commands as one unit and
// unwinds the completed ones in reverse when a step fails.
//
// A sequence is usually declared once per invoker type:
//
//	transfer := invoker.Define("Transfer",
//	    app.NewWithdraw(store),
//	    app.NewDeposit(store),
//	    app.NewNotify(notifier),
//	).Require("transfer_id", "from", "to", "amount")
//
//	inv, err := transfer.Call(ctx, in)
//
// An invoker type without a declared sequence lets each instance supply its
// own through Invoke or WithSequence. Declaring both is rejected with
// ErrSequenceConflict.
//
// Each step is constructed from the invoker's input, run through
// command.Run, and appended to Called only when it succeeds. On failure the
// called steps are compensated last-first and the first compensation error
// stops the unwind.
package invoker

import (
	"context"
	"errors"
	"slices"

	"github.com/jsamuelsen11/go-command-invoker/internal/command"
	"github.com/jsamuelsen11/go-command-invoker/internal/validator"
)

var (
	// ErrSequenceConflict is returned when an instance declares a sequence
	// while its definition already has one.
	ErrSequenceConflict = errors.New("invoker: sequence already declared by definition")

	// ErrNilCommand is the cause reported when a step factory returns nil.
	ErrNilCommand = errors.New("invoker: step factory returned nil command")

	// ErrAlreadyCompensated is the cause reported when Compensate is called on
	// an instance whose rollback has already finished.
	ErrAlreadyCompensated = errors.New("invoker: instance already compensated")
)

// Definition is an invoker type: a name, a default sequence, and the
// attributes every instance requires. Configure a Definition during package
// initialization; it is safe for concurrent use by New and Call afterwards.
type Definition struct {
	name  string
	steps []command.Factory
	rules *validator.Rules
}

// Define creates an invoker type. The steps become the type-level sequence;
// none means instances supply their own.
func Define(name string, steps ...command.Factory) *Definition {
	return &Definition{
		name:  name,
		steps: slices.Clone(steps),
		rules: validator.Require(),
	}
}

// Declare replaces the type-level sequence. Instances created earlier keep
// the sequence they were created with.
func (d *Definition) Declare(steps ...command.Factory) *Definition {
	d.steps = slices.Clone(steps)
	return d
}

// Require adds invoker-level presence rules, validated against the shared
// input when an instance is created.
func (d *Definition) Require(attrs ...string) *Definition {
	d.rules.Require(attrs...)
	return d
}

// Name returns the invoker type name.
func (d *Definition) Name() string { return d.name }

// Steps returns a copy of the type-level sequence.
func (d *Definition) Steps() []command.Factory {
	return slices.Clone(d.steps)
}

// New constructs an instance with the shared input. Like a command, the
// instance is validated but never rejected for missing attributes. The only
// construction error is a WithSequence option conflicting with the
// type-level sequence.
func (d *Definition) New(in command.Input, opts ...Option) (*Invoker, error) {
	inv := &Invoker{
		Base:     command.NewBase(d.name, in, d.rules, nil),
		defSteps: d.Steps(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	for _, steps := range inv.pending {
		if err := inv.Invoke(steps...); err != nil {
			inv.initErr = err
			return inv, err
		}
	}
	inv.pending = nil
	return inv, nil
}

// Call constructs an instance and runs it. The instance is returned even when
// construction or the run fails so callers can inspect Called and State.
func (d *Definition) Call(ctx context.Context, in command.Input, opts ...Option) (*Invoker, error) {
	inv, err := d.New(in, opts...)
	if err != nil {
		return inv, command.NewInvokerFailure(err, inv)
	}
	return inv, inv.Run(ctx)
}

// Factory adapts the definition into a command.Factory so an invoker can be
// a step of another invoker. A construction error surfaces when the nested
// instance runs.
func (d *Definition) Factory(opts ...Option) command.Factory {
	return func(in command.Input) command.Command {
		inv, _ := d.New(in, opts...)
		return inv
	}
}
