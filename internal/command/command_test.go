package command_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-invoker/internal/command"
	"github.com/jsamuelsen11/go-command-invoker/internal/validator"
)

var debitRules = validator.Require("amount")

// debit is the canonical example: it requires amount and records calls.
type debit struct {
	command.Base
	attrs struct {
		Amount int64 `attr:"amount"`
	}
	executeErr  error
	executed    int
	compensated int
}

func newDebit(in command.Input) command.Command {
	return newDebitWith(in, nil)
}

func newDebitWith(in command.Input, executeErr error) *debit {
	d := &debit{executeErr: executeErr}
	d.Base = command.NewBase("Debit", in, debitRules, &d.attrs)
	return d
}

func (d *debit) Execute(context.Context) error {
	d.executed++
	return d.executeErr
}

func (d *debit) Compensate(context.Context) error {
	d.compensated++
	return nil
}

// unnamed uses Base without a name so the type name is used instead.
type unnamed struct {
	command.Base
}

// --- Construction and validation ---

func TestNewBase_ValidInput(t *testing.T) {
	t.Parallel()

	d := newDebitWith(command.NewInput().With("amount", 10), nil)

	assert.True(t, d.Valid())
	assert.Empty(t, d.Errors())
	assert.Equal(t, int64(10), d.attrs.Amount)

	v, ok := d.Value("amount")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestNewBase_MissingInputIsSoftGate(t *testing.T) {
	t.Parallel()

	d := newDebitWith(command.NewInput(), nil)

	assert.False(t, d.Valid())
	assert.Equal(t, map[string][]string{"amount": {validator.MsgAttributeMissing}}, d.Errors())

	err := command.Run(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, 1, d.executed, "Execute runs even when validation failed")
}

func TestNewBase_DoesNotExecute(t *testing.T) {
	t.Parallel()

	d := newDebitWith(command.NewInput().With("amount", 1), nil)

	assert.Zero(t, d.executed)
	assert.Zero(t, d.compensated)
}

func TestBase_DefaultsSucceed(t *testing.T) {
	t.Parallel()

	c := &unnamed{Base: command.NewBase("", command.NewInput(), nil, nil)}

	require.NoError(t, command.Run(context.Background(), c))
	require.NoError(t, c.Compensate(context.Background()))
	assert.True(t, c.Valid())
	assert.Equal(t, "unnamed", command.NameOf(c))
}

func TestNewBase_UnboundValueStaysValid(t *testing.T) {
	t.Parallel()

	d := newDebitWith(command.NewInput().With("amount", "ten"), nil)

	assert.True(t, d.Valid())
	assert.Empty(t, d.Errors())
	assert.Zero(t, d.attrs.Amount)

	v, ok := d.Value("amount")
	assert.True(t, ok)
	assert.Equal(t, "ten", v)

	bound := d.BindResult()
	assert.Equal(t, []string{validator.MsgInvalidValue}, bound.Messages("amount"))
}

func TestBase_ValidateReplacesResult(t *testing.T) {
	t.Parallel()

	d := newDebitWith(command.NewInput().With("amount", "ten"), nil)
	first := d.BindResult()
	require.False(t, first.Valid())

	var attrs struct {
		Amount string `attr:"amount"`
	}
	res := d.Validate(&attrs)

	assert.True(t, res.Valid())
	assert.Equal(t, "ten", attrs.Amount)
	second := d.BindResult()
	assert.True(t, second.Valid(), "a new pass replaces the bind result")
}

func TestBase_ValidateReportsMissing(t *testing.T) {
	t.Parallel()

	d := newDebitWith(command.NewInput(), nil)
	res := d.Validate(nil)

	assert.False(t, res.Valid())
	assert.Equal(t, map[string][]string{"amount": {validator.MsgAttributeMissing}}, d.Errors())

	zero := &unnamed{}
	res = zero.Validate(nil)
	assert.True(t, res.Valid())
}

// --- Run ---

func TestRun_Success(t *testing.T) {
	t.Parallel()

	d := newDebitWith(command.NewInput().With("amount", 10), nil)

	require.NoError(t, command.Run(context.Background(), d))
	assert.Equal(t, 1, d.executed)
	assert.Zero(t, d.compensated)
}

func TestRun_FailureWrapsCauseWithoutCompensating(t *testing.T) {
	t.Parallel()

	cause := errors.New("test message")
	d := newDebitWith(command.NewInput().With("amount", 10), cause)

	err := command.Run(context.Background(), d)

	require.Error(t, err)
	assert.Zero(t, d.compensated, "Run must not compensate")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, command.ErrCommandFailed)
	assert.NotErrorIs(t, err, command.ErrInvokerFailed)

	f, ok := command.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, command.KindCommand, f.Kind)
	assert.Same(t, d, f.Command)
	assert.Nil(t, f.Invoker)
	assert.NotEmpty(t, f.Trace.Frames())
	assert.Equal(t, "Debit failed with errors.errorString: test message", err.Error())
}

func TestRun_SecondRunFails(t *testing.T) {
	t.Parallel()

	d := newDebitWith(command.NewInput().With("amount", 10), nil)
	require.NoError(t, command.Run(context.Background(), d))

	err := command.Run(context.Background(), d)

	assert.ErrorIs(t, err, command.ErrAlreadyRun)
	assert.ErrorIs(t, err, command.ErrCommandFailed)
	assert.Equal(t, 1, d.executed)
}

// runnable exercises delegation to a command's own Run.
type runnable struct {
	command.Base
	runErr error
	runs   int
}

func (r *runnable) Run(context.Context) error {
	r.runs++
	return r.runErr
}

func TestRun_DelegatesToRunnable(t *testing.T) {
	t.Parallel()

	inner := errors.New("nested")
	r := &runnable{Base: command.NewBase("Nested", command.NewInput(), nil, nil), runErr: inner}

	err := command.Run(context.Background(), r)

	assert.Equal(t, 1, r.runs)
	assert.ErrorIs(t, err, inner)
	f, ok := command.AsFailure(err)
	require.True(t, ok)
	assert.Same(t, r, f.Command)
}

// --- Call ---

func TestCall_ConstructsAndRuns(t *testing.T) {
	t.Parallel()

	c, err := command.Call(context.Background(), newDebit, command.NewInput().With("amount", 5))

	require.NoError(t, err)
	d, ok := c.(*debit)
	require.True(t, ok)
	assert.Equal(t, 1, d.executed)
	assert.Equal(t, int64(5), d.attrs.Amount)
}

// --- Failure ---

func TestFailure_ErrorStrings(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	step := newDebitWith(command.NewInput(), nil)
	inv := &unnamed{Base: command.NewBase("Transfer", command.NewInput(), nil, nil)}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "command",
			err:  command.NewCommandFailure(cause, step),
			want: "Debit failed with errors.errorString: boom",
		},
		{
			name: "invoker with command",
			err:  command.NewInvokerFailure(command.NewCommandFailure(cause, step), inv),
			want: "Transfer: Debit failed with errors.errorString: boom",
		},
		{
			name: "invoker without command",
			err:  command.NewInvokerFailure(cause, inv),
			want: "Transfer: sequence failed with errors.errorString: boom",
		},
		{
			name: "rollback",
			err:  command.NewRollbackFailure(cause, step, inv),
			want: "Transfer: rollback of Debit failed with errors.errorString: boom",
		},
		{
			name: "nil cause",
			err:  command.NewCommandFailure(nil, step),
			want: "Debit failed with <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewInvokerFailure_UnwrapsCommandFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	step := newDebitWith(command.NewInput(), nil)
	inv := &unnamed{Base: command.NewBase("Transfer", command.NewInput(), nil, nil)}
	inner := command.NewCommandFailure(cause, step)

	f := command.NewInvokerFailure(inner, inv)

	assert.Equal(t, command.KindInvoker, f.Kind)
	assert.Same(t, cause, f.Cause)
	assert.Same(t, step, f.Command)
	assert.Same(t, inv, f.Invoker)
	assert.Equal(t, inner.Trace, f.Trace)
	assert.ErrorIs(t, f, command.ErrInvokerFailed)
	assert.NotErrorIs(t, f, command.ErrCommandFailed)
}

func TestFailure_KindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "command_failure", command.KindCommand.String())
	assert.Equal(t, "invoker_failure", command.KindInvoker.String())
	assert.Equal(t, "invoker_rollback_failure", command.KindInvokerRollback.String())
	assert.Equal(t, "unknown", command.Kind(0).String())
}

func TestTrace_String(t *testing.T) {
	t.Parallel()

	f := command.NewCommandFailure(errors.New("x"), newDebitWith(command.NewInput(), nil))

	assert.Contains(t, f.Trace.String(), "command_test.TestTrace_String")
	assert.True(t, strings.HasSuffix(f.Trace.String(), "\n"))
}

type customErr struct{ code int }

func (e *customErr) Error() string { return "custom" }

func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "command_test.customErr", command.TypeName(&customErr{}))
	assert.Equal(t, "<nil>", command.TypeName(nil))
	assert.Equal(t, "int", command.TypeName(3))
}
