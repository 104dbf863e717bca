package invoker

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-command-invoker/internal/command"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/telemetry"
)

// Invoker is one run of a Definition. It is itself a command: it can be a
// step of another invoker, in which case its Compensate unwinds its own
// called steps.
//
// An Invoker is single use and not safe for concurrent use.
type Invoker struct {
	command.Base

	defSteps []command.Factory
	steps    []command.Factory
	override bool
	pending  [][]command.Factory
	initErr  error

	called  []command.Command
	state   State
	metrics *telemetry.Metrics
}

// Invoke declares the instance-level sequence. It fails with
// ErrSequenceConflict when the definition already declares one, and with
// command.ErrAlreadyRun once the instance has started.
func (inv *Invoker) Invoke(steps ...command.Factory) error {
	if inv.state != StateIdle {
		return command.ErrAlreadyRun
	}
	if len(inv.defSteps) > 0 {
		return ErrSequenceConflict
	}
	inv.steps = slices.Clone(steps)
	inv.override = true
	return nil
}

// Sequence returns the effective sequence: the instance-level one when
// declared, the type-level one otherwise.
func (inv *Invoker) Sequence() []command.Factory {
	if inv.override {
		return slices.Clone(inv.steps)
	}
	return slices.Clone(inv.defSteps)
}

// Called returns the commands that completed successfully, in completion
// order. The returned slice is a copy.
func (inv *Invoker) Called() []command.Command {
	return slices.Clone(inv.called)
}

// State returns the lifecycle state.
func (inv *Invoker) State() State { return inv.state }

// Run executes the sequence. When a step fails the called steps are
// compensated in reverse and the returned error is a command.Failure of kind
// KindInvoker naming the failed step. When a compensation fails the unwind
// stops there and the KindInvokerRollback failure is returned instead.
//
// ctx is passed to every Execute and Compensate but is not checked between
// steps: once started, a run proceeds to completion or first failure.
func (inv *Invoker) Run(ctx context.Context) error {
	if inv.initErr != nil {
		return command.NewInvokerFailure(inv.initErr, inv)
	}
	if inv.state != StateIdle {
		return command.NewInvokerFailure(command.ErrAlreadyRun, inv)
	}
	inv.state = StateRunning

	name := command.NameOf(inv)
	ctx, span := tracer().Start(ctx, "Invoker.Run "+name,
		trace.WithAttributes(telemetry.AttrInvoker.String(name)),
	)
	defer span.End()

	start := time.Now()
	err := inv.run(ctx)
	inv.recordRun(ctx, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (inv *Invoker) run(ctx context.Context) error {
	err := inv.execute(ctx)
	if err == nil {
		inv.state = StateCompleted
		return nil
	}

	// Rollback runs even when ctx is already done; a cancelled caller must
	// not leave the called steps applied.
	if rbErr := inv.Compensate(context.WithoutCancel(ctx)); rbErr != nil {
		return rbErr
	}
	return command.NewInvokerFailure(err, inv)
}

// Execute runs the sequence without rollback. It returns the failing step's
// command.Failure unchanged; Run is the entry point that compensates.
//
// Execute shares Run's single-use guard: once either has started, further
// calls fail with command.ErrAlreadyRun and no step runs again.
func (inv *Invoker) Execute(ctx context.Context) error {
	if inv.initErr != nil {
		return command.NewInvokerFailure(inv.initErr, inv)
	}
	if inv.state != StateIdle {
		return command.NewInvokerFailure(command.ErrAlreadyRun, inv)
	}
	inv.state = StateRunning

	if err := inv.execute(ctx); err != nil {
		return err
	}
	inv.state = StateCompleted
	return nil
}

func (inv *Invoker) execute(ctx context.Context) error {
	steps := inv.Sequence()
	logger := logging.FromContext(ctx)
	name := command.NameOf(inv)

	for i, step := range steps {
		c := step(inv.Input())
		if c == nil {
			return command.NewCommandFailure(ErrNilCommand, nil)
		}
		cmdName := command.NameOf(c)

		logger.InfoContext(ctx, "running command",
			slog.String("operation", "Invoker.Run"),
			slog.String("invoker", name),
			slog.Int("step", i+1),
			slog.Int("total", len(steps)),
			slog.String("command", cmdName),
		)

		if err := inv.runStep(ctx, c); err != nil {
			logger.ErrorContext(ctx, "command failed, initiating rollback",
				slog.String("operation", "Invoker.Run"),
				slog.String("invoker", name),
				slog.Int("failed_step", i+1),
				slog.String("command", cmdName),
				slog.Int("called", len(inv.called)),
				slog.Any("error", err),
			)
			return err
		}

		inv.called = append(inv.called, c)
	}

	return nil
}

func (inv *Invoker) runStep(ctx context.Context, c command.Command) error {
	cmdName := command.NameOf(c)
	ctx, span := tracer().Start(ctx, "Command.Run "+cmdName,
		trace.WithAttributes(
			telemetry.AttrInvoker.String(command.NameOf(inv)),
			telemetry.AttrCommand.String(cmdName),
		),
	)
	defer span.End()

	err := command.Run(ctx, c)
	inv.count(ctx, inv.commandRunTotal(), cmdName, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Compensate unwinds the called steps last-first. It stops at the first
// compensation error and returns it as a KindInvokerRollback failure naming
// that step; the earlier steps are left as they are.
//
// A rollback runs at most once. Calling Compensate after it has finished
// fails with ErrAlreadyCompensated and undoes nothing.
func (inv *Invoker) Compensate(ctx context.Context) error {
	if inv.state.Terminal() {
		return command.NewInvokerFailure(ErrAlreadyCompensated, inv)
	}
	inv.state = StateCompensating

	logger := logging.FromContext(ctx)
	name := command.NameOf(inv)

	for i := len(inv.called) - 1; i >= 0; i-- {
		c := inv.called[i]
		cmdName := command.NameOf(c)

		logger.InfoContext(ctx, "compensating command",
			slog.String("operation", "Invoker.Compensate"),
			slog.String("invoker", name),
			slog.Int("step", i+1),
			slog.String("command", cmdName),
		)

		err := inv.compensateStep(ctx, c)
		inv.count(ctx, inv.commandCompensateTotal(), cmdName, err)
		if err != nil {
			logger.ErrorContext(ctx, "compensation failed, halting rollback",
				slog.String("operation", "Invoker.Compensate"),
				slog.String("invoker", name),
				slog.Int("step", i+1),
				slog.String("command", cmdName),
				slog.Int("uncompensated", i),
				slog.Any("error", err),
			)
			inv.state = StateRollbackFailed
			return command.NewRollbackFailure(err, c, inv)
		}
	}

	inv.state = StateCompensated
	return nil
}

func (inv *Invoker) compensateStep(ctx context.Context, c command.Command) error {
	cmdName := command.NameOf(c)
	ctx, span := tracer().Start(ctx, "Command.Compensate "+cmdName,
		trace.WithAttributes(
			telemetry.AttrInvoker.String(command.NameOf(inv)),
			telemetry.AttrCommand.String(cmdName),
		),
	)
	defer span.End()

	err := c.Compensate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(telemetry.InstrumentationName)
}

func (inv *Invoker) commandRunTotal() metric.Int64Counter {
	if inv.metrics == nil {
		return nil
	}
	return inv.metrics.CommandRunTotal
}

func (inv *Invoker) commandCompensateTotal() metric.Int64Counter {
	if inv.metrics == nil {
		return nil
	}
	return inv.metrics.CommandCompensateTotal
}

// count adds one to counter labelled with the step outcome. Safe to call with
// a nil counter.
func (inv *Invoker) count(ctx context.Context, counter metric.Int64Counter, cmdName string, err error) {
	if counter == nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrInvoker.String(command.NameOf(inv)),
		telemetry.AttrCommand.String(cmdName),
		telemetry.AttrResult.String(result(err)),
	))
}

// recordRun records the run duration. Safe to call with nil metrics.
func (inv *Invoker) recordRun(ctx context.Context, start time.Time, err error) {
	if inv.metrics == nil {
		return
	}

	kind := "none"
	if f, ok := command.AsFailure(err); ok {
		kind = f.Kind.String()
	}

	inv.metrics.InvokerRunDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		telemetry.AttrInvoker.String(command.NameOf(inv)),
		telemetry.AttrResult.String(result(err)),
		telemetry.AttrFailureKind.String(kind),
	))
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
