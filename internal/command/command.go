// Package command defines the reversible unit of work and its failure
// taxonomy.
//
// A concrete command embeds Base, declares its required attributes once, and
// implements Execute and optionally Compensate:
//
//	var withdrawRules = validator.Require("account", "amount")
//
//	type Withdraw struct {
//	    command.Base
//	    attrs struct {
//	        Account string `attr:"account"`
//	        Amount  int64  `attr:"amount"`
//	    }
//	}
//
//	func NewWithdraw(in command.Input) command.Command {
//	    w := &Withdraw{}
//	    w.Base = command.NewBase("Withdraw", in, withdrawRules, &w.attrs)
//	    return w
//	}
//
// Run is the only entry point orchestrators use. It executes the command and
// translates any error into a *Failure; it never compensates.
package command

import (
	"context"
	"errors"

	"github.com/jsamuelsen11/go-command-invoker/internal/validator"
)

// ErrAlreadyRun is the cause reported when a command or invoker instance is
// run a second time. Instances are single use.
var ErrAlreadyRun = errors.New("command: instance already run")

// Runnable is implemented by anything that owns its own run semantics, such
// as an invoker. Run delegates to it instead of calling Execute directly.
type Runnable interface {
	Run(ctx context.Context) error
}

// Compensatable undoes the effects of a successful Execute.
type Compensatable interface {
	Compensate(ctx context.Context) error
}

// Validatable exposes the outcome of presence validation.
type Validatable interface {
	Valid() bool
	Errors() map[string][]string
}

// Command is a reversible unit of work.
type Command interface {
	Compensatable
	Validatable

	// Name identifies the command type in errors and logs.
	Name() string

	// Input returns the attribute mapping the command was built from.
	Input() Input

	// Execute performs the work. Validation failures do not stop Execute
	// from being called; implementations that need a hard gate check Valid.
	Execute(ctx context.Context) error
}

// Factory constructs a command from an input. It stands in for a command
// type: invokers hold ordered lists of factories and build a fresh instance
// per run.
type Factory func(in Input) Command

// starter is implemented by Base to enforce single use.
type starter interface {
	begin() error
}

// Base is the embeddable default Command. Its Execute and Compensate do
// nothing and succeed.
type Base struct {
	name      string
	input     Input
	validator *validator.Validator
	ran       bool
}

// NewBase stores in, then validates it against rules. Validated attributes
// are bound into attrs when attrs is a non-nil pointer to a struct with
// `attr` tags. Construction never fails: an invalid input is recorded and
// reported through Valid and Errors.
func NewBase(name string, in Input, rules *validator.Rules, attrs any) Base {
	b := Base{
		name:      name,
		input:     in,
		validator: validator.New(rules),
	}
	b.validator.Run(in, attrs)
	return b
}

// Name returns the name given to NewBase.
func (b *Base) Name() string { return b.name }

// Input returns the attribute mapping.
func (b *Base) Input() Input { return b.input }

// Valid reports whether every required attribute was present.
func (b *Base) Valid() bool {
	if b.validator == nil {
		return true
	}
	return b.validator.Valid()
}

// Errors returns the recorded validation errors.
func (b *Base) Errors() map[string][]string {
	if b.validator == nil {
		return map[string][]string{}
	}
	return b.validator.Errors()
}

// Validation returns the full validation result.
func (b *Base) Validation() validator.Result {
	if b.validator == nil {
		return validator.Result{}
	}
	return b.validator.Result()
}

// BindResult reports present attributes whose values could not be decoded
// into the typed attribute struct. It never affects Valid.
func (b *Base) BindResult() validator.Result {
	if b.validator == nil {
		return validator.Result{}
	}
	return b.validator.BindResult()
}

// Validate re-runs validation against the stored input, binding into attrs
// when it is non-nil. The new result replaces the previous one.
func (b *Base) Validate(attrs any) validator.Result {
	if b.validator == nil {
		b.validator = validator.New(nil)
	}
	return b.validator.Run(b.input, attrs)
}

// Value returns the raw value of a present declared attribute.
func (b *Base) Value(name string) (any, bool) {
	if b.validator == nil {
		return nil, false
	}
	return b.validator.Value(name)
}

// Execute does nothing.
func (b *Base) Execute(context.Context) error { return nil }

// Compensate does nothing.
func (b *Base) Compensate(context.Context) error { return nil }

func (b *Base) begin() error {
	if b.ran {
		return ErrAlreadyRun
	}
	b.ran = true
	return nil
}

// Run executes c and wraps any error into a *Failure of kind KindCommand
// naming c. It does not compensate c; undoing a standalone command is the
// caller's job.
//
// When c is Runnable its own Run is used and a non-nil error is wrapped with
// c as the failing command, so a nested invoker surfaces as one step.
func Run(ctx context.Context, c Command) error {
	if r, ok := c.(Runnable); ok {
		if err := r.Run(ctx); err != nil {
			return NewCommandFailure(err, c)
		}
		return nil
	}

	if s, ok := c.(starter); ok {
		if err := s.begin(); err != nil {
			return NewCommandFailure(err, c)
		}
	}

	if err := c.Execute(ctx); err != nil {
		return NewCommandFailure(err, c)
	}
	return nil
}

// Call constructs a command from in and runs it, returning the instance
// whether or not it failed.
func Call(ctx context.Context, factory Factory, in Input) (Command, error) {
	c := factory(in)
	return c, Run(ctx, c)
}
