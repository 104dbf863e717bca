package command

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Kind tags the variant of a Failure.
type Kind int

// Failure variants.
const (
	// KindCommand is a single command whose Execute returned an error.
	KindCommand Kind = iota + 1
	// KindInvoker is an invoker whose sequence failed and was compensated.
	KindInvoker
	// KindInvokerRollback is an invoker whose compensation itself failed.
	KindInvokerRollback
)

// String returns the kind's stable name for logs and API responses.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command_failure"
	case KindInvoker:
		return "invoker_failure"
	case KindInvokerRollback:
		return "invoker_rollback_failure"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against a *Failure of the corresponding kind.
var (
	ErrCommandFailed  = errors.New("command failed")
	ErrInvokerFailed  = errors.New("invoker failed")
	ErrRollbackFailed = errors.New("invoker rollback failed")
)

// Failure is the error returned by Run and by an invoker's Run. All three
// variants share one shape; Command and Invoker are nil when not applicable.
type Failure struct {
	Kind    Kind
	Cause   error
	Command Command
	Invoker Command
	Trace   Trace
}

// NewCommandFailure wraps cause as the failure of cmd.
func NewCommandFailure(cause error, cmd Command) *Failure {
	return &Failure{
		Kind:    KindCommand,
		Cause:   cause,
		Command: cmd,
		Trace:   captureTrace(),
	}
}

// NewInvokerFailure wraps the failure of a sequence run by inv. When cause is
// (or wraps) a *Failure, its cause, command and trace are carried over so the
// result names the step that actually failed.
func NewInvokerFailure(cause error, inv Command) *Failure {
	f := &Failure{Kind: KindInvoker, Cause: cause, Invoker: inv}
	if inner, ok := AsFailure(cause); ok {
		f.Cause = inner.Cause
		f.Command = inner.Command
		f.Trace = inner.Trace
	}
	if f.Trace == nil {
		f.Trace = captureTrace()
	}
	return f
}

// NewRollbackFailure wraps the error returned by cmd's Compensate while inv
// was unwinding.
func NewRollbackFailure(cause error, cmd, inv Command) *Failure {
	return &Failure{
		Kind:    KindInvokerRollback,
		Cause:   cause,
		Command: cmd,
		Invoker: inv,
		Trace:   captureTrace(),
	}
}

// AsFailure extracts the outermost *Failure from err.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Error renders "<Command> failed with <CauseType>: <message>", prefixed with
// the invoker name for invoker variants.
func (f *Failure) Error() string {
	var b strings.Builder

	if f.Invoker != nil {
		b.WriteString(NameOf(f.Invoker))
		b.WriteString(": ")
		if f.Kind == KindInvokerRollback {
			b.WriteString("rollback of ")
		}
	}

	switch {
	case f.Command != nil:
		b.WriteString(NameOf(f.Command))
	case f.Invoker != nil:
		b.WriteString("sequence")
	default:
		b.WriteString("command")
	}

	b.WriteString(" failed with ")
	if f.Cause == nil {
		b.WriteString("<nil>")
		return b.String()
	}
	fmt.Fprintf(&b, "%s: %s", TypeName(f.Cause), f.Cause.Error())
	return b.String()
}

// StackTrace returns the trace captured where the failure was created.
func (f *Failure) StackTrace() Trace {
	return f.Trace
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error {
	return f.Cause
}

// Is matches the sentinel for the failure's kind.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrCommandFailed:
		return f.Kind == KindCommand
	case ErrInvokerFailed:
		return f.Kind == KindInvoker
	case ErrRollbackFailed:
		return f.Kind == KindInvokerRollback
	default:
		return false
	}
}

// Trace is a captured call stack.
type Trace []uintptr

// maxTraceDepth bounds the number of frames captured per failure.
const maxTraceDepth = 32

// captureTrace records the caller's stack, skipping runtime.Callers, this
// function and the Failure constructor.
func captureTrace() Trace {
	pcs := make([]uintptr, maxTraceDepth)
	n := runtime.Callers(3, pcs)
	return Trace(pcs[:n])
}

// Frames resolves the trace into runtime frames.
func (t Trace) Frames() []runtime.Frame {
	if len(t) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(t)
	out := make([]runtime.Frame, 0, len(t))
	for {
		frame, more := frames.Next()
		out = append(out, frame)
		if !more {
			break
		}
	}
	return out
}

// String formats the trace one frame per line as "function\n\tfile:line".
func (t Trace) String() string {
	var b strings.Builder
	for _, f := range t.Frames() {
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return b.String()
}

// TypeName returns the dynamic type name of v without pointer indirection,
// e.g. "errors.errorString" or "ledger.InsufficientFundsError".
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// NameOf returns cmd's name, falling back to its Go type name.
func NameOf(cmd Command) string {
	if cmd == nil {
		return ""
	}
	if name := cmd.Name(); name != "" {
		return name
	}
	t := reflect.TypeOf(cmd)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
