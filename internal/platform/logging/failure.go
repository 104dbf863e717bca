package logging

import (
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/go-command-invoker/internal/command"
)

// FailureAttrs returns structured attributes describing a command failure:
// its kind, the failing command and the owning invoker. It returns nil when
// err is not a command failure.
//
//	logger.ErrorContext(ctx, "transfer failed",
//	    slog.String("operation", "Transfer"),
//	    slog.Any("error", err),
//	    slog.Group("failure", logging.FailureAttrs(err)...),
//	)
func FailureAttrs(err error) []any {
	var f *command.Failure
	if !errors.As(err, &f) {
		return nil
	}

	attrs := []any{slog.String("kind", f.Kind.String())}
	if f.Command != nil {
		attrs = append(attrs, slog.String("command", command.NameOf(f.Command)))
	}
	if f.Invoker != nil {
		attrs = append(attrs, slog.String("invoker", command.NameOf(f.Invoker)))
	}
	if f.Cause != nil {
		attrs = append(attrs, slog.String("cause_type", command.TypeName(f.Cause)))
	}
	return attrs
}
