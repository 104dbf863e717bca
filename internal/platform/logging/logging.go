// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "transfer completed")
//
// Errors are logged with the operation, the entity IDs, the full chain under
// "error" and, for command failures, a "failure" group:
//
//	logger.ErrorContext(ctx, "transfer failed",
//	    slog.String("operation", "Transfer"),
//	    slog.String("transfer_id", id),
//	    slog.Any("error", err),
//	    slog.Group("failure", logging.FailureAttrs(err)...),
//	)
//
// Every logger from New passes attributes through masq, so credentials and
// webhook secrets are redacted even when a call site forgets to.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is a slog level name in any case
// ("debug", "WARN"); unknown names mean info. format "text" selects the
// text handler and anything else JSON. Debug loggers include source
// locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel accepts slog's level names in any case, including offsets such
// as "info+2". Anything else is info.
func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
