package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-command-invoker/internal/platform/logging"
)

const redacted = "[REDACTED]"

// headerGroup renders request headers as one "headers" group with keys in
// sorted order. Credential-bearing headers named in logging.SensitiveHeaders
// are replaced with "[REDACTED]"; repeated values are comma-joined.
func headerGroup(h http.Header) slog.Attr {
	keys := slices.Sorted(maps.Keys(h))

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		v := strings.Join(h[k], ",")
		if logging.SensitiveHeaders[strings.ToLower(k)] {
			v = redacted
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return slog.Group("headers", attrs...)
}
