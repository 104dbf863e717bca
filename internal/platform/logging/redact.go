package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists header names (lowercase) whose values never reach
// the log. The HTTP logging middleware redacts them at the call site and
// the masq layer below catches them again by field name.
var SensitiveHeaders = map[string]bool{
	"authorization":      true,
	"cookie":             true,
	"x-api-key":          true,
	"x-ledger-signature": true,
}

// sensitiveFields are attribute keys redacted wherever they appear,
// including config dumps.
var sensitiveFields = []string{
	"password",
	"secret",
	"signing_secret",
	"SigningSecret",
	"token",
}

var sensitivePrefixes = []string{"secret_", "api_key"}

var sensitiveValues = []*regexp.Regexp{
	// Bearer credentials.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... or apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// Webhook signatures.
	regexp.MustCompile(`sha256=[0-9a-f]{64}`),
}

// redactAttr builds the masq ReplaceAttr used by every logger from New.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
