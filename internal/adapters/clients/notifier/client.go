// Package notifier is the outbound adapter that posts transfer events to a
// webhook receiver over the instrumented platform HTTP client.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

// ServiceName identifies the webhook receiver in traces, metrics and health
// reports.
const ServiceName = "ledger-webhooks"

const eventsPath = "/v1/events"

// Compile-time interface checks.
var (
	_ ports.Notifier      = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements [ports.Notifier]. Each event is one POST; the
// underlying [httpclient.Client] provides circuit breaking, rate limiting,
// tracing and health checking.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
	secret []byte
}

// New creates a Client that posts to the httpclient's base URL.
func New(client *httpclient.Client, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{http: client, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify posts event to {base_url}/v1/events and expects a 2xx answer.
// Failures map to domain errors; an unreachable receiver is
// domain.ErrUnavailable.
func (c *Client) Notify(ctx context.Context, event ledger.Event) error {
	body, err := json.Marshal(toEventDTO(event))
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	var header http.Header
	if c.secret != nil {
		header = http.Header{SignatureHeader: {Sign(c.secret, body)}}
	}

	resp, err := c.http.PostJSON(ctx, eventsPath, body, header)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && (resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices):
		c.logger.ErrorContext(ctx, "webhook rejected event",
			slog.String("operation", "Notifier.Notify"),
			slog.String("transfer_id", event.TransferID),
			slog.String("event_type", string(event.Type)),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		c.logger.ErrorContext(ctx, "webhook request failed",
			slog.String("operation", "Notifier.Notify"),
			slog.String("transfer_id", event.TransferID),
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
		return translateTransportError(err)
	}

	return nil
}

// Name returns the identifier used when registering with a
// [ports.HealthRegistry].
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the receiver's availability from the circuit breaker
// state; no network call is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
