// Package httpclient is the outbound HTTP transport for webhook delivery.
// Every request passes, in order, through
//
//	Rate Limiter → Circuit Breaker → Request ID → OTEL Span → HTTP
//
// and is sent exactly once. 5xx and 429 answers count against the breaker;
// other answers, including 4xx, count as the downstream being healthy.
//
//	client := httpclient.New(&cfg.Notifier, "ledger-webhooks", metrics, logger)
//	resp, err := client.PostJSON(ctx, "/v1/events", body, nil)
//
// Inbound middleware stores the request ID with WithRequestID so outbound
// calls carry the same X-Request-ID.
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-command-invoker/internal/platform/config"
	"github.com/jsamuelsen11/go-command-invoker/internal/platform/telemetry"
)

// ErrServerStatus accompanies the response when the downstream answers 5xx
// or 429.
var ErrServerStatus = errors.New("httpclient: downstream server error")

type requestIDKey struct{}

// WithRequestID stores the inbound request ID for outbound propagation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Client sends requests to one downstream service.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.TwoStepCircuitBreaker[struct{}]
	limiter     *rate.Limiter
	metrics     *telemetry.Metrics
}

// New builds a Client for the downstream named serviceName, which labels
// spans, metrics, breaker logs and health reports. A nil metrics disables
// metric recording; a zero requests_per_second disables rate limiting.
func New(cfg *config.NotifierConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:        &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     gobreaker.NewTwoStepCircuitBreaker[struct{}](breakerSettings(serviceName, cfg.CircuitBreaker, logger)),
		metrics:     metrics,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

func breakerSettings(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
}

// PostJSON posts body to the base URL joined with path. header is applied
// on top of the JSON content type.
func (c *Client) PostJSON(ctx context.Context, path string, body []byte, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	maps.Copy(req.Header, header)
	return c.Do(ctx, req)
}

// Do sends req once.
//
// For any answer the response is returned with an open body the caller
// closes. A 5xx or 429 answer also returns an error wrapping ErrServerStatus.
// A breaker rejection wraps gobreaker.ErrOpenState or
// gobreaker.ErrTooManyRequests and returns no response, as does a transport
// error.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.do(ctx, req)
	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limit: %w", err)
		}
	}

	done, err := c.breaker.Allow()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.serviceName, err)
	}

	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	ctx, span := c.startSpan(ctx, req)
	defer span.End()

	resp, err := c.http.Do(req.WithContext(ctx))
	if err == nil && isServerFailure(resp.StatusCode) {
		err = fmt.Errorf("%w: HTTP %d from %s", ErrServerStatus, resp.StatusCode, c.serviceName)
	}
	done(err == nil)

	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

func isServerFailure(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service name.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reads the breaker state without calling the downstream. A
// closed breaker is healthy; half-open reports the downstream as degraded
// and open reports it as failing. The ledger keeps serving in both cases.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded, circuit half-open", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing, circuit open", c.serviceName)
	default:
		return fmt.Errorf("%s: circuit state %v", c.serviceName, state)
	}
}

// startSpan opens a client span and injects W3C trace context into req.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer(telemetry.InstrumentationName).Start(ctx,
		fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// recordMetrics runs for every Do call, breaker rejections included.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
