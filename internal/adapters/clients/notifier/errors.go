package notifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail is the subset of an RFC 9457 response we read from the
// webhook receiver.
type problemDetail struct {
	Detail string `json:"detail"`
}

// TranslateHTTPError maps a non-2xx webhook response to a domain error.
// It uses the problem detail when the receiver sends application/problem+json.
func TranslateHTTPError(resp *http.Response) error {
	detail := parseProblemDetail(resp).Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("webhook rejected event: %s: %w", detail, domain.ErrValidation)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("webhook rejected event: %s: %w", detail, domain.ErrConflict)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("webhook receiver: %s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("webhook receiver: unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// translateTransportError maps errors that never produced a response. An open
// circuit and network failures both mean the receiver is unavailable.
func translateTransportError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("webhook receiver: circuit open: %w", errors.Join(domain.ErrUnavailable, err))
	}
	return fmt.Errorf("webhook receiver: %w", errors.Join(domain.ErrUnavailable, err))
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
