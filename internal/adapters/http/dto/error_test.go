package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-invoker/internal/command"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
)

type stubCommand struct {
	command.Base
}

func named(name string) command.Command {
	return &stubCommand{Base: command.NewBase(name, command.NewInput(), nil, nil)}
}

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrNotFound maps to 404",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "ErrValidation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"owner": "required"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrConflict maps to 409",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
		},
		{
			name:       "ErrInsufficientFunds maps to 422",
			err:        &ledger.InsufficientFundsError{AccountID: "a", Balance: 1, Amount: 2},
			wantStatus: http.StatusUnprocessableEntity,
			wantTitle:  "Unprocessable Entity",
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        fmt.Errorf("running transfer: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantTitle:  "Gateway Timeout",
		},
		{
			name:       "rollback failure maps to 500 whatever the cause",
			err:        command.NewRollbackFailure(domain.ErrNotFound, named("Deposit"), named("Transfer")),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "invoker failure maps by cause",
			err:        command.NewInvokerFailure(command.NewCommandFailure(domain.ErrNotFound, named("Deposit")), named("Transfer")),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "ErrUnavailable maps to 502",
			err:        domain.ErrUnavailable,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "wrapped ErrNotFound preserves mapping",
			err:        fmt.Errorf("fetching account: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", nil)
	err := domain.ErrNotFound

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/accounts" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/accounts")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"from":   "required",
		"to":     "required",
		"amount": "must be positive, got 0",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}

	// Verify sorted by location.
	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}

	// Verify location format.
	for _, detail := range got.Errors {
		if len(detail.Location) < 6 || detail.Location[:5] != "body." {
			t.Errorf("Location %q does not start with %q", detail.Location, "body.")
		}
	}
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestWriteErrorResponse_ContentType(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/42", nil)

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	ct := w.Header().Get("Content-Type")
	if ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestWriteErrorResponse_StatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", &domain.ValidationError{Fields: map[string]string{"x": "y"}}, http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)

			dto.WriteErrorResponse(w, r, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status code = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestWriteErrorResponse_ValidJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", nil)

	verr := &domain.ValidationError{Fields: map[string]string{
		"owner": "required",
	}}
	dto.WriteErrorResponse(w, r, verr)

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if resp.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", resp.Status, http.StatusBadRequest)
	}
	if resp.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", resp.Type, "about:blank")
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Location != "body.owner" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "body.owner")
	}
	if resp.Errors[0].Message != "required" {
		t.Errorf("Errors[0].Message = %q, want %q", resp.Errors[0].Message, "required")
	}
}

func TestNewErrorResponse_FailureDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want dto.FailureDetail
	}{
		{
			name: "rolled back",
			err:  command.NewInvokerFailure(command.NewCommandFailure(domain.ErrNotFound, named("Deposit")), named("Transfer")),
			want: dto.FailureDetail{Kind: "invoker_failure", Command: "Deposit", Invoker: "Transfer", RolledBack: true},
		},
		{
			name: "rollback failed",
			err:  command.NewRollbackFailure(errors.New("stuck"), named("Withdraw"), named("Transfer")),
			want: dto.FailureDetail{Kind: "invoker_rollback_failure", Command: "Withdraw", Invoker: "Transfer"},
		},
		{
			name: "single command",
			err:  command.NewCommandFailure(errors.New("boom"), named("Notify")),
			want: dto.FailureDetail{Kind: "command_failure", Command: "Notify"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil)

			got := dto.NewErrorResponse(r, tt.err)

			if got.Failure == nil {
				t.Fatal("Failure = nil, want detail")
			}
			if *got.Failure != tt.want {
				t.Errorf("Failure = %+v, want %+v", *got.Failure, tt.want)
			}
		})
	}
}

func TestNewErrorResponse_NoFailureDetailForPlainErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Failure != nil {
		t.Errorf("Failure = %+v, want nil", got.Failure)
	}
}
