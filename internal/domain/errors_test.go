package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
)

func TestValidationError_SortedMessage(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"to":     "required",
		"amount": "must be positive, got 0",
	}}

	want := "validation error: amount: must be positive, got 0; to: required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("open account: %w", &domain.ValidationError{Fields: map[string]string{"owner": "required"}})

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As did not find *ValidationError")
	}
	if verr.Fields["owner"] != "required" {
		t.Errorf("Fields[owner] = %q, want %q", verr.Fields["owner"], "required")
	}
}
