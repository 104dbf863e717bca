package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
)

const msgRequired = "is required"

// OpenAccountRequest represents the JSON body for opening an account.
type OpenAccountRequest struct {
	Owner   string `json:"owner"`
	Balance int64  `json:"balance"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *OpenAccountRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Owner) == "" {
		fields["owner"] = msgRequired
	}
	if r.Balance < 0 {
		fields["balance"] = fmt.Sprintf("must not be negative, got %d", r.Balance)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TransferRequest represents the JSON body for moving funds between accounts.
type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Validate checks that both accounts are named and the amount is positive.
// Returns a *domain.ValidationError if any checks fail.
func (r *TransferRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.From) == "" {
		fields["from"] = msgRequired
	}
	if strings.TrimSpace(r.To) == "" {
		fields["to"] = msgRequired
	}
	if r.From != "" && r.From == r.To {
		fields["to"] = "must differ from from"
	}
	if r.Amount <= 0 {
		fields["amount"] = fmt.Sprintf("must be positive, got %d", r.Amount)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
