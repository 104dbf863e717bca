// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
)

// AccountResponse represents a single account in HTTP responses.
type AccountResponse struct {
	ID        string `json:"id"`
	Owner     string `json:"owner"`
	Balance   int64  `json:"balance"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToAccountResponse converts a domain Account entity to an HTTP response DTO.
func ToAccountResponse(a *ledger.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Owner:     a.Owner,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// TransferResponse represents a transfer record in HTTP responses.
// FailureKind and FailedCommand are omitted for completed transfers.
type TransferResponse struct {
	ID            string `json:"id"`
	From          string `json:"from"`
	To            string `json:"to"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	FailureKind   string `json:"failure_kind,omitempty"`
	FailedCommand string `json:"failed_command,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ToTransferResponse converts a domain Transfer entity to an HTTP response
// DTO.
func ToTransferResponse(t *ledger.Transfer) TransferResponse {
	return TransferResponse{
		ID:            t.ID,
		From:          t.From,
		To:            t.To,
		Amount:        t.Amount,
		Status:        string(t.Status),
		FailureKind:   t.FailureKind,
		FailedCommand: t.FailedCommand,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
}
