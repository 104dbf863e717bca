package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
)

// TransferStatus is the outcome of a transfer run.
type TransferStatus string

// Transfer statuses.
const (
	TransferPending        TransferStatus = "pending"
	TransferCompleted      TransferStatus = "completed"
	TransferRolledBack     TransferStatus = "rolled_back"
	TransferRollbackFailed TransferStatus = "rollback_failed"
)

// IsValid reports whether s is a known status.
func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferPending, TransferCompleted, TransferRolledBack, TransferRollbackFailed:
		return true
	default:
		return false
	}
}

// Transfer records one attempt to move Amount from one account to another.
// FailureKind and FailedCommand are set when the transfer did not complete.
type Transfer struct {
	ID            string
	From          string
	To            string
	Amount        int64
	Status        TransferStatus
	FailureKind   string
	FailedCommand string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the request fields of a transfer.
// Returns a *domain.ValidationError with per-field details, or nil.
func (t *Transfer) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.From) == "" {
		fields["from"] = msgRequired
	}
	if strings.TrimSpace(t.To) == "" {
		fields["to"] = msgRequired
	}
	if t.From != "" && t.From == t.To {
		fields["to"] = "must differ from source account"
	}
	if t.Amount <= 0 {
		fields["amount"] = fmt.Sprintf("must be positive, got %d", t.Amount)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// EventType names a notification sent about a transfer.
type EventType string

// Event types.
const (
	EventTransferCompleted EventType = "transfer.completed"
	EventTransferReversed  EventType = "transfer.reversed"
)

// Event is the notification payload for a transfer.
type Event struct {
	Type       EventType
	TransferID string
	From       string
	To         string
	Amount     int64
	OccurredAt time.Time
}
