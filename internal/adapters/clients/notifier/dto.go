package notifier

import (
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
)

// eventDTO is the webhook wire format.
type eventDTO struct {
	Type       string    `json:"type"`
	TransferID string    `json:"transfer_id"`
	From       string    `json:"from_account"`
	To         string    `json:"to_account"`
	Amount     int64     `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toEventDTO(e ledger.Event) eventDTO {
	return eventDTO{
		Type:       string(e.Type),
		TransferID: e.TransferID,
		From:       e.From,
		To:         e.To,
		Amount:     e.Amount,
		OccurredAt: e.OccurredAt.UTC(),
	}
}
