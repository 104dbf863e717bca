package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/jsamuelsen11/go-command-invoker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
)

// transferResult is the JSON document printed for a transfer.
type transferResult struct {
	Transfer dto.TransferResponse `json:"transfer"`
	Failure  *dto.FailureDetail   `json:"failure,omitempty"`
	Error    string               `json:"error,omitempty"`
	Balances map[string]int64     `json:"balances"`
}

func writeTransfer(w io.Writer, format string, t *ledger.Transfer, runErr error, balances map[string]int64) error {
	if format == FormatJSON {
		res := transferResult{
			Transfer: dto.ToTransferResponse(t),
			Failure:  dto.NewFailureDetail(runErr),
			Balances: balances,
		}
		if runErr != nil {
			res.Error = runErr.Error()
		}
		return writeJSON(w, res)
	}

	fmt.Fprintf(w, "transfer %s %s\n", t.ID, t.Status)
	fmt.Fprintf(w, "  %s -> %s: %d\n", t.From, t.To, t.Amount)
	if t.FailedCommand != "" {
		fmt.Fprintf(w, "  failed: %s (%s)\n", t.FailedCommand, t.FailureKind)
	}
	for _, id := range slices.Sorted(maps.Keys(balances)) {
		fmt.Fprintf(w, "  balance %s: %d\n", id, balances[id])
	}
	return nil
}

func writeAccount(w io.Writer, format string, a *ledger.Account) error {
	if format == FormatJSON {
		return writeJSON(w, dto.ToAccountResponse(a))
	}
	_, err := fmt.Fprintf(w, "account %s (%s) balance %d\n", a.ID, a.Owner, a.Balance)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
