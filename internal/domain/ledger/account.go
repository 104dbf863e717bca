// Package ledger contains the account and transfer entities of the reference
// ledger service. Amounts are integers in minor currency units.
package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
)

const msgRequired = "required"

// Account holds a balance that transfers move money in and out of.
type Account struct {
	ID        string
	Owner     string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Account entity.
// Returns a *domain.ValidationError with per-field details, or nil.
func (a *Account) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.ID) == "" {
		fields["id"] = msgRequired
	}
	if strings.TrimSpace(a.Owner) == "" {
		fields["owner"] = msgRequired
	}
	if a.Balance < 0 {
		fields["balance"] = fmt.Sprintf("must not be negative, got %d", a.Balance)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// InsufficientFundsError reports a debit larger than the account balance.
type InsufficientFundsError struct {
	AccountID string
	Balance   int64
	Amount    int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("account %s has balance %d, cannot debit %d", e.AccountID, e.Balance, e.Amount)
}

func (e *InsufficientFundsError) Unwrap() error {
	return domain.ErrInsufficientFunds
}

// CanCredit reports whether amount can be added to balance without passing
// math.MaxInt64.
func CanCredit(balance, amount int64) bool {
	return amount <= 0 || balance <= math.MaxInt64-amount
}

// BalanceOverflowError reports a credit that would take the balance past the
// largest representable amount.
type BalanceOverflowError struct {
	AccountID string
	Balance   int64
	Amount    int64
}

func (e *BalanceOverflowError) Error() string {
	return fmt.Sprintf("account %s has balance %d, cannot credit %d without overflow", e.AccountID, e.Balance, e.Amount)
}

func (e *BalanceOverflowError) Unwrap() error {
	return domain.ErrConflict
}
