// Package sqlite provides a SQLite-backed ledger store using the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
	"github.com/jsamuelsen11/go-command-invoker/internal/domain/ledger"
	"github.com/jsamuelsen11/go-command-invoker/internal/ports"
)

// schema is applied on Open. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
	   id         TEXT PRIMARY KEY,
	   owner      TEXT NOT NULL,
	   balance    INTEGER NOT NULL CHECK (balance >= 0),
	   created_at INTEGER NOT NULL,
	   updated_at INTEGER NOT NULL
	 )`,
	`CREATE TABLE IF NOT EXISTS transfers (
	   id             TEXT PRIMARY KEY,
	   from_account   TEXT NOT NULL,
	   to_account     TEXT NOT NULL,
	   amount         INTEGER NOT NULL,
	   status         TEXT NOT NULL,
	   failure_kind   TEXT NOT NULL DEFAULT '',
	   failed_command TEXT NOT NULL DEFAULT '',
	   created_at     INTEGER NOT NULL,
	   updated_at     INTEGER NOT NULL
	 )`,
	`CREATE INDEX IF NOT EXISTS transfers_from_account ON transfers (from_account)`,
}

// Store persists accounts and transfers in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ ports.LedgerStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the database at dsn and applies the schema. The pool is limited
// to one connection: SQLite allows a single writer and serializing in the
// pool keeps balance updates free of SQLITE_BUSY.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("sqlite: dsn is required")
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, stmt := range schema {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "ledger-store" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite db: %w", err)
	}
	return nil
}

// CreateAccount inserts a new account.
func (s *Store) CreateAccount(ctx context.Context, account *ledger.Account) error {
	createdAt := account.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	updatedAt := account.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO accounts (id, owner, balance, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		account.ID, account.Owner, account.Balance, toMillis(createdAt), toMillis(updatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account %s: %w", account.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create account: %w", err)
	}

	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt
	return nil
}

// GetAccount returns a single account by ID.
func (s *Store) GetAccount(ctx context.Context, id string) (*ledger.Account, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, owner, balance, created_at, updated_at FROM accounts WHERE id = ?`, id)

	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// Debit subtracts amount from the account balance. The balance check and the
// update are one statement.
func (s *Store) Debit(ctx context.Context, id string, amount int64) (*ledger.Account, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`UPDATE accounts SET balance = balance - ?, updated_at = ?
		 WHERE id = ? AND balance >= ?
		 RETURNING id, owner, balance, created_at, updated_at`,
		amount, toMillis(s.now()), id, amount,
	)

	a, err := scanAccount(row)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("debit account: %w", err)
	}

	current, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, &ledger.InsufficientFundsError{AccountID: id, Balance: current.Balance, Amount: amount}
}

// Credit adds amount to the account balance. The overflow check and the
// update are one statement, so an overflowing credit writes nothing.
func (s *Store) Credit(ctx context.Context, id string, amount int64) (*ledger.Account, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`UPDATE accounts SET balance = balance + ?, updated_at = ?
		 WHERE id = ? AND balance <= ? - ?
		 RETURNING id, owner, balance, created_at, updated_at`,
		amount, toMillis(s.now()), id, int64(math.MaxInt64), amount,
	)

	a, err := scanAccount(row)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("credit account: %w", err)
	}

	current, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, &ledger.BalanceOverflowError{AccountID: id, Balance: current.Balance, Amount: amount}
}

// SaveTransfer inserts or replaces a transfer record.
func (s *Store) SaveTransfer(ctx context.Context, t *ledger.Transfer) error {
	createdAt := t.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	updatedAt := t.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO transfers (
		   id, from_account, to_account, amount, status,
		   failure_kind, failed_command, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   status = excluded.status,
		   failure_kind = excluded.failure_kind,
		   failed_command = excluded.failed_command,
		   updated_at = excluded.updated_at`,
		t.ID, t.From, t.To, t.Amount, string(t.Status),
		t.FailureKind, t.FailedCommand, toMillis(createdAt), toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("save transfer: %w", err)
	}
	return nil
}

// GetTransfer returns a transfer record by ID.
func (s *Store) GetTransfer(ctx context.Context, id string) (*ledger.Transfer, error) {
	var (
		t                    ledger.Transfer
		status               string
		createdAt, updatedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, from_account, to_account, amount, status,
		        failure_kind, failed_command, created_at, updated_at
		 FROM transfers WHERE id = ?`, id,
	).Scan(&t.ID, &t.From, &t.To, &t.Amount, &status,
		&t.FailureKind, &t.FailedCommand, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transfer %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	t.Status = ledger.TransferStatus(status)
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	return &t, nil
}

func scanAccount(row *sql.Row) (*ledger.Account, error) {
	var (
		a                    ledger.Account
		createdAt, updatedAt int64
	)
	if err := row.Scan(&a.ID, &a.Owner, &a.Balance, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
