package repository

import (
	"context"

	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
)

// AccountRepository defines the interface for account data access operations.
// Lookups return detached copies; changes go through the Update methods, which persist.
type AccountRepository interface {
	Load(ctx context.Context) (LoadReport, error)
	Save(ctx context.Context) error
	Count() int
	All() []*account.Account
	FindByNumber(number int) (*account.Account, error)
	Register(ctx context.Context, acc *account.Account) error
	UpdateBalance(ctx context.Context, number int, balance money.Money) error
	// UpdateBalances applies several balance changes and persists once.
	UpdateBalances(ctx context.Context, updates ...BalanceUpdate) error
	UpdatePassword(ctx context.Context, number int, password string) error
}

// TransactionRepository defines the interface for the append-only ledger.
type TransactionRepository interface {
	Load(ctx context.Context) (LoadReport, error)
	Append(ctx context.Context, tx *account.Transaction) error
	// HistoryFor returns an account's entries, newest first.
	HistoryFor(number int) []*account.Transaction
	Count() int
}

// BalanceUpdate sets one account's balance.
type BalanceUpdate struct {
	Number  int
	Balance money.Money
}

// SkippedLine describes a record that could not be parsed.
type SkippedLine struct {
	Line   int
	Reason string
}

// LoadReport summarizes what a Load call read from disk.
type LoadReport struct {
	Path      string
	Loaded    int
	Truncated int // records dropped past the capacity limit
	Skipped   []SkippedLine
}
