// Package account is the flat-file account store.
//
// The whole file is read on Load and rewritten on every change. There is no locking:
// two processes sharing the file will overwrite each other's changes.
package account

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	infrarepo "github.com/amirasaad/onlinebanking/infra/repository"
	accountdomain "github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
	"github.com/amirasaad/onlinebanking/pkg/repository"
)

// Repository keeps accounts in memory and mirrors them to a text file.
type Repository struct {
	path     string
	capacity int
	logger   *slog.Logger
	accounts []*accountdomain.Account
}

// Option configures a Repository.
type Option func(*Repository)

// WithCapacity overrides how many records Load keeps.
func WithCapacity(n int) Option {
	return func(r *Repository) { r.capacity = n }
}

// New creates an empty repository bound to path. Call Load to read existing data.
func New(path string, logger *slog.Logger, opts ...Option) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Repository{
		path:     path,
		capacity: accountdomain.MaxAccounts,
		logger:   logger.With("repository", "account", "path", path),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ repository.AccountRepository = (*Repository)(nil)

// Path returns the backing file.
func (r *Repository) Path() string { return r.path }

// Load replaces the in-memory list with the file's contents, keeping at most the
// configured capacity. A missing file leaves the store empty.
func (r *Repository) Load(ctx context.Context) (report repository.LoadReport, err error) {
	report.Path = r.path
	if err = ctx.Err(); err != nil {
		return
	}
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.accounts = nil
		r.logger.Info("No account file yet, starting empty")
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("open accounts: %w", infrarepo.MapFileErrorToDomain(err))
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	accounts, skipped, err := Decode(f)
	if err != nil {
		return report, fmt.Errorf("read accounts: %w", err)
	}
	for _, s := range skipped {
		r.logger.Warn("Skipping malformed account record", "line", s.Line, "reason", s.Reason)
	}
	if len(accounts) > r.capacity {
		report.Truncated = len(accounts) - r.capacity
		r.logger.Warn("Account file exceeds capacity, extra records ignored",
			"capacity", r.capacity, "dropped", report.Truncated)
		accounts = accounts[:r.capacity]
	}
	r.accounts = accounts
	report.Loaded = len(accounts)
	report.Skipped = skipped
	r.logger.Info("Accounts loaded", "count", report.Loaded, "skipped", len(skipped))
	return report, nil
}

// Save overwrites the file with the in-memory list.
func (r *Repository) Save(ctx context.Context) (err error) {
	if err = ctx.Err(); err != nil {
		return
	}
	var f *os.File
	if err = infrarepo.WrapError(func() (createErr error) {
		f, createErr = os.Create(r.path)
		return
	}); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("save accounts: %w", closeErr)
		}
	}()
	if err = Encode(f, r.accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	r.logger.Debug("Accounts saved", "count", len(r.accounts))
	return nil
}

// Count returns the number of accounts held.
func (r *Repository) Count() int { return len(r.accounts) }

// All returns copies of every account in file order.
func (r *Repository) All() []*accountdomain.Account {
	out := make([]*accountdomain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a.Clone())
	}
	return out
}

// FindByNumber returns a copy of the first account with the given number.
func (r *Repository) FindByNumber(number int) (*accountdomain.Account, error) {
	if a := r.find(number); a != nil {
		return a.Clone(), nil
	}
	return nil, accountdomain.ErrAccountNotFound
}

// Register appends the account and persists the store.
func (r *Repository) Register(ctx context.Context, acc *accountdomain.Account) error {
	if acc == nil {
		return accountdomain.ErrNilAccount
	}
	if r.find(acc.Number) != nil {
		return accountdomain.ErrAccountExists
	}
	r.accounts = append(r.accounts, acc.Clone())
	if err := r.Save(ctx); err != nil {
		r.accounts = r.accounts[:len(r.accounts)-1]
		return err
	}
	r.logger.Info("Account registered", "number", acc.Number)
	return nil
}

// UpdateBalance sets one account's balance and persists the store.
func (r *Repository) UpdateBalance(ctx context.Context, number int, balance money.Money) error {
	return r.UpdateBalances(ctx, repository.BalanceUpdate{Number: number, Balance: balance})
}

// UpdateBalances applies every update, then persists once. Nothing changes if any
// account is missing or the file cannot be written.
func (r *Repository) UpdateBalances(ctx context.Context, updates ...repository.BalanceUpdate) error {
	targets := make([]*accountdomain.Account, len(updates))
	previous := make([]money.Money, len(updates))
	for i, u := range updates {
		if targets[i] = r.find(u.Number); targets[i] == nil {
			return fmt.Errorf("update balance %d: %w", u.Number, accountdomain.ErrAccountNotFound)
		}
		previous[i] = targets[i].Balance
	}
	for i, u := range updates {
		targets[i].Balance = u.Balance
	}
	if err := r.Save(ctx); err != nil {
		for i := len(targets) - 1; i >= 0; i-- {
			targets[i].Balance = previous[i]
		}
		return err
	}
	return nil
}

// UpdatePassword replaces one account's password and persists the store.
func (r *Repository) UpdatePassword(ctx context.Context, number int, password string) error {
	a := r.find(number)
	if a == nil {
		return fmt.Errorf("update password %d: %w", number, accountdomain.ErrAccountNotFound)
	}
	old := a.Password
	a.Password = password
	if err := r.Save(ctx); err != nil {
		a.Password = old
		return err
	}
	return nil
}

func (r *Repository) find(number int) *accountdomain.Account {
	for _, a := range r.accounts {
		if a.Number == number {
			return a
		}
	}
	return nil
}
