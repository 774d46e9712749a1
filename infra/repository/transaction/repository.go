// Package transaction is the append-only flat-file ledger.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	infrarepo "github.com/amirasaad/onlinebanking/infra/repository"
	accountdomain "github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/repository"
)

// Repository holds every ledger entry in memory and appends new ones to a text file.
type Repository struct {
	path    string
	logger  *slog.Logger
	entries []*accountdomain.Transaction
}

// New creates an empty ledger bound to path. Call Load to read existing entries.
func New(path string, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		path:   path,
		logger: logger.With("repository", "transaction", "path", path),
	}
}

var _ repository.TransactionRepository = (*Repository)(nil)

// Path returns the backing file.
func (r *Repository) Path() string { return r.path }

// Load replaces the in-memory ledger with the file's contents.
func (r *Repository) Load(ctx context.Context) (report repository.LoadReport, err error) {
	report.Path = r.path
	if err = ctx.Err(); err != nil {
		return
	}
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.entries = nil
		r.logger.Info("No transaction file yet, starting empty")
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("open transactions: %w", infrarepo.MapFileErrorToDomain(err))
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	entries, skipped, err := Decode(f)
	if err != nil {
		return report, fmt.Errorf("read transactions: %w", err)
	}
	for _, s := range skipped {
		r.logger.Warn("Skipping malformed transaction record", "line", s.Line, "reason", s.Reason)
	}
	r.entries = entries
	report.Loaded = len(entries)
	report.Skipped = skipped
	r.logger.Info("Transactions loaded", "count", report.Loaded, "skipped", len(skipped))
	return report, nil
}

// Append writes one entry to the end of the file and then records it in memory.
func (r *Repository) Append(ctx context.Context, tx *accountdomain.Transaction) (err error) {
	if tx == nil {
		return errors.New("append transaction: nil entry")
	}
	if err = ctx.Err(); err != nil {
		return
	}
	var f *os.File
	if err = infrarepo.WrapError(func() (openErr error) {
		f, openErr = os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		return
	}); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("append transaction: %w", closeErr)
		}
	}()
	if _, err = f.WriteString(FormatLine(tx)); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	entry := *tx
	r.entries = append(r.entries, &entry)
	r.logger.Debug("Transaction appended", "account", tx.AccountNumber, "type", tx.Type)
	return nil
}

// HistoryFor returns copies of an account's entries, newest first. Entries with the
// same timestamp keep their file order.
func (r *Repository) HistoryFor(number int) []*accountdomain.Transaction {
	var out []*accountdomain.Transaction
	for _, tx := range r.entries {
		if tx.AccountNumber == number {
			entry := *tx
			out = append(out, &entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// Count returns the number of entries held.
func (r *Repository) Count() int { return len(r.entries) }
