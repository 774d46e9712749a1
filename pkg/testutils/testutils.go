// Package testutils builds file-backed stores in a temporary directory for tests.
package testutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	infrarepo "github.com/amirasaad/onlinebanking/infra/repository"
	repoaccount "github.com/amirasaad/onlinebanking/infra/repository/account"
	repotransaction "github.com/amirasaad/onlinebanking/infra/repository/transaction"
	"github.com/stretchr/testify/require"
)

// Files is a loaded pair of data files under Dir.
type Files struct {
	Dir      string
	Accounts *repoaccount.Repository
	Ledger   *repotransaction.Repository
	UoW      *infrarepo.UoW
}

// NewFiles seeds bank_data.txt and transactions.txt with the given content (empty
// content leaves the file absent) and loads both.
func NewFiles(t testing.TB, accountData, ledgerData string) *Files {
	t.Helper()
	dir := t.TempDir()
	accPath := filepath.Join(dir, "bank_data.txt")
	txPath := filepath.Join(dir, "transactions.txt")
	if accountData != "" {
		require.NoError(t, os.WriteFile(accPath, []byte(accountData), 0o600))
	}
	if ledgerData != "" {
		require.NoError(t, os.WriteFile(txPath, []byte(ledgerData), 0o600))
	}
	f := &Files{
		Dir:      dir,
		Accounts: repoaccount.New(accPath, nil),
		Ledger:   repotransaction.New(txPath, nil),
	}
	f.UoW = infrarepo.NewUoW(f.Accounts, f.Ledger)
	_, err := f.UoW.Load(context.Background())
	require.NoError(t, err)
	return f
}
