package transaction_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	repotransaction "github.com/amirasaad/onlinebanking/infra/repository/transaction"
	accountdomain "github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newLedger(t *testing.T, content string) *repotransaction.Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	ledger := repotransaction.New(path, nil)
	_, err := ledger.Load(context.Background())
	require.NoError(t, err)
	return ledger
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tx, err := repotransaction.ParseLine("100001|Deposit|50.0|150.5|2025-01-02 03:04:05|\n")
	require.NoError(t, err)
	assert.Equal(t, 100001, tx.AccountNumber)
	assert.Equal(t, accountdomain.TypeDeposit, tx.Type)
	assert.Equal(t, "50.00", tx.Amount.Fixed())
	assert.Equal(t, "150.50", tx.BalanceAfter.Fixed())
	assert.Equal(t, "2025-01-02 03:04:05", tx.Timestamp)
	assert.False(t, tx.HasRecipient())

	tx, err = repotransaction.ParseLine("100001|Transfer|5.0|145.5|2025-01-02 03:04:06|100002")
	require.NoError(t, err)
	require.True(t, tx.HasRecipient())
	assert.Equal(t, 100002, *tx.Recipient)

	tx, err = repotransaction.ParseLine("100001|Withdrawal|5|0|2025-01-02 03:04:06")
	require.NoError(t, err, "five fields are enough")
	assert.False(t, tx.HasRecipient())

	for _, bad := range []string{
		"100001|Deposit|50.0|150.5",
		"abc|Deposit|50.0|150.5|2025-01-02 03:04:05|",
		"100001|Deposit|fifty|150.5|2025-01-02 03:04:05|",
		"100001|Deposit|50.0|x|2025-01-02 03:04:05|",
		"100001|Deposit|1e50000000|1.0|2025-01-02 03:04:05|",
		"100001|Transfer|50.0|1|2025-01-02 03:04:05|someone",
	} {
		_, err := repotransaction.ParseLine(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatLine(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)

	deposit := accountdomain.NewTransaction(100001, accountdomain.TypeDeposit, money.Must("50"), money.Must("150.50"), at)
	assert.Equal(t, "100001|Deposit|50.0|150.5|2025-01-02 03:04:05|\n", repotransaction.FormatLine(deposit))

	transfer := accountdomain.NewTransaction(100001, accountdomain.TypeTransferReceived, money.Must("0.25"), money.Must("10"), at).
		WithRecipient(100002)
	assert.Equal(t, "100001|Transfer Received|0.25|10.0|2025-01-02 03:04:05|100002\n", repotransaction.FormatLine(transfer))
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "transactions.txt")
	content := "100001|Initial Deposit|10.0|10.0|2025-01-01 00:00:00|\n" +
		"garbage\n" +
		"\n" +
		"100001|Deposit|NaN|10.0|2025-01-01 00:00:01|\n" +
		"100002|Initial Deposit|20.0|20.0|2025-01-01 00:00:02|\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ledger := repotransaction.New(path, nil)
	report, err := ledger.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	require.Len(t, report.Skipped, 2)
	assert.Equal(t, 2, report.Skipped[0].Line)
	assert.Equal(t, 4, report.Skipped[1].Line)
}

func TestAppendWritesAndRemembers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ledger := newLedger(t, "100001|Initial Deposit|10.0|10.0|2025-01-01 00:00:00|\n")
	at := time.Date(2025, 1, 1, 0, 0, 9, 0, time.Local)

	require.NoError(t, ledger.Append(ctx, accountdomain.NewTransaction(100001, accountdomain.TypeDeposit, money.Must("5"), money.Must("15"), at)))
	assert.Equal(t, 2, ledger.Count())

	data, err := os.ReadFile(ledger.Path())
	require.NoError(t, err)
	assert.Equal(t,
		"100001|Initial Deposit|10.0|10.0|2025-01-01 00:00:00|\n"+
			"100001|Deposit|5.0|15.0|2025-01-01 00:00:09|\n",
		string(data))

	reloaded := repotransaction.New(ledger.Path(), nil)
	report, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
}

func TestHistoryForSortsNewestFirst(t *testing.T) {
	t.Parallel()
	ledger := newLedger(t,
		"100001|Initial Deposit|10.0|10.0|2025-01-01 00:00:00|\n"+
			"100002|Initial Deposit|10.0|10.0|2025-01-01 00:00:01|\n"+
			"100001|Transfer|1.0|9.0|2025-01-03 00:00:00|100002\n"+
			"100001|Deposit|5.0|15.0|2025-01-02 00:00:00|\n"+
			"100001|Withdrawal|1.0|8.0|2025-01-03 00:00:00|\n")

	history := ledger.HistoryFor(100001)
	require.Len(t, history, 4)
	var types []accountdomain.TransactionType
	for _, tx := range history {
		types = append(types, tx.Type)
	}
	assert.Equal(t, []accountdomain.TransactionType{
		accountdomain.TypeTransfer,
		accountdomain.TypeWithdrawal,
		accountdomain.TypeDeposit,
		accountdomain.TypeInitialDeposit,
	}, types, "ties keep file order")

	assert.Empty(t, ledger.HistoryFor(999999))
}
