package account_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	repoaccount "github.com/amirasaad/onlinebanking/infra/repository/account"
	accountdomain "github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
	"github.com/amirasaad/onlinebanking/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newRepo(t *testing.T, content string) *repoaccount.Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank_data.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return repoaccount.New(path, nil)
}

func TestParseLine(t *testing.T) {
	t.Parallel()
	acc, err := repoaccount.ParseLine("JohnDoe 100001 secret 250.50 0977123456\n")
	require.NoError(t, err)
	assert.Equal(t, "JohnDoe", acc.FullName)
	assert.Equal(t, 100001, acc.Number)
	assert.Equal(t, "secret", acc.Password)
	assert.Equal(t, "250.50", acc.Balance.Fixed())
	assert.Equal(t, "0977123456", acc.Phone)

	acc, err = repoaccount.ParseLine("  Jane\t100002  pw   7  555-1234  \r\n")
	require.NoError(t, err, "runs of whitespace separate fields")
	assert.Equal(t, "Jane", acc.FullName)
	assert.Equal(t, "7.00", acc.Balance.Fixed())

	for _, bad := range []string{
		"John Doe 100001 secret 1.00 555",
		"JohnDoe 100001 secret 1.00",
		"JohnDoe abc secret 1.00 555",
		"JohnDoe 100001 secret lots 555",
		"JohnDoe 100001 secret 1e50000000 555",
	} {
		_, err := repoaccount.ParseLine(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseLineTruncatesLongFields(t *testing.T) {
	t.Parallel()
	line := fmt.Sprintf("%s 1 %s 1 %s", strings.Repeat("n", 120), strings.Repeat("p", 30), strings.Repeat("9", 20))
	acc, err := repoaccount.ParseLine(line)
	require.NoError(t, err)
	assert.Len(t, acc.FullName, accountdomain.MaxNameLen)
	assert.Len(t, acc.Password, accountdomain.MaxPasswordLen)
	assert.Len(t, acc.Phone, accountdomain.MaxPhoneLen)
}

func TestFormatLine(t *testing.T) {
	t.Parallel()
	acc := accountdomain.NewAccountFromData("JohnDoe", 100001, "secret", money.Must("10"), "0977")
	assert.Equal(t, "JohnDoe 100001 secret 10.00 0977\n", repoaccount.FormatLine(acc))

	acc.Balance = money.Must("99.999")
	assert.Equal(t, "JohnDoe 100001 secret 100.00 0977\n", repoaccount.FormatLine(acc))
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()
	repo := newRepo(t, "")
	report, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Loaded)
	assert.Equal(t, 0, repo.Count())
}

func TestLoadReportsSkippedLines(t *testing.T) {
	t.Parallel()
	repo := newRepo(t, "A 100001 p 10.00 1\nbroken line\n\nB 100002 p nope 2\nC 100003 p 30.00 3\n")
	report, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Loaded)
	require.Len(t, report.Skipped, 2)
	assert.Equal(t, 2, report.Skipped[0].Line)
	assert.Equal(t, 4, report.Skipped[1].Line)
	assert.Contains(t, report.Skipped[1].Reason, "balance")

	_, err = repo.FindByNumber(100003)
	assert.NoError(t, err)
}

func TestLoadTruncatesAtCapacity(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	for i := 0; i < accountdomain.MaxAccounts+5; i++ {
		fmt.Fprintf(&b, "U%d %d p 10.00 1\n", i, 100000+i)
	}
	repo := newRepo(t, b.String())
	report, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, accountdomain.MaxAccounts, repo.Count())
	assert.Equal(t, 5, report.Truncated)

	_, err = repo.FindByNumber(100000 + accountdomain.MaxAccounts)
	assert.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
}

func TestRegisterThenFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t, "")
	acc := accountdomain.NewAccountFromData("JohnDoe", 123456, "pw", money.Must("15.25"), "555")

	require.NoError(t, repo.Register(ctx, acc))
	got, err := repo.FindByNumber(123456)
	require.NoError(t, err)
	assert.Equal(t, acc, got)

	got.Password = "changed"
	again, _ := repo.FindByNumber(123456)
	assert.Equal(t, "pw", again.Password, "lookups return copies")

	err = repo.Register(ctx, acc.Clone())
	assert.ErrorIs(t, err, accountdomain.ErrAccountExists)
	assert.Equal(t, 1, repo.Count())

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, "JohnDoe 123456 pw 15.25 555\n", string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t, "")
	require.NoError(t, repo.Register(ctx, accountdomain.NewAccountFromData("A", 100001, "p", money.Must("10.005"), "1")))
	require.NoError(t, repo.Register(ctx, accountdomain.NewAccountFromData("B", 100002, "p", money.Must("1234.5"), "2")))
	require.NoError(t, repo.UpdateBalances(ctx,
		repository.BalanceUpdate{Number: 100001, Balance: money.Must("0.10")},
		repository.BalanceUpdate{Number: 100002, Balance: money.Must("1234.60")},
	))

	want := map[int]string{}
	for _, a := range repo.All() {
		want[a.Number] = a.Balance.Fixed()
	}

	reloaded := repoaccount.New(repo.Path(), nil)
	_, err := reloaded.Load(ctx)
	require.NoError(t, err)
	got := map[int]string{}
	for _, a := range reloaded.All() {
		got[a.Number] = a.Balance.Fixed()
	}
	assert.Equal(t, want, got)
	assert.Equal(t, map[int]string{100001: "0.10", 100002: "1234.60"}, got)
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t, "A 100001 old 10.00 1\n")
	_, err := repo.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePassword(ctx, 100001, "new"))
	acc, err := repo.FindByNumber(100001)
	require.NoError(t, err)
	assert.Equal(t, "new", acc.Password)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, 999999, "x"), accountdomain.ErrAccountNotFound)
}

func TestUpdateBalancesIsAllOrNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t, "A 100001 p 10.00 1\n")
	_, err := repo.Load(ctx)
	require.NoError(t, err)

	err = repo.UpdateBalances(ctx,
		repository.BalanceUpdate{Number: 100001, Balance: money.Must("0")},
		repository.BalanceUpdate{Number: 100009, Balance: money.Must("10")},
	)
	require.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
	acc, _ := repo.FindByNumber(100001)
	assert.Equal(t, "10.00", acc.Balance.Fixed())
}

func TestSaveFailureRollsBackRegister(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	repo := repoaccount.New(filepath.Join(dir, "missing-dir", "bank_data.txt"), nil)

	err := repo.Register(context.Background(), accountdomain.NewAccountFromData("A", 100001, "p", money.Must("10"), "1"))
	require.Error(t, err)
	assert.Equal(t, 0, repo.Count())
}

func TestWithCapacityLimitsLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bank_data.txt")
	require.NoError(t, os.WriteFile(path, []byte("A 100001 p 1 1\nB 100002 p 2 2\nC 100003 p 3 3\n"), 0o600))

	repo := repoaccount.New(path, nil, repoaccount.WithCapacity(2))
	report, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	assert.Equal(t, 1, report.Truncated)
	_, err = repo.FindByNumber(100003)
	assert.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
}
