package initializer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/onlinebanking/infra/initializer"
	"github.com/amirasaad/onlinebanking/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDependencies(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank_data.txt"),
		[]byte("Ann 100001 pw 10.00 555\nnot a valid record at all\n"), 0o600))

	var logs bytes.Buffer
	cfg := &config.App{
		Env:     "test",
		Log:     &config.Log{Level: int(log.WarnLevel), Format: "text", Prefix: "[test]"},
		Storage: &config.Storage{DataDir: dir},
	}
	svc, err := initializer.InitializeDependencies(context.Background(), cfg, &logs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	require.Len(t, svc.Reports, 2)
	assert.Equal(t, 1, svc.Reports[0].Loaded)
	assert.Equal(t, 1, svc.Reports[0].Skipped)
	assert.Equal(t, 0, svc.Reports[1].Loaded)
	assert.Equal(t, filepath.Join(dir, "transactions.txt"), svc.Deps.Paths.Transactions)
	assert.Contains(t, logs.String(), "Skipping malformed account record")
	assert.NotNil(t, svc.Auth)
	assert.NotNil(t, svc.Account)
}

func TestSetupLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.log")
	logger, closeFn, err := initializer.SetupLogger(&config.Log{
		Level:  int(log.InfoLevel),
		Format: "json",
		File:   path,
	}, nil)
	require.NoError(t, err)
	logger.Info("hello", "account", 100001)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"account":100001`)
}

func TestSetupLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := initializer.SetupLogger(&config.Log{Level: int(log.WarnLevel)}, &buf)
	require.NoError(t, err)
	logger.Info("quiet")
	logger.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
