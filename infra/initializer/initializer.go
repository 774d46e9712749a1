// Package initializer wires configuration, logging, storage and services together.
package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	infrarepo "github.com/amirasaad/onlinebanking/infra/repository"
	repoaccount "github.com/amirasaad/onlinebanking/infra/repository/account"
	repotransaction "github.com/amirasaad/onlinebanking/infra/repository/transaction"
	"github.com/amirasaad/onlinebanking/pkg/config"
	accountsvc "github.com/amirasaad/onlinebanking/pkg/service/account"
	"github.com/amirasaad/onlinebanking/pkg/service/auth"
)

// Services bundles everything the console needs.
type Services struct {
	Deps     *config.Deps
	Auth     *auth.Service
	Account  *accountsvc.Service
	Reports  []LoadSummary
	closeLog func() error
}

// LoadSummary is what one data file contributed at startup.
type LoadSummary struct {
	Path      string
	Loaded    int
	Skipped   int
	Truncated int
}

// Close releases resources held by the services, such as the log file.
func (s *Services) Close() error {
	if s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}

// InitializeDependencies sets up logging, resolves the data files, loads them and
// builds the services. logOut receives logs when no log file is configured.
func InitializeDependencies(ctx context.Context, cfg *config.App, logOut io.Writer) (svc *Services, err error) {
	logger, closeLog, err := SetupLogger(cfg.Log, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() {
		if err != nil {
			_ = closeLog()
		}
	}()

	storage := cfg.Storage
	if storage == nil {
		storage = &config.Storage{}
	}
	paths, err := storage.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data files: %w", err)
	}
	logger.Info("Data files resolved", "accounts", paths.Accounts, "transactions", paths.Transactions)

	uow := infrarepo.NewUoW(
		repoaccount.New(paths.Accounts, logger),
		repotransaction.New(paths.Transactions, logger),
	)
	reports, err := uow.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load data files: %w", err)
	}

	deps := &config.Deps{Uow: uow, Logger: logger, Config: cfg, Paths: paths}
	svc = &Services{
		Deps:     deps,
		Auth:     auth.New(deps.Uow, deps.Logger),
		Account:  accountsvc.NewService(deps.Uow, deps.Logger),
		closeLog: closeLog,
	}
	for _, r := range reports {
		svc.Reports = append(svc.Reports, LoadSummary{
			Path:      r.Path,
			Loaded:    r.Loaded,
			Skipped:   len(r.Skipped),
			Truncated: r.Truncated,
		})
	}
	logSummaries(logger, svc.Reports)
	return svc, nil
}

func logSummaries(logger *slog.Logger, reports []LoadSummary) {
	for _, r := range reports {
		if r.Skipped > 0 || r.Truncated > 0 {
			logger.Warn("Data file loaded with problems",
				"path", r.Path, "loaded", r.Loaded, "skipped", r.Skipped, "truncated", r.Truncated)
			continue
		}
		logger.Info("Data file loaded", "path", r.Path, "loaded", r.Loaded)
	}
}
