package config

import (
	"log/slog"

	"github.com/amirasaad/onlinebanking/pkg/repository"
)

// Deps holds the infrastructure dependencies for building the services.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
	Config *App
	Paths  Paths
}
