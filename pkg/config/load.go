package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load applies the first env file found among envFiles (".env" when none are given)
// and then reads the configuration from the environment. Variables already set in the
// process win over the file. A missing file is not an error.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, name := range envFiles {
		path, err := FindEnvFile(name)
		if err != nil {
			logger.Debug("Environment file not found", "name", name)
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Warn("Failed to read environment file", "path", path, "error", err)
			continue
		}
		logger.Info("Environment file applied", "path", path)
		break
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"data_dir", cfg.Storage.DataDir,
		"data_dir_from_env", IsEnvSet("ONLINE_BANKING_DATA_DIR"),
		"accounts_file", cfg.Storage.AccountsFile,
		"transactions_file", cfg.Storage.TransactionsFile,
		"log_level", cfg.Log.Level,
		"log_file", cfg.Log.File,
		"statement_format", cfg.Statement.Format,
	)
	return &cfg, nil
}
