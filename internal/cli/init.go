// Package cli provides common initialization for the command-line entry
// point: env loading, logging, configuration and backend wiring.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/backend"
	"github.com/utkarsh-saharawat/Expense-Tracker/internal/config"
	applog "github.com/utkarsh-saharawat/Expense-Tracker/internal/log"
	"github.com/utkarsh-saharawat/Expense-Tracker/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level and
// installs it as the process default.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(level, applog.ComponentApp)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitLedger wires a ledger service onto the configured backend. The
// caller owns the returned service and must Close it.
func InitLedger(cfg *config.Config, logger *applog.Logger) (*services.LedgerService, error) {
	ledger, err := backend.New(backend.Config{
		Type:   backend.Type(cfg.DataBackend),
		DBPath: cfg.DBPath,
	}, logger.Logger)
	if err != nil {
		return nil, fmt.Errorf("initialize ledger backend: %w", err)
	}
	return ledger, nil
}
