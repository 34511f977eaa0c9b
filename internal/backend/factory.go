// Package backend wires a ledger service onto the configured store.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/services"
	"github.com/utkarsh-saharawat/Expense-Tracker/internal/storage"
	"github.com/utkarsh-saharawat/Expense-Tracker/internal/storage/memory"
)

// New builds a LedgerService for the configured backend. The memory
// backend keeps everything in process and loses it on exit; sqlite is the
// durable default.
func New(cfg Config, logger *slog.Logger) (*services.LedgerService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized SQLite backend", "backend", cfg.Type, "db_path", cfg.DBPath)
		return services.NewLedgerService(store), nil
	case MemoryBackend:
		logger.Info("Initialized memory backend", "backend", cfg.Type)
		return services.NewLedgerService(memory.New()), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
