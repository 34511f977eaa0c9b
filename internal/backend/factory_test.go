package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestNew_MemoryBackend(t *testing.T) {
	ledger, err := New(Config{Type: MemoryBackend}, nil)
	if err != nil {
		t.Fatalf("New(memory): %v", err)
	}
	defer ledger.Close()

	account, err := ledger.CreateAccount(context.Background(), "Groceries")
	if err != nil {
		t.Fatalf("CreateAccount through memory backend: %v", err)
	}
	if account.ID == 0 {
		t.Error("expected a generated account id")
	}
}

func TestNew_SQLiteBackend(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "expenses.db")

	ledger, err := New(Config{Type: SQLiteBackend, DBPath: dbPath}, nil)
	if err != nil {
		t.Fatalf("New(sqlite): %v", err)
	}
	defer ledger.Close()

	if _, err := ledger.CreateAccount(context.Background(), "Groceries"); err != nil {
		t.Fatalf("CreateAccount through sqlite backend: %v", err)
	}
}

func TestNew_InvalidBackend(t *testing.T) {
	if _, err := New(Config{Type: "redis"}, nil); err == nil {
		t.Fatal("expected an error for an unknown backend type")
	}
}
