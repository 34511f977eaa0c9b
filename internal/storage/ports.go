package storage

import (
	"context"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/core"
)

// Store is the persistence port the ledger service talks to. SQLiteStore
// is the durable implementation; memory.Store backs tests and the memory
// backend.
type Store interface {
	// CreateAccount persists a new account and returns it with the
	// generated id.
	CreateAccount(ctx context.Context, name string) (core.Account, error)

	// ListAccounts returns all accounts in storage (id) order.
	ListAccounts(ctx context.Context) ([]core.Account, error)

	// GetAccount returns the account with the given id, or
	// core.ErrUnknownAccount when it does not exist.
	GetAccount(ctx context.Context, id int64) (core.Account, error)

	// DeleteAccountCascade removes the account and every expense owned by
	// it as a single atomic unit. Deleting an absent account is a no-op.
	DeleteAccountCascade(ctx context.Context, id int64) error

	// CreateExpense persists a new expense row and returns it with the
	// generated id.
	CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error)

	// ListExpensesByAccount returns the account's expenses in storage
	// order. An account with no rows yields an empty slice, not an error.
	ListExpensesByAccount(ctx context.Context, accountID int64) ([]core.Expense, error)

	// SumExpenses returns the exact sum of the account's amounts, 0 when
	// the account has no expenses.
	SumExpenses(ctx context.Context, accountID int64) (float64, error)

	// DeleteExpenseByID removes one expense by its own id, scoped to the
	// owning account. Returns the number of rows removed (0 or 1).
	DeleteExpenseByID(ctx context.Context, accountID, expenseID int64) (int64, error)

	// DeleteExpensesByMatch removes every expense of the account whose
	// date, description and amount all match exactly. Returns the number
	// of rows removed; duplicates under the same account go together.
	DeleteExpensesByMatch(ctx context.Context, accountID int64, date, description string, amount float64) (int64, error)

	Close() error
}
