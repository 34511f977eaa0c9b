package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the durable Store implementation. It owns one *sql.DB
// pool; every operation checks a connection out of the pool and returns
// it on each exit path, so no handle outlives a call.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) CreateAccount(ctx context.Context, name string) (core.Account, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO accounts (name) VALUES (?)`, name)
	if err != nil {
		return core.Account{}, fmt.Errorf("insert account: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Account{}, fmt.Errorf("account insert id: %w", err)
	}

	slog.InfoContext(ctx, "Account saved to SQLite", "id", id, "name", name)

	return core.Account{ID: id, Name: name}, nil
}

func (s *SQLiteStore) ListAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		var a core.Account
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

func (s *SQLiteStore) GetAccount(ctx context.Context, id int64) (core.Account, error) {
	var a core.Account
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM accounts WHERE id = ?`, id).Scan(&a.ID, &a.Name)
	if err == sql.ErrNoRows {
		return core.Account{}, core.ErrUnknownAccount
	}
	if err != nil {
		return core.Account{}, fmt.Errorf("query account: %w", err)
	}
	return a, nil
}

// DeleteAccountCascade removes the expenses first, then the account, inside
// one transaction so the caller never observes orphaned rows.
func (s *SQLiteStore) DeleteAccountCascade(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete account tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE account_id = ?`, id); err != nil {
		return fmt.Errorf("delete account expenses: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete account tx: %w", err)
	}

	removed, _ := res.RowsAffected()
	slog.InfoContext(ctx, "Account deleted from SQLite", "id", id, "existed", removed > 0)

	return nil
}

func (s *SQLiteStore) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (account_id, date, description, amount) VALUES (?, ?, ?, ?)`,
		e.AccountID, e.Date, e.Description, e.Amount)
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Expense{}, fmt.Errorf("expense insert id: %w", err)
	}
	e.ID = id

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", e.ID,
		"account_id", e.AccountID,
		"description", e.Description,
		"amount", e.Amount,
		"date", e.Date)

	return e, nil
}

func (s *SQLiteStore) ListExpensesByAccount(ctx context.Context, accountID int64) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, date, description, amount FROM expenses WHERE account_id = ? ORDER BY id`,
		accountID)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Date, &e.Description, &e.Amount); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

func (s *SQLiteStore) SumExpenses(ctx context.Context, accountID int64) (float64, error) {
	// COALESCE keeps an empty account at 0 instead of a NULL sum.
	var total float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE account_id = ?`,
		accountID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum expenses: %w", err)
	}
	return total, nil
}

func (s *SQLiteStore) DeleteExpenseByID(ctx context.Context, accountID, expenseID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE account_id = ? AND id = ?`,
		accountID, expenseID)
	if err != nil {
		return 0, fmt.Errorf("delete expense: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expense rows affected: %w", err)
	}

	slog.InfoContext(ctx, "Expense deleted from SQLite",
		"id", expenseID, "account_id", accountID, "existed", removed > 0)

	return removed, nil
}

func (s *SQLiteStore) DeleteExpensesByMatch(ctx context.Context, accountID int64, date, description string, amount float64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE account_id = ? AND date = ? AND description = ? AND amount = ?`,
		accountID, date, description, amount)
	if err != nil {
		return 0, fmt.Errorf("delete expenses by match: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expenses rows affected: %w", err)
	}

	slog.InfoContext(ctx, "Expenses deleted from SQLite by value match",
		"account_id", accountID,
		"date", date,
		"description", description,
		"amount", amount,
		"removed", removed)

	return removed, nil
}
