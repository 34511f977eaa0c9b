// Package services holds the ledger service: the business rules tying
// accounts and expenses together over a Store.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/core"
	"github.com/utkarsh-saharawat/Expense-Tracker/internal/storage"
)

// LedgerService enforces the account/expense invariants on top of a Store.
// It holds no selection state: every operation takes an explicit account
// id and the caller owns whatever "currently selected" notion it needs.
type LedgerService struct {
	store storage.Store
}

func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// CreateAccount persists a new account. The name must be non-empty after
// trimming whitespace; nothing is written on validation failure.
func (s *LedgerService) CreateAccount(ctx context.Context, name string) (core.Account, error) {
	if err := (core.Account{Name: name}).Validate(); err != nil {
		return core.Account{}, err
	}

	account, err := s.store.CreateAccount(ctx, name)
	if err != nil {
		return core.Account{}, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// ListAccounts returns every account in storage order.
func (s *LedgerService) ListAccounts(ctx context.Context) ([]core.Account, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount removes the account and all of its expenses. Deleting an
// account that does not exist is a no-op. Confirmation semantics belong to
// the caller, not the ledger.
func (s *LedgerService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.store.DeleteAccountCascade(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// AddExpense records a new expense for the account. The zero account id is
// the unselected sentinel and is rejected before touching the store; a
// non-zero id must reference an existing account, so an orphaned row can
// never be inserted.
func (s *LedgerService) AddExpense(ctx context.Context, accountID int64, date, description string, amount float64) (core.Expense, error) {
	expense := core.Expense{
		AccountID:   accountID,
		Date:        strings.TrimSpace(date),
		Description: description,
		Amount:      amount,
	}
	if err := expense.Validate(); err != nil {
		return core.Expense{}, err
	}

	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return core.Expense{}, err
	}

	created, err := s.store.CreateExpense(ctx, expense)
	if err != nil {
		return core.Expense{}, fmt.Errorf("add expense: %w", err)
	}
	return created, nil
}

// ListExpenses returns the account's expenses in storage order together
// with their running total. An account with no rows (or an unknown id)
// yields an empty slice and total 0.
func (s *LedgerService) ListExpenses(ctx context.Context, accountID int64) ([]core.Expense, float64, error) {
	expenses, err := s.store.ListExpensesByAccount(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return expenses, total, nil
}

// DeleteExpense removes a single expense by its own id, scoped to the
// owning account. Removing an absent expense is a no-op.
func (s *LedgerService) DeleteExpense(ctx context.Context, accountID, expenseID int64) error {
	if _, err := s.store.DeleteExpenseByID(ctx, accountID, expenseID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// DeleteExpenseByMatch removes every expense of the account whose date,
// description and amount all match exactly, and returns the count.
// Kept for callers that never captured the expense id: duplicates are
// indistinguishable under value matching and are removed together.
// DeleteExpense is the primary deletion path.
func (s *LedgerService) DeleteExpenseByMatch(ctx context.Context, accountID int64, date, description string, amount float64) (int64, error) {
	removed, err := s.store.DeleteExpensesByMatch(ctx, accountID, date, description, amount)
	if err != nil {
		return 0, fmt.Errorf("delete expense by match: %w", err)
	}
	if removed > 1 {
		slog.WarnContext(ctx, "Value-match delete removed multiple expenses",
			"account_id", accountID, "removed", removed)
	}
	return removed, nil
}

// AccountSummary returns the account name and the sum of its expenses.
// An existing account with no expenses totals 0; an unknown id fails with
// core.ErrUnknownAccount.
func (s *LedgerService) AccountSummary(ctx context.Context, accountID int64) (core.AccountSummary, error) {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return core.AccountSummary{}, err
	}

	total, err := s.store.SumExpenses(ctx, accountID)
	if err != nil {
		return core.AccountSummary{}, fmt.Errorf("account summary: %w", err)
	}

	return core.AccountSummary{ID: account.ID, Name: account.Name, TotalExpense: total}, nil
}

// GenerateReceipt renders the account's expenses as a printable text
// block. The zero account id fails with core.ErrNoAccountSelected.
func (s *LedgerService) GenerateReceipt(ctx context.Context, accountID int64) (string, error) {
	if accountID == core.UnselectedAccount {
		return "", core.ErrNoAccountSelected
	}

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return "", err
	}

	expenses, total, err := s.ListExpenses(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("generate receipt: %w", err)
	}

	receipt := core.Receipt{AccountName: account.Name, Total: total}
	for _, e := range expenses {
		receipt.Lines = append(receipt.Lines, core.ReceiptLine{
			Date:        e.Date,
			Description: e.Description,
			Amount:      e.Amount,
		})
	}
	return receipt.Render(), nil
}

// Close releases the underlying store.
func (s *LedgerService) Close() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("close ledger service: %w", err)
	}
	return nil
}
