package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/core"
	"github.com/utkarsh-saharawat/Expense-Tracker/internal/storage/memory"
)

func newTestLedger() *LedgerService {
	return NewLedgerService(memory.New())
}

func TestLedgerService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("created account shows up in listing with a fresh id", func(t *testing.T) {
		svc := newTestLedger()

		first, err := svc.CreateAccount(ctx, "Groceries")
		if err != nil {
			t.Fatalf("CreateAccount: %v", err)
		}
		second, err := svc.CreateAccount(ctx, "Groceries")
		if err != nil {
			t.Fatalf("CreateAccount duplicate name: %v", err)
		}
		if first.ID == second.ID {
			t.Fatalf("expected fresh ids, got %d twice", first.ID)
		}

		accounts, err := svc.ListAccounts(ctx)
		if err != nil {
			t.Fatalf("ListAccounts: %v", err)
		}
		if len(accounts) != 2 {
			t.Fatalf("expected 2 accounts, got %d", len(accounts))
		}
		for _, a := range accounts {
			if a.Name != "Groceries" {
				t.Errorf("unexpected account name %q", a.Name)
			}
		}
	})

	t.Run("empty and whitespace names are rejected and nothing persists", func(t *testing.T) {
		svc := newTestLedger()

		for _, name := range []string{"", "   ", "\t\n"} {
			if _, err := svc.CreateAccount(ctx, name); !errors.Is(err, core.ErrEmptyAccountName) {
				t.Errorf("CreateAccount(%q) error = %v, want ErrEmptyAccountName", name, err)
			}
		}

		accounts, err := svc.ListAccounts(ctx)
		if err != nil {
			t.Fatalf("ListAccounts: %v", err)
		}
		if len(accounts) != 0 {
			t.Fatalf("expected no accounts persisted, got %d", len(accounts))
		}
	})
}

func TestLedgerService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestLedger()

	account, err := svc.CreateAccount(ctx, "Travel")
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if _, err := svc.AddExpense(ctx, account.ID, "2024-03-01", "Train", 42.00); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if _, err := svc.AddExpense(ctx, account.ID, "2024-03-02", "Hotel", 120.00); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	if err := svc.DeleteAccount(ctx, account.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	accounts, err := svc.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}
	for _, a := range accounts {
		if a.ID == account.ID {
			t.Fatalf("account %d still listed after delete", account.ID)
		}
	}

	expenses, total, err := svc.ListExpenses(ctx, account.ID)
	if err != nil {
		t.Fatalf("ListExpenses after delete: %v", err)
	}
	if len(expenses) != 0 || total != 0 {
		t.Fatalf("expected empty list and total 0 after cascade, got %d rows, total %v", len(expenses), total)
	}

	// Deleting again is a no-op, not an error
	if err := svc.DeleteAccount(ctx, account.ID); err != nil {
		t.Fatalf("DeleteAccount on missing id: %v", err)
	}
}

func TestLedgerService_AddExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("unselected sentinel is rejected", func(t *testing.T) {
		svc := newTestLedger()
		_, err := svc.AddExpense(ctx, core.UnselectedAccount, "2024-01-01", "Milk", 3.50)
		if !errors.Is(err, core.ErrNoAccountSelected) {
			t.Fatalf("AddExpense(0) error = %v, want ErrNoAccountSelected", err)
		}
	})

	t.Run("unknown account is rejected before insert", func(t *testing.T) {
		svc := newTestLedger()
		_, err := svc.AddExpense(ctx, 999, "2024-01-01", "Milk", 3.50)
		if !errors.Is(err, core.ErrUnknownAccount) {
			t.Fatalf("AddExpense(999) error = %v, want ErrUnknownAccount", err)
		}
	})

	t.Run("negative amounts are accepted and summed", func(t *testing.T) {
		svc := newTestLedger()
		account, err := svc.CreateAccount(ctx, "Refunds")
		if err != nil {
			t.Fatalf("CreateAccount: %v", err)
		}
		if _, err := svc.AddExpense(ctx, account.ID, "2024-01-01", "Purchase", 10.00); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
		if _, err := svc.AddExpense(ctx, account.ID, "2024-01-05", "Refund", -4.00); err != nil {
			t.Fatalf("AddExpense negative: %v", err)
		}
		_, total, err := svc.ListExpenses(ctx, account.ID)
		if err != nil {
			t.Fatalf("ListExpenses: %v", err)
		}
		if total != 6.00 {
			t.Fatalf("total = %v, want 6", total)
		}
	})
}

func TestLedgerService_ListExpenses_TotalIsOrderIndependent(t *testing.T) {
	ctx := context.Background()
	svc := newTestLedger()

	a, err := svc.CreateAccount(ctx, "A")
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	b, err := svc.CreateAccount(ctx, "B")
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	// Interleave inserts across accounts; B's rows must not leak into A's total.
	amounts := []float64{1.25, 0.75, 10, 2.5}
	var want float64
	for i, amt := range amounts {
		if _, err := svc.AddExpense(ctx, a.ID, "2024-01-01", "a", amt); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
		want += amt
		if _, err := svc.AddExpense(ctx, b.ID, "2024-01-01", "b", float64(i)*100); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
	}

	expenses, total, err := svc.ListExpenses(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != len(amounts) {
		t.Fatalf("expected %d expenses, got %d", len(amounts), len(expenses))
	}
	if total != want {
		t.Fatalf("total = %v, want %v", total, want)
	}
	for i, e := range expenses {
		if e.Amount != amounts[i] {
			t.Errorf("expense %d amount = %v, want %v (storage order)", i, e.Amount, amounts[i])
		}
	}
}

func TestLedgerService_DeleteExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("by id removes exactly one row", func(t *testing.T) {
		svc := newTestLedger()
		account, _ := svc.CreateAccount(ctx, "Food")
		first, _ := svc.AddExpense(ctx, account.ID, "2024-01-01", "Milk", 3.50)
		if _, err := svc.AddExpense(ctx, account.ID, "2024-01-01", "Milk", 3.50); err != nil {
			t.Fatalf("AddExpense duplicate: %v", err)
		}

		if err := svc.DeleteExpense(ctx, account.ID, first.ID); err != nil {
			t.Fatalf("DeleteExpense: %v", err)
		}
		expenses, _, err := svc.ListExpenses(ctx, account.ID)
		if err != nil {
			t.Fatalf("ListExpenses: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("expected 1 expense left, got %d", len(expenses))
		}
		if expenses[0].ID == first.ID {
			t.Fatalf("wrong row deleted")
		}

		// Absent id is a no-op
		if err := svc.DeleteExpense(ctx, account.ID, 9999); err != nil {
			t.Fatalf("DeleteExpense missing id: %v", err)
		}
	})

	t.Run("by value match removes every duplicate", func(t *testing.T) {
		svc := newTestLedger()
		account, _ := svc.CreateAccount(ctx, "Food")
		svc.AddExpense(ctx, account.ID, "2024-01-01", "Milk", 3.50)
		svc.AddExpense(ctx, account.ID, "2024-01-01", "Milk", 3.50)
		svc.AddExpense(ctx, account.ID, "2024-01-02", "Bread", 2.25)

		removed, err := svc.DeleteExpenseByMatch(ctx, account.ID, "2024-01-01", "Milk", 3.50)
		if err != nil {
			t.Fatalf("DeleteExpenseByMatch: %v", err)
		}
		if removed != 2 {
			t.Fatalf("removed = %d, want 2", removed)
		}

		expenses, total, err := svc.ListExpenses(ctx, account.ID)
		if err != nil {
			t.Fatalf("ListExpenses: %v", err)
		}
		if len(expenses) != 1 || expenses[0].Description != "Bread" {
			t.Fatalf("unexpected remaining expenses: %+v", expenses)
		}
		if total != 2.25 {
			t.Fatalf("total = %v, want 2.25", total)
		}

		// Nothing left to match: no-op, zero count
		removed, err = svc.DeleteExpenseByMatch(ctx, account.ID, "2024-01-01", "Milk", 3.50)
		if err != nil {
			t.Fatalf("DeleteExpenseByMatch no-op: %v", err)
		}
		if removed != 0 {
			t.Fatalf("removed = %d, want 0", removed)
		}
	})
}

func TestLedgerService_AccountSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh account totals zero, not an error", func(t *testing.T) {
		svc := newTestLedger()
		account, _ := svc.CreateAccount(ctx, "Empty")

		summary, err := svc.AccountSummary(ctx, account.ID)
		if err != nil {
			t.Fatalf("AccountSummary: %v", err)
		}
		if summary.Name != "Empty" || summary.TotalExpense != 0 {
			t.Fatalf("summary = %+v, want name Empty and total 0", summary)
		}
	})

	t.Run("unknown account fails", func(t *testing.T) {
		svc := newTestLedger()
		if _, err := svc.AccountSummary(ctx, 42); !errors.Is(err, core.ErrUnknownAccount) {
			t.Fatalf("AccountSummary(42) error = %v, want ErrUnknownAccount", err)
		}
	})

	t.Run("summary fails after the account is deleted", func(t *testing.T) {
		svc := newTestLedger()
		account, _ := svc.CreateAccount(ctx, "Doomed")
		if _, err := svc.AddExpense(ctx, account.ID, "2024-01-01", "x", 1); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
		if err := svc.DeleteAccount(ctx, account.ID); err != nil {
			t.Fatalf("DeleteAccount: %v", err)
		}
		if _, err := svc.AccountSummary(ctx, account.ID); !errors.Is(err, core.ErrUnknownAccount) {
			t.Fatalf("AccountSummary after delete error = %v, want ErrUnknownAccount", err)
		}
	})
}

func TestLedgerService_GenerateReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("unselected sentinel is rejected", func(t *testing.T) {
		svc := newTestLedger()
		if _, err := svc.GenerateReceipt(ctx, core.UnselectedAccount); !errors.Is(err, core.ErrNoAccountSelected) {
			t.Fatalf("GenerateReceipt(0) error = %v, want ErrNoAccountSelected", err)
		}
	})

	t.Run("groceries end to end", func(t *testing.T) {
		svc := newTestLedger()
		account, err := svc.CreateAccount(ctx, "Groceries")
		if err != nil {
			t.Fatalf("CreateAccount: %v", err)
		}
		if _, err := svc.AddExpense(ctx, account.ID, "2024-01-01", "Milk", 3.50); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
		if _, err := svc.AddExpense(ctx, account.ID, "2024-01-02", "Bread", 2.25); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}

		summary, err := svc.AccountSummary(ctx, account.ID)
		if err != nil {
			t.Fatalf("AccountSummary: %v", err)
		}
		if summary.Name != "Groceries" || summary.TotalExpense != 5.75 {
			t.Fatalf("summary = %+v, want Groceries / 5.75", summary)
		}

		receipt, err := svc.GenerateReceipt(ctx, account.ID)
		if err != nil {
			t.Fatalf("GenerateReceipt: %v", err)
		}
		for _, want := range []string{"Account: Groceries", "Milk", "Bread", "3.50", "2.25"} {
			if !strings.Contains(receipt, want) {
				t.Errorf("receipt missing %q:\n%s", want, receipt)
			}
		}
		if !strings.HasSuffix(receipt, "Total: 5.75") {
			t.Errorf("receipt should end with the total line:\n%s", receipt)
		}
	})
}
