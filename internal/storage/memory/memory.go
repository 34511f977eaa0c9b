// Package memory provides an in-memory Store used by the memory backend
// and the service tests. It mirrors the SQLite semantics: generated ids,
// storage order, cascade deletes, value-match deletes.
package memory

import (
	"context"
	"sync"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/core"
	"github.com/utkarsh-saharawat/Expense-Tracker/internal/storage"
)

type Store struct {
	mu            sync.Mutex
	accounts      []core.Account
	expenses      []core.Expense
	nextAccountID int64
	nextExpenseID int64
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{nextAccountID: 1, nextExpenseID: 1}
}

func (s *Store) CreateAccount(_ context.Context, name string) (core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := core.Account{ID: s.nextAccountID, Name: name}
	s.nextAccountID++
	s.accounts = append(s.accounts, a)
	return a, nil
}

func (s *Store) ListAccounts(_ context.Context) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Account(nil), s.accounts...), nil
}

func (s *Store) GetAccount(_ context.Context, id int64) (core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return core.Account{}, core.ErrUnknownAccount
}

func (s *Store) DeleteAccountCascade(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.accounts[:0]
	for _, a := range s.accounts {
		if a.ID != id {
			accounts = append(accounts, a)
		}
	}
	s.accounts = accounts

	expenses := s.expenses[:0]
	for _, e := range s.expenses {
		if e.AccountID != id {
			expenses = append(expenses, e)
		}
	}
	s.expenses = expenses

	return nil
}

func (s *Store) CreateExpense(_ context.Context, e core.Expense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextExpenseID
	s.nextExpenseID++
	s.expenses = append(s.expenses, e)
	return e, nil
}

func (s *Store) ListExpensesByAccount(_ context.Context, accountID int64) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Expense
	for _, e := range s.expenses {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) SumExpenses(_ context.Context, accountID int64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, e := range s.expenses {
		if e.AccountID == accountID {
			total += e.Amount
		}
	}
	return total, nil
}

func (s *Store) DeleteExpenseByID(_ context.Context, accountID, expenseID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	expenses := s.expenses[:0]
	for _, e := range s.expenses {
		if e.AccountID == accountID && e.ID == expenseID {
			removed++
			continue
		}
		expenses = append(expenses, e)
	}
	s.expenses = expenses
	return removed, nil
}

func (s *Store) DeleteExpensesByMatch(_ context.Context, accountID int64, date, description string, amount float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	expenses := s.expenses[:0]
	for _, e := range s.expenses {
		if e.AccountID == accountID && e.Date == date && e.Description == description && e.Amount == amount {
			removed++
			continue
		}
		expenses = append(expenses, e)
	}
	s.expenses = expenses
	return removed, nil
}

func (s *Store) Close() error {
	return nil
}
