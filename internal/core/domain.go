package core

import (
	"errors"
	"strings"
)

type (
	// Account groups expenses under a user-chosen name. Names are not
	// required to be unique; the id is the only identity.
	Account struct {
		ID   int64
		Name string
	}

	// Expense is a single ledger entry owned by exactly one account.
	// Date is free-form text supplied by the caller and Amount is signed:
	// negative entries are accepted and included in totals.
	Expense struct {
		ID          int64
		AccountID   int64
		Date        string
		Description string
		Amount      float64
	}

	// AccountSummary is the aggregated view of one account.
	AccountSummary struct {
		ID           int64
		Name         string
		TotalExpense float64
	}
)

var (
	ErrEmptyAccountName  = errors.New("account name cannot be empty")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNoAccountSelected = errors.New("no account selected")
	ErrUnknownAccount    = errors.New("unknown account")
)

// UnselectedAccount is the sentinel id callers pass when no account has
// been selected yet.
const UnselectedAccount int64 = 0

func (a Account) Validate() error {
	if len(strings.TrimSpace(a.Name)) == 0 {
		return ErrEmptyAccountName
	}
	return nil
}

func (e Expense) Validate() error {
	if e.AccountID == UnselectedAccount {
		return ErrNoAccountSelected
	}
	return nil
}
