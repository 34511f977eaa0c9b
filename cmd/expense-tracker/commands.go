package main

import (
	"errors"
	"time"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/core"
)

type AccountCmd struct {
	Add    AccountAddCmd    `cmd:"" help:"Create a new account."`
	List   AccountListCmd   `cmd:"" help:"List all accounts."`
	Delete AccountDeleteCmd `cmd:"" help:"Delete an account and every expense it owns."`
}

type AccountAddCmd struct {
	Name string `arg:"" help:"Account name."`
}

func (cmd *AccountAddCmd) Run(app *App) error {
	account, err := app.Ledger.CreateAccount(app.Ctx, cmd.Name)
	if err != nil {
		return err
	}
	app.printf("Account #%d created: %s\n", account.ID, account.Name)
	return nil
}

type AccountListCmd struct{}

func (cmd *AccountListCmd) Run(app *App) error {
	accounts, err := app.Ledger.ListAccounts(app.Ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		app.printf("No accounts yet.\n")
		return nil
	}
	for _, a := range accounts {
		app.printf("%d | %s\n", a.ID, a.Name)
	}
	return nil
}

type AccountDeleteCmd struct {
	ID  int64 `arg:"" help:"Account id."`
	Yes bool  `help:"Confirm deleting the account and all of its expenses."`
}

func (cmd *AccountDeleteCmd) Run(app *App) error {
	// Deletion cascades; make the caller say so explicitly.
	if !cmd.Yes {
		return errors.New("deleting an account removes all of its expenses; pass --yes to confirm")
	}
	if err := app.Ledger.DeleteAccount(app.Ctx, cmd.ID); err != nil {
		return err
	}
	app.printf("Account #%d deleted.\n", cmd.ID)
	return nil
}

type ExpenseCmd struct {
	Add    ExpenseAddCmd    `cmd:"" help:"Record an expense for an account."`
	List   ExpenseListCmd   `cmd:"" help:"List an account's expenses and their total."`
	Delete ExpenseDeleteCmd `cmd:"" help:"Delete an expense by id, or by exact date/description/amount match."`
}

type ExpenseAddCmd struct {
	Account     int64  `help:"Account id." default:"0"`
	Date        string `help:"Expense date, free-form text (defaults to today)."`
	Description string `help:"What the money went to."`
	Amount      string `arg:"" help:"Amount, e.g. 3.50 or 3,50. Negative values are allowed."`
}

func (cmd *ExpenseAddCmd) Run(app *App) error {
	amount, err := core.ParseAmount(cmd.Amount)
	if err != nil {
		return err
	}
	date := cmd.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	expense, err := app.Ledger.AddExpense(app.Ctx, cmd.Account, date, cmd.Description, amount)
	if err != nil {
		return err
	}
	app.printf("Expense #%d recorded: %s %s %s\n",
		expense.ID, expense.Date, expense.Description, core.FormatAmount(expense.Amount))
	return nil
}

type ExpenseListCmd struct {
	Account int64 `help:"Account id." default:"0"`
}

func (cmd *ExpenseListCmd) Run(app *App) error {
	expenses, total, err := app.Ledger.ListExpenses(app.Ctx, cmd.Account)
	if err != nil {
		return err
	}
	for _, e := range expenses {
		app.printf("%d | %s | %s | %s\n", e.ID, e.Date, e.Description, core.FormatAmount(e.Amount))
	}
	app.printf("Total: %s\n", core.FormatAmount(total))
	return nil
}

type ExpenseDeleteCmd struct {
	Account     int64  `help:"Account id." default:"0"`
	ID          int64  `help:"Expense id (preferred)." default:"0"`
	Date        string `help:"Exact date text to match (fallback when no id is known)."`
	Description string `help:"Exact description to match."`
	Amount      string `help:"Exact amount to match."`
}

func (cmd *ExpenseDeleteCmd) Run(app *App) error {
	if cmd.ID != 0 {
		if err := app.Ledger.DeleteExpense(app.Ctx, cmd.Account, cmd.ID); err != nil {
			return err
		}
		app.printf("Expense #%d deleted.\n", cmd.ID)
		return nil
	}

	if cmd.Amount == "" {
		return errors.New("pass --id, or --date/--description/--amount to match on")
	}
	amount, err := core.ParseAmount(cmd.Amount)
	if err != nil {
		return err
	}
	removed, err := app.Ledger.DeleteExpenseByMatch(app.Ctx, cmd.Account, cmd.Date, cmd.Description, amount)
	if err != nil {
		return err
	}
	app.printf("Deleted %d matching expense(s).\n", removed)
	return nil
}

type SummaryCmd struct {
	Account int64 `help:"Account id." default:"0"`
}

func (cmd *SummaryCmd) Run(app *App) error {
	summary, err := app.Ledger.AccountSummary(app.Ctx, cmd.Account)
	if err != nil {
		return err
	}
	app.printf("%s: %s\n", summary.Name, core.FormatAmount(summary.TotalExpense))
	return nil
}

type ReceiptCmd struct {
	Account int64 `help:"Account id." default:"0"`
}

func (cmd *ReceiptCmd) Run(app *App) error {
	receipt, err := app.Ledger.GenerateReceipt(app.Ctx, cmd.Account)
	if err != nil {
		return err
	}
	app.printf("%s\n", receipt)
	return nil
}
