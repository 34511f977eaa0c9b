package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/utkarsh-saharawat/Expense-Tracker/internal/cli"
	applog "github.com/utkarsh-saharawat/Expense-Tracker/internal/log"
	"github.com/utkarsh-saharawat/Expense-Tracker/internal/services"
)

var root struct {
	Account AccountCmd `cmd:"" help:"Manage accounts."`
	Expense ExpenseCmd `cmd:"" help:"Manage expenses."`
	Summary SummaryCmd `cmd:"" help:"Show an account's name and expense total."`
	Receipt ReceiptCmd `cmd:"" help:"Print a text receipt for an account."`
}

func main() {
	ctx := kong.Parse(&root,
		kong.Name("expense-tracker"),
		kong.Description("Track expenses grouped under named accounts, stored in a local SQLite file."),
		kong.UsageOnError(),
	)

	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	ctx.FatalIfErrorf(err)

	level, err := cfg.SlogLevel()
	ctx.FatalIfErrorf(err)
	logger := cli.SetupLogger(level)

	ledger, err := cli.InitLedger(cfg, logger.WithComponent(applog.ComponentBackend))
	ctx.FatalIfErrorf(err)
	defer ledger.Close()

	app := &App{
		Ledger: ledger,
		Out:    os.Stdout,
		Ctx:    context.Background(),
	}

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}

// App carries the wired ledger into command Run methods.
type App struct {
	Ledger *services.LedgerService
	Out    *os.File
	Ctx    context.Context
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}
