package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	receiptDateWidth = 12
	receiptDescWidth = 25
	receiptRuleWidth = 53
)

type (
	// ReceiptLine is one expense row as it appears on a receipt.
	ReceiptLine struct {
		Date        string
		Description string
		Amount      float64
	}

	// Receipt is the printable projection of one account's expenses,
	// in storage order, with the running total.
	Receipt struct {
		AccountName string
		Lines       []ReceiptLine
		Total       float64
	}
)

// Render produces the receipt text block: account header, fixed-width
// Date/Description/Amount columns between separator rules, and a trailing
// total line. Column padding is display-width aware so wide runes in
// descriptions keep the amounts aligned.
func (r Receipt) Render() string {
	rule := strings.Repeat("-", receiptRuleWidth)

	var b strings.Builder
	b.WriteString("EXPENSE RECEIPT\n\n")
	b.WriteString("Account: ")
	b.WriteString(r.AccountName)
	b.WriteString("\n\n")

	b.WriteString(runewidth.FillRight("Date", receiptDateWidth))
	b.WriteString(" ")
	b.WriteString(runewidth.FillRight("Description", receiptDescWidth))
	b.WriteString(" Amount\n")
	b.WriteString(rule)
	b.WriteString("\n")

	for _, line := range r.Lines {
		b.WriteString(runewidth.FillRight(line.Date, receiptDateWidth))
		b.WriteString(" ")
		b.WriteString(runewidth.FillRight(line.Description, receiptDescWidth))
		b.WriteString(" ")
		b.WriteString(FormatAmount(line.Amount))
		b.WriteString("\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString("Total: ")
	b.WriteString(FormatAmount(r.Total))

	return b.String()
}
