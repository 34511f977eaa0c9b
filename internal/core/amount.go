// Package core holds the ledger domain: accounts, expenses, amount
// parsing and the receipt projection.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts caller-supplied amount text to a signed value.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading sign. Negative amounts are valid ledger entries (refunds,
// corrections) and are included in totals like any other row.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34, nil
//	ParseAmount("12,34")  -> 12.34, nil
//	ParseAmount("-3.50")  -> -3.5, nil
//	ParseAmount("abc")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f, _ := d.Float64()
	return f, nil
}

// FormatAmount renders a value with exactly two decimals, half-up rounded.
// Used for totals and receipt rows; calculations keep the raw float64.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
