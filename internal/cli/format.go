// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CurrencySymbol prefixes all money values. Overridden at startup from the
// config file's general.currency_symbol.
var CurrencySymbol = "$"

// FormatMoney formats a currency amount with comma separators and two
// decimals. e.g., 1234567.5 -> "$1,234,567.50"
func FormatMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, CurrencySymbol, FormatNumber(whole), cents)
}

// FormatMoneyShort formats a currency amount with human-readable suffixes
// for compact columns. e.g., 12345 -> "$12.3K"
func FormatMoneyShort(amount float64) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%s%.1fM", CurrencySymbol, amount/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%s%.1fK", CurrencySymbol, amount/1_000)
	default:
		return FormatMoney(amount)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 number as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatMonth renders a date as its calendar month. e.g., "Jan 2027"
func FormatMonth(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("Jan 2006")
}

// FormatMonthCount renders a month count as years and months.
// e.g., 26 -> "2y 2m", 9 -> "9m"
func FormatMonthCount(months int) string {
	if months <= 0 {
		return "0m"
	}
	years := months / 12
	rem := months % 12
	if years > 0 && rem > 0 {
		return fmt.Sprintf("%dy %dm", years, rem)
	}
	if years > 0 {
		return fmt.Sprintf("%dy", years)
	}
	return fmt.Sprintf("%dm", rem)
}

// FormatAPR renders an annual percentage rate.
func FormatAPR(apr float64) string {
	return fmt.Sprintf("%.2f%%", apr)
}
