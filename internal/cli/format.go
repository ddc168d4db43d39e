// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// currencySymbol prefixes monetary output. Set once at startup from config.
var currencySymbol = "$"

// SetCurrencySymbol overrides the symbol used by FormatMoney.
func SetCurrencySymbol(symbol string) {
	if symbol != "" {
		currencySymbol = symbol
	}
}

// FormatMoney formats an amount in whole pesos with thousands separators.
// e.g., 1500000 -> "$1,500,000"
func FormatMoney(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-" + currencySymbol + groupThousands(-rounded)
	}
	return currencySymbol + groupThousands(rounded)
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	return groupThousands(n)
}

func groupThousands(n int64) string {
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

// FormatPercent formats a 0-100 percentage value.
// e.g., 5.0 -> "5.0%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatShare formats a 0-1 fraction as a percentage.
func FormatShare(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatMonths formats a month count with its unit.
func FormatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}

// FormatDate renders a calendar date for display.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonthYear renders a goal target date as month/year.
func FormatMonthYear(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatDelta formats a signed monetary delta.
func FormatDelta(amount float64) string {
	if amount >= 0 {
		return "+" + FormatMoney(amount)
	}
	return FormatMoney(amount)
}
