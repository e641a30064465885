// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber adds thousands separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatMoney formats a USD amount. Whole amounts drop the cents.
// e.g., 1500 -> "$1,500", 300.5 -> "$300.50", -100 -> "-$100"
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	if d.Equal(d.Truncate(0)) {
		return sign + "$" + FormatNumber(d.IntPart())
	}
	f, _ := d.Round(2).Float64()
	return sign + "$" + printer.Sprintf("%.2f", f)
}

// FormatPercent formats a whole-number percentage.
func FormatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}

// FormatCountdown formats whole seconds for the undo prompt, e.g. "24s".
func FormatCountdown(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return strconv.Itoa(secs) + "s"
}
