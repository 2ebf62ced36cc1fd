// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatAmount formats a money amount with grouping and two decimals, without
// a currency symbol. e.g., 1234.5 -> "1,234.50"
func FormatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// FormatOdometer formats a whole-kilometer reading, e.g. 104250 -> "104,250 km".
func FormatOdometer(km float64) string {
	return humanize.Comma(int64(math.Round(km))) + " km"
}

// FormatLiters formats a fuel volume, e.g. 35 -> "35.00 L".
func FormatLiters(l float64) string {
	return fmt.Sprintf("%.2f L", l)
}

// FormatEfficiency formats km per liter with one decimal, or "-" when there is
// not enough data.
func FormatEfficiency(kmPerLiter float64, valid bool) string {
	if !valid {
		return "-"
	}
	return fmt.Sprintf("%.1f km/l", kmPerLiter)
}

// FormatPercent formats a 0-100 share as a percentage string.
func FormatPercent(share float64) string {
	return fmt.Sprintf("%.1f%%", share)
}

// FormatDelta formats the change between two amounts with a sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatAmount(delta)
	}
	return "-" + FormatAmount(-delta)
}

// Truncate cuts s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max || max < 1 {
		return string(r)
	}
	return string(r[:max-1]) + "…"
}
