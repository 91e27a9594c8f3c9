// Package format renders amounts for dashboards. Display only, nothing
// here feeds back into a calculation.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Points renders a points amount with French digit grouping, e.g. "1 234 pts".
func Points(n int64) string {
	return groupDigits(n) + " pts"
}

// Percentage renders a percentage with one decimal place, e.g. "42,5 %"
// written with a dot for machine consumers: "42.5 %".
func Percentage(p decimal.Decimal) string {
	return p.StringFixed(1) + " %"
}

// Euros renders a monetary amount with two decimal places, e.g. "123.40 €".
func Euros(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
