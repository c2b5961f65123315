package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount as a US-dollar string with thousands
// separators, e.g. 1234.5 -> "$1,234.50". Negative amounts render as
// "-$1,234.50".
func FormatPrice(amount decimal.Decimal) string {
	return format(amount, 2)
}

// FormatPriceWholeNumber renders an amount as a US-dollar string rounded to
// whole dollars, e.g. 1234.5 -> "$1,235". Used for the summary cards.
func FormatPriceWholeNumber(amount decimal.Decimal) string {
	return format(amount, 0)
}

func format(amount decimal.Decimal, places int32) string {
	neg := amount.IsNegative()
	s := amount.Abs().StringFixed(places)

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}
