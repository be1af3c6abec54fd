// Package pricing holds the pricing rules of a service order: the price-table
// resolver and the quotation calculator. Everything here is pure, synchronous
// computation over in-memory values.
package pricing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const centsPlaces = 2

// plain decimal notation only: no exponent, no thousands separators.
var amountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Round2 rounds to cents, half away from zero (50.005 -> 50.01, -50.005 -> -50.01).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(centsPlaces)
}

// ParseAmount parses a typed monetary value. A decimal comma is accepted and
// normalized to a point first. Empty or unparseable input returns ok=false, and
// so does exponent notation ("1e3").
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if !amountPattern.MatchString(s) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatBRL renders an amount as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	s := Round2(d).StringFixed(centsPlaces)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
