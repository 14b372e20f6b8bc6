// Package money formats dollar amounts for response text.
package money

import (
	"fmt"
	"strings"
)

// Format renders v as a comma-grouped dollar amount with two decimals:
// 1234567.8 → "$1,234,567.80". Negative amounts keep the sign before
// the dollar: "-$500.00".
func Format(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String() + "." + frac
}

// Percent renders v with one decimal and a percent sign.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
