// Package format holds the small presentation helpers shared by API
// responses and outgoing emails.
package format

import (
	"fmt"
	"strings"
)

// Price renders an amount as a localized currency string, e.g. 1299 -> "$1,299.00".
// Negative amounts keep the sign ahead of the symbol: "-$12.50".
func Price(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 { // rounding carried into the next dollar
		whole++
		cents -= 100
	}

	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
