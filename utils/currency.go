package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrencyINR memformat nilai ke format Rupee India dengan digit
// grouping lakh/crore: 3 digit terakhir, lalu kelompok 2 digit.
// Contoh: 1234567.5 -> "₹ 12,34,567.50"
func FormatCurrencyINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	integer := int64(math.Floor(amount))
	decimal := math.Round((amount-float64(integer))*100) / 100

	digits := fmt.Sprintf("%d", integer)

	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		grouped = digits[len(digits)-3:]
		rest := digits[:len(digits)-3]
		for len(rest) > 2 {
			grouped = rest[len(rest)-2:] + "," + grouped
			rest = rest[:len(rest)-2]
		}
		if rest != "" {
			grouped = rest + "," + grouped
		}
	}

	var b strings.Builder
	b.WriteString("₹ ")
	if negative {
		b.WriteString("-")
	}
	b.WriteString(grouped)
	if decimal > 0 {
		b.WriteString(fmt.Sprintf(".%02.0f", decimal*100))
	}
	return b.String()
}
