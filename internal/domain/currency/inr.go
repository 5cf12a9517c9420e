// Package currency renders whole-rupee amounts in the en-IN convention.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is the Indian Rupee sign.
const Symbol = "₹"

var indian = language.MustParse("en-IN")

// FormatINR renders amount with Indian digit grouping and no fraction:
// the last three digits form one group, the rest are grouped in pairs.
// 2500000 -> "₹25,00,000". Negative amounts get a leading minus: "-₹1,00,000".
func FormatINR(amount int64) string {
	neg := amount < 0
	var u uint64
	if neg {
		u = uint64(-(amount + 1)) + 1 // safe for MinInt64
	} else {
		u = uint64(amount)
	}

	out := Symbol + message.NewPrinter(indian).Sprintf("%d", u)
	if neg {
		return "-" + out
	}
	return out
}
