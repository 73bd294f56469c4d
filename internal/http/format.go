package http

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber renders an amount with thousands separators and two decimals,
// the way the summary screens display money: 1234567.5 -> "1,234,567.50".
func FormatNumber(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := fmt.Sprintf("%s.%s", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}
