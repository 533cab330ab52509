package helpers

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ExtractDigits drops every character that is not an ASCII decimal digit.
// "₹12,000" becomes "12000" and "₹4.2Cr" becomes "42".
func ExtractDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ExtractInt parses the digits of a formatted money or quantity string as a
// base-10 integer. Strings without digits yield 0. Values too large for an
// int64 saturate at math.MaxInt64.
func ExtractInt(s string) int64 {
	digits := ExtractDigits(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt64
		}
		return 0
	}
	return n
}

// ExtractFloat is ExtractInt widened for chart series.
func ExtractFloat(s string) float64 {
	return float64(ExtractInt(s))
}
