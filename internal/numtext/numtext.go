// Package numtext is the single parse/format pair for price strings.
// Prices cross every boundary of the system (catalog, import, sync, quote
// lines) as strings that may carry comma thousands separators; all numeric
// interpretation funnels through ParseAmount so the comma-strip step cannot
// be forgotten at one call site.
package numtext

import (
	"strconv"
	"strings"
)

// ParseAmount interprets a price string as an integer amount.
// Commas and surrounding whitespace are stripped first. Anything that does
// not parse as a plain integer afterwards yields (0, false); malformed input
// is never an error, it just contributes nothing numerically.
func ParseAmount(s string) (int, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Amount returns the numeric value of a price string, or 0 if unparseable.
func Amount(s string) int {
	n, _ := ParseAmount(s)
	return n
}

// FormatAmount renders an integer amount with comma thousands separators.
func FormatAmount(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) > 3 {
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
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
