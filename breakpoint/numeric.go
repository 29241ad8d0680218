package breakpoint

import (
	"strconv"
	"strings"
)

// parseFloatPrefix parses the longest valid floating-point prefix of s,
// after trimming leading whitespace. Trailing characters beyond the
// numeric prefix are ignored, so "420px" parses as 420. The second return
// value reports whether any number could be read at all.
func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		// exponent counts only if at least one digit follows
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
