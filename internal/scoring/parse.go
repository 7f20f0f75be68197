package scoring

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseInteger parses a base-10 integer from user-entered text.
// It returns nil when the text holds no integer, so "no value" stays
// distinguishable from zero. Parsing is lenient in the same way a bid box
// usually is: leading whitespace is skipped, an optional sign is accepted and
// anything after the leading digits is ignored ("12abc" is 12, "3.5" is 3).
func ParseInteger(text string) *int {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign = s[:1]
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}

	value, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		// Out of range for int
		return nil
	}

	return &value
}
