package luapat

import (
	"strconv"
	"strings"
)

// Quote returns s as a double-quoted string literal of the scripting dialect
// that reads back as s. Quotes, backslashes and newlines are escaped with a
// backslash; other control bytes become decimal escapes.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\' || c == '\n':
			b.WriteByte('\\')
			b.WriteByte(c)
		case isClass(c, classControl):
			b.WriteByte('\\')
			// A following digit would extend the escape.
			if i+1 < len(s) && isClass(s[i+1], classDigit) {
				if c < 100 {
					b.WriteByte('0')
				}
				if c < 10 {
					b.WriteByte('0')
				}
			}
			b.WriteString(strconv.Itoa(int(c)))
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
