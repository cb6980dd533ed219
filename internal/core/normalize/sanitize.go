package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops bytes that should never reach a saved article or a database row:
// NUL and other C0 controls except \n \r \t, DEL, C1 controls U+0080..U+009F
// and invalid UTF-8. Clean input is returned without allocating
func Sanitize(s string) string {
	i := firstBad(s)
	if i == len(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !dropped(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// firstBad returns the offset of the first rune Sanitize would drop, or len(s)
func firstBad(s string) int {
	for i := 0; i < len(s); {
		if c := s[i]; c >= 0x20 && c < 0x7F {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if dropped(r, size) {
			return i
		}
		i += size
	}
	return len(s)
}

func dropped(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return true
	case r < 0x20:
		return r != '\n' && r != '\r' && r != '\t'
	case r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	}
	return false
}
