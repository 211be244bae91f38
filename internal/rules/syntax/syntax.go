// Package syntax holds the lexical helpers shared by the per-kind rule
// parsers: comment and terminator stripping, and searching for syntax
// characters while skipping escapes, quoted literals and bracketed sets.
package syntax

import (
	"strings"
	"unicode/utf8"
)

// Clean trims whitespace, a trailing `#` comment and the `;` terminator.
func Clean(line string) string {
	s := strings.TrimSpace(line)
	if i := Find(s, "#"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if strings.HasSuffix(s, ";") && !IsEscaped(s, len(s)-1) {
		s = strings.TrimSpace(s[:len(s)-1])
	}
	return s
}

// IsComment reports whether a trimmed line carries no rule at all.
func IsComment(line string) bool {
	s := strings.TrimSpace(line)
	return s == "" || strings.HasPrefix(s, "#")
}

// IsEscaped reports whether the byte at i is preceded by an odd number of
// backslashes.
func IsEscaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// Find returns the index of the first byte of chars in s that is not
// escaped, not quoted and not nested inside a `[...]` set, or -1.
func Find(s, chars string) int {
	inQuote := false
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			i++
			continue
		case c == '\'':
			inQuote = !inQuote
			continue
		case inQuote:
			continue
		}
		if depth == 0 && strings.IndexByte(chars, c) >= 0 {
			return i
		}
		switch c {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		}
	}
	return -1
}

// Unescape resolves backslash escapes and strips quote marks, yielding the
// literal text a pattern stands for. `''` stands for a single quote.
func Unescape(s string) string {
	if !strings.ContainsAny(s, `\'`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			r, n := DecodeEscape(s[i+1:])
			b.WriteRune(r)
			i += n
		case c == '\'':
			if i+1 < len(s) && s[i+1] == '\'' {
				b.WriteByte('\'')
				i++
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// DecodeEscape decodes the escape sequence following a backslash and
// returns the rune plus the number of bytes consumed. Supports \uXXXX,
// \UXXXXXXXX, \x{h...} and single escaped characters.
func DecodeEscape(s string) (rune, int) {
	switch {
	case s == "":
		return '\\', 0
	case s[0] == 'u' && len(s) >= 5:
		if r, ok := hex(s[1:5]); ok {
			return r, 5
		}
	case s[0] == 'U' && len(s) >= 9:
		if r, ok := hex(s[1:9]); ok {
			return r, 9
		}
	case s[0] == 'x' && len(s) >= 3 && s[1] == '{':
		if end := strings.IndexByte(s, '}'); end > 2 {
			if r, ok := hex(s[2:end]); ok {
				return r, end + 1
			}
		}
	}
	return utf8.DecodeRuneInString(s)
}

func hex(s string) (rune, bool) {
	if len(s) > 8 {
		return 0, false
	}
	var r rune
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}
	return r, r <= 0x10FFFF
}
