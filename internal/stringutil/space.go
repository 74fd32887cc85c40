package stringutil

import (
	"strings"
	"unicode"
)

// SpaceClass is the body of a regexp character class matching exactly the
// runes IsSpace accepts. Use it in place of \s, which only matches ASCII.
const SpaceClass = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// IsSpace reports whether r counts as white space for trimming. It is
// unicode.IsSpace plus the byte order mark, minus NEL (U+0085).
func IsSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// TrimSpace removes leading and trailing white space as defined by IsSpace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// IsBlank reports whether s is empty or white space only.
func IsBlank(s string) bool {
	return TrimSpace(s) == ""
}

// NonBlankLines splits s on "\n" and drops lines that are blank. The
// remaining lines are returned untrimmed.
func NonBlankLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if !IsBlank(line) {
			lines = append(lines, line)
		}
	}
	return lines
}
