package uargs

import (
	"strings"
	"unicode/utf8"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// splitOptionName takes a dashed spelling like "-h" or "--help" and returns
// the short rune or the long name it denotes. Undashed input counts as long.
func splitOptionName(name string) (short rune, long string) {
	if rest, ok := strings.CutPrefix(name, "--"); ok {
		return 0, rest
	}
	if rest, ok := strings.CutPrefix(name, "-"); ok && rest != "" {
		r, _ := utf8.DecodeRuneInString(rest)
		return r, ""
	}
	return 0, name
}
