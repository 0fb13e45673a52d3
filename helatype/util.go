package helatype

import "unicode/utf8"

func isLatinLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// substring returns up to n bytes of s starting at i
func substring(s string, i int, n int) string {
	if i >= len(s) {
		return ""
	}
	end := i + n
	if end > len(s) {
		end = len(s)
	}
	return s[i:end]
}

// runeLength is the byte length of the character at the start of s.
// Invalid UTF-8 counts as one byte so that it's copied as is.
func runeLength(s string) int {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 1
	}
	return size
}
