package inst

import "unicode"

// isUnicodeWordChar extends the ASCII \w definition to the Unicode letter,
// digit and mark categories for runes outside the ASCII range. Kept in its
// own file since it is the only place this package imports unicode.
func isUnicodeWordChar(r rune) bool {
	if r < 0x80 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
