package input

import (
	"unicode/utf8"

	"github.com/defuz/rex/literal"
)

// RuneCursor drives a Unicode program over decoded codepoints. It
// implements Cursor; calling Byte() on an At it produced always reports
// "no byte" since a Unicode program never consumes raw bytes.
type RuneCursor struct {
	s        []byte
	allASCII bool
}

// NewRuneCursor wraps text for Unicode-mode matching. The whole input is
// scanned once up front for an all-ASCII fast path (see ascii.go); this
// keeps the common case of ASCII-only haystacks off the utf8.DecodeRune
// path entirely.
func NewRuneCursor(text []byte) *RuneCursor {
	return &RuneCursor{s: text, allASCII: isASCIIRun(text)}
}

func (c *RuneCursor) Len() int { return len(c.s) }

func (c *RuneCursor) At(i int) At {
	if i >= len(c.s) {
		return At{Pos: i, Width: 0, R: NoChar}
	}
	if c.allASCII || isASCIIByte(c.s[i]) {
		return At{Pos: i, Width: 1, R: rune(c.s[i])}
	}
	r, w := utf8.DecodeRune(c.s[i:])
	if r == utf8.RuneError && w <= 1 {
		// Invalid UTF-8: advance one byte so the cursor always makes
		// progress, but report no character.
		return At{Pos: i, Width: 1, R: NoChar}
	}
	return At{Pos: i, Width: w, R: r}
}

func (c *RuneCursor) PreviousChar(pos At) rune {
	if pos.Pos == 0 {
		return NoChar
	}
	r, _ := utf8.DecodeLastRune(c.s[:pos.Pos])
	if r == utf8.RuneError {
		return NoChar
	}
	return r
}

func (c *RuneCursor) NextChar(pos At) rune {
	return pos.R
}

func (c *RuneCursor) PrefixAt(m *literal.Matcher, pos At) (At, bool) {
	start, _, ok := m.Find(c.s[pos.Pos:])
	if !ok {
		return At{}, false
	}
	return c.At(pos.Pos + start), true
}
