package input

import (
	"unicode/utf8"

	"github.com/defuz/rex/literal"
)

// ByteCursor drives a byte-mode program over raw bytes. It implements
// Cursor; reading R on its At values is meaningless (R is always NoChar)
// since a byte program never consumes decoded Unicode scalars.
//
// PreviousChar/NextChar still decode UTF-8 on a best-effort basis so that
// EmptyLook assertions (word boundaries, line anchors) behave the same
// whether or not the compiler chose byte mode.
type ByteCursor struct {
	s []byte
}

// NewByteCursor wraps text for byte-mode matching.
func NewByteCursor(text []byte) *ByteCursor { return &ByteCursor{s: text} }

func (c *ByteCursor) Len() int { return len(c.s) }

func (c *ByteCursor) At(i int) At {
	if i >= len(c.s) {
		return At{Pos: i, Width: 1, R: NoChar}
	}
	return At{Pos: i, Width: 1, R: NoChar, B: c.s[i], hasB: true}
}

func (c *ByteCursor) PreviousChar(pos At) rune {
	if pos.Pos == 0 {
		return NoChar
	}
	r, _ := utf8.DecodeLastRune(c.s[:pos.Pos])
	if r == utf8.RuneError {
		return NoChar
	}
	return r
}

func (c *ByteCursor) NextChar(pos At) rune {
	if pos.Pos >= len(c.s) {
		return NoChar
	}
	r, _ := utf8.DecodeRune(c.s[pos.Pos:])
	if r == utf8.RuneError {
		return NoChar
	}
	return r
}

// PrefixAt scans for the next prefix hit, symmetric with RuneCursor's
// implementation: byte mode has no codepoint-boundary concern, so it
// needs no re-decoding step.
func (c *ByteCursor) PrefixAt(m *literal.Matcher, pos At) (At, bool) {
	start, _, ok := m.Find(c.s[pos.Pos:])
	if !ok {
		return At{}, false
	}
	return c.At(pos.Pos + start), true
}
