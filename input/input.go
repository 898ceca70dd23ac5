// Package input provides a uniform "position cursor" over either decoded
// Unicode codepoints or raw bytes, used by the backtracker and NFA engines
// to read characters and adjacent-character context for zero-width
// assertions without caring which mode the underlying program compiled to.
package input

import "github.com/defuz/rex/literal"

// NoChar is the absent-character sentinel: before the start of input,
// after the end of input, or (in byte mode) invalid UTF-8 at the cursor.
const NoChar rune = -1

// At is a position in the input: a byte offset plus the decoded character
// (Unicode mode) or raw byte (byte mode) found there, and that character's
// width in bytes (always 1 in byte mode).
type At struct {
	Pos   int
	Width int
	R     rune // NoChar if not applicable / at end of input
	B     byte
	hasB  bool
}

// Byte returns the raw byte at this position and whether one exists. Only
// meaningful for byte-mode cursors: a position produced by a RuneCursor
// never carries a byte, so Byte always reports ok=false for it. It does not
// panic on such a position.
func (a At) Byte() (byte, bool) { return a.B, a.hasB }

// NextPos returns the byte offset immediately following this position.
func (a At) NextPos() int { return a.Pos + a.Width }

// IsBeginning reports whether this position is the start of the input.
func (a At) IsBeginning() bool { return a.Pos == 0 }

// Cursor is the contract every matching engine drives input through.
//
// Mixing a byte-mode program with the character-valued operations (or a
// Unicode-mode program with the byte-valued ones) is a programming error:
// the two input realizations model mutually exclusive program shapes, and
// an engine that confuses them signals a bug in the compiler that produced
// the program, not a recoverable runtime condition.
type Cursor interface {
	// At returns the cursor position for byte offset i.
	At(i int) At

	// PreviousChar returns the character immediately before pos, or
	// NoChar if pos is the beginning of input (or, in byte mode, the
	// preceding bytes do not decode as UTF-8).
	PreviousChar(pos At) rune

	// NextChar returns the character at (i.e. beginning at) pos, or
	// NoChar under the same conditions as PreviousChar.
	NextChar(pos At) rune

	// PrefixAt scans forward from pos for the next hit reported by m,
	// returning the position of that hit (re-decoded so it lands on a
	// codepoint boundary in Unicode mode) or ok=false if none exists.
	PrefixAt(m *literal.Matcher, pos At) (At, bool)

	// Len returns the length of the underlying input in bytes.
	Len() int
}
