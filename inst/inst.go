// Package inst defines the instruction set executed by the regex matching
// engines and the small set of helpers used to inspect a compiled program
// without running it.
//
// An instruction sequence is produced by a front-end compiler (pattern
// parsing and program compilation live outside this module) and is treated
// as immutable once built: every matching engine in this module only reads
// from an []Inst, never mutates it.
package inst

// Op identifies the kind of an instruction. Op determines which fields of
// Inst are meaningful, the same way a tagged union would in a language with
// sum types.
type Op uint8

const (
	// OpMatch marks an accepting state. Carries no operands.
	OpMatch Op = iota
	// OpSave records the current input position into a capture slot.
	OpSave
	// OpSplit is a nondeterministic branch; Goto1 has priority over Goto2.
	OpSplit
	// OpEmptyLook is a zero-width assertion.
	OpEmptyLook
	// OpChar matches a single Unicode scalar value. Unicode programs only.
	OpChar
	// OpRanges matches one of a set of ordered, non-overlapping inclusive
	// (lo, hi) rune ranges. Unicode programs only.
	OpRanges
	// OpBytes matches a single inclusive byte range. Byte programs only.
	OpBytes
)

// Look enumerates the zero-width assertions an EmptyLook instruction can
// test.
type Look uint8

const (
	LookStartLine Look = iota
	LookEndLine
	LookStartText
	LookEndText
	LookWordBoundary
	LookNotWordBoundary
)

// RuneRange is an inclusive range of Unicode scalar values.
type RuneRange struct {
	Lo, Hi rune
}

// ByteRange is an inclusive range of bytes.
type ByteRange struct {
	Lo, Hi byte
}

// Inst is a single instruction in a compiled program. All variants except
// Match and Split carry a single successor program counter in Goto; Split
// carries two (Goto1, Goto2).
type Inst struct {
	Op Op

	// Goto is the successor pc for every op except Match and Split.
	Goto int

	// Save.
	Slot int

	// Split.
	Goto1, Goto2 int

	// EmptyLook.
	Look Look

	// Char.
	Char rune

	// Ranges.
	Ranges []RuneRange

	// Bytes.
	Bytes ByteRange
}

// Insts is an immutable instruction sequence plus the flag that says
// whether it must be driven over raw bytes or over decoded Unicode
// codepoints. A Char/Ranges instruction may only appear when Bytes is
// false; an OpBytes instruction may only appear when Bytes is true. Mixing
// the two within one program is a bug in the compiler that produced it.
type Insts struct {
	list  []Inst
	bytes bool
}

// New wraps a raw instruction slice. The slice becomes owned by the
// returned Insts and must not be mutated afterward.
func New(list []Inst, bytes bool) Insts {
	return Insts{list: list, bytes: bytes}
}

// Len returns the number of instructions.
func (n Insts) Len() int { return len(n.list) }

// At returns the instruction at pc.
func (n Insts) At(pc int) Inst { return n.list[pc] }

// IsBytes reports whether this instruction sequence must be executed over
// raw bytes rather than decoded Unicode codepoints.
func (n Insts) IsBytes() bool { return n.bytes }

// Raw exposes the underlying slice for engines that want direct indexing
// in a hot loop.
func (n Insts) Raw() []Inst { return n.list }

// Skip follows a chain of Save instructions starting at pc and returns the
// first pc that is not a Save. Save instructions are no-ops from the point
// of view of anything that only cares about control flow, not capture
// bookkeeping.
func (n Insts) Skip(pc int) int {
	for {
		if n.list[pc].Op != OpSave {
			return pc
		}
		pc = n.list[pc].Goto
	}
}

// LeadsToMatch reports whether an execution engine sitting at pc will
// always end up at a Match instruction without consuming any more input
// (i.e. Skip(pc) is a Match).
func (n Insts) LeadsToMatch(pc int) bool {
	return n.list[n.Skip(pc)].Op == OpMatch
}

// AnchoredBegin reports whether the program requires the match to start at
// the beginning of the text. By construction pc=0 is the opening Save(0),
// and a compiler that anchors the start of the match places an
// EmptyLook(StartText) instruction immediately after it, at pc=1.
func (n Insts) AnchoredBegin() bool {
	if len(n.list) < 2 {
		return false
	}
	inst := n.list[1]
	return inst.Op == OpEmptyLook && inst.Look == LookStartText
}

// AnchoredEnd reports whether the program requires the match to end at the
// end of the text. A compiler that anchors the end of the match places an
// EmptyLook(EndText) instruction third from the end of the program, just
// before the closing Save(1) and the trailing Match.
func (n Insts) AnchoredEnd() bool {
	if len(n.list) < 3 {
		return false
	}
	inst := n.list[len(n.list)-3]
	return inst.Op == OpEmptyLook && inst.Look == LookEndText
}

// NumCaptures returns the number of capture groups encoded in the program,
// including the implicit group 0 for the whole match. There are exactly
// two Save slots per group.
func (n Insts) NumCaptures() int {
	max := -1
	for _, in := range n.list {
		if in.Op == OpSave && in.Slot > max {
			max = in.Slot
		}
	}
	return (max + 1 + 1) / 2
}

// MatchesLook reports whether an EmptyLook instruction's assertion holds
// given the characters immediately before and after the current position.
// prev/next use -1 to mean "no character" (start/end of input, or invalid
// UTF-8 in byte mode).
func MatchesLook(look Look, prev, next rune) bool {
	switch look {
	case LookStartLine:
		return prev == -1 || prev == '\n'
	case LookEndLine:
		return next == -1 || next == '\n'
	case LookStartText:
		return prev == -1
	case LookEndText:
		return next == -1
	case LookWordBoundary:
		return isWordChar(prev) != isWordChar(next)
	case LookNotWordBoundary:
		return isWordChar(prev) == isWordChar(next)
	default:
		return false
	}
}

// isWordChar reports whether r is a "word" character for the purposes of
// \b / \B: [A-Za-z0-9_] plus, for any rune outside ASCII, the Unicode
// letters, digits and marks (see isUnicodeWordChar). The same rule applies
// in byte mode, where the adjacent characters are decoded as UTF-8.
func isWordChar(r rune) bool {
	if r == -1 {
		return false
	}
	switch {
	case r == '_':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	}
	return isUnicodeWordChar(r)
}
