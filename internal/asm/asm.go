// Package asm is a tiny, unexported instruction assembler used only from
// _test.go files across this module to hand-encode the fixture programs
// the test suites need. It has no parser and no precedence rules -- it is
// not, and must never become, a front-end compiler. Pattern parsing and
// program compilation are out of scope for this module; callers that need
// a real compiler supply one themselves and feed its output straight into
// inst.New.
package asm

import "github.com/defuz/rex/inst"

// Prog builds an inst.Insts by appending instructions one at a time and
// patching jump targets as they become known, the way a real compiler's
// backpatching pass would, just without any of the pattern-parsing logic
// that would normally drive it.
type Prog struct {
	list  []inst.Inst
	bytes bool
}

// New starts a program. byteMode selects whether the finished program must
// be driven over raw bytes (OpBytes) or decoded runes (OpChar/OpRanges).
func New(byteMode bool) *Prog {
	return &Prog{bytes: byteMode}
}

// pc returns the program counter the next appended instruction will get.
func (p *Prog) pc() int { return len(p.list) }

// Save appends a Save instruction and returns its pc.
func (p *Prog) Save(slot int) int {
	p.list = append(p.list, inst.Inst{Op: inst.OpSave, Slot: slot})
	return p.pc() - 1
}

// Split appends a Split instruction with both targets left unpatched
// (zero), and returns its pc so the caller can Patch it later.
func (p *Prog) Split() int {
	p.list = append(p.list, inst.Inst{Op: inst.OpSplit})
	return p.pc() - 1
}

// Look appends a zero-width assertion.
func (p *Prog) Look(look inst.Look) int {
	p.list = append(p.list, inst.Inst{Op: inst.OpEmptyLook, Look: look})
	return p.pc() - 1
}

// Char appends a single-rune match. Only valid in rune mode.
func (p *Prog) Char(r rune) int {
	p.list = append(p.list, inst.Inst{Op: inst.OpChar, Char: r})
	return p.pc() - 1
}

// Ranges appends a rune-range match. Only valid in rune mode.
func (p *Prog) Ranges(ranges ...inst.RuneRange) int {
	p.list = append(p.list, inst.Inst{Op: inst.OpRanges, Ranges: ranges})
	return p.pc() - 1
}

// Byte appends a single-byte match. Only valid in byte mode.
func (p *Prog) Byte(lo, hi byte) int {
	p.list = append(p.list, inst.Inst{Op: inst.OpBytes, Bytes: inst.ByteRange{Lo: lo, Hi: hi}})
	return p.pc() - 1
}

// Match appends the accepting instruction.
func (p *Prog) Match() int {
	p.list = append(p.list, inst.Inst{Op: inst.OpMatch})
	return p.pc() - 1
}

// Patch sets the Goto field of the instruction at pc.
func (p *Prog) Patch(pc, goTo int) {
	p.list[pc].Goto = goTo
}

// PatchSplit sets both branch targets of the Split instruction at pc.
// goto1 has priority over goto2.
func (p *Prog) PatchSplit(pc, goto1, goto2 int) {
	p.list[pc].Goto1 = goto1
	p.list[pc].Goto2 = goto2
}

// Build finishes the program. By convention pc=0 must already be a Save(0)
// (or, for an anchored-begin program, pc=0 a Save(0) whose Goto lands on an
// EmptyLook(StartText) at pc=1) -- callers are responsible for emitting
// that shape, Build does not synthesize it.
func (p *Prog) Build() inst.Insts {
	return inst.New(p.list, p.bytes)
}
