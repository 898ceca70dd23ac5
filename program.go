// Package rex ties the instruction model, literal extractor, and the two
// matching engines together into a single compiled Program and the
// Regexp that runs it, choosing among the backtracker, the NFA simulator,
// and a pure-literal shortcut the same way a front-end compiler's exec
// layer would.
package rex

import (
	"github.com/defuz/rex/inst"
	"github.com/defuz/rex/literal"
)

// Engine names one of the matching strategies a Program can run under, or
// EngineAuto to let the dispatcher choose.
type Engine uint8

const (
	EngineAuto Engine = iota
	EngineBacktrack
	EngineNFA
	EngineLiterals
)

// maxProgramInsts bounds how large a compiled instruction sequence
// NewProgram will accept. It has nothing to do with backtrack.MaxProgramSize
// (which only gates whether the bounded backtracker is small enough to run
// a given program -- the NFA simulator picks up anything past it with no
// ceiling of its own). This is a much higher, absolute sanity bound: every
// engine's scratch space (the NFA's thread lists, the backtracker's visited
// bitmap) is sized proportionally to instruction count, so a compiler bug
// that emits a runaway or corrupt instruction stream should fail fast here
// rather than hand every engine an unreasonable allocation.
const maxProgramInsts = 1 << 20

// Program is the compile-time, immutable half of a compiled pattern: the
// instruction sequence, its capture names, and everything the dispatcher
// needs to pick an engine. It holds no mutable scratch space -- that lives
// one level up, in Regexp's pools, so one Program can back any number of
// concurrent Regexp executions safely.
type Program struct {
	Original       string
	Insts          inst.Insts
	CapNames       []string
	Prefixes       *literal.Matcher
	AnchoredBegin  bool
	AnchoredEnd    bool
	ByteMode       bool
	EngineOverride Engine
}

// NewProgram validates and wraps a compiled instruction sequence. insts is
// owned by the returned Program afterward and must not be mutated.
// capNames may be nil; if non-nil its length must be NumCaptures().
//
// The literal prefix set used for the pure-literal shortcut and for the
// NFA simulator's skip-ahead optimization is computed here, from insts,
// the same way the engine this module is grounded on builds it once at
// construction time rather than asking the caller to supply it.
func NewProgram(insts inst.Insts, capNames []string, override Engine) (*Program, error) {
	if insts.Len() > maxProgramInsts {
		return nil, &CompileError{Err: ErrProgramTooLarge}
	}
	if err := checkMode(insts); err != nil {
		return nil, &CompileError{Err: err}
	}
	p := &Program{
		Insts:          insts,
		CapNames:       capNames,
		Prefixes:       literal.NewMatcher(literal.Extract(insts)),
		AnchoredBegin:  insts.AnchoredBegin(),
		AnchoredEnd:    insts.AnchoredEnd(),
		ByteMode:       insts.IsBytes(),
		EngineOverride: override,
	}
	return p, nil
}

// checkMode enforces the invariant that a program never mixes
// Char/Ranges instructions with Bytes instructions: a
// correct compiler only ever emits one shape, consistent with
// insts.IsBytes(), so finding the other shape signals a compiler bug.
func checkMode(insts inst.Insts) error {
	byteMode := insts.IsBytes()
	raw := insts.Raw()
	for _, in := range raw {
		switch in.Op {
		case inst.OpChar, inst.OpRanges:
			if byteMode {
				return ErrModeMismatch
			}
		case inst.OpBytes:
			if !byteMode {
				return ErrModeMismatch
			}
		}
	}
	return nil
}

// NumCaptures returns the number of capture groups in the program,
// including the implicit whole-match group 0.
func (p *Program) NumCaptures() int { return p.Insts.NumCaptures() }
