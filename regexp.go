package rex

import (
	"sync"

	"github.com/defuz/rex/backtrack"
	"github.com/defuz/rex/input"
	"github.com/defuz/rex/nfa"
)

// Regexp is a compiled Program plus the per-goroutine scratch space its
// engines need. The Program it wraps is immutable and safe to share; the
// pools make concurrent Exec calls against the same Regexp safe too, the
// same compile-once/execute-many split a pooled search state gives any
// matcher under concurrent load.
type Regexp struct {
	prog *Program

	btCache  sync.Pool
	nfaCache sync.Pool
}

// Compile wraps an already-validated Program in a ready-to-run Regexp.
func Compile(p *Program) *Regexp {
	re := &Regexp{prog: p}
	re.btCache.New = func() any { return backtrack.NewCache() }
	re.nfaCache.New = func() any { return nfa.NewCache() }
	return re
}

// NumCaptures returns the number of capture groups in the compiled
// program, including the implicit whole-match group 0.
func (re *Regexp) NumCaptures() int { return re.prog.NumCaptures() }

// CaptureNames returns the compiler-supplied names for each capture group
// (empty string for unnamed groups), or nil if the compiler supplied none.
func (re *Regexp) CaptureNames() []string { return re.prog.CapNames }

// AllocCaptures returns a caps slice sized for a full-detail Exec call
// (2 slots per capture group).
func (re *Regexp) AllocCaptures() []int {
	caps := make([]int, re.prog.NumCaptures()*2)
	for i := range caps {
		caps[i] = -1
	}
	return caps
}

// Exec looks for the leftmost-first match of re's program in text at or
// after byte offset start, writing capture slots into caps. caps may be
// shorter than 2*NumCaptures() (a caller that only wants start/end can
// pass a 2-element slice, or nil/empty for a pure yes/no test) or longer
// (per AllocCaptures); only the leading entries are ever written.
//
// Exec is safe for concurrent use against the same Regexp.
func (re *Regexp) Exec(caps []int, text []byte, start int) bool {
	switch re.prog.chooseEngine(len(caps), len(text)) {
	case EngineLiterals:
		return re.execLiterals(caps, text, start)
	case EngineBacktrack:
		return re.execBacktrack(caps, text, start)
	default:
		return re.execNFA(caps, text, start)
	}
}

func (re *Regexp) execLiterals(caps []int, text []byte, start int) bool {
	s, e, ok := re.prog.Prefixes.Find(text[start:])
	if !ok {
		return false
	}
	if re.prog.AnchoredBegin && s != 0 {
		return false
	}
	if re.prog.AnchoredEnd && start+e != len(text) {
		return false
	}
	if len(caps) > 0 {
		caps[0] = start + s
	}
	if len(caps) > 1 {
		caps[1] = start + e
	}
	return true
}

func (re *Regexp) execBacktrack(caps []int, text []byte, start int) bool {
	cache := re.btCache.Get().(*backtrack.Cache)
	defer re.btCache.Put(cache)

	cursor := re.cursor(text)
	bt := backtrack.New(re.prog.Insts, cursor, cache)
	return bt.Exec(caps, start)
}

func (re *Regexp) execNFA(caps []int, text []byte, start int) bool {
	cache := re.nfaCache.Get().(*nfa.Cache)
	defer re.nfaCache.Put(cache)

	cursor := re.cursor(text)
	sim := nfa.New(re.prog.Insts, cursor, re.prog.Prefixes, cache)
	return sim.Exec(caps, start)
}

func (re *Regexp) cursor(text []byte) input.Cursor {
	if re.prog.ByteMode {
		return input.NewByteCursor(text)
	}
	return input.NewRuneCursor(text)
}
