// Package backtrack implements the bounded backtracking matching engine: an
// explicit-stack depth-first search over a compiled program with a visited
// bitmap that guarantees O(insts·input) worst-case time, at the cost of
// being gated to small programs and small inputs (see MaxProgramSize,
// MaxInputSize).
//
// Same job-stack shape, visited bit-indexing formula, and outer retry loop
// as a classic bounded backtracker: push a job for each lower-priority
// Split branch and each capture rollback, mark every (pc, position) pair
// visited as execution advances into it, and retry the next start position
// once the stack drains without hitting Match.
package backtrack

import (
	"github.com/defuz/rex/inst"
	"github.com/defuz/rex/input"
)

// Boundary constants gating which programs/inputs this engine will run.
const (
	MaxProgramSize = 100
	MaxInputSize   = 256 * 1024
	bitSize        = 32
)

// job is a single unit of explicit stack space: either resume execution at
// (pc, at), or roll a single capture slot back to its previous value. The
// two-variant shape is required -- a plain (pc, at) stack cannot also model
// capture rollback.
type job struct {
	isSaveRestore bool

	// step
	pc int
	at input.At

	// saveRestore
	slot int
	old  int // -1 means "was unset"
}

// Cache is the reusable scratch a Backtracker needs across invocations: the
// job stack and the visited bitmap. Callers pool one Cache per goroutine
// (see the root package's Regexp) and it is reset on every Exec.
type Cache struct {
	jobs    []job
	visited []uint32
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache { return &Cache{} }

// reset truncates the job stack and regrows/clears the visited bitmap for
// the given program size and input length.
func (c *Cache) reset(numInsts, inputLen int) {
	c.jobs = c.jobs[:0]
	need := (numInsts*(inputLen+1) + bitSize - 1) / bitSize
	if need <= cap(c.visited) {
		c.visited = c.visited[:need]
	} else {
		c.visited = make([]uint32, need)
	}
	for i := range c.visited {
		c.visited[i] = 0
	}
}

// hasVisited reports whether (pc, pos) has already been entered this
// invocation, marking it visited as a side effect when it has not.
func (c *Cache) hasVisited(pc, pos, inputLen int) bool {
	k := pc*(inputLen+1) + pos
	word, bit := k/bitSize, uint32(1)<<uint(k%bitSize)
	if c.visited[word]&bit == 0 {
		c.visited[word] |= bit
		return false
	}
	return true
}

// ShouldExec reports whether prog/haystack are small enough for the
// backtracker to handle with bounded memory. The dispatcher must check
// this before calling Exec.
func ShouldExec(numInsts, inputLen int) bool {
	return numInsts <= MaxProgramSize && inputLen <= MaxInputSize
}

// Backtracker runs the bounded backtracking algorithm against one program.
type Backtracker struct {
	prog   inst.Insts
	cursor input.Cursor
	cache  *Cache
}

// New returns a Backtracker for prog/cursor, using cache as scratch space.
func New(prog inst.Insts, cursor input.Cursor, cache *Cache) *Backtracker {
	return &Backtracker{prog: prog, cursor: cursor, cache: cache}
}

// Exec attempts a match starting at byte offset start, writing capture
// slots into caps on success. caps may be shorter than 2*NumCaptures(); any
// slot beyond len(caps) is silently skipped, matching "caller asked for
// fewer captures than the pattern contains."
func (b *Backtracker) Exec(caps []int, start int) bool {
	b.cache.reset(b.prog.Len(), b.cursor.Len())
	at := b.cursor.At(start)

	if b.prog.AnchoredBegin() && !at.IsBeginning() {
		return false
	}
	for {
		if b.backtrack(caps, at) {
			return true
		}
		if at.Pos >= b.cursor.Len() {
			return false
		}
		at = b.cursor.At(at.Pos + 1)
	}
}

// backtrack runs one DFS attempt starting at `at`, using the explicit job
// stack so capture rollback never needs native call-stack recursion.
func (b *Backtracker) backtrack(caps []int, at input.At) bool {
	b.push(0, at)
	for len(b.cache.jobs) > 0 {
		j := b.cache.jobs[len(b.cache.jobs)-1]
		b.cache.jobs = b.cache.jobs[:len(b.cache.jobs)-1]
		if j.isSaveRestore {
			if j.old < 0 {
				caps[j.slot] = -1
			} else {
				caps[j.slot] = j.old
			}
			continue
		}
		if b.step(caps, j.pc, j.at) {
			return true
		}
	}
	return false
}

// step is the tight per-instruction dispatch loop. It mutates pc/at in
// place for the common "fall through to the next instruction" case instead
// of pushing and immediately popping a job, matching the hot-loop shape of
// the ported Rust implementation.
func (b *Backtracker) step(caps []int, pc int, at input.At) bool {
	inputLen := b.cursor.Len()
	for {
		in := b.prog.At(pc)
		switch in.Op {
		case inst.OpMatch:
			return true

		case inst.OpSave:
			if in.Slot < len(caps) {
				old := caps[in.Slot]
				b.pushSaveRestore(in.Slot, old)
				caps[in.Slot] = at.Pos
			}
			pc = in.Goto

		case inst.OpSplit:
			b.push(in.Goto2, at)
			pc = in.Goto1

		case inst.OpEmptyLook:
			prev := b.cursor.PreviousChar(at)
			next := b.cursor.NextChar(at)
			if !inst.MatchesLook(in.Look, prev, next) {
				return false
			}
			pc = in.Goto

		case inst.OpBytes:
			byt, ok := at.Byte()
			if !ok || byt < in.Bytes.Lo || byt > in.Bytes.Hi {
				return false
			}
			pc = in.Goto
			at = b.cursor.At(at.NextPos())
			continue

		default:
			// OpChar/OpRanges never appear in a byte-mode program; a
			// backtracker driven over a Unicode program instead consumes
			// them the same way the NFA simulator's step does. Support
			// both shapes here since this engine, unlike the NFA, walks
			// character-consuming instructions directly rather than via a
			// separate "add" epsilon closure.
			if !b.stepChar(in, at) {
				return false
			}
			pc = in.Goto
			at = b.cursor.At(at.NextPos())
			continue
		}

		if b.cache.hasVisited(pc, at.Pos, inputLen) {
			return false
		}
	}
}

// stepChar consumes a Char/Ranges instruction against at's decoded
// character. Only reachable for Unicode-mode programs.
func (b *Backtracker) stepChar(in inst.Inst, at input.At) bool {
	switch in.Op {
	case inst.OpChar:
		return at.R == in.Char
	case inst.OpRanges:
		for _, r := range in.Ranges {
			if at.R >= r.Lo && at.R <= r.Hi {
				return true
			}
		}
		return false
	}
	return false
}

func (b *Backtracker) push(pc int, at input.At) {
	b.cache.jobs = append(b.cache.jobs, job{pc: pc, at: at})
}

func (b *Backtracker) pushSaveRestore(slot, old int) {
	b.cache.jobs = append(b.cache.jobs, job{isSaveRestore: true, slot: slot, old: old})
}
