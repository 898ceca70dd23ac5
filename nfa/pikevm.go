// Package nfa implements the Pike-VM simulation engine: a breadth-first
// walk that tracks one thread per live program counter, giving linear-time
// matching with leftmost-first (priority-preserving) submatch semantics.
//
// This is the classic two-list clist/nlist thread scheduler: on every
// input position, clist holds the threads alive coming in and nlist
// collects the threads alive going out, with priority preserved by the
// order threads are appended during the epsilon closure. Leftmost-longest
// variants of this algorithm keep scanning clist past the first match to
// find a longer one at the same start position; this one stops at the
// first match in priority order instead, since leftmost-first is the
// semantics wanted here. Only the sparse-set thread-list shape is shared
// with that style of simulator, adapted in threadset.go.
package nfa

import (
	"github.com/defuz/rex/inst"
	"github.com/defuz/rex/input"
	"github.com/defuz/rex/literal"
)

// Cache is the reusable scratch a Simulator needs across invocations: the
// two thread lists and a shared capture-slot scratchpad used during
// epsilon closure. Callers pool one Cache per goroutine.
type Cache struct {
	clist, nlist threadList
	// scratch is mutated in place while add() walks a Split tree (Save
	// writes its slot, recurses, then restores it), so only threads that
	// land on a consuming instruction or Match pay for a copy.
	scratch []int
	stack   []addFrame
}

// addFrame is one entry of add()'s explicit stack, used so the epsilon
// closure never recurses on the native call stack (a long chain of nested
// groups would otherwise risk a stack overflow on pathological programs).
type addFrame struct {
	pc int
	// restoreSlot >= 0 means: after the children of this frame have been
	// visited, roll scratch[restoreSlot] back to restoreOld.
	restoreSlot int
	restoreOld  int
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache { return &Cache{} }

func (c *Cache) resize(numInsts, ncaps int) {
	c.clist.resize(numInsts, ncaps)
	c.nlist.resize(numInsts, ncaps)
	slots := ncaps * 2
	if len(c.scratch) != slots {
		c.scratch = make([]int, slots)
	}
	// -1 means "unset", the same convention every capture slot in this
	// module uses; a group that an alternation branch never reaches (an
	// optional group, say) must read back as unset, not as whatever the
	// previous Exec call left behind in this pooled buffer.
	for i := range c.scratch {
		c.scratch[i] = -1
	}
}

// Simulator runs the Pike-VM algorithm against one program.
type Simulator struct {
	prog   inst.Insts
	cursor input.Cursor
	prefix *literal.Matcher // may be nil
	cache  *Cache
}

// New returns a Simulator for prog/cursor. prefix, if non-nil, is used to
// jump the scan position ahead whenever no thread is currently alive,
// instead of stepping one position at a time through text the prefix
// matcher already knows can't start a match.
func New(prog inst.Insts, cursor input.Cursor, prefix *literal.Matcher, cache *Cache) *Simulator {
	return &Simulator{prog: prog, cursor: cursor, prefix: prefix, cache: cache}
}

// Exec attempts a match starting at byte offset start, writing capture
// slots into caps (length 2*NumCaptures(), or 0 if the caller only wants a
// yes/no answer) on success.
func (s *Simulator) Exec(caps []int, start int) bool {
	ncaps := s.prog.NumCaptures()
	s.cache.resize(s.prog.Len(), ncaps)
	s.cache.clist.clear()
	s.cache.nlist.clear()

	anchored := s.prog.AnchoredBegin()
	at := s.cursor.At(start)
	matched := false

	for {
		if s.cache.clist.size == 0 {
			if matched || (anchored && !at.IsBeginning()) {
				break
			}
			if s.prefix != nil && !s.prefix.IsEmpty() {
				next, ok := s.cursor.PrefixAt(s.prefix, at)
				if !ok {
					break
				}
				at = next
			}
		}

		if s.cache.clist.size == 0 || (!anchored && !matched) {
			s.add(&s.cache.clist, s.cache.scratch, 0, at)
		}

		atNext := s.cursor.At(at.NextPos())

		for i := 0; i < s.cache.clist.size; i++ {
			t := s.cache.clist.dense[i]
			if s.step(t.pc, t.caps, at, atNext, caps) {
				matched = true
				if len(caps) == 0 {
					return true
				}
				break
			}
		}

		if isEnd(at, s.cursor.Len()) {
			break
		}
		at = atNext
		s.cache.clist, s.cache.nlist = s.cache.nlist, s.cache.clist
		s.cache.nlist.clear()
	}

	return matched
}

// isEnd reports whether at is the end of input: its byte offset is at or
// past the haystack length.
func isEnd(at input.At, length int) bool {
	return at.Pos >= length
}

// step advances one thread by one position: it runs the thread's
// consuming instruction (Char/Ranges/Bytes) against at, or, for Match,
// copies its captures out and reports a hit. Save, Split and EmptyLook
// entries sit in the list only as visited marks left by add()'s epsilon
// closure, which resolves them; step ignores them.
func (s *Simulator) step(pc int, tcaps []int, at, atNext input.At, out []int) bool {
	in := s.prog.At(pc)
	switch in.Op {
	case inst.OpChar:
		if at.R == in.Char {
			s.add(&s.cache.nlist, tcaps, in.Goto, atNext)
		}
		return false
	case inst.OpRanges:
		for _, r := range in.Ranges {
			if at.R >= r.Lo && at.R <= r.Hi {
				s.add(&s.cache.nlist, tcaps, in.Goto, atNext)
				break
			}
		}
		return false
	case inst.OpBytes:
		b, ok := at.Byte()
		if ok && b >= in.Bytes.Lo && b <= in.Bytes.Hi {
			s.add(&s.cache.nlist, tcaps, in.Goto, atNext)
		}
		return false
	case inst.OpMatch:
		copy(out, tcaps)
		return true
	}
	return false
}

// add performs the epsilon closure from pc at position `at`, inserting
// every consuming instruction (and Match) it can reach without consuming
// input into l, each tagged with the capture snapshot active along the
// path that reached it. Priority is preserved because it walks Split's
// Goto1 branch (higher priority) fully, including all of its descendants,
// before ever looking at Goto2.
func (s *Simulator) add(l *threadList, caps []int, pc int, at input.At) {
	s.cache.stack = s.cache.stack[:0]
	s.cache.stack = append(s.cache.stack, addFrame{pc: pc, restoreSlot: -1})

	for len(s.cache.stack) > 0 {
		f := s.cache.stack[len(s.cache.stack)-1]
		s.cache.stack = s.cache.stack[:len(s.cache.stack)-1]

		if f.restoreSlot >= 0 {
			caps[f.restoreSlot] = f.restoreOld
			continue
		}

		pc := f.pc
		if l.contains(pc) {
			continue
		}

		in := s.prog.At(pc)
		switch in.Op {
		case inst.OpSave:
			l.add(pc) // mark visited so cyclic Splits can't loop forever
			if in.Slot < len(caps) {
				old := caps[in.Slot]
				s.cache.stack = append(s.cache.stack, addFrame{restoreSlot: in.Slot, restoreOld: old})
				caps[in.Slot] = at.Pos
			}
			s.cache.stack = append(s.cache.stack, addFrame{pc: in.Goto, restoreSlot: -1})

		case inst.OpSplit:
			l.add(pc)
			// Push goto2 first so goto1 (higher priority) pops and is
			// walked first -- LIFO order makes this a depth-first,
			// priority-ordered closure.
			s.cache.stack = append(s.cache.stack, addFrame{pc: in.Goto2, restoreSlot: -1})
			s.cache.stack = append(s.cache.stack, addFrame{pc: in.Goto1, restoreSlot: -1})

		case inst.OpEmptyLook:
			l.add(pc)
			prev := s.cursor.PreviousChar(at)
			next := s.cursor.NextChar(at)
			if inst.MatchesLook(in.Look, prev, next) {
				s.cache.stack = append(s.cache.stack, addFrame{pc: in.Goto, restoreSlot: -1})
			}

		default: // OpChar, OpRanges, OpBytes, OpMatch: consuming or terminal
			i := l.add(pc)
			copy(l.dense[i].caps, caps)
		}
	}
}
