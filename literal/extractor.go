package literal

import "github.com/defuz/rex/inst"

// Budget bounds the extractor's blow-up. GlobalBudget is the total bytes an
// extracted literal set may occupy across every alternate before the
// extractor gives up entirely; GlobalBudget/branchDivisor bounds a single
// alternation branch's own walk so one greedy branch cannot starve the
// others.
const (
	GlobalBudget = 3000
	branchDivisor = 10
)

// Extract walks the program reachable from its entry point and returns the
// set of byte strings every match must begin with, or an empty, incomplete
// Seq if no such set can be computed within budget.
//
// Two nested walks: a DFS over the reachable Split tree
// (alternation walker) that, for every terminal branch it reaches, runs a
// single linear walk (required-literal walker) and unions the result into
// the running total.
func Extract(n inst.Insts) Seq {
	branchLimit := GlobalBudget / branchDivisor

	stack := []int{n.Skip(1)}
	seen := map[int]bool{}

	total := Seq{Complete: true}
	for len(stack) > 0 {
		pc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen[pc] = true
		pc = n.Skip(pc)

		if n.At(pc).Op == inst.OpSplit {
			s := n.At(pc)
			if !seen[s.Goto2] {
				stack = append(stack, s.Goto2)
			}
			if !seen[s.Goto1] {
				stack = append(stack, s.Goto1)
			}
			continue
		}

		branch := extractRequired(n, pc, branchLimit)
		if branch.IsEmpty() {
			// This branch has no usable prefix at all (e.g. `b*` matches
			// empty) -- nothing can be concluded about the whole program.
			return emptySeq()
		}
		if total.NumBytes()+branch.NumBytes() > GlobalBudget {
			return emptySeq()
		}
		total.addAlternates(branch)
	}
	return total
}

// extractRequired follows a single linear chain of Save/Char/Ranges/Bytes
// instructions from pc, accumulating every character/byte into every
// alternate, until it hits a Split, EmptyLook or Match. limit bounds the
// Cartesian blow-up a single range instruction may cause; exceeding it
// aborts the walk early with the partial literals gathered so far and
// Complete forced false.
func extractRequired(n inst.Insts, pc int, limit int) Seq {
	s := singleEmptySeq()
	for {
		in := n.At(pc)
		switch in.Op {
		case inst.OpSave:
			pc = in.Goto
		case inst.OpChar:
			if s.NumBytes()+1 > limit {
				s.Complete = false
				return finishRequired(s)
			}
			s.extendChar(in.Char)
			pc = in.Goto
		case inst.OpRanges:
			nchars := 0
			for _, r := range in.Ranges {
				nchars += int(r.Hi-r.Lo) + 1
			}
			projected := s.NumBytes()*nchars + len(s.Lits)*nchars
			if projected > limit {
				s.Complete = false
				return finishRequired(s)
			}
			for _, r := range in.Ranges {
				s.extendRuneRange(r.Lo, r.Hi)
			}
			pc = in.Goto
		case inst.OpBytes:
			nbytes := int(in.Bytes.Hi-in.Bytes.Lo) + 1
			projected := s.NumBytes()*nbytes + len(s.Lits)*nbytes
			if projected > limit {
				s.Complete = false
				return finishRequired(s)
			}
			s.extendByteRange(in.Bytes.Lo, in.Bytes.Hi)
			pc = in.Goto
		case inst.OpSplit, inst.OpEmptyLook, inst.OpMatch:
			s.Complete = n.LeadsToMatch(pc)
			return finishRequired(s)
		default:
			return finishRequired(s)
		}
	}
}

// finishRequired collapses the degenerate "one alternate, still empty"
// accumulator (nothing was ever appended) down to the canonical empty Seq.
func finishRequired(s Seq) Seq {
	if len(s.Lits) == 1 && len(s.Lits[0]) == 0 {
		return emptySeq()
	}
	return s
}
