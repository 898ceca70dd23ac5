// Package literal implements the prefix-literal extractor and the five
// prefix-matching search shapes (empty, byte, sparse byte set,
// Boyer-Moore-Horspool-Raita, Aho-Corasick) used to short-circuit whole
// matches or skip input ahead of the backtracker and NFA engines.
//
// The extractor (extractor.go) walks a compiled program's instruction graph
// to enumerate the literal strings every match must begin with; seq.go
// holds the accumulator type it builds into; matcher.go classifies the
// accumulated set into the cheapest matching strategy that can answer it.
package literal

import "unicode/utf8"

// Seq accumulates the set of alternate literal strings a prefix walk has
// found so far, along with whether every alternate fully accounts for its
// branch of the program (Complete). Mirrors the "AlternateLiterals"
// accumulator of the engine this package is ported from: one mutable set
// built up alternation-branch by alternation-branch, then frozen into a
// Matcher.
type Seq struct {
	// Complete is true only if every accumulated branch's literal fully
	// covers that branch (i.e. the branch cannot match anything beyond the
	// literal). A prefix hit implies a full regex match iff Complete.
	Complete bool

	// Lits holds the alternate byte strings themselves. Order does not
	// matter for matching but is kept stable for deterministic tests.
	Lits [][]byte
}

// emptySeq returns the Seq for "no usable prefix": never advances input,
// never short-circuits a match.
func emptySeq() Seq {
	return Seq{Complete: false, Lits: nil}
}

// singleEmptySeq is the starting accumulator for a single linear walk: one
// alternate, the empty string, complete until proven otherwise.
func singleEmptySeq() Seq {
	return Seq{Complete: true, Lits: [][]byte{{}}}
}

// IsEmpty reports whether the set contains no literals.
func (s Seq) IsEmpty() bool { return len(s.Lits) == 0 }

// NumBytes returns the total byte count across every alternate, the
// quantity every byte-budget check in this package is measured against.
func (s Seq) NumBytes() int {
	n := 0
	for _, l := range s.Lits {
		n += len(l)
	}
	return n
}

// isSingleByte reports whether the set is exactly one one-byte literal.
func (s Seq) isSingleByte() bool {
	return len(s.Lits) == 1 && len(s.Lits[0]) == 1
}

// allSingleBytes reports whether every literal in the set is one byte long.
func (s Seq) allSingleBytes() bool {
	if len(s.Lits) == 0 {
		return false
	}
	for _, l := range s.Lits {
		if len(l) != 1 {
			return false
		}
	}
	return true
}

// isOneLiteral reports whether the set holds exactly one (possibly
// multi-byte) literal.
func (s Seq) isOneLiteral() bool {
	return len(s.Lits) == 1
}

// addAlternates merges another branch's literal set into s. Complete is the
// conjunction: the merged set is only as good as its weakest branch.
func (s *Seq) addAlternates(other Seq) {
	s.Complete = s.Complete && other.Complete
	s.Lits = append(s.Lits, other.Lits...)
}

// extendChar appends the UTF-8 encoding of c to every alternate currently
// in the set (Cartesian extension of one character).
func (s *Seq) extendChar(c rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], c)
	for i := range s.Lits {
		s.Lits[i] = append(append([]byte{}, s.Lits[i]...), buf[:n]...)
	}
}

// extendRuneRange duplicates every existing alternate once per rune in
// [lo, hi] and appends that rune's encoding, the Cartesian expansion a
// character class performs on the accumulated literal set.
func (s *Seq) extendRuneRange(lo, hi rune) {
	orig := s.Lits
	next := make([][]byte, 0, len(orig)*int(hi-lo+1))
	var buf [utf8.UTFMax]byte
	for c := lo; c <= hi; c++ {
		n := utf8.EncodeRune(buf[:], c)
		for _, alt := range orig {
			dup := append(append([]byte{}, alt...), buf[:n]...)
			next = append(next, dup)
		}
	}
	s.Lits = next
}

// extendByteRange is the byte-mode analogue of extendRuneRange.
func (s *Seq) extendByteRange(lo, hi byte) {
	orig := s.Lits
	next := make([][]byte, 0, len(orig)*int(hi-lo+1))
	for b := int(lo); b <= int(hi); b++ {
		for _, alt := range orig {
			dup := append(append([]byte{}, alt...), byte(b))
			next = append(next, dup)
		}
	}
	s.Lits = next
}

