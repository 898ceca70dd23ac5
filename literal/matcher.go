package literal

import (
	"bytes"

	"github.com/coregx/ahocorasick"
)

// shape identifies which of the five search strategies a Matcher uses.
type shape uint8

const (
	shapeEmpty shape = iota
	shapeByte
	shapeByteSet
	shapeSingle
	shapeFullAC
	shapeLazyAC
)

// fullACThreshold is the total literal byte count under which a dense
// (fully expanded) Aho-Corasick automaton is built instead of a lazier,
// more memory-frugal one.
const fullACThreshold = 250

// Matcher is a compiled prefix-matching engine: the frozen, classified
// form of a Seq. Constructing one chooses the cheapest of the five search
// shapes that can answer the accumulated literal set.
type Matcher struct {
	shape    shape
	complete bool // Seq.Complete at construction time ("at_match")

	// shapeByte
	b byte

	// shapeByteSet
	set [256]bool

	// shapeSingle
	bmh *bmhSearcher

	// shapeFullAC / shapeLazyAC
	ac       *ahocorasick.Automaton
	litLen   int  // common pattern length, valid when uniform
	uniform  bool // true iff every pattern has the same length

	n int // number of literals (Len())
}

// NewMatcher classifies a Seq into the cheapest applicable search shape.
// An empty Seq yields the Empty shape: its Find reports the vacuous hit
// (0, 0), so it never advances the input, and IsEmpty reports true.
func NewMatcher(s Seq) *Matcher {
	if s.IsEmpty() {
		return &Matcher{shape: shapeEmpty, complete: false}
	}

	m := &Matcher{complete: s.Complete, n: len(s.Lits)}

	switch {
	case s.isSingleByte():
		m.shape = shapeByte
		m.b = s.Lits[0][0]
	case s.allSingleBytes():
		m.shape = shapeByteSet
		for _, l := range s.Lits {
			m.set[l[0]] = true
		}
	case s.isOneLiteral():
		m.shape = shapeSingle
		m.bmh = newBMHSearcher(s.Lits[0])
	case s.NumBytes() <= fullACThreshold:
		m.shape = shapeFullAC
		m.buildAC(s.Lits)
	default:
		m.shape = shapeLazyAC
		m.buildAC(s.Lits)
	}
	return m
}

// buildAC constructs the Aho-Corasick automaton backing the FullAC/LazyAC
// shapes and records whether every pattern shares one length (needed for
// PreservesPriority).
func (m *Matcher) buildAC(lits [][]byte) {
	builder := ahocorasick.NewBuilder()
	uniform := true
	first := len(lits[0])
	for _, l := range lits {
		builder.AddPattern(l)
		if len(l) != first {
			uniform = false
		}
	}
	aut, err := builder.Build()
	if err != nil {
		// A malformed pattern set degrades to "no usable prefix" rather
		// than propagating a construction error -- the dispatcher always
		// has the backtracker/NFA to fall back on.
		m.shape = shapeEmpty
		m.complete = false
		return
	}
	m.ac = aut
	m.uniform = uniform
	m.litLen = first
}

// Find returns the leftmost prefix hit in haystack, or ok=false if none
// exists.
func (m *Matcher) Find(haystack []byte) (start, end int, ok bool) {
	switch m.shape {
	case shapeEmpty:
		return 0, 0, true
	case shapeByte:
		i := bytes.IndexByte(haystack, m.b)
		if i < 0 {
			return 0, 0, false
		}
		return i, i + 1, true
	case shapeByteSet:
		return findSingles(&m.set, haystack)
	case shapeSingle:
		i := m.bmh.find(haystack)
		if i < 0 {
			return 0, 0, false
		}
		return i, i + len(m.bmh.pat), true
	case shapeFullAC, shapeLazyAC:
		if m.ac == nil {
			return 0, 0, false
		}
		mm := m.ac.Find(haystack, 0)
		if mm == nil {
			return 0, 0, false
		}
		return mm.Start, mm.End, true
	default:
		return 0, 0, false
	}
}

// AtMatch reports whether a prefix hit implies a full regex match (every
// branch of the program the prefix was extracted from is itself fully
// covered by its literal).
func (m *Matcher) AtMatch() bool { return m.complete }

// PreservesPriority reports whether Find's hit ordering agrees with the
// regex's leftmost-first priority. This only fails for the two
// Aho-Corasick shapes when their patterns have differing lengths: AC
// reports the leftmost *occurrence*, which is not always the leftmost-first
// regex match (`ab|a` against "ab" -- AC may report "a" at offset 0 instead
// of "ab").
func (m *Matcher) PreservesPriority() bool {
	switch m.shape {
	case shapeFullAC, shapeLazyAC:
		return m.uniform
	default:
		return true
	}
}

// Len returns the number of literals participating in this matcher.
func (m *Matcher) Len() int {
	if m.shape == shapeEmpty {
		return 0
	}
	return m.n
}

// IsEmpty reports whether this matcher holds no literals.
func (m *Matcher) IsEmpty() bool { return m.Len() == 0 }

// findSingles scans byte-by-byte consulting a 256-entry table, the search
// shape used for two-or-more single-byte prefixes.
func findSingles(set *[256]bool, haystack []byte) (start, end int, ok bool) {
	for i, b := range haystack {
		if set[b] {
			return i, i + 1, true
		}
	}
	return 0, 0, false
}
