package inst

import "testing"

func prog(list []Inst, bytes bool) Insts { return New(list, bytes) }

func TestSkipFollowsSaveChain(t *testing.T) {
	list := []Inst{
		{Op: OpSave, Slot: 0, Goto: 1},
		{Op: OpSave, Slot: 2, Goto: 2},
		{Op: OpChar, Char: 'a', Goto: 3},
		{Op: OpMatch},
	}
	n := prog(list, false)
	if got := n.Skip(0); got != 2 {
		t.Fatalf("Skip(0) = %d, want 2", got)
	}
	if got := n.Skip(2); got != 2 {
		t.Fatalf("Skip(2) on a non-Save pc should be a no-op, got %d", got)
	}
}

func TestLeadsToMatch(t *testing.T) {
	list := []Inst{
		{Op: OpSave, Slot: 0, Goto: 1},
		{Op: OpSave, Slot: 1, Goto: 2},
		{Op: OpMatch},
	}
	n := prog(list, false)
	if !n.LeadsToMatch(0) {
		t.Fatal("a pure Save chain into Match should lead to match")
	}
}

func TestAnchoredBeginEnd(t *testing.T) {
	list := []Inst{
		{Op: OpSave, Slot: 0, Goto: 1},
		{Op: OpEmptyLook, Look: LookStartText, Goto: 2},
		{Op: OpChar, Char: 'a', Goto: 3},
		{Op: OpEmptyLook, Look: LookEndText, Goto: 4},
		{Op: OpSave, Slot: 1, Goto: 5},
		{Op: OpMatch},
	}
	n := prog(list, false)
	if !n.AnchoredBegin() {
		t.Error("expected AnchoredBegin true")
	}
	if !n.AnchoredEnd() {
		t.Error("expected AnchoredEnd true")
	}

	unanchored := prog([]Inst{
		{Op: OpSave, Slot: 0, Goto: 1},
		{Op: OpChar, Char: 'a', Goto: 2},
		{Op: OpSave, Slot: 1, Goto: 3},
		{Op: OpMatch},
	}, false)
	if unanchored.AnchoredBegin() || unanchored.AnchoredEnd() {
		t.Error("expected neither anchor for a plain literal program")
	}
}

func TestNumCaptures(t *testing.T) {
	list := []Inst{
		{Op: OpSave, Slot: 0},
		{Op: OpSave, Slot: 2},
		{Op: OpSave, Slot: 3},
		{Op: OpSave, Slot: 1},
		{Op: OpMatch},
	}
	n := prog(list, false)
	if got := n.NumCaptures(); got != 2 {
		t.Fatalf("NumCaptures() = %d, want 2", got)
	}
}

func TestMatchesLook(t *testing.T) {
	cases := []struct {
		look       Look
		prev, next rune
		want       bool
	}{
		{LookStartText, -1, 'a', true},
		{LookStartText, 'x', 'a', false},
		{LookEndText, 'a', -1, true},
		{LookStartLine, '\n', 'a', true},
		{LookStartLine, 'x', 'a', false},
		{LookWordBoundary, -1, 'a', true},
		{LookWordBoundary, 'a', 'b', false},
		{LookNotWordBoundary, 'a', 'b', true},
		{LookNotWordBoundary, -1, 'a', false},
	}
	for _, c := range cases {
		if got := MatchesLook(c.look, c.prev, c.next); got != c.want {
			t.Errorf("MatchesLook(%v, %q, %q) = %v, want %v", c.look, c.prev, c.next, got, c.want)
		}
	}
}
