package nfa

import (
	"testing"

	"github.com/defuz/rex/inst"
	"github.com/defuz/rex/input"
	"github.com/defuz/rex/internal/asm"
)

func buildLiteral(s string) *asm.Prog {
	p := asm.New(false)
	save0 := p.Save(0)
	prev := save0
	for _, r := range s {
		c := p.Char(r)
		p.Patch(prev, c)
		prev = c
	}
	save1 := p.Save(1)
	p.Patch(prev, save1)
	m := p.Match()
	p.Patch(save1, m)
	return p
}

// TestSeedScenario1 is seed scenario 1, run through the NFA
// simulator instead of the backtracker.
func TestSeedScenario1(t *testing.T) {
	insts := buildLiteral("a").Build()
	cursor := input.NewRuneCursor([]byte("bbab"))
	sim := New(insts, cursor, nil, NewCache())
	caps := []int{-1, -1}
	if !sim.Exec(caps, 0) {
		t.Fatal("expected a match")
	}
	if caps[0] != 2 || caps[1] != 3 {
		t.Fatalf("caps = %v, want [2 3]", caps)
	}
}

// TestSeedScenario2LeftmostFirst is seed scenario 2: priority
// ("ab" before "a") must win over the longer-overall-scan AC occurrence.
func TestSeedScenario2LeftmostFirst(t *testing.T) {
	p := asm.New(false)
	save0 := p.Save(0)
	split := p.Split()
	p.Patch(save0, split)
	a1 := p.Char('a')
	b1 := p.Char('b')
	p.Patch(a1, b1)
	save1 := p.Save(1)
	p.Patch(b1, save1)
	m := p.Match()
	p.Patch(save1, m)
	a2 := p.Char('a')
	p.Patch(a2, save1)
	p.PatchSplit(split, a1, a2)
	insts := p.Build()

	caps := []int{-1, -1}
	ok := New(insts, input.NewRuneCursor([]byte("ab")), nil, NewCache()).Exec(caps, 0)
	if !ok || caps[0] != 0 || caps[1] != 2 {
		t.Fatalf("Exec = (%v, %v), want (true, [0 2]) -- leftmost-first should prefer \"ab\"", ok, caps)
	}
}

// TestSeedScenario3Captures is seed scenario 3.
func TestSeedScenario3Captures(t *testing.T) {
	p := asm.New(false)
	save0 := p.Save(0)
	save2 := p.Save(2)
	p.Patch(save0, save2)
	digits1 := p.Ranges(inst.RuneRange{Lo: '0', Hi: '9'})
	p.Patch(save2, digits1)
	split1 := p.Split()
	p.Patch(digits1, split1)
	save3 := p.Save(3)
	p.PatchSplit(split1, digits1, save3)
	dash := p.Char('-')
	p.Patch(save3, dash)
	save4 := p.Save(4)
	p.Patch(dash, save4)
	digits2 := p.Ranges(inst.RuneRange{Lo: '0', Hi: '9'})
	p.Patch(save4, digits2)
	split2 := p.Split()
	p.Patch(digits2, split2)
	save5 := p.Save(5)
	p.PatchSplit(split2, digits2, save5)
	save1 := p.Save(1)
	p.Patch(save5, save1)
	m := p.Match()
	p.Patch(save1, m)
	insts := p.Build()

	caps := make([]int, 6)
	for i := range caps {
		caps[i] = -1
	}
	ok := New(insts, input.NewRuneCursor([]byte("10-20")), nil, NewCache()).Exec(caps, 0)
	want := []int{0, 5, 0, 2, 3, 5}
	if !ok {
		t.Fatal("expected a match")
	}
	for i, w := range want {
		if caps[i] != w {
			t.Fatalf("caps = %v, want %v", caps, want)
		}
	}
}
