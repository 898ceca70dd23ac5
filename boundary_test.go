package rex

import (
	"testing"

	"github.com/defuz/rex/inst"
	"github.com/defuz/rex/internal/asm"
)

// buildAnchoredEmpty builds ^$ : Save(0) -> Look(StartText) -> Look(EndText)
// -> Save(1) -> Match.
func buildAnchoredEmpty() *asm.Prog {
	p := asm.New(false)
	save0 := p.Save(0)
	start := p.Look(inst.LookStartText)
	p.Patch(save0, start)
	end := p.Look(inst.LookEndText)
	p.Patch(start, end)
	save1 := p.Save(1)
	p.Patch(end, save1)
	m := p.Match()
	p.Patch(save1, m)
	return p
}

// TestEmptyInputAnchoredMatchesOnce checks the first documented boundary
// behavior: ^$ against "" matches exactly once, at [0,0].
func TestEmptyInputAnchoredMatchesOnce(t *testing.T) {
	for _, override := range []Engine{EngineBacktrack, EngineNFA} {
		re := mustCompile(t, buildAnchoredEmpty().Build(), override)
		caps := re.AllocCaptures()
		if !re.Exec(caps, []byte(""), 0) {
			t.Fatalf("engine %v: expected ^$ to match empty input", override)
		}
		if caps[0] != 0 || caps[1] != 0 {
			t.Fatalf("engine %v: caps = %v, want [0 0]", override, caps)
		}
	}
}

// TestEmptyInputAnchoredRejectsNonEmpty checks the converse: ^$ must not
// match a non-empty string.
func TestEmptyInputAnchoredRejectsNonEmpty(t *testing.T) {
	for _, override := range []Engine{EngineBacktrack, EngineNFA} {
		re := mustCompile(t, buildAnchoredEmpty().Build(), override)
		caps := re.AllocCaptures()
		if re.Exec(caps, []byte("x"), 0) {
			t.Fatalf("engine %v: ^$ must not match non-empty input", override)
		}
	}
}

// buildEmptyPattern builds a program that matches the empty string
// unconditionally: Save(0) -> Save(1) -> Match.
func buildEmptyPattern() *asm.Prog {
	p := asm.New(false)
	save0 := p.Save(0)
	save1 := p.Save(1)
	p.Patch(save0, save1)
	m := p.Match()
	p.Patch(save1, m)
	return p
}

// TestEmptyPatternReportsStartAsBothSlots checks the second documented boundary
// behavior: exec on an always-empty-matching program returns true with
// caps[0] == caps[1] == start, for every start position in the text.
func TestEmptyPatternReportsStartAsBothSlots(t *testing.T) {
	text := []byte("abc")
	for _, override := range []Engine{EngineBacktrack, EngineNFA} {
		re := mustCompile(t, buildEmptyPattern().Build(), override)
		for start := 0; start <= len(text); start++ {
			caps := re.AllocCaptures()
			if !re.Exec(caps, text, start) {
				t.Fatalf("engine %v, start %d: expected a match", override, start)
			}
			if caps[0] != start || caps[1] != start {
				t.Fatalf("engine %v, start %d: caps = %v, want [%d %d]", override, start, caps, start, start)
			}
		}
	}
}

// TestStartAtInputLenDoesNotPanic checks the third documented boundary behavior:
// starting a search exactly at input.len must not panic, for both an
// always-matching (empty) pattern and an ordinary literal one.
func TestStartAtInputLenDoesNotPanic(t *testing.T) {
	text := []byte("abc")

	for _, override := range []Engine{EngineBacktrack, EngineNFA} {
		re := mustCompile(t, buildEmptyPattern().Build(), override)
		caps := re.AllocCaptures()
		if !re.Exec(caps, text, len(text)) {
			t.Fatalf("engine %v: expected empty pattern to match at start == len", override)
		}
		if caps[0] != len(text) || caps[1] != len(text) {
			t.Fatalf("engine %v: caps = %v, want [%d %d]", override, caps, len(text), len(text))
		}
	}

	for _, override := range []Engine{EngineBacktrack, EngineNFA} {
		re := mustCompile(t, buildLiteral("a").Build(), override)
		caps := re.AllocCaptures()
		if re.Exec(caps, text, len(text)) {
			t.Fatalf("engine %v: literal \"a\" must not match at start == len", override)
		}
	}
}

// TestMultibyteBoundaryAfterMatch checks the fourth documented boundary
// behavior: in Unicode mode, the byte offset reported after a match always
// lands on a codepoint boundary, never mid-rune.
func TestMultibyteBoundaryAfterMatch(t *testing.T) {
	// "é" is U+00E9, encoded as the two bytes 0xC3 0xA9.
	p := asm.New(false)
	save0 := p.Save(0)
	c := p.Char('é')
	p.Patch(save0, c)
	save1 := p.Save(1)
	p.Patch(c, save1)
	m := p.Match()
	p.Patch(save1, m)

	text := []byte("xé")
	for _, override := range []Engine{EngineBacktrack, EngineNFA} {
		re := mustCompile(t, p.Build(), override)
		caps := re.AllocCaptures()
		if !re.Exec(caps, text, 0) {
			t.Fatalf("engine %v: expected a match", override)
		}
		if caps[0] != 1 || caps[1] != 3 {
			t.Fatalf("engine %v: caps = %v, want [1 3] (both on codepoint boundaries)", override, caps)
		}
	}
}
