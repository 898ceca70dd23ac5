package rex

import "github.com/defuz/rex/backtrack"

// chooseEngine picks which engine runs a given (program, input) pair:
// an explicit override always wins; otherwise the pure-literal shortcut
// is taken when it alone can decide the whole match; otherwise the
// backtracker runs if the program/input pair is small enough for its
// bounded memory budget; otherwise the NFA simulator, which has no size
// ceiling, is the fallback of last resort.
func (p *Program) chooseEngine(capsLen, inputLen int) Engine {
	if p.EngineOverride != EngineAuto {
		return p.EngineOverride
	}
	if p.Prefixes != nil && !p.Prefixes.IsEmpty() &&
		capsLen <= 2 && p.Prefixes.AtMatch() && p.Prefixes.PreservesPriority() {
		return EngineLiterals
	}
	if backtrack.ShouldExec(p.Insts.Len(), inputLen) {
		return EngineBacktrack
	}
	return EngineNFA
}
