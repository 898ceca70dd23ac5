package nfa

// thread is one entry in a threadList: a program counter paired with the
// capture-slot snapshot that reached it. Unlike the backtracker, each
// thread owns its own capture array, since many threads coexist at once
// and must not alias each other's Save writes.
type thread struct {
	pc   int
	caps []int
}

// threadList is a sparse/dense/size triple: a pc is "in the list" iff
// sparse[pc] < size && dense[sparse[pc]].pc == pc.
// This gives O(1) insertion, O(1) membership, and O(1) clear (size = 0)
// without ever needing to zero the sparse array itself -- the coupled
// check is what makes stale entries harmless.
type threadList struct {
	dense  []thread
	sparse []int
	size   int
}

// resize grows (or rebuilds) the list for a program with numInsts
// instructions and ncaps capture groups. Rebuilding only happens when the
// shape actually changed, so repeated Exec calls against the same program
// are allocation-free after the first.
func (l *threadList) resize(numInsts, ncaps int) {
	slots := ncaps * 2
	oldSlots := 0
	if len(l.dense) > 0 {
		oldSlots = len(l.dense[0].caps)
	}
	if numInsts == len(l.dense) && oldSlots == slots {
		return
	}
	l.dense = make([]thread, numInsts)
	for i := range l.dense {
		l.dense[i].caps = make([]int, slots)
	}
	l.sparse = make([]int, numInsts)
	l.size = 0
}

// clear empties the list in O(1).
func (l *threadList) clear() { l.size = 0 }

// contains reports whether pc is already present in this generation.
func (l *threadList) contains(pc int) bool {
	s := l.sparse[pc]
	return s < l.size && l.dense[s].pc == pc
}

// add reserves the next dense slot for pc and returns its index. Caller is
// responsible for populating dense[index].caps.
func (l *threadList) add(pc int) int {
	i := l.size
	l.dense[i].pc = pc
	l.sparse[pc] = i
	l.size++
	return i
}
