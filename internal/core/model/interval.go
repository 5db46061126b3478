package model

// RawInterval is one start/end slot reconstructed from the log. Either half may be
// missing until the parser sees the counterpart line, or forever.
type RawInterval struct {
	Start    int64
	End      int64
	HasStart bool
	HasEnd   bool
}

// Complete reports whether both halves were seen.
func (r *RawInterval) Complete() bool {
	return r.HasStart && r.HasEnd
}

// Pending reports whether the interval has a start still waiting for its end.
func (r *RawInterval) Pending() bool {
	return r.HasStart && !r.HasEnd
}

// TaskGroup maps base task names to their intervals in line order. Names are
// iterated in order of first appearance.
type TaskGroup struct {
	names     []string
	intervals map[string][]*RawInterval
	pending   map[string][]int
}

// NewTaskGroup creates an empty TaskGroup.
func NewTaskGroup() *TaskGroup {
	return &TaskGroup{
		intervals: make(map[string][]*RawInterval),
		pending:   make(map[string][]int),
	}
}

// Names returns base names in order of first appearance.
func (g *TaskGroup) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Intervals returns the intervals recorded for name, oldest first.
func (g *TaskGroup) Intervals(name string) []*RawInterval {
	return g.intervals[name]
}

// Len returns the number of distinct base names.
func (g *TaskGroup) Len() int {
	return len(g.names)
}

// Pending returns how many starts of name are still waiting for an end.
func (g *TaskGroup) Pending(name string) int {
	return len(g.pending[name])
}

// AddStart always opens a new slot, even if another start of name is pending.
func (g *TaskGroup) AddStart(name string, ts int64) {
	g.touch(name)
	g.intervals[name] = append(g.intervals[name], &RawInterval{Start: ts, HasStart: true})
	g.pending[name] = append(g.pending[name], len(g.intervals[name])-1)
}

// AddEnd closes the most recently opened pending start of name. Without one, an
// end-only slot is appended. It returns true when a start was matched.
//
// The pending stack holds exactly the indices a backward scan for
// "start set, end unset" would visit, most recent on top.
func (g *TaskGroup) AddEnd(name string, ts int64) bool {
	g.touch(name)
	stack := g.pending[name]
	if n := len(stack); n > 0 {
		idx := stack[n-1]
		g.pending[name] = stack[:n-1]
		iv := g.intervals[name][idx]
		iv.End = ts
		iv.HasEnd = true
		return true
	}
	g.intervals[name] = append(g.intervals[name], &RawInterval{End: ts, HasEnd: true})
	return false
}

func (g *TaskGroup) touch(name string) {
	if _, ok := g.intervals[name]; !ok {
		g.names = append(g.names, name)
		g.intervals[name] = nil
	}
}
