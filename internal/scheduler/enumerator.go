package scheduler

import "sort"

// courseGroup is one requested course together with its candidate
// sections, kept together so the enumerator can branch over them.
type courseGroup struct {
	course   CourseCode
	sections []Section
}

// enumerator performs bounded depth-first search over course groups,
// assigning one section per course and pruning branches that conflict
// with an already-placed meeting or a declared break.
type enumerator struct {
	groups   []courseGroup
	breaks   []Break
	scorer   *Scorer
	onResult func(ScoredSchedule) bool // return false to stop the search
	cancel   func() bool

	placed   []MeetingTime // meetings committed on the current DFS path
	schedule Schedule
	sections map[CRN]Section
}

// newEnumerator orders course groups by ascending branching factor
// (fewest candidate sections first), so conflicts are discovered and
// pruned as early in the search tree as possible.
func newEnumerator(groups map[CourseCode][]Section, breaks []Break, scorer *Scorer, onResult func(ScoredSchedule) bool, cancel func() bool) *enumerator {
	ordered := make([]courseGroup, 0, len(groups))
	for course, sections := range groups {
		ordered = append(ordered, courseGroup{course: course, sections: sections})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i].sections) != len(ordered[j].sections) {
			return len(ordered[i].sections) < len(ordered[j].sections)
		}
		return ordered[i].course < ordered[j].course
	})
	return &enumerator{
		groups:   ordered,
		breaks:   breaks,
		scorer:   scorer,
		onResult: onResult,
		cancel:   cancel,
		schedule: make(Schedule, len(ordered)),
		sections: make(map[CRN]Section, len(ordered)),
	}
}

// run starts the depth-first walk from the first course group. It returns
// true if the walk completed on its own, false if it was stopped early by
// onResult or cancel.
func (e *enumerator) run() bool {
	return e.dfs(0)
}

func (e *enumerator) dfs(depth int) bool {
	if e.cancel() {
		return false
	}
	if depth == len(e.groups) {
		return e.emit()
	}
	group := e.groups[depth]
	for _, section := range group.sections {
		if !e.fits(section) {
			continue
		}
		e.commit(group.course, section)
		ok := e.dfs(depth + 1)
		e.rollback(group.course, section)
		if !ok {
			return false
		}
	}
	return true
}

// fits reports whether a candidate section can be placed: none of its
// meetings conflicts with an already-placed meeting or starts inside a
// declared break.
func (e *enumerator) fits(section Section) bool {
	for _, m := range section.Meetings {
		for _, b := range e.breaks {
			if m.startsInBreak(b) {
				return false
			}
		}
		for _, placed := range e.placed {
			if m.conflictsWith(placed) {
				return false
			}
		}
	}
	return true
}

func (e *enumerator) commit(course CourseCode, section Section) {
	e.schedule[course] = section.CRN
	e.sections[section.CRN] = section
	e.placed = append(e.placed, section.Meetings...)
}

func (e *enumerator) rollback(course CourseCode, section Section) {
	delete(e.schedule, course)
	delete(e.sections, section.CRN)
	e.placed = e.placed[:len(e.placed)-len(section.Meetings)]
}

// emit scores the fully-assigned schedule on the current path and hands an
// owned copy of it to onResult. Returning false from onResult stops the
// search.
func (e *enumerator) emit() bool {
	byGroup := make([][]MeetingTime, 0, len(e.sections))
	for _, sec := range e.sections {
		byGroup = append(byGroup, sec.Meetings)
	}
	score := e.scorer.Score(byGroup)
	result := ScoredSchedule{Score: score, Schedule: e.schedule, Sections: e.sections}.clone()
	return e.onResult(result)
}
