package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverCancel() bool { return false }

func mustMeeting(t *testing.T, crn CRN, days []string, begin, end TimeOfDay) MeetingTime {
	t.Helper()
	m, err := NewMeetingTime(crn, days, begin, end)
	require.NoError(t, err)
	return m
}

func TestEnumeratorFindsAllNonConflictingCombinations(t *testing.T) {
	mathA := Section{CRN: 101, CourseCode: "MATH", Meetings: []MeetingTime{mustMeeting(t, 101, []string{DayMonday}, 540, 600)}}
	mathB := Section{CRN: 102, CourseCode: "MATH", Meetings: []MeetingTime{mustMeeting(t, 102, []string{DayMonday}, 600, 660)}}
	csA := Section{CRN: 201, CourseCode: "CS", Meetings: []MeetingTime{mustMeeting(t, 201, []string{DayMonday}, 540, 600)}}

	groups := map[CourseCode][]Section{
		"MATH": {mathA, mathB},
		"CS":   {csA},
	}
	scorer := NewScorer(Preferences{PreferredTime: PreferredMorning, TimeWeight: 0.5, DayWeight: 0.5})

	var results []ScoredSchedule
	enum := newEnumerator(groups, nil, scorer, func(s ScoredSchedule) bool {
		results = append(results, s)
		return true
	}, neverCancel)
	enum.run()

	// mathA conflicts with csA (both Monday 9:00-10:00); only mathB+csA is feasible.
	require.Len(t, results, 1)
	assert.Equal(t, CRN(102), results[0].Schedule["MATH"])
	assert.Equal(t, CRN(201), results[0].Schedule["CS"])
}

func TestEnumeratorPrunesSectionsStartingInBreak(t *testing.T) {
	section := Section{CRN: 101, CourseCode: "MATH", Meetings: []MeetingTime{mustMeeting(t, 101, []string{DayMonday}, 600, 650)}}
	groups := map[CourseCode][]Section{"MATH": {section}}
	breaks := []Break{{Begin: 590, End: 610}}
	scorer := NewScorer(Preferences{PreferredTime: PreferredMorning, TimeWeight: 0.5, DayWeight: 0.5})

	var results []ScoredSchedule
	enum := newEnumerator(groups, breaks, scorer, func(s ScoredSchedule) bool {
		results = append(results, s)
		return true
	}, neverCancel)
	enum.run()

	assert.Empty(t, results)
}

func TestEnumeratorStopsEarlyWhenOnResultReturnsFalse(t *testing.T) {
	sections := []Section{
		{CRN: 1, CourseCode: "MATH", Meetings: []MeetingTime{mustMeeting(t, 1, []string{DayMonday}, 540, 600)}},
		{CRN: 2, CourseCode: "MATH", Meetings: []MeetingTime{mustMeeting(t, 2, []string{DayTuesday}, 540, 600)}},
		{CRN: 3, CourseCode: "MATH", Meetings: []MeetingTime{mustMeeting(t, 3, []string{DayWednesday}, 540, 600)}},
	}
	groups := map[CourseCode][]Section{"MATH": sections}
	scorer := NewScorer(Preferences{PreferredTime: PreferredMorning, TimeWeight: 0.5, DayWeight: 0.5})

	var count int
	enum := newEnumerator(groups, nil, scorer, func(s ScoredSchedule) bool {
		count++
		return false
	}, neverCancel)
	completed := enum.run()

	assert.Equal(t, 1, count)
	assert.False(t, completed)
}

func TestEnumeratorYieldsOneEmptyScheduleForZeroCourses(t *testing.T) {
	scorer := NewScorer(Preferences{PreferredTime: PreferredMorning, TimeWeight: 0.5, DayWeight: 0.5})

	var results []ScoredSchedule
	enum := newEnumerator(map[CourseCode][]Section{}, nil, scorer, func(s ScoredSchedule) bool {
		results = append(results, s)
		return true
	}, neverCancel)
	completed := enum.run()

	require.True(t, completed)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Schedule)
	assert.Equal(t, 0.0, results[0].Score)
}

func TestEnumeratorOrdersGroupsByAscendingBranchingFactor(t *testing.T) {
	many := make([]Section, 5)
	for i := range many {
		many[i] = Section{CRN: CRN(100 + i)}
	}
	few := []Section{{CRN: 1}}

	groups := map[CourseCode][]Section{
		"WIDE":    many,
		"NARROW":  few,
	}
	scorer := NewScorer(Preferences{PreferredTime: PreferredMorning, TimeWeight: 0.5, DayWeight: 0.5})
	enum := newEnumerator(groups, nil, scorer, func(ScoredSchedule) bool { return true }, neverCancel)

	require.Len(t, enum.groups, 2)
	assert.Equal(t, CourseCode("NARROW"), enum.groups[0].course)
	assert.Equal(t, CourseCode("WIDE"), enum.groups[1].course)
}
