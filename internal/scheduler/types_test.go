package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingTimeConflictsWithOverlappingDaysAndTimes(t *testing.T) {
	a, err := NewMeetingTime(1, []string{DayMonday, DayWednesday}, 600, 650)
	require.NoError(t, err)
	b, err := NewMeetingTime(2, []string{DayWednesday, DayFriday}, 630, 700)
	require.NoError(t, err)

	assert.True(t, a.conflictsWith(b))
	assert.True(t, b.conflictsWith(a))
}

func TestMeetingTimeNoConflictWhenDaysDisjoint(t *testing.T) {
	a, err := NewMeetingTime(1, []string{DayMonday}, 600, 650)
	require.NoError(t, err)
	b, err := NewMeetingTime(2, []string{DayTuesday}, 600, 650)
	require.NoError(t, err)

	assert.False(t, a.conflictsWith(b))
}

func TestMeetingTimeNoConflictWhenTimesAdjacent(t *testing.T) {
	a, err := NewMeetingTime(1, []string{DayMonday}, 600, 650)
	require.NoError(t, err)
	b, err := NewMeetingTime(2, []string{DayMonday}, 650, 700)
	require.NoError(t, err)

	assert.False(t, a.conflictsWith(b))
}

func TestMeetingTimeOnlineNeverConflicts(t *testing.T) {
	a, err := NewMeetingTime(1, []string{DayOnline}, 0, 0)
	require.NoError(t, err)
	b, err := NewMeetingTime(2, []string{DayOnline}, 0, 0)
	require.NoError(t, err)

	assert.False(t, a.conflictsWith(b))
}

func TestMeetingTimeStartsInBreakInclusiveBothEnds(t *testing.T) {
	brk := Break{Begin: 600, End: 660}

	atStart, err := NewMeetingTime(1, []string{DayMonday}, 600, 650)
	require.NoError(t, err)
	atEnd, err := NewMeetingTime(2, []string{DayMonday}, 660, 710)
	require.NoError(t, err)
	after, err := NewMeetingTime(3, []string{DayMonday}, 661, 711)
	require.NoError(t, err)

	assert.True(t, atStart.startsInBreak(brk))
	assert.True(t, atEnd.startsInBreak(brk))
	assert.False(t, after.startsInBreak(brk))
}

func TestNewMeetingTimeRejectsInvertedRange(t *testing.T) {
	_, err := NewMeetingTime(1, []string{DayMonday}, 700, 600)
	assert.Error(t, err)
}

func TestNewMeetingTimeRejectsEmptyDays(t *testing.T) {
	_, err := NewMeetingTime(1, nil, 600, 700)
	assert.Error(t, err)
}

func TestPreferencesValidateAcceptsBalancedWeights(t *testing.T) {
	p := Preferences{PreferredTime: PreferredMorning, TimeWeight: 0.6, PreferredDays: []string{DayMonday}, DayWeight: 0.4}
	assert.NoError(t, p.Validate())
}

func TestPreferencesValidateRejectsWeightsNotSummingToOne(t *testing.T) {
	p := Preferences{PreferredTime: PreferredMorning, TimeWeight: 0.6, PreferredDays: []string{DayMonday}, DayWeight: 0.6}
	assert.ErrorIs(t, p.Validate(), errInvalidPreferences)
}

func TestPreferencesValidateRejectsUnknownPeriod(t *testing.T) {
	p := Preferences{PreferredTime: "noon", TimeWeight: 0.5, DayWeight: 0.5}
	assert.ErrorIs(t, p.Validate(), errInvalidPreferences)
}

func TestPreferencesValidateRejectsInvalidDay(t *testing.T) {
	p := Preferences{PreferredTime: PreferredMorning, TimeWeight: 0.5, DayWeight: 0.5, PreferredDays: []string{"X"}}
	assert.ErrorIs(t, p.Validate(), errInvalidPreferences)
}
