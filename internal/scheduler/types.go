// Package scheduler implements the feasible-schedule enumerator and ranker:
// grouping sections by course, bounded depth-first enumeration with
// conflict/break pruning, a two-component preference score, a top-K
// retention buffer, and a wall-clock-bounded search driver.
package scheduler

import "fmt"

// CourseCode is an opaque catalog identifier, e.g. "MATH-1226". Equality is
// by bytes.
type CourseCode string

// CRN is a section's primary key within a term.
type CRN int

// Day codes. ONLINE and ARR are sentinels meaning "no weekly meeting" and
// never conflict with anything, including themselves.
const (
	DayMonday    = "M"
	DayTuesday   = "T"
	DayWednesday = "W"
	DayThursday  = "R"
	DayFriday    = "F"
	DaySaturday  = "S"
	DaySunday    = "U"
	DayOnline    = "ONLINE"
	DayArranged  = "ARR"
)

// weekdayBits indexes the five weekdays the scorer's day component cares
// about (M,T,W,R,F), used for bit-encoding day sets and for the day score.
var weekdayBits = map[string]uint8{
	DayMonday:    1 << 0,
	DayTuesday:   1 << 1,
	DayWednesday: 1 << 2,
	DayThursday:  1 << 3,
	DayFriday:    1 << 4,
}

// weekendBits extends the day bitmask to Saturday and Sunday so weekend
// meetings are checked for conflicts too.
var weekendBits = map[string]uint8{
	DaySaturday: 1 << 5,
	DaySunday:   1 << 6,
}

// sentinelDays never intersect any day set, including another sentinel set.
var sentinelDays = map[string]bool{
	DayOnline:   true,
	DayArranged: true,
}

// dayBits returns a bitmask over the seven day codes for O(1) intersection
// tests, and whether the set is a no-meeting sentinel set.
func dayBits(days []string) (bits uint8, sentinel bool) {
	for _, d := range days {
		if sentinelDays[d] {
			return 0, true
		}
		bits |= weekdayBits[d] | weekendBits[d]
	}
	return bits, false
}

// TimeOfDay is minutes-since-midnight, 0 through 1439 inclusive.
type TimeOfDay int

// MeetingTime is one weekly time slot on a set of days for a section.
type MeetingTime struct {
	CRN    CRN
	Days   []string
	Begin  TimeOfDay
	End    TimeOfDay
	bits   uint8
	online bool
}

// NewMeetingTime validates and constructs a MeetingTime, precomputing its
// day bitmask for O(1) conflict tests.
func NewMeetingTime(crn CRN, days []string, begin, end TimeOfDay) (MeetingTime, error) {
	if begin > end {
		return MeetingTime{}, fmt.Errorf("meeting time for crn %d: begin %d > end %d", crn, begin, end)
	}
	if len(days) == 0 {
		return MeetingTime{}, fmt.Errorf("meeting time for crn %d: day set must be non-empty", crn)
	}
	bits, sentinel := dayBits(days)
	return MeetingTime{CRN: crn, Days: days, Begin: begin, End: end, bits: bits, online: sentinel}, nil
}

// conflictsWith reports whether two meetings overlap in both day and time.
// Sentinel ("no weekly meeting") day sets never conflict with anything.
func (m MeetingTime) conflictsWith(other MeetingTime) bool {
	if m.online || other.online {
		return false
	}
	if m.bits&other.bits == 0 {
		return false
	}
	return m.End > other.Begin && m.Begin < other.End
}

// startsInBreak reports whether the meeting starts inside [b.Begin, b.End],
// inclusive on both ends. A class may not *start* inside a break, but may
// otherwise overlap it.
func (m MeetingTime) startsInBreak(b Break) bool {
	return m.Begin >= b.Begin && m.Begin <= b.End
}

// equalKey is the dedup identity for a MeetingTime: (crn, day_set, begin, end).
func (m MeetingTime) equalKey() meetingKey {
	days := append([]string(nil), m.Days...)
	return meetingKey{crn: m.CRN, days: fmt.Sprint(days), begin: m.Begin, end: m.End}
}

type meetingKey struct {
	crn   CRN
	days  string
	begin TimeOfDay
	end   TimeOfDay
}

// Section is a specific offering of a course: one professor, one modality,
// a fixed weekly meeting pattern.
type Section struct {
	CRN         CRN
	CourseCode  CourseCode
	ClassType   string
	Modality    string
	CreditHours string
	Professor   string
	Location    string
	AvgGPA      *float64
	Meetings    []MeetingTime
}

// Break is a user-declared window in which no class may start. Applied
// implicitly to every day.
type Break struct {
	Begin TimeOfDay
	End   TimeOfDay
}

// PreferredTime is the time-of-day preference period.
type PreferredTime string

const (
	PreferredMorning   PreferredTime = "morning"
	PreferredAfternoon PreferredTime = "afternoon"
	PreferredEvening   PreferredTime = "evening"
)

// periodMidpoint returns the preferred midpoint in minutes-since-midnight
// for each preference period.
var periodMidpoint = map[PreferredTime]TimeOfDay{
	PreferredMorning:   600,
	PreferredAfternoon: 840,
	PreferredEvening:   1080,
}

// Preferences captures the user's time-of-day and day-of-week weighting.
// Validate checks them; NewScorer and Driver.Search do not call Validate,
// and PlannerService calls it before starting a search.
type Preferences struct {
	PreferredTime PreferredTime
	TimeWeight    float64
	PreferredDays []string
	DayWeight     float64
}

const weightSumTolerance = 1e-9

// Validate checks that weights fall in [0,1] and sum to ~1, that the
// preferred period is known, and that preferred days are drawn from the
// valid weekday set.
func (p Preferences) Validate() error {
	if _, ok := periodMidpoint[p.PreferredTime]; !ok {
		return fmt.Errorf("%w: unknown preferred_time %q", errInvalidPreferences, p.PreferredTime)
	}
	if p.TimeWeight < 0 || p.TimeWeight > 1 || p.DayWeight < 0 || p.DayWeight > 1 {
		return fmt.Errorf("%w: weights must be in [0,1]", errInvalidPreferences)
	}
	if diff := p.TimeWeight + p.DayWeight - 1; diff > weightSumTolerance || diff < -weightSumTolerance {
		return fmt.Errorf("%w: time_weight + day_weight must be ~1, got %v", errInvalidPreferences, p.TimeWeight+p.DayWeight)
	}
	for _, d := range p.PreferredDays {
		if _, ok := weekdayBits[d]; !ok {
			return fmt.Errorf("%w: invalid preferred day %q", errInvalidPreferences, d)
		}
	}
	return nil
}

// Schedule maps a requested course to the CRN chosen for it.
type Schedule map[CourseCode]CRN

// ScoredSchedule pairs a complete schedule with its score and the sections
// assigned to reach it, handed off as an owned copy.
type ScoredSchedule struct {
	Score    float64
	Schedule Schedule
	Sections map[CRN]Section
}

func (s ScoredSchedule) clone() ScoredSchedule {
	sched := make(Schedule, len(s.Schedule))
	for k, v := range s.Schedule {
		sched[k] = v
	}
	sections := make(map[CRN]Section, len(s.Sections))
	for k, v := range s.Sections {
		v.Meetings = append([]MeetingTime(nil), v.Meetings...)
		sections[k] = v
	}
	return ScoredSchedule{Score: s.Score, Schedule: sched, Sections: sections}
}
