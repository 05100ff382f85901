package scheduler

import (
	"context"
	"errors"
	"time"
)

// CatalogProvider resolves requested course codes to their candidate
// sections for a term, and reports which requested courses came back with
// no sections at all. Implemented outside the package (typically backed
// by a database, with an optional cache in front of it).
type CatalogProvider interface {
	Fetch(ctx context.Context, term string, courses []CourseCode) (sectionsByCourse map[CourseCode][]Section, missing []CourseCode, err error)
}

// Request is one schedule-search request.
type Request struct {
	Term        string
	Courses     []CourseCode
	Breaks      []Break
	Preferences Preferences
	K           int
	Deadline    time.Duration
}

// Status reports how a search concluded.
type Status string

const (
	// StatusRanked means the search ran to completion and the result holds
	// the best schedules found, up to K.
	StatusRanked Status = "ranked"
	// StatusTimedOut means the wall-clock deadline elapsed before the
	// search exhausted the tree. Any schedules gathered so far are
	// discarded; Outcome.Schedules is empty.
	StatusTimedOut Status = "timed_out"
)

// Outcome is the result of a search: its status, the ranked schedules
// found (best first), how many complete candidates were scored, and which
// requested courses had no sections at all.
type Outcome struct {
	Status              Status
	Schedules           []ScoredSchedule
	SchedulesConsidered uint64
	Missing             []CourseCode
}

// Driver wires a CatalogProvider to the enumerator and scorer, bounding
// the search by wall-clock deadline and context cancellation.
type Driver struct {
	catalog CatalogProvider
}

// NewDriver builds a Driver over the given catalog.
func NewDriver(catalog CatalogProvider) *Driver {
	return &Driver{catalog: catalog}
}

// Search resolves the requested courses, then enumerates and ranks every
// feasible combination up to the request's K, stopping early if the
// deadline elapses or ctx is cancelled. A deadline cutoff is reported via
// Outcome.Status rather than an error, since it is a valid, expected
// outcome and not a failure. Any schedules gathered before the cutoff are
// discarded, not returned, on the timed-out path.
//
// Req.Deadline is honored literally, including zero: a zero deadline means
// the search is already expired before it starts and the outcome is
// StatusTimedOut. Callers that want a default budget (90s) apply it before
// constructing the Request; the core does not supply one of its own.
func (d *Driver) Search(ctx context.Context, req Request) (Outcome, error) {
	searchCtx, cancel := context.WithTimeout(ctx, req.Deadline)
	defer cancel()

	groups, missing, err := d.catalog.Fetch(searchCtx, req.Term, req.Courses)
	if err != nil {
		// The deadline elapsing mid-fetch is a timeout outcome, not a hard
		// failure of the request. No I/O happens during the search itself,
		// but the catalog lookup that precedes it shares the same deadline.
		if errors.Is(err, context.DeadlineExceeded) {
			return Outcome{Status: StatusTimedOut}, nil
		}
		return Outcome{}, err
	}

	// At least one course was requested but none of them have sections.
	// That is not an error, and no alternative missing-course schedules
	// are explored; the search simply has nothing to rank.
	if len(req.Courses) > 0 && len(groups) == 0 {
		return Outcome{Status: StatusRanked, Missing: missing}, nil
	}

	k := req.K
	if k <= 0 {
		k = 1
	}
	buffer := newTopKBuffer(k)
	scorer := NewScorer(req.Preferences)

	timedOut := false
	cancelled := func() bool {
		select {
		case <-searchCtx.Done():
			timedOut = true
			return true
		default:
			return false
		}
	}

	var considered uint64
	enum := newEnumerator(groups, req.Breaks, scorer, func(s ScoredSchedule) bool {
		considered++
		buffer.Offer(s)
		return !cancelled()
	}, cancelled)
	enum.run()

	if timedOut {
		return Outcome{Status: StatusTimedOut, SchedulesConsidered: considered, Missing: missing}, nil
	}
	return Outcome{Status: StatusRanked, Schedules: buffer.Drain(), SchedulesConsidered: considered, Missing: missing}, nil
}
