package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sched(score float64, crn CRN) ScoredSchedule {
	return ScoredSchedule{Score: score, Schedule: Schedule{"MATH": crn}, Sections: map[CRN]Section{}}
}

func TestTopKBufferRetainsHighestScores(t *testing.T) {
	buf := newTopKBuffer(2)

	assert.True(t, buf.Offer(sched(1.0, 1)))
	assert.True(t, buf.Offer(sched(3.0, 2)))
	assert.True(t, buf.Offer(sched(2.0, 3)))

	results := buf.Drain()
	require.Len(t, results, 2)
	assert.Equal(t, 3.0, results[0].Score)
	assert.Equal(t, 2.0, results[1].Score)
}

func TestTopKBufferRejectsCandidateBelowWorstKept(t *testing.T) {
	buf := newTopKBuffer(1)

	assert.True(t, buf.Offer(sched(5.0, 1)))
	assert.False(t, buf.Offer(sched(4.0, 2)))

	results := buf.Drain()
	require.Len(t, results, 1)
	assert.Equal(t, CRN(1), results[0].Schedule["MATH"])
}

func TestTopKBufferSuppressesDuplicateScores(t *testing.T) {
	buf := newTopKBuffer(5)

	assert.True(t, buf.Offer(sched(2.0, 1)))
	assert.False(t, buf.Offer(sched(2.0, 2)))

	assert.Equal(t, 1, buf.Len())
}

func TestTopKBufferAllowsNewScoreAfterEvictingDuplicateOwner(t *testing.T) {
	buf := newTopKBuffer(1)

	assert.True(t, buf.Offer(sched(2.0, 1)))
	assert.True(t, buf.Offer(sched(3.0, 2)))
	// 2.0 was evicted, so it is no longer a held score; it is rejected here
	// only because it is below the current worst kept score (3.0).
	assert.False(t, buf.Offer(sched(2.0, 3)))

	results := buf.Drain()
	require.Len(t, results, 1)
	assert.Equal(t, 3.0, results[0].Score)
}
