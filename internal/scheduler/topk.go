package scheduler

import "container/heap"

// topKBuffer retains the K highest-scoring schedules seen so far using a
// min-heap: the worst kept candidate sits at the root, so admitting a new
// candidate is an O(log K) pop-push instead of a full re-sort. Schedules
// tying an already-kept score are suppressed as duplicates of preference,
// not of content, to keep the result set diverse.
type topKBuffer struct {
	k     int
	items scoredHeap
	seen  map[float64]bool
}

func newTopKBuffer(k int) *topKBuffer {
	return &topKBuffer{k: k, seen: make(map[float64]bool, k)}
}

// Offer rejects a candidate whose score ties a score already held;
// otherwise it admits the candidate if the buffer has room or if its score
// beats the current worst kept score, evicting that worst one.
// Returns true if the candidate was retained.
func (b *topKBuffer) Offer(s ScoredSchedule) bool {
	if b.seen[s.Score] {
		return false
	}
	if len(b.items) < b.k {
		heap.Push(&b.items, s.clone())
		b.seen[s.Score] = true
		return true
	}
	if len(b.items) == 0 || s.Score <= b.items[0].Score {
		return false
	}
	evicted := heap.Pop(&b.items).(ScoredSchedule)
	delete(b.seen, evicted.Score)
	heap.Push(&b.items, s.clone())
	b.seen[s.Score] = true
	return true
}

// Drain empties the buffer into descending-score order.
func (b *topKBuffer) Drain() []ScoredSchedule {
	out := make([]ScoredSchedule, len(b.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&b.items).(ScoredSchedule)
	}
	return out
}

// Len reports how many schedules are currently retained.
func (b *topKBuffer) Len() int {
	return len(b.items)
}

// scoredHeap is a container/heap.Interface ordered as a min-heap on Score,
// so the worst-kept candidate is always at index 0.
type scoredHeap []ScoredSchedule

func (h scoredHeap) Len() int            { return len(h) }
func (h scoredHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h scoredHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x interface{}) { *h = append(*h, x.(ScoredSchedule)) }
func (h *scoredHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
