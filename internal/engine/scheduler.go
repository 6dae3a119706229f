package engine

import (
	"container/heap"

	"delve-server/internal/domain"
)

// schedItem is one pending wake-up: an entity and the simulation time
// at which it fires. seq breaks ties between equal times.
type schedItem struct {
	id    domain.EntityID
	at    float64
	seq   uint64
	index int
}

// schedHeap implements heap.Interface as a min-heap over (at, seq).
type schedHeap []*schedItem

func (h schedHeap) Len() int { return len(h) }

func (h schedHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h schedHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *schedHeap) Push(x interface{}) {
	n := len(*h)
	item := x.(*schedItem)
	item.index = n
	*h = append(*h, item)
}

func (h *schedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// Scheduler maps entities to future completion times. It holds only
// opaque EntityIDs, never entity state; the world registry is the one
// place IDs resolve. Invariant: at most one live event per entity.
// Equal completion times fire in insertion order, which is the fixed
// tie-break that makes replays deterministic.
type Scheduler struct {
	heap     schedHeap
	byEntity map[domain.EntityID]*schedItem
	seq      uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{byEntity: make(map[domain.EntityID]*schedItem)}
}

// Schedule registers a wake-up for the entity at time at, replacing
// any pending event it already has. The replacement takes a fresh
// sequence number, so it counts as the newest insertion at its time.
func (s *Scheduler) Schedule(id domain.EntityID, at float64) {
	s.seq++
	if item, ok := s.byEntity[id]; ok {
		item.at = at
		item.seq = s.seq
		heap.Fix(&s.heap, item.index)
		return
	}
	item := &schedItem{id: id, at: at, seq: s.seq}
	s.byEntity[id] = item
	heap.Push(&s.heap, item)
}

// CancelEntity purges the entity's pending event. Idempotent.
func (s *Scheduler) CancelEntity(id domain.EntityID) {
	item, ok := s.byEntity[id]
	if !ok {
		return
	}
	delete(s.byEntity, id)
	heap.Remove(&s.heap, item.index)
}

// PopNext removes and returns the globally earliest event.
func (s *Scheduler) PopNext() (domain.EntityID, float64, bool) {
	if s.heap.Len() == 0 {
		return domain.InvalidID, 0, false
	}
	item := heap.Pop(&s.heap).(*schedItem)
	delete(s.byEntity, item.id)
	return item.id, item.at, true
}

// Peek returns the earliest event without removing it.
func (s *Scheduler) Peek() (domain.EntityID, float64, bool) {
	if s.heap.Len() == 0 {
		return domain.InvalidID, 0, false
	}
	return s.heap[0].id, s.heap[0].at, true
}

// Has reports whether the entity currently has a pending event.
func (s *Scheduler) Has(id domain.EntityID) bool {
	_, ok := s.byEntity[id]
	return ok
}

func (s *Scheduler) Len() int {
	return s.heap.Len()
}
