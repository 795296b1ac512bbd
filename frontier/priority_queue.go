package frontier

import "container/heap"

// entry is a single heap slot. A stale entry has been superseded by Update
// and is discarded when it reaches the top of the heap.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64 // insertion order, breaks priority ties
	stale    bool
}

// entryHeap is a min-heap of *entry ordered by (priority, seq).
type entryHeap[T any] []*entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(*entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // avoid memory leak
	*h = old[:n-1]

	return e
}

// PriorityQueue is a min-priority queue of items of type T identified by keys of type K.
//
// Several entries with the same key may coexist when added through Push; Update
// tracks only the most recent live entry per key (see package doc).
type PriorityQueue[T any, K comparable] struct {
	heap  entryHeap[T]
	key   func(T) K
	index map[K]*entry[T] // latest live entry per key
	live  int
	seq   uint64
}

// NewPriorityQueue returns an empty queue. key maps an item to the identity used by Update.
func NewPriorityQueue[T any, K comparable](key func(T) K) *PriorityQueue[T, K] {
	return &PriorityQueue[T, K]{
		key:   key,
		index: make(map[K]*entry[T]),
	}
}

// Push inserts item with the given priority in O(log n).
func (pq *PriorityQueue[T, K]) Push(item T, priority float64) {
	e := &entry[T]{item: item, priority: priority, seq: pq.seq}
	pq.seq++
	heap.Push(&pq.heap, e)
	pq.live++

	k := pq.key(item)
	if cur, ok := pq.index[k]; !ok || priority < cur.priority {
		pq.index[k] = e
	}
}

// Update lowers the priority of the live entry sharing item's key, replacing the
// stored item as well. A higher or equal priority leaves the existing entry untouched.
// Without a live entry for the key, Update behaves as Push.
// It reports whether the queue changed.
func (pq *PriorityQueue[T, K]) Update(item T, priority float64) bool {
	cur, ok := pq.index[pq.key(item)]
	if ok {
		if priority >= cur.priority {
			return false
		}
		cur.stale = true
		pq.live--
	}
	pq.Push(item, priority)

	return true
}

// Pop removes and returns the live item with the lowest priority.
// The third result is false when no live items remain.
func (pq *PriorityQueue[T, K]) Pop() (T, float64, bool) {
	for pq.heap.Len() > 0 {
		e := heap.Pop(&pq.heap).(*entry[T])
		if e.stale {
			continue
		}
		pq.live--
		k := pq.key(e.item)
		if pq.index[k] == e {
			delete(pq.index, k)
		}
		return e.item, e.priority, true
	}

	var zero T
	return zero, 0, false
}

// Peek returns the live item with the lowest priority without removing it.
// Stale entries found on top are discarded.
func (pq *PriorityQueue[T, K]) Peek() (T, float64, bool) {
	for pq.heap.Len() > 0 {
		e := pq.heap[0]
		if !e.stale {
			return e.item, e.priority, true
		}
		heap.Pop(&pq.heap)
	}

	var zero T
	return zero, 0, false
}

// Len returns the heap size, stale entries included.
func (pq *PriorityQueue[T, K]) Len() int { return pq.heap.Len() }

// Live returns the number of valid entries.
func (pq *PriorityQueue[T, K]) Live() int { return pq.live }

// IsEmpty reports whether no live entries remain.
func (pq *PriorityQueue[T, K]) IsEmpty() bool { return pq.live == 0 }

// PriorityQueueWithFunction computes each item's priority with a caller-supplied
// function at push time.
type PriorityQueueWithFunction[T any, K comparable] struct {
	*PriorityQueue[T, K]
	priority func(T) float64
}

// NewPriorityQueueWithFunction returns an empty queue ordered by priority(item).
func NewPriorityQueueWithFunction[T any, K comparable](key func(T) K, priority func(T) float64) *PriorityQueueWithFunction[T, K] {
	return &PriorityQueueWithFunction[T, K]{
		PriorityQueue: NewPriorityQueue(key),
		priority:      priority,
	}
}

// Push inserts item with priority computed from the item.
func (pq *PriorityQueueWithFunction[T, K]) Push(item T) {
	pq.PriorityQueue.Push(item, pq.priority(item))
}

// Update applies PriorityQueue.Update with priority computed from the item.
func (pq *PriorityQueueWithFunction[T, K]) Update(item T) bool {
	return pq.PriorityQueue.Update(item, pq.priority(item))
}

// Pop removes and returns the lowest-priority live item.
func (pq *PriorityQueueWithFunction[T, K]) Pop() (T, bool) {
	item, _, ok := pq.PriorityQueue.Pop()
	return item, ok
}
