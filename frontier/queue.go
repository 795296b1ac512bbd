package frontier

// compactThreshold is the minimum consumed prefix before the backing slice is compacted.
const compactThreshold = 64

// Queue is a FIFO container. The zero value is ready to use.
//
// Pop advances a head index instead of re-slicing from the front so that the
// backing array can be reclaimed once the consumed prefix outweighs the live part.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends item to the tail of the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the item at the head of the queue.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		// drained: reuse the backing array from the start
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
