// Package frontier provides the containers that hold discovered-but-not-yet-expanded
// search nodes: a LIFO Stack, a FIFO Queue, and a min-priority PriorityQueue with
// lazy decrease-key ("update") semantics.
//
// What
//
//   - Stack[T]: Push appends to the top, Pop removes from the top.
//   - Queue[T]: Push appends to the tail, Pop removes from the head.
//   - PriorityQueue[T, K]: binary min-heap keyed by a float64 priority.
//     Items are identified by a caller-supplied key function K = key(item),
//     which defines "the same item" for Update.
//   - PriorityQueueWithFunction[T, K]: a PriorityQueue whose priority is
//     computed from the item itself at push time.
//
// Update semantics
//
//	Update(item, p) looks for a live entry with key(item).
//	  - none found:           behaves as Push(item, p)
//	  - found, p < current:   the old entry is marked stale and (item, p) is pushed
//	  - found, p >= current:  no-op
//	Stale entries stay in the heap until they surface and are discarded by Pop,
//	the same lazy decrease-key pattern used by classic Dijkstra implementations.
//	Len reports the heap size (an upper bound that includes stale entries);
//	Live reports the exact number of valid entries.
//
// Determinism
//
//	Entries of equal priority are popped in insertion order. Callers may rely on
//	this for reproducible runs, but search algorithms must stay correct under any
//	tie order.
//
// Complexity
//
//   - Stack / Queue: O(1) amortized Push and Pop.
//   - PriorityQueue: O(log n) Push, Pop and Update; O(n) memory where n counts
//     stale entries until they are popped.
//
// None of the containers are safe for concurrent use; each search owns its own.
package frontier
