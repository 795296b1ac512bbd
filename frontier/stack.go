package frontier

// Stack is a LIFO container. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release reference
	s.items = s.items[:n-1]

	return item, true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
