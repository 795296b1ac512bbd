package frontier

// Frontier is the minimal contract shared by the uninformed containers.
// Pop reports false when the container is empty.
type Frontier[T any] interface {
	Push(item T)
	Pop() (T, bool)
	Len() int
	IsEmpty() bool
}

var (
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Queue[int])(nil)
)
