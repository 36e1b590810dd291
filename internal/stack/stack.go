package stack

// Stack is an immutable singly linked stack. Push returns a new stack
// sharing the receiver's nodes, so derived stacks on sibling call paths
// never observe each other's entries.
type Stack[T comparable] struct {
	head *node[T]
}

type node[T comparable] struct {
	value T
	next  *node[T]
	depth int
}

func (s Stack[T]) Push(v T) Stack[T] {
	return Stack[T]{
		head: &node[T]{
			value: v,
			next:  s.head,
			depth: s.Len() + 1,
		},
	}
}

func (s Stack[T]) Contains(v T) bool {
	for n := s.head; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}
	return false
}

func (s Stack[T]) Len() int {
	if s.head == nil {
		return 0
	}
	return s.head.depth
}

// Values returns the stack contents oldest first.
func (s Stack[T]) Values() []T {
	out := make([]T, s.Len())
	i := s.Len() - 1
	for n := s.head; n != nil; n = n.next {
		out[i] = n.value
		i--
	}
	return out
}
