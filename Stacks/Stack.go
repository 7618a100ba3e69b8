package Stacks

// Stack is a LIFO container. Stacks used by tree traversals hold borrowed
// references to nodes; a stack never owns what it holds.
type Stack[T any] interface {
	//Push item on top. Fails with *FullStackError on a bounded stack that is
	//full; the item is not stored in that case.
	Push(item T) error
	//Pop the top item. Fails with *EmptyStackError when empty.
	Pop() (T, error)
	//Peek at the top item without removing it. Fails with *EmptyStackError when empty.
	Peek() (T, error)
	Empty() bool
	//Full is always false for an unbounded stack.
	Full() bool
	Size() uint
	Clear()
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}

type FullStackError struct {
	Limit uint
}

func (e *FullStackError) Error() string {
	return "Stack is Full: cannot Push."
}
