package Stacks

import "github.com/emirpasic/gods/stacks/arraystack"

// arrStack adapts the untyped gods array stack to Stack[T].
type arrStack[T any] struct {
	st    *arraystack.Stack
	limit uint
}

// MakeArrayStack returns an unbounded stack.
func MakeArrayStack[T any]() Stack[T] {
	return &arrStack[T]{st: arraystack.New()}
}

// MakeBoundedStack returns a stack that refuses Push once it holds limit items.
// limit==0 means unbounded.
func MakeBoundedStack[T any](limit uint) Stack[T] {
	return &arrStack[T]{arraystack.New(), limit}
}

func (u *arrStack[T]) Push(item T) error {
	if u.Full() {
		return &FullStackError{u.limit}
	}
	u.st.Push(item)
	return nil
}

func (u *arrStack[T]) Pop() (T, error) {
	if v, ok := u.st.Pop(); ok {
		return v.(T), nil
	}
	return *new(T), &EmptyStackError{}
}

func (u *arrStack[T]) Peek() (T, error) {
	if v, ok := u.st.Peek(); ok {
		return v.(T), nil
	}
	return *new(T), &EmptyStackError{}
}

func (u *arrStack[T]) Empty() bool {
	return u.st.Empty()
}

func (u *arrStack[T]) Full() bool {
	return u.limit != 0 && uint(u.st.Size()) >= u.limit
}

func (u *arrStack[T]) Size() uint {
	return uint(u.st.Size())
}

func (u *arrStack[T]) Clear() {
	u.st.Clear()
}
