package bst

import (
	"github.com/g-m-twostay/bintree/Stacks"
	"github.com/g-m-twostay/bintree/Trees"
)

func push[T any](s Stacks.Stack[*Trees.Node[T]], n *Trees.Node[T]) {
	if err := s.Push(n); err != nil {
		panic(err)
	}
}

func pop[T any](s Stacks.Stack[*Trees.Node[T]]) *Trees.Node[T] {
	n, _ := s.Pop()
	return n
}

// ToSortedList threads a BST into a sorted doubly linked list in place and
// returns its head, the smallest value. Right links to the next node and Left
// to the previous one; no node is allocated or dropped. The tree is consumed:
// nothing may treat the nodes as a tree afterwards.
func ToSortedList[T any](root *Trees.Node[T]) *Trees.Node[T] {
	var head, prev *Trees.Node[T]
	st := Stacks.MakeArrayStack[*Trees.Node[T]]()
	for cur := root; cur != nil || !st.Empty(); {
		for ; cur != nil; cur = cur.Left {
			push(st, cur)
		}
		cur = pop(st)
		next := cur.Right
		if prev == nil {
			head = cur
		} else {
			prev.Right = cur
		}
		cur.Left, prev = prev, cur
		cur = next
	}
	return head
}

// ListValues reads a list made by ToSortedList front to back.
func ListValues[T any](head *Trees.Node[T]) []T {
	var s []T
	for cur := head; cur != nil; cur = cur.Right {
		s = append(s, cur.Value)
	}
	return s
}

// ListValuesBackward walks to the tail of the list and reads it back to front
// through the Left links.
func ListValuesBackward[T any](head *Trees.Node[T]) []T {
	if head == nil {
		return nil
	}
	tail := head
	for tail.Right != nil {
		tail = tail.Right
	}
	var s []T
	for cur := tail; cur != nil; cur = cur.Left {
		s = append(s, cur.Value)
	}
	return s
}
