package Trees

import (
	"github.com/g-m-twostay/bintree/Queues"
	"github.com/g-m-twostay/bintree/Stacks"
)

// Visitor receives values during a traversal. Returning false stops the
// traversal.
type Visitor[T any] func(v T) bool

// Walk is the common shape of every traversal in this package.
type Walk[T any] func(root *Node[T], f Visitor[T])

// Collect runs walk over root and returns the visited values in order.
func Collect[T any](walk Walk[T], root *Node[T]) []T {
	var s []T
	walk(root, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func inOrder[T any](n *Node[T], f Visitor[T]) bool {
	return n == nil || inOrder(n.Left, f) && f(n.Value) && inOrder(n.Right, f)
}

func preOrder[T any](n *Node[T], f Visitor[T]) bool {
	return n == nil || f(n.Value) && preOrder(n.Left, f) && preOrder(n.Right, f)
}

func postOrder[T any](n *Node[T], f Visitor[T]) bool {
	return n == nil || postOrder(n.Left, f) && postOrder(n.Right, f) && f(n.Value)
}

// InOrder visits left subtree, node, right subtree. Recursive.
func InOrder[T any](root *Node[T], f Visitor[T]) {
	inOrder(root, f)
}

// PreOrder visits node, left subtree, right subtree. Recursive.
func PreOrder[T any](root *Node[T], f Visitor[T]) {
	preOrder(root, f)
}

// PostOrder visits left subtree, right subtree, node. Recursive.
func PostOrder[T any](root *Node[T], f Visitor[T]) {
	postOrder(root, f)
}

// push onto a traversal container. The containers used here are unbounded, so
// a failure means the container itself is broken.
func push[T any](s Stacks.Stack[*Node[T]], n *Node[T]) {
	if err := s.Push(n); err != nil {
		panic(err)
	}
}

func enqueue[T any](q Queues.Queue[*Node[T]], n *Node[T]) {
	if err := q.Push(n); err != nil {
		panic(err)
	}
}

// pop from a stack known to be non-empty.
func pop[T any](s Stacks.Stack[*Node[T]]) *Node[T] {
	n, _ := s.Pop()
	return n
}

func dequeue[T any](q Queues.Queue[*Node[T]]) *Node[T] {
	n, _ := q.Pop()
	return n
}

// InOrderIterative produces the same sequence as InOrder using an explicit
// stack: descend left pushing every node, pop and visit, then continue from
// the popped node's right child.
func InOrderIterative[T any](root *Node[T], f Visitor[T]) {
	st := Stacks.MakeArrayStack[*Node[T]]()
	for cur := root; cur != nil || !st.Empty(); {
		for ; cur != nil; cur = cur.Left {
			push(st, cur)
		}
		cur = pop(st)
		if !f(cur.Value) {
			return
		}
		cur = cur.Right
	}
}

// InOrderIterator returns the in-order sequence as a closure iterator:
// val, valid=f(). val is meaningful only when valid is true. The tree must not
// be modified while the iterator is in use.
// Time: f(): amortized O(1). Space: O(D)
func InOrderIterator[T any](root *Node[T]) func() (T, bool) {
	st := Stacks.MakeArrayStack[*Node[T]]()
	for cur := root; cur != nil; cur = cur.Left {
		push(st, cur)
	}
	return func() (r T, has bool) {
		if st.Empty() {
			return
		}
		cur := pop(st)
		for next := cur.Right; next != nil; next = next.Left {
			push(st, next)
		}
		return cur.Value, true
	}
}

// PostOrderIterative produces the same sequence as PostOrder using two
// stacks. Nodes popped from the first stack are moved to the second while
// their left then right children go onto the first; draining the second
// stack yields post-order.
func PostOrderIterative[T any](root *Node[T], f Visitor[T]) {
	if root == nil {
		return
	}
	s1, s2 := Stacks.MakeArrayStack[*Node[T]](), Stacks.MakeArrayStack[*Node[T]]()
	push(s1, root)
	for !s1.Empty() {
		n := pop(s1)
		push(s2, n)
		if n.Left != nil {
			push(s1, n.Left)
		}
		if n.Right != nil {
			push(s1, n.Right)
		}
	}
	for !s2.Empty() {
		if !f(pop(s2).Value) {
			return
		}
	}
}

// LevelOrder visits the tree breadth first, root first, then each level left
// to right.
func LevelOrder[T any](root *Node[T], f Visitor[T]) {
	if root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	enqueue(q, root)
	for !q.Empty() {
		n := dequeue(q)
		if !f(n.Value) {
			return
		}
		if n.Left != nil {
			enqueue(q, n.Left)
		}
		if n.Right != nil {
			enqueue(q, n.Right)
		}
	}
}

// Zigzag visits level 0 left to right, level 1 right to left, and so on. The
// current level is popped from one stack while the next level is pushed onto
// the other; children are pushed left first on left-to-right levels and right
// first otherwise so the next level pops mirrored.
func Zigzag[T any](root *Node[T], f Visitor[T]) {
	if root == nil {
		return
	}
	cur, next := Stacks.MakeArrayStack[*Node[T]](), Stacks.MakeArrayStack[*Node[T]]()
	push(cur, root)
	for leftToRight := true; !cur.Empty(); {
		n := pop(cur)
		if !f(n.Value) {
			return
		}
		first, second := n.Left, n.Right
		if !leftToRight {
			first, second = second, first
		}
		if first != nil {
			push(next, first)
		}
		if second != nil {
			push(next, second)
		}
		if cur.Empty() {
			leftToRight = !leftToRight
			cur, next = next, cur
		}
	}
}
