package Trees

import (
	"github.com/g-m-twostay/bintree/Queues"
	"golang.org/x/exp/constraints"
)

// Height of the tree: -1 when empty, 0 for a single node. Recursive.
func Height[T any](root *Node[T]) int {
	if root == nil {
		return -1
	}
	return max(Height(root.Left), Height(root.Right)) + 1
}

// Breadth is the largest number of nodes on any one level, 0 when empty.
func Breadth[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	enqueue(q, root)
	width := 0
	for !q.Empty() {
		n := q.Size()
		width = max(width, int(n))
		for range n {
			cur := dequeue(q)
			if cur.Left != nil {
				enqueue(q, cur.Left)
			}
			if cur.Right != nil {
				enqueue(q, cur.Right)
			}
		}
	}
	return width
}

// Count of all nodes. Recursive.
func Count[T any](root *Node[T]) uint {
	if root == nil {
		return 0
	}
	return 1 + Count(root.Left) + Count(root.Right)
}

// LeafCount counts nodes with no children. Recursive.
func LeafCount[T any](root *Node[T]) uint {
	if root == nil {
		return 0
	} else if root.Leaf() {
		return 1
	}
	return LeafCount(root.Left) + LeafCount(root.Right)
}

// FullCount counts nodes with both children. Recursive.
func FullCount[T any](root *Node[T]) uint {
	if root == nil {
		return 0
	}
	c := FullCount(root.Left) + FullCount(root.Right)
	if root.Left != nil && root.Right != nil {
		c++
	}
	return c
}

// HalfCount counts nodes with exactly one child. Recursive.
func HalfCount[T any](root *Node[T]) uint {
	if root == nil {
		return 0
	}
	c := HalfCount(root.Left) + HalfCount(root.Right)
	if (root.Left == nil) != (root.Right == nil) {
		c++
	}
	return c
}

// Sum of every value in the tree. Recursive.
func Sum[T constraints.Integer](root *Node[T]) T {
	if root == nil {
		return 0
	}
	return root.Value + Sum(root.Left) + Sum(root.Right)
}

// Exists reports whether v is anywhere in the tree; no ordering is assumed.
// Recursive.
func Exists[T comparable](root *Node[T], v T) bool {
	return root != nil && (root.Value == v || Exists(root.Left, v) || Exists(root.Right, v))
}

func levelOf[T comparable](n *Node[T], v T, d int) (int, bool) {
	if n == nil {
		return 0, false
	} else if n.Value == v {
		return d, true
	} else if l, ok := levelOf(n.Left, v, d+1); ok {
		return l, true
	}
	return levelOf(n.Right, v, d+1)
}

// LevelOf returns the depth of the first node holding v in pre-order, with the
// root at level 0. Recursive.
func LevelOf[T comparable](root *Node[T], v T) (int, bool) {
	return levelOf(root, v, 0)
}

// FindMax returns the largest value in the tree without assuming any
// ordering. Recursive.
func FindMax[T constraints.Ordered](root *Node[T]) (T, bool) {
	if root == nil {
		return *new(T), false
	}
	r := root.Value
	if l, ok := FindMax(root.Left); ok {
		r = max(r, l)
	}
	if l, ok := FindMax(root.Right); ok {
		r = max(r, l)
	}
	return r, true
}

func ancestors[T comparable](n *Node[T], v T, out *[]T) bool {
	if n == nil {
		return false
	} else if n.Value == v {
		return true
	} else if ancestors(n.Left, v, out) || ancestors(n.Right, v, out) {
		*out = append(*out, n.Value)
		return true
	}
	return false
}

// Ancestors of the first node holding v, nearest first and the root last. The
// node itself is never its own ancestor, so v at the root yields an empty
// slice. Returns *NotFoundError when v isn't in the tree. Recursive.
func Ancestors[T comparable](root *Node[T], v T) ([]T, error) {
	out := make([]T, 0, 8)
	if !ancestors(root, v, &out) {
		return nil, &NotFoundError[T]{v}
	}
	return out, nil
}
