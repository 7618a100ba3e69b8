package bst

import (
	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

func inRange[T constraints.Ordered](n *Trees.Node[T], k1, k2 T, f Trees.Visitor[T]) bool {
	if n == nil {
		return true
	}
	if n.Value > k1 && !inRange(n.Left, k1, k2, f) {
		return false
	}
	if n.Value >= k1 && n.Value <= k2 && !f(n.Value) {
		return false
	}
	return n.Value >= k2 || inRange(n.Right, k1, k2, f)
}

// Range visits the values in [k1,k2] in ascending order. A subtree is only
// entered when it can hold such values. Recursive.
func Range[T constraints.Ordered](root *Trees.Node[T], k1, k2 T, f Trees.Visitor[T]) {
	inRange(root, k1, k2, f)
}

// RangeValues collects the values in [k1,k2] in ascending order.
func RangeValues[T constraints.Ordered](root *Trees.Node[T], k1, k2 T) []T {
	var s []T
	Range(root, k1, k2, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// RemoveOutsideRange restructures a BST so it holds exactly the values it had
// in [a,b], and returns the new root. Children are fixed first; then a node
// below a is dropped in favour of its right child and a node above b in
// favour of its left child. root must be a valid BST. Recursive.
func RemoveOutsideRange[T constraints.Ordered](root *Trees.Node[T], a, b T) *Trees.Node[T] {
	if root == nil {
		return nil
	}
	root.Left = RemoveOutsideRange(root.Left, a, b)
	root.Right = RemoveOutsideRange(root.Right, a, b)
	var keep *Trees.Node[T]
	if root.Value < a {
		keep, root.Right = root.Right, nil
	} else if root.Value > b {
		keep, root.Left = root.Left, nil
	} else {
		return root
	}
	Trees.Destroy(root)
	return keep
}
