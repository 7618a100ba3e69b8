package bst

import (
	"slices"

	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

func sumTree[T constraints.Integer](n *Trees.Node[T]) (*Trees.Node[T], T) {
	if n == nil {
		return nil, 0
	}
	l, ls := sumTree(n.Left)
	r, rs := sumTree(n.Right)
	s := n.Value + ls + rs
	return &Trees.Node[T]{Value: s, Left: l, Right: r}, s
}

// SumTree builds a new tree shaped like root where every node holds its
// original value plus the sums of its original left and right subtrees, so a
// leaf keeps its value. root is not modified. Recursive.
func SumTree[T constraints.Integer](root *Trees.Node[T]) *Trees.Node[T] {
	t, _ := sumTree(root)
	return t
}

// BuildFromSorted builds a height balanced BST from an ascending slice. The
// middle element, start+(end-start)/2 of the inclusive range, becomes the
// root of each subtree. Recursive.
// Time: O(n).
func BuildFromSorted[T any](sorted []T) *Trees.Node[T] {
	var build func([]T) *Trees.Node[T]
	build = func(s []T) *Trees.Node[T] {
		if len(s) > 0 {
			mid := (len(s) - 1) >> 1
			return &Trees.Node[T]{Value: s[mid], Left: build(s[:mid]), Right: build(s[mid+1:])}
		} else {
			return nil
		}
	}
	return build(sorted)
}

// ConvertToBST returns a new balanced BST holding every value of root, which
// needn't be a BST and isn't modified. Repeated values are all kept, so the
// result of a tree with duplicates won't pass IsBST.
func ConvertToBST[T constraints.Ordered](root *Trees.Node[T]) *Trees.Node[T] {
	vs := Trees.Collect(Trees.InOrder[T], root)
	slices.Sort(vs)
	return BuildFromSorted(vs)
}

// ModifyByThreshold adds delta to every value <= m and subtracts it from every
// value > m, visiting all nodes. The ordering is generally not preserved.
// Recursive.
func ModifyByThreshold[T constraints.Integer](root *Trees.Node[T], m, delta T) {
	if root == nil {
		return
	}
	if root.Value <= m {
		root.Value += delta
	} else {
		root.Value -= delta
	}
	ModifyByThreshold(root.Left, m, delta)
	ModifyByThreshold(root.Right, m, delta)
}
