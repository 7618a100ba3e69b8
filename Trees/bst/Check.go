package bst

import (
	"slices"
	"unsafe"

	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

// limits returns the smallest and largest values representable by T.
func limits[T constraints.Signed]() (lo, hi T) {
	lo = T(1) << (unsafe.Sizeof(lo)*8 - 1)
	return lo, lo - 1
}

func isBST[T constraints.Signed](n *Trees.Node[T], lo, hi T) bool {
	if n == nil {
		return true
	} else if n.Value <= lo || n.Value >= hi {
		return false
	}
	return isBST(n.Left, lo, n.Value) && isBST(n.Right, n.Value, hi)
}

// IsBST checks every node lies strictly between the open bounds inherited
// from its ancestors. The root starts with the limits of T as bounds, so a
// tree holding either limit of T is reported invalid. An empty tree is valid.
// Recursive.
func IsBST[T constraints.Signed](root *Trees.Node[T]) bool {
	lo, hi := limits[T]()
	return isBST(root, lo, hi)
}

// balancedHeight returns the height of n while clearing *ok as soon as some
// node's subtrees differ in height by more than one. After that the returned
// heights are meaningless.
func balancedHeight[T any](n *Trees.Node[T], ok *bool) int {
	if n == nil || !*ok {
		return -1
	}
	l := balancedHeight(n.Left, ok)
	if !*ok {
		return -1
	}
	r := balancedHeight(n.Right, ok)
	if !*ok {
		return -1
	}
	if l-r > 1 || r-l > 1 {
		*ok = false
		return -1
	}
	return max(l, r) + 1
}

// IsHeightBalanced reports whether no node has subtrees whose heights differ
// by more than one, in a single post-order pass. Recursive.
func IsHeightBalanced[T any](root *Trees.Node[T]) bool {
	ok := true
	balancedHeight(root, &ok)
	return ok
}

// SameInformation reports whether two BSTs hold the same values. Node counts
// are compared first; equal counts fall back to comparing the in-order
// sequences element by element.
func SameInformation[T comparable](a, b *Trees.Node[T]) bool {
	if Trees.Count(a) != Trees.Count(b) {
		return false
	}
	return slices.Equal(Trees.Collect(Trees.InOrder[T], a), Trees.Collect(Trees.InOrder[T], b))
}
