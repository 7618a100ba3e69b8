// Package bst holds the algorithms that rely on the binary search tree
// ordering: every node's left subtree holds strictly smaller values and its
// right subtree strictly greater ones. Trees are plain and unbalanced; their
// shape is decided by insertion order alone.
//
// Functions that restructure a tree take ownership of the root they are given
// and return the root to keep using. References to nodes of the old shape must
// not be used afterwards.
package bst

import (
	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// upsert descends by cmp and adds a leaf for v when no equal value exists.
// An equal value is handed to merge instead, or left alone if merge is nil.
// Returns the root and whether a node was added. Recursive.
func upsert[T any](cur *Trees.Node[T], v T, cmp func(a, b T) int, merge func(*T)) (*Trees.Node[T], bool) {
	if cur == nil {
		return Trees.NewNode(v), true
	}
	added := false
	if c := cmp(v, cur.Value); c < 0 {
		cur.Left, added = upsert(cur.Left, v, cmp, merge)
	} else if c > 0 {
		cur.Right, added = upsert(cur.Right, v, cmp, merge)
	} else if merge != nil {
		merge(&cur.Value)
	}
	return cur, added
}

// Insert v and return the root, which is new only when root was nil. A value
// already in the tree is ignored. Recursive.
// Time: O(D)
func Insert[T constraints.Ordered](root *Trees.Node[T], v T) *Trees.Node[T] {
	root, _ = upsert(root, v, compare[T], nil)
	return root
}

// Search walks the ordering to the node holding v, or returns nil.
// Time: O(D); Space: O(1)
func Search[T constraints.Ordered](root *Trees.Node[T], v T) *Trees.Node[T] {
	for cur := root; cur != nil; {
		if v < cur.Value {
			cur = cur.Left
		} else if v == cur.Value {
			return cur
		} else {
			cur = cur.Right
		}
	}
	return nil
}

// Remove v and return the new root and whether v was there. A node with two
// children takes the value of its in-order successor, and the successor's
// node is unlinked instead. Recursive.
// Time: O(D)
func Remove[T constraints.Ordered](root *Trees.Node[T], v T) (*Trees.Node[T], bool) {
	if root == nil {
		return nil, false
	}
	removed := false
	if v < root.Value {
		root.Left, removed = Remove(root.Left, v)
	} else if v > root.Value {
		root.Right, removed = Remove(root.Right, v)
	} else if root.Left == nil {
		r := root.Right
		root.Right = nil
		return r, true
	} else if root.Right == nil {
		l := root.Left
		root.Left = nil
		return l, true
	} else {
		t := &root.Right
		for (*t).Left != nil {
			t = &(*t).Left
		}
		s := *t
		root.Value, *t = s.Value, s.Right
		s.Right = nil
		return root, true
	}
	return root, removed
}

// Minimum value of a BST: its leftmost node.
// Time: O(D); Space: O(1)
func Minimum[T any](root *Trees.Node[T]) (T, bool) {
	if cur := root; cur == nil {
		return *new(T), false
	} else {
		for cur.Left != nil {
			cur = cur.Left
		}
		return cur.Value, true
	}
}

// Maximum value of a BST: its rightmost node.
// Time: O(D); Space: O(1)
func Maximum[T any](root *Trees.Node[T]) (T, bool) {
	if cur := root; cur == nil {
		return *new(T), false
	} else {
		for cur.Right != nil {
			cur = cur.Right
		}
		return cur.Value, true
	}
}

// Predecessor returns the greatest value less than v.
// Time: O(D); Space: O(1)
func Predecessor[T constraints.Ordered](root *Trees.Node[T], v T) (T, bool) {
	var p *Trees.Node[T]
	for cur := root; cur != nil; {
		if v <= cur.Value {
			cur = cur.Left
		} else {
			p = cur
			cur = cur.Right
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.Value, true
}

// Successor returns the smallest value greater than v.
// Time: O(D); Space: O(1)
func Successor[T constraints.Ordered](root *Trees.Node[T], v T) (T, bool) {
	var p *Trees.Node[T]
	for cur := root; cur != nil; {
		if v < cur.Value {
			p = cur
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.Value, true
}
