package bst

import (
	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

var _ Trees.Tree[int] = (*Tree[int])(nil)

// Tree is the single owner of a plain BST and its size. It holds no locks;
// callers sharing one across goroutines must serialize access themselves.
// The zero value is an empty tree.
type Tree[T constraints.Signed] struct {
	root *Trees.Node[T]
	size uint
}

// New returns an empty tree.
func New[T constraints.Signed]() *Tree[T] {
	return &Tree[T]{}
}

// From inserts values in order into a new tree, skipping repeats.
func From[T constraints.Signed](values ...T) *Tree[T] {
	u := New[T]()
	for _, v := range values {
		u.Insert(v)
	}
	return u
}

// Root lends the root to read-only algorithms. The tree still owns it.
func (u *Tree[T]) Root() *Trees.Node[T] {
	return u.root
}

// Insert [Trees.Tree.Insert]. Returns false if v is already in the tree.
// Recursive.
func (u *Tree[T]) Insert(v T) (added bool) {
	if u.root, added = upsert(u.root, v, compare[T], nil); added {
		u.size++
	}
	return
}

// Remove [Trees.Tree.Remove]. Recursive.
func (u *Tree[T]) Remove(v T) (removed bool) {
	if u.root, removed = Remove(u.root, v); removed {
		u.size--
	}
	return
}

// Minimum [Trees.Tree.Minimum]
func (u *Tree[T]) Minimum() (T, bool) {
	return Minimum(u.root)
}

// Maximum [Trees.Tree.Maximum]
func (u *Tree[T]) Maximum() (T, bool) {
	return Maximum(u.root)
}

// Predecessor [Trees.Tree.Predecessor]
func (u *Tree[T]) Predecessor(v T) (T, bool) {
	return Predecessor(u.root, v)
}

// Successor [Trees.Tree.Successor]
func (u *Tree[T]) Successor(v T) (T, bool) {
	return Successor(u.root, v)
}

// KLargest [Trees.Tree.KLargest]. Use MthLargest for the error detail.
func (u *Tree[T]) KLargest(k uint) (T, bool) {
	if k == 0 || k > u.size {
		return *new(T), false
	}
	v, err := MthLargest(u.root, int(k))
	return v, err == nil
}

// Has [Trees.Tree.Has]
func (u *Tree[T]) Has(v T) bool {
	return Search(u.root, v) != nil
}

// Size [Trees.Tree.Size]
// Time: O(1); Space: O(1)
func (u *Tree[T]) Size() uint {
	return u.size
}

// InOrder [Trees.Tree.InOrder]
func (u *Tree[T]) InOrder() func() (T, bool) {
	return Trees.InOrderIterator(u.root)
}

// Corrupt [Trees.Tree.Corrupt]. True after ModifyByThreshold broke the
// ordering, for example.
func (u *Tree[T]) Corrupt() bool {
	return !IsBST(u.root)
}

// PruneOutside keeps only the values in [a,b].
func (u *Tree[T]) PruneOutside(a, b T) {
	u.root = RemoveOutsideRange(u.root, a, b)
	u.size = Trees.Count(u.root)
}

// ModifyByThreshold [ModifyByThreshold]. Check Corrupt afterwards if the
// ordering matters.
func (u *Tree[T]) ModifyByThreshold(m, delta T) {
	ModifyByThreshold(u.root, m, delta)
}

// ToSortedList hands the nodes over as a sorted doubly linked list and leaves
// u empty.
func (u *Tree[T]) ToSortedList() *Trees.Node[T] {
	head := ToSortedList(u.root)
	u.root, u.size = nil, 0
	return head
}

// Clear releases every node.
func (u *Tree[T]) Clear() {
	Trees.Destroy(u.root)
	u.root, u.size = nil, 0
}
