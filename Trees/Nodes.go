package Trees

// Node is an element of a binary tree. Left and Right each either are nil or
// exclusively own a child; no node is reachable from two parents and there is
// no parent link. The zero value is a leaf holding the zero value of T.
type Node[T any] struct {
	Value       T
	Left, Right *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Leaf reports whether n has no children.
func (n *Node[T]) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// Find returns the first node in pre-order whose value equals v, or nil. It
// doesn't rely on any ordering, so it works on trees that aren't BSTs.
// Recursive.
func Find[T comparable](root *Node[T], v T) *Node[T] {
	if root == nil {
		return nil
	} else if root.Value == v {
		return root
	} else if n := Find(root.Left, v); n != nil {
		return n
	}
	return Find(root.Right, v)
}

// Destroy unlinks every node of the tree in post-order so that stale
// references to inner nodes no longer reach the rest of the structure.
// Destroying a nil tree does nothing. Recursive.
func Destroy[T any](root *Node[T]) {
	if root == nil {
		return
	}
	Destroy(root.Left)
	Destroy(root.Right)
	root.Left, root.Right = nil, nil
}
